package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/bridgebot/internal/config"
)

// ValidateConfigCmd returns the validate-config command
func ValidateConfigCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate-config",
		Short: "Validate the config file and show the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			settings := cfg.SyncConfig()

			fmt.Println(color.New(color.FgHiGreen).Sprint("Config OK"))
			fmt.Println()
			fmt.Printf("Projects: %d\n", len(cfg.Projects))
			for _, p := range cfg.Projects {
				fmt.Printf("  - %s: guild %s, forum %s -> %s/%s\n",
					labelOf(p), p.DiscordGuildID, p.DiscordForumID, p.GithubOwner, p.GithubRepo)
			}
			fmt.Println()

			enabled := "enabled"
			if !settings.IsEnabled() {
				enabled = color.New(color.FgYellow).Sprint("disabled")
			}
			fmt.Printf("Sync: %s, every %ds\n", enabled, settings.IntervalSeconds)
			fmt.Printf("Managed prefixes: %s\n", strings.Join(settings.ThreadPrefixes, " "))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to config file")

	return cmd
}

func labelOf(p config.Project) string {
	if p.Name != "" {
		return p.Name
	}
	return "unnamed"
}
