package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/bridgebot/internal/config"
	"github.com/example/bridgebot/internal/wire"
)

// ArchiveThreadsCmd returns the archive-threads command
func ArchiveThreadsCmd() *cobra.Command {
	var configPath string
	var projectName string

	cmd := &cobra.Command{
		Use:   "archive-threads",
		Short: "Archive managed threads that are locked but not archived",
		Long: `One-shot sweep for managed threads left locked-but-unarchived,
typically after a manual moderator lock. Threads without a managed prefix
are left alone.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigured(configPath)
			if err != nil {
				return err
			}
			if err := requireChatToken(); err != nil {
				return err
			}
			projects, err := selectProjects(cfg, projectName)
			if err != nil {
				return err
			}

			total := 0
			for _, project := range projects {
				archived, err := wire.ArchiveService().ArchiveLockedThreads(cmd.Context(), project)
				if err != nil {
					return fmt.Errorf("failed to archive threads for %s: %w", project.Label(), err)
				}
				fmt.Printf("%s: archived %d thread(s)\n", project.Label(), archived)
				total += archived
			}

			if len(projects) > 1 {
				fmt.Printf("Total: %d thread(s) archived\n", total)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to config file")
	cmd.Flags().StringVarP(&projectName, "project", "p", "", "Sweep only the named project")

	return cmd
}
