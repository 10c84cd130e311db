package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/bridgebot/internal/config"
	"github.com/example/bridgebot/internal/wire"
)

// AuditCmd returns the audit command
func AuditCmd() *cobra.Command {
	var configPath string
	var projectName string

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Report drift between tracker issues and forum threads",
		Long: `Compare open-issue thread ids against the forum's active threads
without changing anything. Reports managed threads whose lock state
contradicts their issue, and open issues whose thread no longer exists.`,
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

			dirty := false
			for _, project := range projects {
				report, err := wire.AuditService().AuditProject(cmd.Context(), project)
				if err != nil {
					return fmt.Errorf("failed to audit %s: %w", project.Label(), err)
				}

				fmt.Printf("%s (%s)\n", project.Label(), project.RepoSlug())
				fmt.Printf("  Open-issue threads: %d (%d unlocked, %d locked)\n",
					report.OpenIssueThreads, report.ManagedUnlocked, report.ManagedLocked)

				if report.Clean() {
					fmt.Printf("  %s\n", color.New(color.FgHiGreen).Sprint("No drift"))
					continue
				}
				dirty = true

				for _, f := range report.WrongState {
					fmt.Printf("  %s thread %d (%s): %s\n",
						color.New(color.FgRed).Sprint("WRONG STATE"), f.ThreadID, f.ThreadName, f.Reason)
				}
				for _, m := range report.MissingThreads {
					fmt.Printf("  %s issue #%d (%s): thread %d not found\n",
						color.New(color.FgYellow).Sprint("MISSING"), m.IssueNumber, m.IssueTitle, m.ThreadID)
				}
			}

			if dirty {
				fmt.Println()
				fmt.Println("Run `bridgebot run --once` to reconcile.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to config file")
	cmd.Flags().StringVarP(&projectName, "project", "p", "", "Audit only the named project")

	return cmd
}
