package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/bridgebot/internal/config"
	"github.com/example/bridgebot/internal/ports/secondary"
	"github.com/example/bridgebot/internal/wire"
)

// InspectCmd returns the inspect command
func InspectCmd() *cobra.Command {
	var configPath string
	var projectName string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List tracker issues linked to forum threads",
		Long:  "List every tracker issue whose title carries a decodable thread id, with its lifecycle state.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigured(configPath)
			if err != nil {
				return err
			}
			projects, err := selectProjects(cfg, projectName)
			if err != nil {
				return err
			}

			for _, project := range projects {
				report, err := wire.AuditService().InspectProject(cmd.Context(), project)
				if err != nil {
					return fmt.Errorf("failed to inspect %s: %w", project.Label(), err)
				}

				fmt.Printf("%s (%s): %d issue(s), %d linked\n",
					project.Label(), project.RepoSlug(), report.TotalIssues, len(report.Linked))
				for _, issue := range report.Linked {
					fmt.Printf("  #%-5d %s %s (thread %d)\n",
						issue.Number, stateMarker(issue.State), issue.Title, issue.ThreadID)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to config file")
	cmd.Flags().StringVarP(&projectName, "project", "p", "", "Inspect only the named project")

	return cmd
}

func stateMarker(state string) string {
	if state == secondary.IssueStateOpen {
		return color.New(color.FgHiGreen).Sprint("[open]  ")
	}
	return color.New(color.FgRed).Sprint("[closed]")
}
