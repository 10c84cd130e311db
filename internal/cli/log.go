package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/bridgebot/internal/ports/primary"
	"github.com/example/bridgebot/internal/wire"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View recorded sync actions",
	Long:  "View and manage the durable log of corrective actions (reopens, closes, errors)",
}

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent sync actions",
	Long:  "Show recent sync actions, newest first (default 50)",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		project, _ := cmd.Flags().GetString("project")
		action, _ := cmd.Flags().GetString("action")

		if limit <= 0 {
			limit = 50
		}

		filters := primary.ActionFilters{
			Project: project,
			Action:  action,
			Limit:   limit,
		}

		entries, err := wire.SyncLogService().ListActions(cmd.Context(), filters)
		if err != nil {
			return fmt.Errorf("failed to fetch sync log: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No sync actions recorded.")
			return nil
		}

		fmt.Printf("Found %d action(s):\n\n", len(entries))
		for _, entry := range entries {
			printActionEntry(entry)
		}
		return nil
	},
}

var logPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old sync actions",
	Long:  "Delete sync actions older than the specified number of days (default 30)",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")

		if days <= 0 {
			days = 30
		}

		count, err := wire.SyncLogService().PruneActions(cmd.Context(), days)
		if err != nil {
			return fmt.Errorf("failed to prune sync log: %w", err)
		}

		if count == 0 {
			fmt.Printf("No sync actions older than %d days found.\n", days)
		} else {
			fmt.Printf("Pruned %d action(s) older than %d days.\n", count, days)
		}
		return nil
	},
}

func printActionEntry(entry *primary.ActionEntry) {
	// Format: timestamp | project | icon action | thread/issue | detail
	line := fmt.Sprintf("%s | %-12s | %s %-7s | thread %d",
		formatTimestamp(entry.CreatedAt),
		entry.Project,
		getActionIcon(entry.Action),
		entry.Action,
		entry.ThreadID,
	)
	if entry.IssueNumber > 0 {
		line += fmt.Sprintf(" issue #%d", entry.IssueNumber)
	}
	if entry.Detail != "" {
		line += " | " + entry.Detail
	}
	fmt.Println(line)
}

func getActionIcon(action string) string {
	switch action {
	case "reopen":
		return "~"
	case "close":
		return "-"
	case "error":
		return "!"
	default:
		return "?"
	}
}

func formatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("2006-01-02 15:04:05")
}

// LogCmd returns the log command with all subcommands attached.
func LogCmd() *cobra.Command {
	// log list
	logListCmd.Flags().IntP("limit", "n", 50, "Number of entries to show")
	logListCmd.Flags().String("project", "", "Filter by project name")
	logListCmd.Flags().String("action", "", "Filter by action (reopen, close, error)")

	// log prune
	logPruneCmd.Flags().Int("days", 30, "Delete entries older than N days")

	logCmd.AddCommand(logListCmd)
	logCmd.AddCommand(logPruneCmd)

	return logCmd
}
