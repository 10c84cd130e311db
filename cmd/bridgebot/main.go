package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/bridgebot/internal/cli"
	"github.com/example/bridgebot/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "bridgebot",
		Short:   "bridgebot - Discord forum / GitHub issue reconciliation daemon",
		Version: version.String(),
		Long: `bridgebot keeps Discord forum threads in step with their GitHub issues.
Threads whose linked issue is open stay unlocked; threads whose issue was
closed get locked and archived. Links are carried as [thread-id] markers
in issue titles and as issue URLs in bot notification messages.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.RunCmd())
	rootCmd.AddCommand(cli.ValidateConfigCmd())
	rootCmd.AddCommand(cli.AuditCmd())
	rootCmd.AddCommand(cli.InspectCmd())
	rootCmd.AddCommand(cli.ArchiveThreadsCmd())
	rootCmd.AddCommand(cli.LogCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
