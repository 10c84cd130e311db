package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/bridgebot/internal/config"
	"github.com/example/bridgebot/internal/wire"
)

// RunCmd returns the run command
func RunCmd() *cobra.Command {
	var configPath string
	var once bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the reconciliation daemon",
		Long: `Start the reconciliation scheduler and keep it running until
interrupted. Each cycle reconciles every configured project in order:
threads whose linked issue is open are unlocked, threads whose discovered
issue is closed are locked and archived.

With --once, run a single cycle and exit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigured(configPath)
			if err != nil {
				return err
			}
			if err := requireChatToken(); err != nil {
				return err
			}

			scheduler, err := wire.Scheduler()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if once {
				scheduler.RunOnce(ctx)
			} else {
				settings := cfg.SyncConfig()
				if !settings.IsEnabled() {
					fmt.Println("Sync is disabled in config; nothing to do.")
					return nil
				}
				fmt.Printf("Starting scheduler: %d project(s), every %ds. Ctrl-C to stop.\n",
					len(cfg.Projects), settings.IntervalSeconds)
				scheduler.Run(ctx)
			}

			stats := scheduler.Stats()
			fmt.Printf("Cycles: %d, reopened: %d, closed: %d, project errors: %d\n",
				stats.Cycles, stats.Reopened, stats.Closed, stats.ProjectErrors)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to config file")
	cmd.Flags().BoolVar(&once, "once", false, "Run a single cycle and exit")

	return cmd
}
