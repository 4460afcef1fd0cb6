package commands

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"coursedeck/pkg/runner/sweepd"
	"coursedeck/pkg/store"
)

func addSweep(topLevel *cobra.Command) {
	var once bool
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Roll over repeating sessions and tasks",
		Long: "Sweep advances every overdue repeating task and unchecks every " +
			"completed session whose reset time has arrived. Without --once it " +
			"keeps running and sweeps on a fixed interval.",
		Example: `
coursedeck sweep --once
coursedeck sweep --interval 30s
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			s := sweepd.Sweep{
				Once:        once,
				Interval:    interval,
				Persistence: p,
				Log:         logger.Sugar(),
			}
			return output.HandleError(s.Do(ctx))
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "Run a single sweep pass and exit.")
	cmd.Flags().DurationVar(&interval, "interval", 30*time.Second, "Sweep period for daemon mode.")

	topLevel.AddCommand(cmd)
}
