package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pixelcycle/internal/config"
	"pixelcycle/internal/engine"
	"pixelcycle/internal/logging"
)

func newRunCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Drive the apply/reset cycle until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, confPath, err := config.LoadCycleSpec(cfgFile)
			if err != nil {
				return err
			}
			if dryRun {
				cfg.Display.Driver = "null"
			}

			e, err := engine.Bootstrap(cfg, confPath)
			if err != nil {
				return fmt.Errorf("bootstrap: %w", err)
			}

			logging.L().Info("pixelcycle running",
				"driver", cfg.Display.Driver,
				"phase_ms", cfg.Cycle.PhaseDurationMS,
				"sinks", cfg.Journal.Sinks)
			return e.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print invocations instead of calling the display tool")
	return cmd
}
