package cli

import (
	"time"

	"github.com/spf13/cobra"

	"pixelcycle/internal/config"
	"pixelcycle/internal/cycler"
	"pixelcycle/internal/engine"
)

func newOnceCmd() *cobra.Command {
	var holdMS int

	cmd := &cobra.Command{
		Use:   "once",
		Short: "Apply the transform for a single phase, then reset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, confPath, err := config.LoadCycleSpec(cfgFile)
			if err != nil {
				return err
			}

			disp, err := engine.BuildDisplay(cfg, confPath)
			if err != nil {
				return err
			}
			defer disp.Close()

			jrnl, err := engine.BuildJournal(cfg)
			if err != nil {
				return err
			}
			defer jrnl.Close()

			hold := time.Duration(cfg.Cycle.PhaseDurationMS) * time.Millisecond
			if holdMS > 0 {
				hold = time.Duration(holdMS) * time.Millisecond
			}

			c := cycler.New(cycler.Config{
				Output:        cfg.Display.Output,
				ShiftX:        cfg.Transform.ShiftX,
				ShiftY:        cfg.Transform.ShiftY,
				Units:         cfg.Transform.Units,
				PhaseDuration: hold,
				Strict:        cfg.Cycle.Strict,
			}, disp, jrnl)
			return c.Once(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&holdMS, "hold-ms", 2000, "how long to hold the transform before resetting")
	return cmd
}
