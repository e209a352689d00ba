package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pixelcycle/internal/config"
	"pixelcycle/internal/engine"
)

func newOutputsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outputs",
		Short: "List connected display outputs",
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

			outs, err := disp.Outputs(cmd.Context())
			if err != nil {
				return err
			}
			if len(outs) == 0 {
				fmt.Println("no connected outputs")
				return nil
			}
			for _, o := range outs {
				if o.Width > 0 {
					fmt.Printf("%s\t%dx%d\n", o.Name, o.Width, o.Height)
				} else {
					fmt.Printf("%s\t(no active mode)\n", o.Name)
				}
			}
			return nil
		},
	}
}
