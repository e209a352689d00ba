// Package cli implements the pixelcycle command-line interface.
//
// The main commands are:
//   - run: drive the apply/reset cycle until interrupted
//   - once: apply the transform for a single phase, then reset
//   - outputs: list connected display outputs
//   - status: query a running daemon's health endpoint
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"pixelcycle/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// Execute runs the pixelcycle CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	root := &cobra.Command{
		Use:          "pixelcycle",
		Short:        "pixelcycle cycles a display transform to prevent burn-in",
		Long:         `pixelcycle periodically applies and resets a screen-transform matrix on a display output, journaling each phase transition to an append-only log.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.InitFromEnv()
			if verbose {
				logging.Configure(logging.Options{Level: "debug"})
			}
		},
	}

	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "cycle.yml", "cycle config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRunCmd())
	root.AddCommand(newOnceCmd())
	root.AddCommand(newOutputsCmd())
	root.AddCommand(newStatusCmd())

	return root.ExecuteContext(ctx)
}
