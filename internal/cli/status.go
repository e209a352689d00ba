package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"pixelcycle/internal/config"
	"pixelcycle/internal/transport"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Query a running daemon's health endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.LoadCycleSpec(cfgFile)
			if err != nil {
				return err
			}

			cli, cc, err := transport.Dial(cfg.Control.GRPCPort)
			if err != nil {
				return err
			}
			defer cc.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 3*time.Second)
			defer cancel()

			resp, err := cli.Check(ctx, &healthpb.HealthCheckRequest{Service: transport.ServiceName})
			if err != nil {
				return fmt.Errorf("daemon not reachable on port %d: %w", cfg.Control.GRPCPort, err)
			}
			fmt.Println(resp.GetStatus())
			return nil
		},
	}
}
