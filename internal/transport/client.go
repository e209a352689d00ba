package transport

import (
	"fmt"

	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Dial connects to a local daemon and returns its health client. The caller
// owns the connection.
func Dial(port int) (healthpb.HealthClient, *grpc.ClientConn, error) {
	cc, err := grpc.Dial(fmt.Sprintf("localhost:%d", port), grpc.WithInsecure())
	if err != nil {
		return nil, nil, err
	}
	return healthpb.NewHealthClient(cc), cc, nil
}
