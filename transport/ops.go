package transport

import (
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// OpsServer exposes the standard gRPC health service for orchestrators.
type OpsServer struct {
	log    *slog.Logger
	server *grpc.Server
	health *health.Server
}

func NewOpsServer(log *slog.Logger, opts ...grpc.ServerOption) *OpsServer {
	server := grpc.NewServer(opts...)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	return &OpsServer{log: log, server: server, health: healthServer}
}

// Serve blocks until Stop is called. The service reports SERVING while it runs.
func (o *OpsServer) Serve(listener net.Listener) error {
	o.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	o.log.Info("Ops server listening", "address", listener.Addr().String())
	if err := o.server.Serve(listener); err != nil {
		return fmt.Errorf("ops server stopped: %w", err)
	}
	return nil
}

func (o *OpsServer) Stop() {
	o.health.Shutdown()
	o.server.GracefulStop()
}
