package main

import (
	"chat-room/assembler"
	"chat-room/observability"
	"chat-room/repositories"
	"chat-room/runtime"
	"chat-room/runtime/workers"
	"chat-room/transport"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"

	grpc3 "github.com/mama165/sdk-go/grpc"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Chat room terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a signal or a server failure.
// Deferred closers run before the exit code reaches main.
func run() (int, error) {
	// 1. Configuration & Logger
	// A missing .env is fine, the environment may already be set
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("invalid config: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Persistence (Badger, chromem-go, Bluge) behind the store pool
	backend, storeName, closeStore, err := openStore(config, logger)
	if err != nil {
		return exitRuntime, err
	}
	defer closeStore()

	sup := workers.NewSupervisor(logger, config.RestartInterval)
	pool := workers.NewStorePool(logger, config.StoreWorkers, config.StoreQueueSize)
	monitor := observability.NewMonitoringManager(logger, config.StatsInterval)
	sup.Add(pool.Workers()...).Add(monitor)
	store := workers.NewPooledStore(pool, backend)

	// 4. Generation
	gateway, err := buildGateway(ctx, config, logger)
	if err != nil {
		return exitConfig, err
	}
	defer gateway.Close()

	// 5. Room engine
	contextAssembler := assembler.New(logger, store, store, gateway, config.MemoryTopK)
	engine := runtime.NewEngine(logger, runtime.NewRegistry(), store, gateway, contextAssembler,
		runtime.EngineConfig{HistoryReplay: config.HistoryReplay, HistoryLimit: config.HistoryLimit}, nil).
		WithMonitor(monitor)

	errChan := make(chan error, 2)
	supervisorDone := make(chan struct{})
	go func() {
		defer close(supervisorDone)
		logger.Info("Starting store workers...", "workers", config.StoreWorkers)
		sup.Run(ctx)
	}()

	// 6. HTTP & WebSocket
	ws := transport.NewWebsocketServer(ctx, logger, engine, transport.WebsocketConfig{
		InboundBufferSize:  config.InboundBufferSize,
		OutboundBufferSize: config.OutboundBufferSize,
		WriteTimeout:       config.WriteTimeout,
		PingInterval:       config.PingInterval,
		MaxMessageSize:     config.MaxMessageSize,
		AllowedOrigins:     config.Origins(),
	})
	mux := http.NewServeMux()
	status := transport.Status{Store: storeName, Completion: gateway.CanComplete(), Embedding: gateway.CanEmbed()}
	transport.NewAPI(logger, engine, store, store, status).WithMonitor(monitor).Routes(mux, ws)

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{Addr: address, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 7. Ops gRPC health
	var ops *transport.OpsServer
	if config.OpsPort > 0 {
		opsAddress := fmt.Sprintf("%s:%d", config.Host, config.OpsPort)
		listener, err := net.Listen("tcp", opsAddress)
		if err != nil {
			return exitRuntime, fmt.Errorf("failed to listen on %s: %w", opsAddress, err)
		}
		ops = transport.NewOpsServer(logger, grpc.ChainUnaryInterceptor(grpc3.UnaryLoggingInterceptor(logger)))
		go func() {
			if err := ops.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				errChan <- err
			}
		}()
	}

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 9. Graceful shutdown: stop accepting, then drain the store workers
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown incomplete", "error", err)
	}
	if ops != nil {
		ops.Stop()
	}
	pool.Close()
	sup.Stop()
	<-supervisorDone
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

// openStore opens the persistence backend, or the unavailable store when disabled.
func openStore(config Config, logger *slog.Logger) (workers.PooledStoreBackend, string, func(), error) {
	if !config.StoreEnabled {
		logger.Warn("Store disabled, messages and facts will not be persisted")
		return repositories.Unavailable{}, "unavailable", func() {}, nil
	}

	resources, err := repositories.Open(repositories.Paths{
		Badger:   config.BadgerFilepath,
		Bluge:    config.BlugeFilepath,
		Memories: config.MemoryFilepath,
	}, logger)
	if err != nil {
		return nil, "", nil, err
	}

	if config.DebugPort > 0 {
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		database.StartDebugServer(resources.DB, config.DebugPort, endpoint, repositories.InspectMapper)
	}

	return resources.Store, "badger", resources.Close, nil
}
