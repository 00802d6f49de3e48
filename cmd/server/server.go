package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	progressionv1 "github.com/KirkDiggler/rpg-progression/gen/go/progression/v1"
	"github.com/KirkDiggler/rpg-progression/internal/commands"
	"github.com/KirkDiggler/rpg-progression/internal/config"
	v1 "github.com/KirkDiggler/rpg-progression/internal/handlers/progression/v1"
	"github.com/KirkDiggler/rpg-progression/internal/phases"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-progression/internal/redis"
	partyrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/party"
	progressionrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/progression"
	"github.com/KirkDiggler/rpg-progression/internal/world"
)

var (
	grpcPort      int
	redisAddr     string
	phasesFile    string
	flushInterval time.Duration
	worlds        []string
	debugLogging  bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the progression gRPC server. Settings come from PROGRESSION_* environment
variables; flags given on the command line override them.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "redis address")
	serverCmd.Flags().StringVar(&phasesFile, "phases-file", "", "custom phase descriptor file")
	serverCmd.Flags().DurationVar(&flushInterval, "flush-interval", 0, "interval between persistence flushes")
	serverCmd.Flags().StringSliceVar(&worlds, "world", []string{"overworld"}, "worlds to load at startup")
	serverCmd.Flags().BoolVar(&debugLogging, "debug", false, "enable debug logging")
}

// loadConfig reads the environment and applies the flags that were set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = redisAddr
	}
	if flags.Changed("phases-file") {
		cfg.PhasesFile = phasesFile
	}
	if flags.Changed("flush-interval") {
		cfg.FlushInterval = flushInterval
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if debugLogging {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func runServer(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	slog.SetDefault(logger)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	redisClient, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	progressionRepo, err := progressionrepo.NewRedis(&progressionrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create progression repository: %w", err)
	}
	partyRepo, err := partyrepo.NewRedis(&partyrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create party repository: %w", err)
	}

	var phaseSource phases.Source
	if cfg.PhasesFile != "" {
		phaseSource = &phases.FileSource{Path: cfg.PhasesFile}
	}

	bus := events.NewBus()

	manager, err := world.NewManager(&world.ManagerConfig{
		Settings:              cfg,
		ProgressionRepository: progressionRepo,
		PartyRepository:       partyRepo,
		PhaseSource:           phaseSource,
		Clock:                 clock.New(),
		IDGenerator:           idgen.NewUUID(),
		EventBus:              bus,
	})
	if err != nil {
		return fmt.Errorf("failed to create world manager: %w", err)
	}

	for _, w := range worlds {
		if _, err := manager.Load(ctx, w); err != nil {
			_ = manager.Close(context.Background())
			return fmt.Errorf("failed to load world %s: %w", w, err)
		}
	}

	limiter, stopLimiter := commands.NewTokenBucketLimiter(cfg.Commands.RefillPerSecond, cfg.Commands.Burst)
	defer stopLimiter()

	authorizer := commands.AllowAll()
	if admins := cfg.Commands.AdminIDs(); len(admins) > 0 {
		authorizer = commands.NewAdminList(admins)
	} else {
		slog.Warn("no admins configured, every player may run administrative commands")
	}

	commandService, err := commands.New(&commands.Config{
		Worlds:     manager,
		Limiter:    limiter,
		Authorizer: authorizer,
	})
	if err != nil {
		return fmt.Errorf("failed to create command service: %w", err)
	}

	progressionHandler, err := v1.NewHandler(&v1.HandlerConfig{
		Commands: commandService,
		Worlds:   manager,
		EventBus: bus,
	})
	if err != nil {
		return fmt.Errorf("failed to create progression handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(v1.ServerOptions(logger)...)
	progressionv1.RegisterProgressionServiceServer(srv, progressionHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(progressionv1.ProgressionService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	managerDone := make(chan error, 1)
	go func() {
		managerDone <- manager.Run(ctx, cfg.FlushInterval)
	}()

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting",
			"port", cfg.GRPCPort,
			"worlds", worlds,
			"flush_interval", cfg.FlushInterval.String())
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errChan:
		cancel()
	}

	slog.Info("shutting down gRPC server")
	healthServer.Shutdown()

	// unloading flushes every world and ends the open watch streams
	if err := <-managerDone; err != nil {
		slog.Error("final flush failed", "error", err.Error())
		if serveErr == nil {
			serveErr = err
		}
	}
	stopServer(srv)
	return serveErr
}

func stopServer(srv *grpc.Server) {
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("server stopped gracefully")
	}
}
