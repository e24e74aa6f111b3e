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

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/dungeon/v1alpha1"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-dungeon/internal/population"
	"github.com/KirkDiggler/rpg-dungeon/internal/redis"
	dungeonsession "github.com/KirkDiggler/rpg-dungeon/internal/repositories/dungeon_session"
)

var (
	grpcPort    int
	redisAddr   string
	sessionTTL  time.Duration
	catalogPath string
	logLevel    string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the dungeon gRPC server. Without --redis-addr sessions are kept in memory.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address for sessions (empty keeps sessions in memory)")
	serverCmd.Flags().DurationVar(&sessionTTL, "session-ttl", dungeon.DefaultSessionTTL, "How long generated dungeons are kept")
	serverCmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to an SRD monster JSON file (empty uses the bundled catalog)")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
}

func runServer(cmd *cobra.Command, args []string) error {
	if err := setupLogging(logLevel); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	catalog, err := loadCatalog(catalogPath)
	if err != nil {
		return err
	}

	sessionRepo, err := newSessionRepository(ctx, redisAddr)
	if err != nil {
		return err
	}

	dungeonService, err := dungeon.NewOrchestrator(&dungeon.Config{
		SessionRepo: sessionRepo,
		Catalog:     catalog,
		IDGenerator: idgen.NewUUID("dgn"),
		Seeder:      rng.NewSeeder(),
		EventBus:    newEventBus(),
		SessionTTL:  sessionTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create dungeon orchestrator: %w", err)
	}

	dungeonHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		DungeonService: dungeonService,
	})
	if err != nil {
		return fmt.Errorf("failed to create dungeon handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterDungeonServiceServer(srv, dungeonHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting",
			"port", grpcPort,
			"monsters", catalog.Len(),
			"redis", redisAddr != "",
			"session_ttl", sessionTTL,
		)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func setupLogging(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}

func loadCatalog(path string) (*population.Catalog, error) {
	if path == "" {
		return population.Bundled()
	}
	return population.LoadCatalogFile(path)
}

func newSessionRepository(ctx context.Context, addr string) (dungeonsession.Repository, error) {
	if addr == "" {
		slog.Warn("No redis address configured, dungeon sessions are kept in memory")
		return dungeonsession.NewInMemory(clock.New()), nil
	}

	client, err := redis.NewClient(addr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to reach redis at %s: %w", addr, err)
	}

	return dungeonsession.NewRedis(&dungeonsession.RedisConfig{
		Client: client,
		Clock:  clock.New(),
	})
}

// newEventBus returns a bus with debug logging subscribers for the
// dungeon events.
func newEventBus() events.EventBus {
	bus := events.NewBus()
	for _, eventType := range []string{
		dungeon.EventDungeonGenerated,
		dungeon.EventDungeonPopulated,
		dungeon.EventEncounterPlaced,
	} {
		bus.SubscribeFunc(eventType, 0, logEvent)
	}
	return bus
}

func logEvent(ctx context.Context, event events.Event) error {
	attrs := []any{"event", event.Type()}
	if source := event.Source(); source != nil {
		attrs = append(attrs, "dungeon_id", source.GetID())
	}
	if target := event.Target(); target != nil {
		attrs = append(attrs, "target", target.GetID())
	}
	slog.DebugContext(ctx, "Dungeon event", attrs...)
	return nil
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
