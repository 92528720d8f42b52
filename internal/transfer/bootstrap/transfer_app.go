package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/Lexv0lk/transfer-engine/internal/pkg/database"
	"github.com/Lexv0lk/transfer-engine/internal/pkg/jwt"
	"github.com/Lexv0lk/transfer-engine/internal/pkg/logging"
	"github.com/Lexv0lk/transfer-engine/internal/transfer/application"
	"github.com/Lexv0lk/transfer-engine/internal/transfer/domain"
	httpwrap "github.com/Lexv0lk/transfer-engine/internal/transfer/infrastructure/http"
	"github.com/Lexv0lk/transfer-engine/internal/transfer/infrastructure/memory"
	"github.com/Lexv0lk/transfer-engine/internal/transfer/infrastructure/notification"
	"github.com/Lexv0lk/transfer-engine/internal/transfer/infrastructure/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	NetworkProtocol = "tcp"

	shutdownTimeout   = 5 * time.Second
	healthServiceName = "transferd"
)

type TransferApp struct {
	cfg    TransferConfig
	logger logging.Logger

	httpServer   *http.Server
	grpcServer   *grpc.Server
	healthServer *health.Server
	dbpool       *pgxpool.Pool

	shutdownOnce sync.Once
}

func NewTransferApp(cfg TransferConfig, logger logging.Logger) *TransferApp {
	return &TransferApp{
		cfg:    cfg,
		logger: logger,
	}
}

// Run serves the HTTP API on httpLis and the gRPC health service on grpcLis
// until ctx is done or one of the servers fails. Both servers are stopped
// before Run returns.
func (a *TransferApp) Run(ctx context.Context, httpLis, grpcLis net.Listener) error {
	logger := a.logger
	cfg := a.cfg

	store := memory.NewAccountStore()
	if cfg.DbSettings.Configured() {
		if err := a.seedAccounts(ctx, store); err != nil {
			closeListeners(httpLis, grpcLis)
			return err
		}
	}

	notifier := a.createNotifier()
	coordinator := application.NewLockCoordinator(cfg.LockPolicy)

	transferCase := application.NewTransferCase(store, coordinator, notifier, logger)
	accountsCase := application.NewAccountsCase(store, cfg.LockPolicy, logger)

	handler := httpwrap.NewAccountsHandler(accountsCase, transferCase, logger)
	router := httpwrap.NewRouter(handler, jwt.NewJWTTokenParser(), httpwrap.RouterSettings{
		AllowedOrigins: cfg.AllowedOrigins,
		JwtSecret:      cfg.JwtSecret,
	}, logger)

	a.httpServer = &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	a.healthServer = health.NewServer()
	a.healthServer.SetServingStatus(healthServiceName, healthpb.HealthCheckResponse_SERVING)

	a.grpcServer = grpc.NewServer()
	healthpb.RegisterHealthServer(a.grpcServer, a.healthServer)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "address", httpLis.Addr().String())
		if err := a.httpServer.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error while serving http: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		logger.Info("starting gRPC health server", "address", grpcLis.Addr().String())
		// Serve reports ErrServerStopped when Shutdown won the race against it.
		if err := a.grpcServer.Serve(grpcLis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("failed to serve gRPC: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.Shutdown()
		return nil
	})

	return g.Wait()
}

func (a *TransferApp) Shutdown() {
	a.shutdownOnce.Do(func() {
		a.logger.Info("shutting down servers")

		if a.healthServer != nil {
			a.healthServer.Shutdown()
		}

		if a.httpServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
				a.logger.Error("http server shutdown failed", "error", err.Error())
			}
		}

		if a.grpcServer != nil {
			a.grpcServer.GracefulStop()
		}

		if a.dbpool != nil {
			a.dbpool.Close()
		}

		a.logger.Info("servers stopped")
	})
}

func closeListeners(listeners ...net.Listener) {
	for _, lis := range listeners {
		_ = lis.Close()
	}
}

func (a *TransferApp) seedAccounts(ctx context.Context, store domain.AccountStore) error {
	dbURL := a.cfg.DbSettings.GetURL()

	err := database.MigrateDatabase(dbURL, postgres.Migrations, postgres.MigrationsDir, database.PgxDriverName, database.PostgresDialect)
	if err != nil {
		return err
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	loader := postgres.NewAccountsLoader(dbpool, a.logger)
	if _, err := loader.LoadInto(ctx, store); err != nil {
		dbpool.Close()
		a.dbpool = nil
		return fmt.Errorf("failed to seed accounts: %w", err)
	}

	return nil
}

func (a *TransferApp) createNotifier() domain.TransferNotifier {
	if a.cfg.WebhookURL == "" {
		return notification.NewLogNotifier(a.logger)
	}

	a.logger.Info("sending transfer notifications to webhook", "url", a.cfg.WebhookURL)
	return notification.NewWebhookNotifier(a.cfg.WebhookURL, nil, a.logger)
}
