package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/deliverydesk/backend/internal/adapter/postgres"
	itemrepo "github.com/deliverydesk/backend/internal/adapter/postgres/item"
	tenantrepo "github.com/deliverydesk/backend/internal/adapter/postgres/tenant"
	"github.com/deliverydesk/backend/internal/auth"
	"github.com/deliverydesk/backend/internal/config"
	"github.com/deliverydesk/backend/internal/service/item"
	"github.com/deliverydesk/backend/internal/service/session"
	"github.com/deliverydesk/backend/internal/service/settings"
	"github.com/deliverydesk/backend/internal/transport/middleware"
	"github.com/deliverydesk/backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, connects to the database, wires services and the HTTP server,
// and blocks until the context is cancelled or SIGINT/SIGTERM arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	tx := postgres.NewTxManager(pool)
	tenants := tenantrepo.New(pool)
	items := itemrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	sessionSvc := session.NewService(logger, jwtManager, tenants, tx)
	itemSvc := item.NewService(logger, items, tenants, tx)
	settingsSvc := settings.NewService(logger, items, tenants, tx)

	mux := rest.NewRouter(rest.RouterDeps{
		Logger:   logger,
		Items:    itemSvc,
		Settings: settingsSvc,
		DB:       pool,
		Version:  BuildVersion(),
	})

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		rateLimiter := middleware.NewRateLimiter(time.Minute)
		defer rateLimiter.Stop()
		mws = append(mws, rateLimiter.Limit(cfg.Server.RateLimitPerMinute))
	}
	mws = append(mws, middleware.Auth(sessionSvc))

	handler := middleware.Chain(mws...)(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
