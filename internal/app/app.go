package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/yomi-backend/internal/adapter/postgres"
	cardrepo "github.com/heartmarshall/yomi-backend/internal/adapter/postgres/card"
	reviewlogrepo "github.com/heartmarshall/yomi-backend/internal/adapter/postgres/reviewlog"
	"github.com/heartmarshall/yomi-backend/internal/auth"
	"github.com/heartmarshall/yomi-backend/internal/config"
	"github.com/heartmarshall/yomi-backend/internal/service/study"
	"github.com/heartmarshall/yomi-backend/internal/transport/middleware"
	"github.com/heartmarshall/yomi-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, wires the study service and serves HTTP
// until ctx is cancelled.
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

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	studySvc, err := study.NewService(
		logger,
		cardrepo.New(pool),
		reviewlogrepo.New(pool),
		postgres.NewTxManager(pool),
		cfg.SRS.Domain(),
	)
	if err != nil {
		return fmt.Errorf("create study service: %w", err)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	router := rest.NewRouter(
		rest.NewHealthHandler(pool, Version),
		rest.NewStudyHandler(studySvc, logger),
	)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      newHandler(cfg, logger, jwtManager, router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// newHandler wraps the router in the middleware chain. RequestID is
// outermost so every log line and error response carries the id.
func newHandler(cfg *config.Config, logger *slog.Logger, jwtManager *auth.JWTManager, router http.Handler) http.Handler {
	chain := middleware.Chain(
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.Auth(jwtManager),
	)
	return chain(router)
}

// serve runs srv until ctx is done, then shuts it down within the
// configured timeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
