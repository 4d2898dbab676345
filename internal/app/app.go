package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/akarpov/resilience-backend/internal/adapter/postgres"
	assessorrepo "github.com/akarpov/resilience-backend/internal/adapter/postgres/assessor"
	catalogrepo "github.com/akarpov/resilience-backend/internal/adapter/postgres/catalog"
	entryrepo "github.com/akarpov/resilience-backend/internal/adapter/postgres/entry"
	sessionrepo "github.com/akarpov/resilience-backend/internal/adapter/postgres/session"
	"github.com/akarpov/resilience-backend/internal/auth"
	"github.com/akarpov/resilience-backend/internal/config"
	"github.com/akarpov/resilience-backend/internal/service/assessment"
	authsvc "github.com/akarpov/resilience-backend/internal/service/auth"
	catalogsvc "github.com/akarpov/resilience-backend/internal/service/catalog"
	"github.com/akarpov/resilience-backend/internal/service/scoring"
	"github.com/akarpov/resilience-backend/internal/transport/middleware"
	"github.com/akarpov/resilience-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, runs migrations, wires repositories, services, and the HTTP
// router, then serves until ctx is cancelled and shuts down gracefully.
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

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	txm := postgres.NewTxManager(pool)

	sessions := sessionrepo.New(pool)
	entries := entryrepo.New(pool)
	catalog := catalogrepo.New(pool)
	assessors := assessorrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	assessmentSvc := assessment.NewService(logger, sessions, entries, catalog, txm)
	catalogSvc := catalogsvc.NewService(logger, catalog, txm)
	scoringSvc := scoring.NewService(logger, sessions, catalog, entries)
	authSvc := authsvc.NewService(logger, assessors, jwtManager)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Log:            logger,
		DB:             pool,
		Version:        Version,
		TokenValidator: jwtManager,
		RateLimiter:    rateLimiter,
		CORS:           cfg.CORS,
		RateLimit:      cfg.Server.RateLimitPerMinute,

		Auth:       authSvc,
		Catalog:    catalogSvc,
		Sessions:   assessmentSvc,
		Entries:    assessmentSvc,
		Scores:     scoringSvc,
		Assessment: assessmentSvc,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
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

	logger.Info("shutdown complete")
	return nil
}
