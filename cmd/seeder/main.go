// Command seeder populates the assessment catalog from a CSV file and
// optionally creates assessor accounts. It is intended to be run offline,
// not as part of the main server.
//
// Flags:
//
//	--catalog   path to the catalog CSV file (dimension, theme, topic, ...)
//	--assessor  create an assessor account, format name:password (repeatable)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akarpov/resilience-backend/internal/adapter/postgres"
	assessorrepo "github.com/akarpov/resilience-backend/internal/adapter/postgres/assessor"
	catalogrepo "github.com/akarpov/resilience-backend/internal/adapter/postgres/catalog"
	"github.com/akarpov/resilience-backend/internal/app"
	"github.com/akarpov/resilience-backend/internal/auth"
	"github.com/akarpov/resilience-backend/internal/config"
	authsvc "github.com/akarpov/resilience-backend/internal/service/auth"
	catalogsvc "github.com/akarpov/resilience-backend/internal/service/catalog"
)

type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	catalogFlag := flag.String("catalog", "", "path to the catalog CSV file")
	var assessorFlags stringList
	flag.Var(&assessorFlags, "assessor", "create an assessor account, format name:password (repeatable)")
	flag.Parse()

	if *catalogFlag == "" && len(assessorFlags) == 0 {
		log.Fatal("nothing to do: pass --catalog and/or --assessor")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			logger.Error("run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if *catalogFlag != "" {
		if err := seedCatalog(ctx, logger, pool, *catalogFlag); err != nil {
			logger.Error("seed catalog", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if len(assessorFlags) > 0 {
		jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
		svc := authsvc.NewService(logger, assessorrepo.New(pool), jwtManager)

		for _, spec := range assessorFlags {
			if err := createAssessor(ctx, logger, svc, spec); err != nil {
				logger.Error("create assessor", slog.String("error", err.Error()))
				os.Exit(1)
			}
		}
	}

	logger.Info("seeding completed")
}

func seedCatalog(ctx context.Context, logger *slog.Logger, pool *pgxpool.Pool, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	records, err := catalogsvc.ParseCSV(f)
	if err != nil {
		return err
	}

	svc := catalogsvc.NewService(logger, catalogrepo.New(pool), postgres.NewTxManager(pool))
	result, err := svc.Seed(ctx, records)
	if err != nil {
		return err
	}

	logger.Info("catalog seeded",
		slog.Int("dimensions", result.Dimensions),
		slog.Int("themes", result.Themes),
		slog.Int("topics", result.Topics),
	)
	return nil
}

func createAssessor(ctx context.Context, logger *slog.Logger, svc *authsvc.Service, spec string) error {
	name, password, ok := strings.Cut(spec, ":")
	if !ok {
		return fmt.Errorf("invalid --assessor value %q: want name:password", spec)
	}

	assessor, err := svc.Register(ctx, name, password)
	if err != nil {
		return fmt.Errorf("register %q: %w", name, err)
	}

	logger.Info("assessor created",
		slog.String("id", assessor.ID.String()),
		slog.String("name", assessor.Name),
	)
	return nil
}
