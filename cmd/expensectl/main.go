package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"expense-tracker/internal/cli"
	"expense-tracker/internal/repository"
	"expense-tracker/internal/service"
	"expense-tracker/pkg/config"
	"expense-tracker/pkg/logger"
	"expense-tracker/pkg/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type migrator struct {
	cfg    *config.DatabaseConfig
	logger *zap.Logger
}

func (m migrator) Up() error   { return postgres.RunMigrations(m.cfg, m.logger) }
func (m migrator) Down() error { return postgres.RollbackMigration(m.cfg, m.logger) }

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Console output keeps stdout free for report JSON.
	if err := logger.Init(cfg.Logger.Level, "console"); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	var pool *pgxpool.Pool
	defer func() {
		if pool != nil {
			pool.Close()
		}
	}()

	reports := func(ctx context.Context) (cli.ReportGenerator, error) {
		if pool == nil {
			p, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
			if err != nil {
				return nil, err
			}
			pool = p
		}
		return service.NewReportService(
			repository.NewExpenseRepository(pool, appLogger),
			repository.NewUserRepository(pool, appLogger),
			time.Now,
			appLogger,
		), nil
	}

	app := cli.NewCLI(cli.Options{
		Reports:  reports,
		Migrator: migrator{cfg: &cfg.Database, logger: appLogger},
	})
	if err := app.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
