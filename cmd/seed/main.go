package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"expense-tracker/internal/models"
	"expense-tracker/internal/repository"
	"expense-tracker/pkg/auth"
	"expense-tracker/pkg/config"
	"expense-tracker/pkg/logger"
	"expense-tracker/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Format); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	if err := postgres.RunMigrations(&cfg.Database, appLogger); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	if err := seedAdmin(ctx, userRepo, cfg.Seed, appLogger); err != nil {
		appLogger.Fatal("Failed to seed admin user", zap.Error(err))
	}
	if err := seedCategories(ctx, categoryRepo, cfg.Seed.Categories, appLogger); err != nil {
		appLogger.Fatal("Failed to seed categories", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!")
}

// seedAdmin creates the bootstrap administrator unless a user with that
// name already exists.
func seedAdmin(ctx context.Context, repo *repository.UserRepository, cfg config.SeedConfig, logger *zap.Logger) error {
	existing, err := repo.GetByName(ctx, cfg.AdminName)
	if err == nil {
		logger.Info("Admin user already exists, skipping",
			zap.String("name", existing.Name),
			zap.String("role", string(existing.Role)),
		)
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	now := time.Now().UTC()
	admin := &models.User{
		Name:      cfg.AdminName,
		Password:  hash,
		Role:      auth.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("Created admin user", zap.Int64("id", admin.ID), zap.String("name", admin.Name))
	return nil
}

// seedCategories adds the default categories that are not present yet.
func seedCategories(ctx context.Context, repo *repository.CategoryRepository, names []string, logger *zap.Logger) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}

	present := make(map[string]bool, len(existing))
	for _, c := range existing {
		present[c.Name] = true
	}

	created := 0
	for _, name := range names {
		if present[name] {
			continue
		}
		category := &models.Category{Name: name, CreatedAt: time.Now().UTC()}
		if err := repo.Create(ctx, category); err != nil {
			return fmt.Errorf("failed to create category %q: %w", name, err)
		}
		present[name] = true
		created++
	}

	logger.Info("Categories seeded", zap.Int("created", created), zap.Int("total", len(present)))
	return nil
}
