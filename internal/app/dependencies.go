package app

import (
	"context"
	"fmt"

	"github.com/avc-dev/linkcut/internal/config"
	"github.com/avc-dev/linkcut/internal/config/db"
	"github.com/avc-dev/linkcut/internal/enrich"
	"github.com/avc-dev/linkcut/internal/handler"
	"github.com/avc-dev/linkcut/internal/migrations"
	"github.com/avc-dev/linkcut/internal/repository"
	"github.com/avc-dev/linkcut/internal/service"
	"github.com/avc-dev/linkcut/internal/store"
	"github.com/avc-dev/linkcut/internal/usecase"
	"go.uber.org/zap"
)

type dependencies struct {
	handler  *handler.Handler
	database db.Database
}

// initDependencies инициализирует все зависимости приложения
func initDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*dependencies, error) {
	storage, database, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	repo := repository.New(storage)
	allocator := service.NewLinkService(repo, cfg)
	enricher := enrich.NewHTTPEnricher(cfg.Enrich.Timeout)
	linkUsecase := usecase.NewLinkUsecase(repo, allocator, enricher, cfg, logger)
	h := handler.New(linkUsecase, logger)

	return &dependencies{
		handler:  h,
		database: database,
	}, nil
}

// initStorage создает хранилище на основе конфигурации
func initStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Store, db.Database, error) {
	if cfg.DatabaseDSN != "" {
		database, err := db.NewConfig(cfg.DatabaseDSN).Connect(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		migrator := migrations.NewMigrator(database.DB(), logger)
		if err := migrator.RunUp(); err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		logger.Info("Using database storage")
		return store.NewDatabaseStore(database), database, nil
	}

	if cfg.FileStoragePath != "" {
		fileStore, err := store.NewFileStore(cfg.FileStoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create file store: %w", err)
		}
		logger.Info("Using file storage", zap.String("path", cfg.FileStoragePath))
		return fileStore, nil, nil
	}

	logger.Info("Using in-memory storage")
	return store.NewStore(), nil, nil
}
