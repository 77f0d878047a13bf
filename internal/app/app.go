package app

import (
	"context"

	"github.com/avc-dev/linkcut/internal/config"
	"github.com/avc-dev/linkcut/internal/config/db"
	"github.com/avc-dev/linkcut/internal/handler"
	"go.uber.org/zap"
)

// App представляет приложение сокращения ссылок
type App struct {
	config   *config.Config
	logger   *zap.Logger
	handler  *handler.Handler
	database db.Database // nil, если БД не используется
}

// New создает новый экземпляр приложения
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	deps, err := initDependencies(context.Background(), cfg, logger)
	if err != nil {
		logger.Sync()
		return nil, err
	}

	return &App{
		config:   cfg,
		logger:   logger,
		handler:  deps.handler,
		database: deps.database,
	}, nil
}

// Run запускает приложение
func Run() error {
	app, err := New()
	if err != nil {
		return err
	}
	defer app.logger.Sync()
	defer app.closeDatabase()

	return app.start()
}

// closeDatabase закрывает хранилище при остановке приложения
func (a *App) closeDatabase() {
	if a.database != nil {
		a.database.Close()
	}
}
