package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// start запускает HTTP сервер и ждет сигнала остановки
func (a *App) start() error {
	server := &http.Server{
		Addr:    a.config.ServerAddress.String(),
		Handler: newRouter(a.handler, a.logger),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	a.logger.Info("Starting server", zap.String("address", a.config.ServerAddress.String()))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		a.logger.Error("Server failed", zap.Error(err))
		return err
	case <-stop:
		a.logger.Info("Shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(ctx)
	}
}
