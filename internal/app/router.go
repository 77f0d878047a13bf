package app

import (
	"github.com/avc-dev/linkcut/internal/handler"
	"github.com/avc-dev/linkcut/internal/middleware"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.GzipMiddleware(logger))

	// Routes
	r.Get("/ping", h.Ping)
	r.Get("/r/{code}", h.Redirect)

	r.Route("/api", func(r chi.Router) {
		r.Post("/shorten", h.Shorten)
		r.Get("/links", h.List)
		r.Delete("/links/{code}", h.Delete)
	})

	return r
}
