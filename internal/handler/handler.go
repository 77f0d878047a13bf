package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/linkcut/internal/model"
	"github.com/avc-dev/linkcut/internal/usecase"
	"go.uber.org/zap"
)

// LinkUsecase определяет операции, доступные HTTP-слою
type LinkUsecase interface {
	Shorten(ctx context.Context, rawURL, customSlug string) (*model.ShortenResponse, error)
	Resolve(ctx context.Context, code string) (*model.Link, error)
	List(ctx context.Context) ([]model.LinkSummary, error)
	Delete(ctx context.Context, code string) error
	Ping(ctx context.Context) error
}

type Handler struct {
	usecase LinkUsecase
	logger  *zap.Logger
}

func New(usecase LinkUsecase, logger *zap.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// errorResponse представляет тело ответа с ошибкой
type errorResponse struct {
	Detail string `json:"detail"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, detail string) {
	h.writeJSON(w, status, errorResponse{Detail: detail})
}

// handleError транслирует доменные ошибки в HTTP-статусы
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmptyURL):
		h.writeError(w, http.StatusBadRequest, "URL is required")
	case errors.Is(err, usecase.ErrUnreachable):
		h.writeError(w, http.StatusBadRequest, "URL is not reachable")
	case errors.Is(err, usecase.ErrCodeTaken):
		h.writeError(w, http.StatusBadRequest, "Custom slug already exists")
	case errors.Is(err, usecase.ErrLinkNotFound):
		h.writeError(w, http.StatusNotFound, "Link not found")
	default:
		h.logger.Error("internal error", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
