package handler

import (
	"encoding/json"
	"net/http"

	"github.com/avc-dev/linkcut/internal/model"
	"go.uber.org/zap"
)

// Shorten обрабатывает POST запрос на создание короткой ссылки
func (h *Handler) Shorten(w http.ResponseWriter, req *http.Request) {
	var request model.ShortenRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := h.usecase.Shorten(req.Context(), request.URL, request.CustomSlug)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, response)
}
