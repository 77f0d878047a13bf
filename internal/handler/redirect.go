package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Redirect обрабатывает переход по короткой ссылке
// Каждый успешный переход увеличивает счетчик кликов
func (h *Handler) Redirect(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	link, err := h.usecase.Resolve(req.Context(), code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	http.Redirect(w, req, link.OriginalURL.String(), http.StatusFound)
}
