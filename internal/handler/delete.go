package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type deleteResponse struct {
	Message string `json:"message"`
}

// Delete обрабатывает удаление короткой ссылки
func (h *Handler) Delete(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	if err := h.usecase.Delete(req.Context(), code); err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, deleteResponse{Message: "Deleted"})
}
