package handler

import "net/http"

// List возвращает все ссылки, новые первыми
func (h *Handler) List(w http.ResponseWriter, req *http.Request) {
	summaries, err := h.usecase.List(req.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, summaries)
}
