package handler

import (
	"net/http"

	"leetdeck/internal/common"

	"github.com/go-chi/chi/v5"
)

type HealthHandler struct {
	message string
}

func NewHealthHandler(message string) *HealthHandler {
	return &HealthHandler{message: message}
}

func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.health)
}

func (h *HealthHandler) health(w http.ResponseWriter, r *http.Request) {
	common.RespondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": h.message,
	})
}
