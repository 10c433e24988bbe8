package health

import (
	"net/http"

	"boatsandjoy/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (h *Handler) Router(r chi.Router) {
	r.Get("/health", h.Health)
}

// Health reports process liveness.
// @Summary Health check
// @Description Liveness probe.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[string] "OK"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.WithMessage(w, http.StatusOK, "ok")
}
