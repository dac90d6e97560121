package handler

import (
	"net/http"

	"github.com/waskito/ocpi-versions/internal/domain"
)

// HealthHandler serves the liveness probe endpoint.
type HealthHandler struct {
	now Clock
}

func NewHealthHandler(now Clock) *HealthHandler { return &HealthHandler{now: now} }

// Health handles GET /health
//
// @Summary  Liveness probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  domain.Health
// @Router   /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.Health{Status: "healthy", Timestamp: h.now().UTC()})
}
