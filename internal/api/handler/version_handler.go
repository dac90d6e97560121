package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apimw "github.com/waskito/ocpi-versions/internal/api/middleware"
	"github.com/waskito/ocpi-versions/internal/domain"
	"github.com/waskito/ocpi-versions/internal/metrics"
	"github.com/waskito/ocpi-versions/internal/service"
)

// VersionHandler serves the OCPI Versions module endpoints.
type VersionHandler struct {
	svc     *service.VersionService
	metrics *metrics.Metrics
	now     Clock
	logger  *zap.Logger
}

func NewVersionHandler(svc *service.VersionService, m *metrics.Metrics, now Clock, logger *zap.Logger) *VersionHandler {
	return &VersionHandler{svc: svc, metrics: m, now: now, logger: logger}
}

// List handles GET /versions
//
// @Summary  Get supported OCPI versions
// @Tags     versions
// @Produce  json
// @Success  200  {object}  domain.Response[[]domain.Version]
// @Router   /versions [get]
func (h *VersionHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.Success(h.svc.List(), h.now()))
}

// Detail handles GET /versions/{version_id}
//
// @Summary  Get version details
// @Tags     versions
// @Produce  json
// @Param    version_id  path      string  true  "OCPI version, e.g. 2.2.1"
// @Success  200         {object}  domain.Response[domain.VersionDetail]
// @Failure  404         {object}  domain.Response[struct{}]
// @Router   /versions/{version_id} [get]
func (h *VersionHandler) Detail(w http.ResponseWriter, r *http.Request) {
	versionID := chi.URLParam(r, "version_id")
	detail, err := h.svc.Detail(versionID)
	if err != nil {
		h.logger.Debug("version detail lookup failed",
			zap.String("version_id", versionID),
			zap.String("correlation_id", apimw.GetCorrelationID(r.Context())),
			zap.Error(err),
		)
		if h.metrics != nil {
			h.metrics.UnknownVersions.Inc()
		}
		mapError(w, err, h.now())
		return
	}
	respondJSON(w, http.StatusOK, domain.Success(*detail, h.now()))
}
