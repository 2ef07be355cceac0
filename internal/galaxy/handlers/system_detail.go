package handlers

import (
	"log/slog"
	"net/http"

	"galaxy-server/internal/bodies"
	"galaxy-server/internal/galaxy"
	"galaxy-server/internal/shared/errors"
	"galaxy-server/internal/shared/response"
)

type SystemDetailHandler struct {
	service *galaxy.Service
	catalog *bodies.Catalog
	logger  *slog.Logger
}

func NewSystemDetailHandler(service *galaxy.Service, catalog *bodies.Catalog) *SystemDetailHandler {
	return &SystemDetailHandler{
		service: service,
		catalog: catalog,
		logger:  slog.With("handler", "system_detail"),
	}
}

// ServeHTTP handles GET /api/systems/{id}/detail. The system must exist in
// the current galaxy; its celestial contents come from the catalog.
func (h *SystemDetailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("operation", "get_detail")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	systemID := r.PathValue("id")
	if systemID == "" {
		response.Error(w, r, logger, errors.Validation("system id is required"))
		return
	}
	logger = logger.With("system_id", systemID)

	system, err := h.service.FindSystem(r.Context(), systemID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	if system == nil {
		response.Error(w, r, logger, errors.NotFoundf("system %q not found", systemID))
		return
	}

	detail := h.catalog.Get(system.ID, system.Name)
	logger.Debug("System detail served",
		"predefined", h.catalog.HasDetail(system.ID),
		"planets", len(detail.Planets))

	response.Success(w, http.StatusOK, detail)
}
