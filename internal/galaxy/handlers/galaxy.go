package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"galaxy-server/internal/galaxy"
	"galaxy-server/internal/shared/errors"
	"galaxy-server/internal/shared/response"
)

type GalaxyHandler struct {
	service *galaxy.Service
	logger  *slog.Logger
}

func NewGalaxyHandler(service *galaxy.Service) *GalaxyHandler {
	return &GalaxyHandler{
		service: service,
		logger:  slog.With("handler", "galaxy"),
	}
}

// Generate handles POST /api/galaxy/generate. An empty body generates with
// the server defaults; fields in the body override individual parameters.
func (h *GalaxyHandler) Generate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("operation", "generate")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	var req galaxy.GenerateRequest
	body, err := io.ReadAll(r.Body)
	if err != nil {
		response.Error(w, r, logger, errors.WrapValidation("failed to read request body", err))
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
			return
		}
	}

	snapshot, err := h.service.Generate(r.Context(), req)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	logger.Info("Galaxy generated via API",
		"snapshot_id", snapshot.ID,
		"seed", snapshot.Seed,
		"systems", snapshot.SystemCount)
	response.Success(w, http.StatusCreated, snapshot)
}

// Current handles GET /api/galaxy.
func (h *GalaxyHandler) Current(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("operation", "current")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	snapshot, err := h.service.Current(r.Context())
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, snapshot)
}

// Health handles GET /api/galaxy/health.
func (h *GalaxyHandler) Health(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("operation", "health")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	report, err := h.service.Health(r.Context())
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, report)
}
