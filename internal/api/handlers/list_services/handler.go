package list_services

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
)

const (
	activeOnlyParam      = "active_only"
	msgInvalidActiveOnly = "active_only must be a boolean"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/services?active_only=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activeOnly := true
	if raw := r.URL.Query().Get(activeOnlyParam); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /services - Invalid active_only=%q", raw)
			handlers.RespondBadRequest(w, msgInvalidActiveOnly)
			return
		}
		activeOnly = parsed
	}

	services, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Returned %d services, active_only=%t", len(services), activeOnly)
	handlers.RespondJSON(w, http.StatusOK, services)
}
