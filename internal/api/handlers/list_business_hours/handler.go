package list_business_hours

import (
	"net/http"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
)

type Handler struct {
	service HoursService
	logger  Logger
}

func NewHandler(service HoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hours, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /business-hours - Failed to list business hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, hours)
}
