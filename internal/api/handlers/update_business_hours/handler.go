package update_business_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/hours"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/hours/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidDay         = "Invalid day of week"
	msgNotFound           = "Business hours not found"
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

// Handle PUT /api/business-hours/{day}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(mux.Vars(r)["day"])
	if err != nil {
		h.logger.Warn("PUT /business-hours/{day} - Invalid day: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	var req models.UpdateHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /business-hours/{day} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), day, &req)
	if err != nil {
		switch {
		case errors.Is(err, hours.ErrInvalidWeekday):
			h.logger.Warn("PUT /business-hours/{day} - Day out of range: day=%d", day)
			handlers.RespondBadRequest(w, msgInvalidDay)

		case errors.Is(err, hours.ErrInvalidInput):
			h.logger.Warn("PUT /business-hours/{day} - Invalid data: day=%d, error=%v", day, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, hours.ErrHoursNotFound):
			h.logger.Warn("PUT /business-hours/{day} - Not found: day=%d", day)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /business-hours/{day} - Failed to update: day=%d, error=%v", day, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /business-hours/{day} - Updated: day=%d", day)
	handlers.RespondJSON(w, http.StatusOK, result)
}
