package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-BeautyBooking/internal/usecase/get_available_slots"
)

const (
	dateParam      = "date"
	msgMissingDate = "date query parameter is required"
	msgInvalidDate = "Invalid date format, use YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/bookings/available-slots?date=2025-10-15
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get(dateParam)
	if date == "" {
		h.logger.Warn("GET /bookings/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: date})
	if err != nil {
		if errors.Is(err, getAvailableSlots.ErrInvalidDate) {
			h.logger.Warn("GET /bookings/available-slots - Invalid date=%q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /bookings/available-slots - Failed to get slots: date=%s, error=%v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/available-slots - Returned %d slots for date=%s", len(result.Slots), date)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
