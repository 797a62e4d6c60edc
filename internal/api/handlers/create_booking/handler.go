package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-BeautyBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgServiceNotFound    = "Service not found"
	msgSlotTaken          = "This time slot is already booked"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid data: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%q", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		// Конфликт слота отдается как 400
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgSlotTaken)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, date=%s, time=%s",
		result.ID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
