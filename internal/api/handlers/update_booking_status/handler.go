package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings/models"
)

const (
	statusParam      = "status"
	msgNotFound      = "Booking not found"
	msgMissingStatus = "status is required"
	msgInvalidStatus = "Invalid status"
	msgSlotTaken     = "This time slot is already booked"
	msgStatusUpdated = "Status updated"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/bookings/{id}/status?status=confirmed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /bookings/{id}/status - Invalid booking ID: %v", err)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	// Статус из query, иначе из тела {"status": ...}
	req := models.UpdateStatusRequest{Status: r.URL.Query().Get(statusParam)}
	if req.Status == "" {
		if err := handlers.DecodeJSON(r, &req); err != nil || req.Status == "" {
			h.logger.Warn("PUT /bookings/{id}/status - Missing status: id=%s", id)
			handlers.RespondBadRequest(w, msgMissingStatus)
			return
		}
	}

	if err := h.service.UpdateStatus(r.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PUT /bookings/{id}/status - Invalid status=%q: id=%s", req.Status, id)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id}/status - Booking not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrSlotTaken):
			h.logger.Warn("PUT /bookings/{id}/status - Slot taken by another booking: id=%s", id)
			handlers.RespondBadRequest(w, msgSlotTaken)

		default:
			h.logger.Error("PUT /bookings/{id}/status - Failed to update status: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	admin, _ := middleware.AdminFromContext(r.Context())
	h.logger.Info("PUT /bookings/{id}/status - Status updated: id=%s, status=%s, admin=%s", id, req.Status, admin)
	handlers.RespondMessage(w, msgStatusUpdated)
}
