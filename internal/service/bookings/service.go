package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings/models"
)

// Service административные операции с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// List возвращает все бронирования, включая отмененные, сначала новые по дате
func (s *Service) List(ctx context.Context) ([]models.BookingResponse, error) {
	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		IncludeInactive: true,
		Limit:           domain.ListLimit,
	})
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBookings: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus меняет статус бронирования.
// ErrBookingNotFound, если бронирования нет или статус уже такой.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: booking id=%s, status=%s", id, req.Status)

	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for booking id=%s", req.Status, id)
		return ErrInvalidStatus
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("UpdateStatus: booking id=%s not found or unchanged", id)
			return ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrSlotTaken):
			s.logger.Warn("UpdateStatus: slot of booking id=%s is held by another booking", id)
			return ErrSlotTaken
		default:
			s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", id, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateStatus: booking id=%s is now %s", id, status)
	return nil
}
