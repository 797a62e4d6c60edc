package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	hoursRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/businesshours"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	hoursRepo   HoursRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(hoursRepo HoursRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		hoursRepo:   hoursRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date)

	// 1. Валидация даты
	date, err := parseDate(req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Рабочие часы и занятые времена читаем параллельно
	day := domain.WeekdayIndex(date)

	var (
		hours  *domain.BusinessHours
		booked []types.TimeString
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		h, err := uc.hoursRepo.GetByDay(gctx, day)
		if err != nil && !errors.Is(err, hoursRepo.ErrHoursNotFound) {
			return fmt.Errorf("failed to get business hours day=%d: %w", day, err)
		}
		hours = h
		return nil
	})
	g.Go(func() error {
		b, err := uc.bookingRepo.BookedTimes(gctx, date)
		if err != nil {
			return fmt.Errorf("failed to get bookings: %w", err)
		}
		booked = b
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("GetAvailableSlots: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if hours == nil || !hours.IsOpen {
		uc.logger.Info("GetAvailableSlots: closed on %s", date.Format(domain.DateFormat))
		return &Response{Date: date, Slots: []types.TimeString{}}, nil
	}

	// 3. Генерируем слоты
	slots, err := generateTimeSlots(hours)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 4. Убираем занятые
	available := excludeBooked(slots, booked)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available on %s",
		len(available), len(slots), date.Format(domain.DateFormat))

	return &Response{Date: date, Slots: available}, nil
}
