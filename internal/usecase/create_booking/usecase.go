package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/booking"
	serviceRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/service"
	settingsRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/settings"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	settingsRepo SettingsRepository
	txManager    TransactionManager
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка занятости и вставка идут в одной транзакции, гонку закрывает
// уникальный индекс активного слота.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%s, date=%s, time=%s", req.ServiceID, req.Date, req.Time)

	// 1. Валидация входных данных
	input, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		if errors.Is(err, ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	// 2. Услуга должна существовать и быть активной
	service, err := uc.serviceRepo.GetByID(ctx, input.serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", input.serviceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", input.serviceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.Active {
		uc.logger.Warn("CreateBooking: service id=%s is inactive", input.serviceID)
		return nil, ErrServiceNotFound
	}

	var result *domain.Booking

	// 3. Проверка слота и вставка в транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 3.1. Активные бронирования на дату с блокировкой
		bookings, err := uc.bookingRepo.List(txCtx, domain.BookingsFilter{
			Date:            &input.date,
			IncludeInactive: false,
			Limit:           domain.ListLimit,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.2. Проверяем занятость
		if isSlotTaken(input.startTime, bookings) {
			return ErrSlotTaken
		}

		// 3.3. Создаем бронирование с денормализованным названием услуги
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			CustomerName: input.customerName,
			Phone:        input.phone,
			ServiceID:    service.ID,
			ServiceName:  service.Name,
			BookingDate:  input.date,
			StartTime:    input.startTime,
			Status:       domain.StatusPending,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Слот занят, в том числе конкурентной транзакцией
		if errors.Is(err, ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot %s %s already booked",
				input.date.Format(domain.DateFormat), input.startTime)
			uc.metrics.IncBookingConflicts()
			return nil, ErrSlotTaken
		}
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.metrics.IncBookingsCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return &Response{
		ID:             result.ID,
		CustomerName:   result.CustomerName,
		Phone:          result.Phone,
		ServiceID:      result.ServiceID,
		ServiceName:    result.ServiceName,
		BookingDate:    result.BookingDate,
		StartTime:      result.StartTime,
		Status:         string(result.Status),
		CreatedAt:      result.CreatedAt,
		WhatsAppNumber: uc.whatsAppNumber(ctx),
	}, nil
}

// whatsAppNumber номер для связи; бронирование уже создано, поэтому ошибки не пробрасываем
func (uc *UseCase) whatsAppNumber(ctx context.Context) string {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("CreateBooking: failed to get settings, using default number: %v", err)
		}
		return domain.DefaultWhatsAppNumber
	}
	return settings.WhatsAppNumber
}
