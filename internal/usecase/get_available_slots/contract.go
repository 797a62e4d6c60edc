package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// HoursRepository интерфейс репозитория рабочих часов
type HoursRepository interface {
	GetByDay(ctx context.Context, day int) (*domain.BusinessHours, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// BookedTimes возвращает время начала активных бронирований на дату
	BookedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
