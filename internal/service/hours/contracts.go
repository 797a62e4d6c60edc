package hours

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// HoursRepository интерфейс репозитория расписания
type HoursRepository interface {
	List(ctx context.Context) ([]*domain.BusinessHours, error)
	Update(ctx context.Context, day int, upd domain.BusinessHoursUpdate) (*domain.BusinessHours, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
