package seed

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

type AdminRepository interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, a *domain.Admin) error
}

type HoursRepository interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, h *domain.BusinessHours) error
}

type ServiceRepository interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
}

type SettingsRepository interface {
	CreateIfMissing(ctx context.Context, whatsappNumber string) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
