package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.Service, error)
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, id uuid.UUID, upd domain.ServiceUpdate) (*domain.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
