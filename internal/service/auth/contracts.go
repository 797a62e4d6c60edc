package auth

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// AdminRepository интерфейс репозитория администраторов
type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
