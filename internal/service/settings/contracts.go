package settings

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, whatsappNumber string) (*domain.Settings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
