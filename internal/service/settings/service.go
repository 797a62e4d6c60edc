package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	settingsRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/settings"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/settings/models"
)

// Service контактные настройки салона
type Service struct {
	repo   SettingsRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(repo SettingsRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Get возвращает настройки; если записи нет, отдает значение по умолчанию, не сохраняя его
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSettings(settings), nil
}

// Current возвращает domain настройки с тем же fallback, что и Get
func (s *Service) Current(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return domain.DefaultSettings(), nil
		}
		s.logger.Error("GetSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return settings, nil
}

// Update обновляет единственную запись настроек или создает ее
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	number := strings.TrimSpace(req.WhatsAppNumber)
	if number == "" {
		s.logger.Warn("UpdateSettings: empty whatsapp_number")
		return nil, fmt.Errorf("%w: whatsapp_number is required", ErrInvalidInput)
	}

	updated, err := s.repo.Upsert(ctx, number)
	if err != nil {
		s.logger.Error("UpdateSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSettings: whatsapp_number=%s", updated.WhatsAppNumber)
	return models.FromDomainSettings(updated), nil
}
