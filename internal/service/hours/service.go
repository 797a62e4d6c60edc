package hours

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	hoursRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/businesshours"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/hours/models"
)

// Service расписание работы салона
type Service struct {
	repo   HoursRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(repo HoursRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает расписание по дням недели (понедельник первый)
func (s *Service) List(ctx context.Context) ([]models.BusinessHoursResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("ListBusinessHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHoursList(list), nil
}

// Update применяет переданные поля к расписанию дня
func (s *Service) Update(ctx context.Context, day int, req *models.UpdateHoursRequest) (*models.BusinessHoursResponse, error) {
	s.logger.Info("UpdateBusinessHours: day=%d", day)

	if !domain.IsValidWeekday(day) {
		s.logger.Warn("UpdateBusinessHours: invalid day=%d", day)
		return nil, ErrInvalidWeekday
	}

	upd, err := toDomainUpdate(req)
	if err != nil {
		s.logger.Warn("UpdateBusinessHours: validation failed for day=%d: %v", day, err)
		return nil, err
	}

	updated, err := s.repo.Update(ctx, day, upd)
	if err != nil {
		if errors.Is(err, hoursRepo.ErrHoursNotFound) {
			s.logger.Warn("UpdateBusinessHours: no record for day=%d", day)
			return nil, ErrHoursNotFound
		}
		s.logger.Error("UpdateBusinessHours: repository error for day=%d: %v", day, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateBusinessHours: day=%d is_open=%t %s-%s every %d min",
		day, updated.IsOpen, updated.OpenTime, updated.CloseTime, updated.IntervalMinutes)
	return models.FromDomainHours(updated), nil
}
