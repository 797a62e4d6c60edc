package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	serviceRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/service"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/catalog/models"
)

// Service каталог услуг салона
type Service struct {
	repo   ServiceRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo ServiceRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает услуги; по умолчанию только активные
func (s *Service) List(ctx context.Context, activeOnly bool) ([]models.ServiceResponse, error) {
	services, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: fetched %d services, activeOnly=%t", len(services), activeOnly)
	return models.FromDomainServiceList(services), nil
}

// Create добавляет новую активную услугу
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	if err := validateCreate(req); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service id=%s name=%q", created.ID, created.Name)
	return models.FromDomainService(created), nil
}

// Update применяет только переданные поля
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	if err := validateUpdate(req); err != nil {
		s.logger.Warn("UpdateService: validation failed for id=%s: %v", id, err)
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, req.ToDomain())
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateService: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: updated service id=%s", id)
	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу; прошлые бронирования хранят копию названия
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("DeleteService: service id=%s not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("DeleteService: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteService: deleted service id=%s", id)
	return nil
}
