package models

import (
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// ToDomain конвертирует запрос в новую активную услугу
func (r *CreateServiceRequest) ToDomain() *domain.Service {
	return &domain.Service{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Active:      true,
	}
}

// UpdateServiceRequest частичное обновление; отсутствующее и null поле не меняется
type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// ToDomain конвертирует запрос в domain модель обновления
func (r *UpdateServiceRequest) ToDomain() domain.ServiceUpdate {
	return domain.ServiceUpdate{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Active:      r.Active,
	}
}

// ServiceResponse услуга в ответе API
type ServiceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"image_url"`
	Active      bool    `json:"active"`
	CreatedAt   string  `json:"created_at"` // ISO 8601
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:          s.ID.String(),
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		ImageURL:    s.ImageURL,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) []ServiceResponse {
	resp := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		if dto := FromDomainService(s); dto != nil {
			resp = append(resp, *dto)
		}
	}
	return resp
}
