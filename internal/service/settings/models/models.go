package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// UpdateSettingsRequest запрос на обновление настроек
type UpdateSettingsRequest struct {
	WhatsAppNumber string `json:"whatsapp_number"`
}

// SettingsResponse настройки в ответе API.
// Для значения по умолчанию id и updated_at не заполняются.
type SettingsResponse struct {
	ID             string `json:"id,omitempty"`
	WhatsAppNumber string `json:"whatsapp_number"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.Settings) *SettingsResponse {
	if s == nil {
		return nil
	}

	resp := &SettingsResponse{WhatsAppNumber: s.WhatsAppNumber}
	if s.ID != uuid.Nil {
		resp.ID = s.ID.String()
	}
	if !s.UpdatedAt.IsZero() {
		resp.UpdatedAt = s.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
