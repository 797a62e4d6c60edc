package models

import (
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// UpdateHoursRequest частичное обновление расписания дня
type UpdateHoursRequest struct {
	IsOpen          *bool   `json:"is_open,omitempty"`
	OpenTime        *string `json:"open_time,omitempty"`
	CloseTime       *string `json:"close_time,omitempty"`
	IntervalMinutes *int    `json:"interval_minutes,omitempty"`
}

// BusinessHoursResponse расписание дня в ответе API
type BusinessHoursResponse struct {
	ID              string `json:"id"`
	DayOfWeek       int    `json:"day_of_week"`
	OpenTime        string `json:"open_time"`
	CloseTime       string `json:"close_time"`
	IsOpen          bool   `json:"is_open"`
	IntervalMinutes int    `json:"interval_minutes"`
}

// FromDomainHours конвертирует domain модель в DTO
func FromDomainHours(h *domain.BusinessHours) *BusinessHoursResponse {
	if h == nil {
		return nil
	}

	return &BusinessHoursResponse{
		ID:              h.ID.String(),
		DayOfWeek:       h.DayOfWeek,
		OpenTime:        h.OpenTime.String(),
		CloseTime:       h.CloseTime.String(),
		IsOpen:          h.IsOpen,
		IntervalMinutes: h.IntervalMinutes,
	}
}

// FromDomainHoursList конвертирует список domain моделей в DTO
func FromDomainHoursList(list []*domain.BusinessHours) []BusinessHoursResponse {
	resp := make([]BusinessHoursResponse, 0, len(list))
	for _, h := range list {
		if dto := FromDomainHours(h); dto != nil {
			resp = append(resp, *dto)
		}
	}
	return resp
}
