package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	ServiceID    string `json:"service_id"`
	ServiceName  string `json:"service_name"`
	Date         string `json:"date"` // "2025-10-15"
	Time         string `json:"time"` // "10:00"
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"` // ISO 8601
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:           b.ID.String(),
		CustomerName: b.CustomerName,
		Phone:        b.Phone,
		ServiceID:    b.ServiceID.String(),
		ServiceName:  b.ServiceName,
		Date:         b.BookingDate.Format(domain.DateFormat),
		Time:         b.StartTime.String(),
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		if dto := FromDomainBooking(b); dto != nil {
			resp = append(resp, *dto)
		}
	}
	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(strings.TrimSpace(status))
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
