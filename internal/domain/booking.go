package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is a known status
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking represents a customer appointment for one slot
type Booking struct {
	ID           uuid.UUID
	CustomerName string
	Phone        string
	ServiceID    uuid.UUID
	// ServiceName is copied from the service at creation time
	ServiceName string
	BookingDate time.Time
	StartTime   types.TimeString
	Status      BookingStatus
	CreatedAt   time.Time
}

// IsActive returns true if the booking holds its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	Date            *time.Time // Только бронирования на дату (опционально)
	IncludeInactive bool       // Включать ли отмененные бронирования
	Limit           uint64
}
