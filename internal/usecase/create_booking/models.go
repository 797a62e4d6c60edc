package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// Request входные данные для создания бронирования
type Request struct {
	CustomerName string
	Phone        string
	ServiceID    string
	Date         string // YYYY-MM-DD
	Time         string // HH:MM
}

// Response результат создания бронирования
type Response struct {
	ID             uuid.UUID
	CustomerName   string
	Phone          string
	ServiceID      uuid.UUID
	ServiceName    string
	BookingDate    time.Time
	StartTime      types.TimeString
	Status         string
	CreatedAt      time.Time
	WhatsAppNumber string
}

// bookingInput провалидированный запрос
type bookingInput struct {
	customerName string
	phone        string
	serviceID    uuid.UUID
	date         time.Time
	startTime    types.TimeString
}
