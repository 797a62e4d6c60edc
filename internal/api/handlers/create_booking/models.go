package create_booking

import (
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-BeautyBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	ServiceID    string `json:"service_id"`
	Date         string `json:"date"` // "2025-10-15"
	Time         string `json:"time"` // "10:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             string `json:"id"`
	CustomerName   string `json:"customer_name"`
	Phone          string `json:"phone"`
	ServiceID      string `json:"service_id"`
	ServiceName    string `json:"service_name"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
	WhatsAppNumber string `json:"whatsapp_number"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		ServiceID:    r.ServiceID,
		Date:         r.Date,
		Time:         r.Time,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID.String(),
		CustomerName:   resp.CustomerName,
		Phone:          resp.Phone,
		ServiceID:      resp.ServiceID.String(),
		ServiceName:    resp.ServiceName,
		Date:           resp.BookingDate.Format(domain.DateFormat),
		Time:           resp.StartTime.String(),
		Status:         resp.Status,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		WhatsAppNumber: resp.WhatsAppNumber,
	}
}
