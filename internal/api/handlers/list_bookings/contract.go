package list_bookings

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings/models"
)

type BookingService interface {
	List(ctx context.Context) ([]models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
