package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// validateRequest валидирует входные данные запроса.
// Некорректный service_id не является ошибкой ввода: такой услуги просто нет.
func validateRequest(req *Request) (*bookingInput, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return nil, fmt.Errorf("%w: customer_name is required", ErrInvalidInput)
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	rawServiceID := strings.TrimSpace(req.ServiceID)
	if rawServiceID == "" {
		return nil, fmt.Errorf("%w: service_id is required", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(req.Date))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(strings.TrimSpace(req.Time))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid time format, use HH:MM", ErrInvalidInput)
	}

	serviceID, err := uuid.Parse(rawServiceID)
	if err != nil {
		return nil, fmt.Errorf("%w: id=%q", ErrServiceNotFound, rawServiceID)
	}

	return &bookingInput{
		customerName: name,
		phone:        phone,
		serviceID:    serviceID,
		date:         date,
		startTime:    startTime,
	}, nil
}

// isSlotTaken проверяет, есть ли активное бронирование на это время
func isSlotTaken(startTime types.TimeString, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if b.IsActive() && b.StartTime == startTime {
			return true
		}
	}
	return false
}
