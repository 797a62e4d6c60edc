package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено или статус не изменился
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid status")

	// ErrSlotTaken возвращается при возврате отмененного бронирования на занятый слот
	ErrSlotTaken = errors.New("this time slot is already booked")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
