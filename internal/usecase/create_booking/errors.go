package create_booking

import "errors"

var (
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input")

	// ErrServiceNotFound услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("service not found")

	// ErrSlotTaken на это время уже есть активное бронирование
	ErrSlotTaken = errors.New("this time slot is already booked")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("usecase: internal error")
)
