package hours

import "errors"

var (
	// ErrHoursNotFound возвращается, когда нет записи для дня недели
	ErrHoursNotFound = errors.New("business hours not found")

	// ErrInvalidWeekday возвращается для дня недели вне диапазона 0..6
	ErrInvalidWeekday = errors.New("invalid day of week")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("hours.service: internal error")
)
