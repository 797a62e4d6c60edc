package get_available_slots

import "errors"

var (
	// ErrInvalidDate дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("usecase: internal error")
)
