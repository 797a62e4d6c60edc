package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken возвращается для поддельного, просроченного или некорректного токена
	ErrInvalidToken = errors.New("invalid authentication")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth.service: internal error")
)
