package middleware

import "context"

// Authenticator проверяет токен администратора и возвращает его имя
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
