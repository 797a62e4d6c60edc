package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
)

type contextKey string

const adminKey contextKey = "admin"

const bearerPrefix = "Bearer "

const msgInvalidAuth = "Invalid authentication"

// Auth пропускает только запросы с валидным Bearer токеном администратора
func Auth(authenticator Authenticator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
				logger.Warn("%s %s - missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "")
				return
			}

			token := strings.TrimSpace(header[len(bearerPrefix):])
			username, err := authenticator.Authenticate(r.Context(), token)
			if err != nil {
				logger.Warn("%s %s - rejected token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidAuth)
				return
			}

			ctx := context.WithValue(r.Context(), adminKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminFromContext возвращает имя администратора, прошедшего Auth
func AdminFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(adminKey).(string)
	return username, ok
}
