package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
)

// corsMaxAge время кэширования preflight, сек
const corsMaxAge = 600

// CORS allowlist по Origin; "*" разрешает любой источник
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	origins := make([]string, 0, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		handlers.AllowCredentials(),
		handlers.MaxAge(corsMaxAge),
		handlers.OptionStatusCode(http.StatusNoContent),
	)
}
