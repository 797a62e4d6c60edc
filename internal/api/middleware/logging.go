package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger логирует каждый запрос; медленные запросы пишутся как warn
func RequestLogger(logger Logger, slowThreshold time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqID := r.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, reqID)

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			if slowThreshold > 0 && elapsed >= slowThreshold {
				logger.Warn("%s %s - %d in %dms (slow), request_id=%s",
					r.Method, r.URL.Path, rec.status, elapsed.Milliseconds(), reqID)
				return
			}
			logger.Info("%s %s - %d in %dms, request_id=%s",
				r.Method, r.URL.Path, rec.status, elapsed.Milliseconds(), reqID)
		})
	}
}
