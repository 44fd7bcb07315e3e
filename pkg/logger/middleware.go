package logger

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// responseWriterWrapper records the status code written by a handler.
type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWriterWrapper) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// Status returns the recorded status code, defaulting to 200.
func (w *responseWriterWrapper) Status() int {
	if w.statusCode == 0 {
		return http.StatusOK
	}
	return w.statusCode
}

// Middleware logs each request with a generated request id and the final
// status code and duration.
func Middleware(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithRequestID(r.Context(), uuid.New().String())
			r = r.WithContext(ctx)

			wrapper := &responseWriterWrapper{ResponseWriter: w}

			start := time.Now()
			next.ServeHTTP(wrapper, r)

			log.Info(ctx, "request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status_code", wrapper.Status(),
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
