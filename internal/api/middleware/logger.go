package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pepshop/pepshop-api/internal/api/shared"
	"github.com/pepshop/pepshop-api/internal/platform/logger"
)

// RequestLogger emits one structured log line per request: method, path,
// status, elapsed milliseconds, timestamp. Every request is logged; there
// is no sampling. It also installs the request-scoped logger (with trace
// ID) into the context for the layers below.
func RequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			reqLog := log.With(slog.String("trace_id", shared.GetTraceID(r.Context())))
			ctx := logger.WithContext(r.Context(), reqLog)

			defer func() {
				reqLog.Info("request completed",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("status", ww.Status()),
					slog.Int64("duration_ms", time.Since(start).Milliseconds()),
					slog.Time("timestamp", time.Now().UTC()))
			}()

			next.ServeHTTP(ww, r.WithContext(ctx))
		})
	}
}
