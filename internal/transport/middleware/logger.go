package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yomi-backend/pkg/ctxutil"
)

// Logger logs one "http.request" line per request. 5xx responses are logged
// at error level. Auth, when installed inside Logger, reports the
// authenticated user back through a per-request slot.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			slot := &userSlot{}

			next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), userSlotKey{}, slot)))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if slot.id != uuid.Nil {
				attrs = append(attrs, slog.String("user_id", slot.id.String()))
			}

			level := slog.LevelInfo
			if sw.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

type userSlotKey struct{}

type userSlot struct {
	id uuid.UUID
}

func reportUser(ctx context.Context, id uuid.UUID) {
	if slot, ok := ctx.Value(userSlotKey{}).(*userSlot); ok {
		slot.id = id
	}
}

// statusWriter captures the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}
