package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"docxgen/internal/httputil"
)

// Recovery turns a handler panic into a 500 {"error": ...} response so one
// failed generation never takes the process down.
//
// http.ErrAbortHandler is re-raised: net/http uses it to drop a connection
// silently and already suppresses its stack trace.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				logger.Error("handler panicked",
					"request_id", httputil.GetRequestID(r),
					"method", r.Method,
					"path", r.URL.Path,
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
