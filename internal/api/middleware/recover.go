package middleware

import (
	"log/slog"
	"net/http"

	"leetdeck/internal/common"
)

// Recover converts a panic raised before the response is written into
// the API's JSON server-error shape. Panics inside background tasks are
// out of reach here; the worker dispatcher handles those.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("handler panicked", "method", r.Method, "path", r.URL.Path, "panic", rec)
				common.RespondWithErrorDetails(w, http.StatusInternalServerError,
					"Internal server error", "The server failed before accepting the submission")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
