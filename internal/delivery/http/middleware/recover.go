package middleware

import (
	"log/slog"
	"net/http"

	"inkbooking/internal/delivery/http/helpers"
)

// Recover turns panics in downstream handlers into a generic 500 response so
// a single bad request can never take the process down.
func Recover(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				requestID, _ := RequestIDFromContext(r.Context())
				logger.ErrorContext(r.Context(), "panic recovered",
					"path", r.URL.Path,
					"method", r.Method,
					"request_id", requestID,
					"panic", rec,
				)
				helpers.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
