package router

import (
	"net/http"

	"github.com/jbeshir/reading-queue/internal/domain"
)

// requireAuthMiddleware rejects requests that no validator authenticated, and
// tags the request logger with who the request acts for.
func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)

		userID := domain.UserIDFromContext(ctx)
		if userID == "" {
			logger.WarnContext(ctx, "attempt to use endpoint requiring auth without user ID",
				"path", r.URL.Path)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		logger = logger.With("user_id", userID, "auth_method", string(domain.AuthMethodFromContext(ctx)))
		next.ServeHTTP(w, r.WithContext(domain.ContextWithLogger(ctx, logger)))
	})
}
