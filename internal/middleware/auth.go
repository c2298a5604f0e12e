// internal/middleware/auth.go
package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/nakarin/storefront-backend/internal/controller"
	"github.com/nakarin/storefront-backend/internal/service"
)

// VerifyToken gates a route behind a valid bearer token. On a missing,
// unknown or expired token it answers 401 and the downstream handler is
// never invoked.
func VerifyToken(auth *service.AuthService, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := controller.BearerToken(r)
			username, err := auth.Verify(token)
			if err != nil {
				logger.Info("rejected unauthenticated request",
					zap.String("path", r.URL.Path),
					zap.String("remote", r.RemoteAddr),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": "missing or invalid token"})
				return
			}

			r.Header.Set("X-Auth-Username", username)
			next.ServeHTTP(w, r)
		})
	}
}
