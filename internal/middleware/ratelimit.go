// internal/middleware/ratelimit.go
package middleware

import (
	"net/http"

	"github.com/go-chi/httprate"

	"github.com/nakarin/storefront-backend/internal/config"
)

// RateLimitMessage is the plain-text body an over-limit client receives.
const RateLimitMessage = "Too many requests, try again later!"

// RateLimiter caps requests per client IP inside a fixed window. The router
// attaches the same limiter instance to every gated route, so one counter
// per IP covers them all.
func RateLimiter(cfg config.RateLimitConfig) func(http.Handler) http.Handler {
	return httprate.Limit(
		cfg.Max,
		cfg.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, RateLimitMessage, http.StatusTooManyRequests)
		}),
	)
}
