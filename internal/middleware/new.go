package middleware

import (
	"finpal-guardian/config"
	"finpal-guardian/pkg/log"
)

// Middleware holds the shared gin middlewares of the HTTP server.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the middleware set. Rate limiting is off when cfg.Enabled is false
// or the per-minute budget is not positive.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if cfg.Enabled && cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
