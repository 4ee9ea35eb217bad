package middleware

import (
	"calendar-grid/pkg/log"
)

// Config holds the middleware settings.
type Config struct {
	// CreatePerMin is the per-client budget of write requests per minute.
	CreatePerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.CreatePerMin),
	}
}
