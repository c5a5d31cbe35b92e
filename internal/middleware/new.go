package middleware

import (
	"syncnotes/internal/metrics"
	"syncnotes/pkg/log"
)

// Config holds the options the HTTP middlewares are built from.
type Config struct {
	APIKey          string // empty disables APIKey
	RateLimitPerMin int    // 0 disables RateLimit
	Metrics         *metrics.Metrics
}

type Middleware struct {
	l       log.Logger
	apiKey  string
	limiter *rateLimiter
	metrics *metrics.Metrics
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:       l,
		apiKey:  cfg.APIKey,
		metrics: cfg.Metrics,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
