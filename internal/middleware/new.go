package middleware

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"asha-assistant/pkg/log"
)

// Middleware bundles the cross-cutting HTTP middlewares.
type Middleware struct {
	l        log.Logger
	limiters *lru.Cache[string, *rate.Limiter]
}

func New(l log.Logger) Middleware {
	// Size is a positive constant, lru.New cannot fail.
	limiters, _ := lru.New[string, *rate.Limiter](RateLimitClientCacheSize)
	return Middleware{
		l:        l,
		limiters: limiters,
	}
}
