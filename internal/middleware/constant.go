package middleware

import "golang.org/x/time/rate"

const (
	// RequestIDHeader carries the per-request correlation ID.
	RequestIDHeader = "X-Request-ID"

	// RateLimitPerSecond and RateLimitBurst bound the chat endpoint.
	// Each turn fans out to several upstreams, so the gate sits well
	// below what the providers tolerate.
	RateLimitPerSecond rate.Limit = 20
	RateLimitBurst                = 40

	// RateLimitClientCacheSize caps how many per-client buckets are
	// kept before the least recently seen ones are evicted.
	RateLimitClientCacheSize = 1024
)
