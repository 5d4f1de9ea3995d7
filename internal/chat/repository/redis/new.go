package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"asha-assistant/internal/chat/repository"
	pkgLog "asha-assistant/pkg/log"
)

const (
	// SessionTTL expires inactive session history after 24h. Refreshed
	// on every write; expiry is silent, never an error.
	SessionTTL = 24 * time.Hour

	responseKeyPrefix = "response:"
	userKeyPrefix     = "user:"
	feedbackKeyPrefix = "feedback:"

	userCountKey    = "analytics:user_count"
	totalQueriesKey = "analytics:total_queries"
)

type implRepository struct {
	l      pkgLog.Logger
	client *redis.Client
}

// New creates a Redis-backed SessionRepository and verifies
// connectivity with a ping.
func New(ctx context.Context, l pkgLog.Logger, client *redis.Client) (repository.SessionRepository, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis: failed to ping: %w", err)
	}
	return &implRepository{l: l, client: client}, nil
}
