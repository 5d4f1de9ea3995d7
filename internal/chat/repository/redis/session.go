package redis

import (
	"context"
	"fmt"
)

func (r *implRepository) AppendTurn(ctx context.Context, sessionID, text string) error {
	if err := r.client.RPush(ctx, sessionID, text).Err(); err != nil {
		return fmt.Errorf("redis: failed to append turn: %w", err)
	}
	if err := r.client.Expire(ctx, sessionID, SessionTTL).Err(); err != nil {
		return fmt.Errorf("redis: failed to refresh session ttl: %w", err)
	}
	return nil
}

func (r *implRepository) AppendResponse(ctx context.Context, sessionID, response string) error {
	key := responseKeyPrefix + sessionID
	if err := r.client.RPush(ctx, key, response).Err(); err != nil {
		return fmt.Errorf("redis: failed to append response: %w", err)
	}
	if err := r.client.Expire(ctx, key, SessionTTL).Err(); err != nil {
		return fmt.Errorf("redis: failed to refresh response ttl: %w", err)
	}
	return nil
}

func (r *implRepository) History(ctx context.Context, sessionID string) ([]string, error) {
	history, err := r.client.LRange(ctx, sessionID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: failed to read history: %w", err)
	}
	return history, nil
}

func (r *implRepository) SetLastQuery(ctx context.Context, userID, query string) error {
	if err := r.client.HSet(ctx, userKeyPrefix+userID, "last_query", query).Err(); err != nil {
		return fmt.Errorf("redis: failed to set last query: %w", err)
	}
	return nil
}

func (r *implRepository) IncrQueryCounters(ctx context.Context, userID string) error {
	if err := r.client.HIncrBy(ctx, userCountKey, userID, 1).Err(); err != nil {
		return fmt.Errorf("redis: failed to increment user counter: %w", err)
	}
	if err := r.client.HIncrBy(ctx, totalQueriesKey, "count", 1).Err(); err != nil {
		return fmt.Errorf("redis: failed to increment total counter: %w", err)
	}
	return nil
}

func (r *implRepository) AppendFeedback(ctx context.Context, sessionID, feedback string) error {
	if err := r.client.RPush(ctx, feedbackKeyPrefix+sessionID, feedback).Err(); err != nil {
		return fmt.Errorf("redis: failed to append feedback: %w", err)
	}
	return nil
}

func (r *implRepository) Feedback(ctx context.Context, sessionID string) ([]string, error) {
	entries, err := r.client.LRange(ctx, feedbackKeyPrefix+sessionID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: failed to read feedback: %w", err)
	}
	return entries, nil
}
