package repository

import "context"

// SessionRepository persists conversational and analytics state in the
// external key-value store. All list operations are atomic appends;
// callers never read-modify-write whole lists.
type SessionRepository interface {
	// AppendTurn appends the normalized request text to the session's
	// history list and refreshes the session TTL.
	AppendTurn(ctx context.Context, sessionID, text string) error

	// AppendResponse appends the final response text to the session's
	// response list.
	AppendResponse(ctx context.Context, sessionID, response string) error

	// History returns the session's request history, oldest first.
	History(ctx context.Context, sessionID string) ([]string, error)

	// SetLastQuery upserts the user's most recent query.
	SetLastQuery(ctx context.Context, userID, query string) error

	// IncrQueryCounters increments the per-user and global query counters.
	IncrQueryCounters(ctx context.Context, userID string) error

	// AppendFeedback appends one feedback entry for the session.
	AppendFeedback(ctx context.Context, sessionID, feedback string) error

	// Feedback returns the session's feedback entries, oldest first.
	Feedback(ctx context.Context, sessionID string) ([]string, error)
}
