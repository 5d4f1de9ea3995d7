package herkey

import "context"

// IHerKey defines the interface for the HerKey listings API client.
// Implementations are safe for concurrent use.
type IHerKey interface {
	// SearchJobs searches candidate jobs by keyword. The keyword is expected
	// to be URL-safe already (%20-joined).
	SearchJobs(ctx context.Context, keyword string) ([]Job, error)

	// BoostedJobs fetches the default boosted/featured job listings.
	BoostedJobs(ctx context.Context) ([]Job, error)

	// SearchSessions searches mentorship sessions, optionally by title keyword.
	SearchSessions(ctx context.Context, title string) ([]Session, error)

	// UpcomingEvents fetches upcoming featured event sessions.
	UpcomingEvents(ctx context.Context) ([]Session, error)
}

// New creates a new HerKey client with the given configuration
func New(cfg Config) (IHerKey, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newHerKeyImpl(cfg), nil
}
