package aggregator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"asha-assistant/internal/intent"
	"asha-assistant/internal/model"
	"asha-assistant/pkg/herkey"
	"asha-assistant/pkg/log"
)

// Runner executes triggered provider fetches concurrently, each under
// its own timeout. Result order follows trigger order.
type Runner struct {
	l       log.Logger
	client  herkey.IHerKey
	timeout time.Duration
}

func NewRunner(l log.Logger, client herkey.IHerKey) *Runner {
	return &Runner{
		l:       l,
		client:  client,
		timeout: DefaultFetchTimeout,
	}
}

// Run fans out one fetch per trigger and joins them all before
// returning. Individual failures land in Result.Err, never as a
// returned error.
func (r *Runner) Run(ctx context.Context, triggers []intent.Trigger) []Result {
	results := make([]Result, len(triggers))

	var wg sync.WaitGroup
	for i, trigger := range triggers {
		wg.Add(1)
		go func(i int, trigger intent.Trigger) {
			defer wg.Done()

			fetchCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()

			results[i] = r.fetch(fetchCtx, trigger)
			if results[i].Err != nil {
				r.l.Warnf(ctx, "aggregator.Runner.Run: %s fetch failed: %v", trigger.Kind, results[i].Err)
			}
		}(i, trigger)
	}
	wg.Wait()

	return results
}

func (r *Runner) fetch(ctx context.Context, trigger intent.Trigger) Result {
	result := Result{Kind: trigger.Kind, Query: trigger.Query}

	switch trigger.Kind {
	case model.ProviderJobs:
		var jobs []herkey.Job
		var err error
		if trigger.Query != "" {
			jobs, err = r.client.SearchJobs(ctx, trigger.Query)
		} else {
			jobs, err = r.client.BoostedJobs(ctx)
		}
		if err != nil {
			result.Err = err
			return result
		}
		result.Items = jobItems(jobs)

	case model.ProviderMentorship:
		sessions, err := r.client.SearchSessions(ctx, "")
		if err != nil {
			result.Err = err
			return result
		}
		result.Items = sessionItems(sessions)

	case model.ProviderEvents:
		sessions, err := r.client.UpcomingEvents(ctx)
		if err != nil {
			result.Err = err
			return result
		}
		result.Items = sessionItems(sessions)

	case model.ProviderKeywordSession:
		sessions, err := r.client.SearchSessions(ctx, trigger.Query)
		if err != nil {
			result.Err = err
			return result
		}
		result.Items = sessionItems(sessions)

	default:
		result.Err = fmt.Errorf("aggregator: unknown provider kind %q", trigger.Kind)
	}

	return result
}
