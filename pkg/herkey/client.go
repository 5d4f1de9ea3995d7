package herkey

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newHerKeyImpl creates a new HerKey implementation
func newHerKeyImpl(cfg Config) *herkeyImpl {
	return &herkeyImpl{
		baseURL:       cfg.BaseURL,
		jobsToken:     cfg.JobsToken,
		sessionsToken: cfg.SessionsToken,
		eventsToken:   cfg.EventsToken,
		httpClient:    cfg.HTTPClient,
	}
}

// SearchJobs searches candidate jobs by keyword.
func (h *herkeyImpl) SearchJobs(ctx context.Context, keyword string) ([]Job, error) {
	url := fmt.Sprintf("%s/api/v1/herkey/jobs/es_candidate_jobs?page_no=1&page_size=%d&keyword=%s&is_global_query=false",
		h.baseURL, DefaultJobPageSize, keyword)
	return h.fetchJobs(ctx, url)
}

// BoostedJobs fetches the default boosted/featured listings.
func (h *herkeyImpl) BoostedJobs(ctx context.Context) ([]Job, error) {
	url := fmt.Sprintf("%s/api/v1/herkey/jobs/es_candidate_jobs?type=boosted&more=featured_jobs&page_no=1&page_size=%d",
		h.baseURL, DefaultJobPageSize)
	return h.fetchJobs(ctx, url)
}

func (h *herkeyImpl) fetchJobs(ctx context.Context, url string) ([]Job, error) {
	raw, err := h.get(ctx, url, h.jobsToken)
	if err != nil {
		return nil, err
	}

	var jobs []Job
	if err := json.Unmarshal(raw, &jobs); err != nil {
		return nil, fmt.Errorf("herkey: failed to decode jobs body: %w", err)
	}
	return jobs, nil
}

// SearchSessions searches mentorship sessions, optionally by title keyword.
func (h *herkeyImpl) SearchSessions(ctx context.Context, title string) ([]Session, error) {
	url := fmt.Sprintf("%s/api/v1/herkey/herkeysearch/sessions/?page_number=1&is_global_query=true", h.baseURL)
	if title != "" {
		url += "&title=" + title
	}
	return h.fetchSessions(ctx, url, h.sessionsToken)
}

// UpcomingEvents fetches upcoming featured event sessions.
func (h *herkeyImpl) UpcomingEvents(ctx context.Context) ([]Session, error) {
	url := fmt.Sprintf("%s/api/v1/herkey/sessions/event-session?page=1&page_size=%d&expiry=false&session_type=upcoming_featured",
		h.baseURL, DefaultEventPageSize)
	return h.fetchSessions(ctx, url, h.eventsToken)
}

func (h *herkeyImpl) fetchSessions(ctx context.Context, url, token string) ([]Session, error) {
	raw, err := h.get(ctx, url, token)
	if err != nil {
		return nil, err
	}

	var sessions []Session
	if err := json.Unmarshal(raw, &sessions); err != nil {
		return nil, fmt.Errorf("herkey: failed to decode sessions body: %w", err)
	}
	return sessions, nil
}

// get performs an authenticated GET and unwraps the `body` envelope.
func (h *herkeyImpl) get(ctx context.Context, url, token string) (json.RawMessage, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("herkey: failed to create request: %w", err)
	}

	// The API uses a non-standard "Token <jwt>" scheme.
	httpReq.Header.Set("Authorization", "Token "+token)
	httpReq.Header.Set("Accept", "application/json, text/plain, */*")
	httpReq.Header.Set("Origin", "https://www.herkey.com")
	httpReq.Header.Set("Referer", "https://www.herkey.com/")

	resp, err := h.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("herkey: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("herkey: API error %d: %s", resp.StatusCode, string(raw))
	}

	var envelope bodyEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("herkey: failed to decode response: %w", err)
	}
	if len(envelope.Body) == 0 {
		return json.RawMessage("[]"), nil
	}
	return envelope.Body, nil
}
