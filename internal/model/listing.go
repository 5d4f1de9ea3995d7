package model

// ProviderKind identifies the external listing source of an item.
type ProviderKind string

const (
	ProviderJobs           ProviderKind = "jobs"
	ProviderMentorship     ProviderKind = "mentorship"
	ProviderEvents         ProviderKind = "events"
	ProviderKeywordSession ProviderKind = "keyword_session"
)

// FieldNotAvailable is the sentinel for listing fields the provider
// did not populate. Formatting never fails on missing data.
const FieldNotAvailable = "N/A"

// ListingItem is a provider record normalized into a stable field set so
// heterogeneously-sourced items render uniformly.
type ListingItem struct {
	Title      string
	Organizer  string // company for jobs, host for sessions/events
	Location   string
	Schedule   string // date & time for sessions/events
	Duration   string
	WorkMode   string
	Skills     string
	Experience string
	Link       string
}
