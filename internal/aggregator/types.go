package aggregator

import "asha-assistant/internal/model"

// Result is the outcome of one provider fetch. A failed fetch carries
// Err and nil Items; errors never abort the turn, they surface as a
// note in the grounding context.
type Result struct {
	Kind  model.ProviderKind
	Query string // %20-encoded role/keyword the fetch was made with
	Items []model.ListingItem
	Err   error
}
