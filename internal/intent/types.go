package intent

import "asha-assistant/internal/model"

// Trigger is one detected lookup intent. Query carries the role or
// keyword with interior whitespace already encoded as %20, matching
// the upstream query parameter format. It is empty for the boosted
// jobs default and for mentorship/events triggers. SessionKind holds
// the session category a keyword search named, normalized to its
// catalog entry; both kinds query the same sessions endpoint today.
type Trigger struct {
	Kind        model.ProviderKind
	Query       string
	SessionKind string
}
