package model

import "time"

// PivotLanguage is the internal processing language. All inputs are
// translated to it before moderation and classification, and responses
// are translated back to the detected language.
const PivotLanguage = "en"

// ConversationTurn is one inbound request, immutable after creation.
type ConversationTurn struct {
	SessionID        string
	UserID           string
	RawText          string
	DetectedLanguage string
	NormalizedText   string
	Timestamp        time.Time
}
