package moderation

// Gate detects biased or discriminatory language against a fixed
// phrase catalog.
type Gate struct {
	phrases []string
}

// New creates a moderation gate. An empty phrase list falls back to the
// built-in catalog.
func New(phrases []string) *Gate {
	if len(phrases) == 0 {
		phrases = defaultPhrases
	}
	return &Gate{phrases: phrases}
}
