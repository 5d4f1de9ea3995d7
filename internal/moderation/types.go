package moderation

// Verdict is the result of checking one normalized input text.
// Derived purely from the text; never persisted.
type Verdict struct {
	Flagged   bool
	Matched   []string // catalog phrases that matched, in catalog order
	Annotated string   // input with every matched phrase highlighted
}
