package translate

import "context"

// ITranslator defines the interface for the translation capability.
// Implementations are safe for concurrent use. Both operations are
// best-effort external calls; callers are expected to degrade to
// passthrough when they fail.
type ITranslator interface {
	// Detect returns the BCP-47-ish language tag of the text (e.g. "en", "hi").
	Detect(ctx context.Context, text string) (string, error)

	// Translate translates text from source to target language.
	// Source may be "auto" for server-side detection.
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// New creates a new translator client with the given configuration
func New(cfg Config) (ITranslator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newTranslateImpl(cfg)
}
