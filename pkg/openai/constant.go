package openai

import "time"

const (
	// DefaultModel is the default completion model
	DefaultModel = "gpt-4o"

	// DefaultBaseURL is the default API endpoint. The Azure-hosted
	// inference gateway is OpenAI-compatible and can be swapped in
	// through config (base_url).
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)
