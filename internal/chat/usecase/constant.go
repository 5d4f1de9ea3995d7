package usecase

import "time"

const (
	// PipelineTimeout bounds one whole turn: aggregation, completion and
	// reverse translation together. Individual provider fetches carry
	// their own shorter timeouts underneath it.
	PipelineTimeout = 30 * time.Second

	// RecordTimeout bounds the fire-and-forget session/analytics writes.
	RecordTimeout = 5 * time.Second

	// HistoryContextCap limits how many prior session messages are
	// replayed into the completion prompt.
	HistoryContextCap = 10
)

const (
	CompletionTemperature = 0.7
	CompletionMaxTokens   = 2048
	CompletionTopP        = 1
)

const (
	systemInstruction = "You're AshaAI, an assistant that returns real job listings from HerKey and helps women explore careers. If job data is provided, format it clearly and do not ignore it. Respond using the listings only when available. Keep responses helpful and actionable for women seeking tech roles."

	groundingPreambleFormat = "Here are the job listings or data you must use to answer the next question:\n%s"

	historyPreambleFormat = "Earlier messages from this conversation, oldest first:\n%s"

	moderationResponseFormat = "This input contains potentially biased or discriminatory language:\n\n%s\n\nPlease rephrase it to keep the conversation respectful and inclusive."

	fallbackMessage = "I'm having trouble processing your request right now. Please try again later."

	noListingsFormat = "Sorry, no listings were found for '%s'. You can check manually at https://www.herkey.com/jobs."

	noListingsDefault = "Sorry, no listings were found. You can check manually at https://www.herkey.com/jobs."
)
