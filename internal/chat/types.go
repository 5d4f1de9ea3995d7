package chat

// ConverseInput is the input for one conversational turn.
// Session and user IDs travel in model.Scope, not here.
type ConverseInput struct {
	UserInput string // Free-text utterance in any language
}

// ConverseOutput is the result of one conversational turn.
type ConverseOutput struct {
	Response     string  // Final answer, localized to the detected language
	ResponseTime float64 // Seconds, rounded to milliseconds
	Language     string  // Language tag detected on the inbound text
}

// FeedbackInput is the input for feedback submission.
type FeedbackInput struct {
	Feedback string
}
