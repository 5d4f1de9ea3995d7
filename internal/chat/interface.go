package chat

import (
	"context"

	"asha-assistant/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Converse runs one full turn: normalize, moderate, classify intent,
	// aggregate provider listings, compose grounding context, invoke the
	// completion provider, and localize the answer back.
	Converse(ctx context.Context, sc model.Scope, input ConverseInput) (ConverseOutput, error)

	// SubmitFeedback appends one feedback entry to the session's feedback
	// history. Append-only: repeated submissions all persist.
	SubmitFeedback(ctx context.Context, sc model.Scope, input FeedbackInput) error

	// Feedback lists the feedback entries recorded for the session.
	Feedback(ctx context.Context, sc model.Scope) ([]string, error)
}
