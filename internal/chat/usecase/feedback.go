package usecase

import (
	"context"
	"fmt"
	"strings"

	"asha-assistant/internal/chat"
	"asha-assistant/internal/model"
)

// SubmitFeedback appends one feedback entry. Append-only, so repeated
// identical submissions each persist.
func (uc *implUseCase) SubmitFeedback(ctx context.Context, sc model.Scope, input chat.FeedbackInput) error {
	if sc.SessionID == "" {
		return chat.ErrEmptySession
	}
	if strings.TrimSpace(input.Feedback) == "" {
		return chat.ErrEmptyFeedback
	}

	if err := uc.repo.AppendFeedback(ctx, sc.SessionID, input.Feedback); err != nil {
		return fmt.Errorf("failed to append feedback: %w", err)
	}
	return nil
}

// Feedback lists the session's recorded feedback entries.
func (uc *implUseCase) Feedback(ctx context.Context, sc model.Scope) ([]string, error) {
	if sc.SessionID == "" {
		return nil, chat.ErrEmptySession
	}

	entries, err := uc.repo.Feedback(ctx, sc.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to read feedback: %w", err)
	}
	return entries, nil
}
