package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyInput    = errors.New("user input is empty")
	ErrEmptySession  = errors.New("session id is empty")
	ErrEmptyFeedback = errors.New("feedback text is empty")
)
