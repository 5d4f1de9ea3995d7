package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"asha-assistant/internal/chat"
	"asha-assistant/pkg/response"
)

// respondError translates domain errors into HTTP responses. Validation
// failures surface to the caller; anything else hides behind the
// generic 500 envelope.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyInput),
		errors.Is(err, chat.ErrEmptySession),
		errors.Is(err, chat.ErrEmptyFeedback):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
