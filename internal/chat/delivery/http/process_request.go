package http

import (
	"github.com/gin-gonic/gin"
)

// processConverseReq binds and validates the chat request body.
func (h *handler) processConverseReq(c *gin.Context) (converseReq, error) {
	var req converseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processFeedbackReq binds and validates the feedback request body.
func (h *handler) processFeedbackReq(c *gin.Context) (feedbackReq, error) {
	var req feedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
