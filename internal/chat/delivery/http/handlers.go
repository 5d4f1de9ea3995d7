package http

import (
	"github.com/gin-gonic/gin"

	"asha-assistant/internal/model"
	"asha-assistant/pkg/response"
)

// Converse godoc
// @Summary     Run one conversational turn
// @Description Accepts a free-text utterance, grounds it with live listings and returns the assistant's answer in the caller's language.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body converseReq true "Utterance with session and user keys"
// @Success     200  {object} converseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Converse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConverseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Converse(ctx, req.toScope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Converse: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newConverseResp(output))
}

// SubmitFeedback godoc
// @Summary     Submit session feedback
// @Description Appends one feedback entry to the session's feedback history.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body feedbackReq true "Feedback text with session key"
// @Success     200  {object} feedbackResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/feedback [POST]
func (h *handler) SubmitFeedback(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFeedbackReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.SubmitFeedback(ctx, req.toScope(), req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.SubmitFeedback: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, feedbackResp{Message: "Feedback submitted. Thank you!"})
}

// ListFeedback godoc
// @Summary     List session feedback
// @Description Returns the feedback entries recorded for a session, oldest first.
// @Tags        Chat
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} feedbackListResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/feedback/{session_id} [GET]
func (h *handler) ListFeedback(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := c.Param("session_id")
	sc := model.Scope{SessionID: sessionID}

	entries, err := h.uc.Feedback(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Feedback: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, feedbackListResp{SessionID: sessionID, Feedback: entries})
}
