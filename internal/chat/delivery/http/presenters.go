package http

import (
	"asha-assistant/internal/chat"
	"asha-assistant/internal/model"
)

// --- Request DTOs ---

type converseReq struct {
	UserInput string `json:"user_input" binding:"required"`
	SessionID string `json:"session_id" binding:"required"`
	UserID    string `json:"user_id"    binding:"required"`
}

func (r converseReq) toScope() model.Scope {
	return model.Scope{
		SessionID: r.SessionID,
		UserID:    r.UserID,
	}
}

func (r converseReq) toInput() chat.ConverseInput {
	return chat.ConverseInput{
		UserInput: r.UserInput,
	}
}

type feedbackReq struct {
	SessionID string `json:"session_id" binding:"required"`
	Feedback  string `json:"feedback"   binding:"required"`
}

func (r feedbackReq) toScope() model.Scope {
	return model.Scope{SessionID: r.SessionID}
}

func (r feedbackReq) toInput() chat.FeedbackInput {
	return chat.FeedbackInput{Feedback: r.Feedback}
}

// --- Response DTOs ---

type converseResp struct {
	Response     string  `json:"response"`
	ResponseTime float64 `json:"response_time"`
	Language     string  `json:"language"`
}

func (h *handler) newConverseResp(out chat.ConverseOutput) converseResp {
	return converseResp{
		Response:     out.Response,
		ResponseTime: out.ResponseTime,
		Language:     out.Language,
	}
}

type feedbackResp struct {
	Message string `json:"message"`
}

type feedbackListResp struct {
	SessionID string   `json:"session_id"`
	Feedback  []string `json:"feedback"`
}
