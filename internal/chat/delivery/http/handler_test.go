package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"asha-assistant/internal/chat"
	chatHTTP "asha-assistant/internal/chat/delivery/http"
	"asha-assistant/internal/middleware"
	"asha-assistant/internal/model"
	"asha-assistant/pkg/log"
	"asha-assistant/pkg/response"
)

// mockUseCase is a scriptable chat.UseCase.
type mockUseCase struct {
	converseOut chat.ConverseOutput
	converseErr error
	feedbackErr error
	entries     []string

	lastScope model.Scope
	lastInput chat.ConverseInput
}

func (m *mockUseCase) Converse(ctx context.Context, sc model.Scope, input chat.ConverseInput) (chat.ConverseOutput, error) {
	m.lastScope = sc
	m.lastInput = input
	return m.converseOut, m.converseErr
}

func (m *mockUseCase) SubmitFeedback(ctx context.Context, sc model.Scope, input chat.FeedbackInput) error {
	m.lastScope = sc
	return m.feedbackErr
}

func (m *mockUseCase) Feedback(ctx context.Context, sc model.Scope) ([]string, error) {
	m.lastScope = sc
	return m.entries, nil
}

func newTestRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.Init(log.ZapConfig{Level: "error", Mode: "production"})
	h := chatHTTP.New(l, uc)

	r := gin.New()
	chatHTTP.RegisterRoutes(r.Group("/api/v1"), h, middleware.New(l))
	return r
}

func TestConverseHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{converseOut: chat.ConverseOutput{
			Response: "hello!", ResponseTime: 0.123, Language: "en",
		}}
		r := newTestRouter(uc)

		body := []byte(`{"user_input":"hi","session_id":"s-1","user_id":"u-1"}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.lastScope.SessionID != "s-1" || uc.lastScope.UserID != "u-1" {
			t.Errorf("unexpected scope: %+v", uc.lastScope)
		}
		if uc.lastInput.UserInput != "hi" {
			t.Errorf("unexpected input: %+v", uc.lastInput)
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		data, ok := resp.Data.(map[string]interface{})
		if !ok || data["response"] != "hello!" || data["language"] != "en" {
			t.Errorf("unexpected payload: %v", resp.Data)
		}
	})

	t.Run("Missing Fields", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewReader([]byte(`{"user_input":"hi"}`)))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Validation Error Surfaces As 400", func(t *testing.T) {
		uc := &mockUseCase{converseErr: chat.ErrEmptyInput}
		r := newTestRouter(uc)

		body := []byte(`{"user_input":"   ","session_id":"s-1","user_id":"u-1"}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestFeedbackHandlers(t *testing.T) {
	t.Run("Submit", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)

		body := []byte(`{"session_id":"s-1","feedback":"great"}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/feedback", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		data, _ := resp.Data.(map[string]interface{})
		if data["message"] != "Feedback submitted. Thank you!" {
			t.Errorf("unexpected ack: %v", resp.Data)
		}
	})

	t.Run("List", func(t *testing.T) {
		uc := &mockUseCase{entries: []string{"first", "second"}}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/feedback/s-1", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.lastScope.SessionID != "s-1" {
			t.Errorf("unexpected scope: %+v", uc.lastScope)
		}
		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		data, _ := resp.Data.(map[string]interface{})
		entries, _ := data["feedback"].([]interface{})
		if len(entries) != 2 {
			t.Errorf("expected 2 feedback entries, got %v", data)
		}
	})
}
