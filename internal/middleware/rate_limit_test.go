package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"asha-assistant/internal/middleware"
	"asha-assistant/pkg/log"
)

func TestRateLimitPerClient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := log.Init(log.ZapConfig{Level: "fatal", Mode: "production"})
	mw := middleware.New(l)

	r := gin.New()
	r.GET("/ping", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(addr string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = addr
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < middleware.RateLimitBurst; i++ {
		if code := do("10.0.0.1:5000"); code != http.StatusOK {
			t.Fatalf("request %d unexpectedly limited: %d", i, code)
		}
	}
	if code := do("10.0.0.1:5000"); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst exhaustion, got %d", code)
	}
	if code := do("10.0.0.2:5000"); code != http.StatusOK {
		t.Errorf("another client should not share the exhausted bucket, got %d", code)
	}
}
