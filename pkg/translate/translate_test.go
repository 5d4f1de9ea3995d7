package translate_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"asha-assistant/pkg/translate"
)

func TestTranslateClient(t *testing.T) {
	var calls int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)

		q := r.URL.Query().Get("q")
		if q == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		// Two segments exercise the segment join
		w.Write([]byte(`[[["Hello ","Hola ",null],["world","mundo",null]],null,"es"]`))
	}))
	defer ts.Close()

	client, err := translate.New(translate.Config{BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	t.Run("Translate Joins Segments", func(t *testing.T) {
		out, err := client.Translate(context.Background(), "Hola mundo", "auto", "en")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "Hello world" {
			t.Errorf("expected %q, got %q", "Hello world", out)
		}
	})

	t.Run("Detect Returns Language Tag", func(t *testing.T) {
		lang, err := client.Detect(context.Background(), "Hola mundo")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lang != "es" {
			t.Errorf("expected es, got %q", lang)
		}
	})

	t.Run("Identical Source And Target Is Passthrough", func(t *testing.T) {
		before := atomic.LoadInt64(&calls)
		out, err := client.Translate(context.Background(), "already english", "en", "en")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "already english" {
			t.Errorf("expected passthrough, got %q", out)
		}
		if atomic.LoadInt64(&calls) != before {
			t.Errorf("expected no upstream call for passthrough")
		}
	})

	t.Run("Cache Avoids Repeat Calls", func(t *testing.T) {
		before := atomic.LoadInt64(&calls)
		if _, err := client.Translate(context.Background(), "Hola mundo", "auto", "en"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if atomic.LoadInt64(&calls) != before {
			t.Errorf("expected cached result, upstream was called again")
		}
	})

	t.Run("Upstream Error Propagates", func(t *testing.T) {
		if _, err := client.Translate(context.Background(), "cause_500", "auto", "en"); err == nil {
			t.Errorf("expected error from upstream 500")
		}
	})
}
