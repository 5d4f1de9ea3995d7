package llmprovider_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"asha-assistant/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

// mockProvider is a scriptable Provider implementation
type mockProvider struct {
	name     string
	failures int // number of calls that fail before succeeding
	calls    int
	err      error
	text     string
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	if m.calls <= m.failures {
		if m.err != nil {
			return nil, m.err
		}
		return nil, errors.New("mock failure")
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: "assistant", Text: m.text},
		ProviderName: m.name,
		Usage:        &llmprovider.Usage{},
	}, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.name + "-model" }

func TestManagerGenerateContent(t *testing.T) {
	req := &llmprovider.Request{
		Messages: []llmprovider.Message{{Role: "user", Text: "hello"}},
	}

	t.Run("No Providers", func(t *testing.T) {
		m := llmprovider.NewManager(nil, &llmprovider.Config{RetryAttempts: 1}, &mockLogger{})
		_, err := m.GenerateContent(context.Background(), req)
		if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})

	t.Run("First Provider Succeeds", func(t *testing.T) {
		primary := &mockProvider{name: "primary", text: "answer"}
		secondary := &mockProvider{name: "secondary", text: "other"}
		m := llmprovider.NewManager(
			[]llmprovider.Provider{primary, secondary},
			&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 1},
			&mockLogger{},
		)
		resp, err := m.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content.Text != "answer" {
			t.Errorf("expected primary answer, got %q", resp.Content.Text)
		}
		if secondary.calls != 0 {
			t.Errorf("secondary should not be called, got %d calls", secondary.calls)
		}
	})

	t.Run("Fallback To Second Provider", func(t *testing.T) {
		primary := &mockProvider{name: "primary", failures: 10}
		secondary := &mockProvider{name: "secondary", text: "fallback answer"}
		m := llmprovider.NewManager(
			[]llmprovider.Provider{primary, secondary},
			&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond},
			&mockLogger{},
		)
		resp, err := m.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content.Text != "fallback answer" {
			t.Errorf("expected fallback answer, got %q", resp.Content.Text)
		}
		if primary.calls != 2 {
			t.Errorf("expected 2 retry attempts on primary, got %d", primary.calls)
		}
	})

	t.Run("Fallback Disabled Stops After First", func(t *testing.T) {
		primary := &mockProvider{name: "primary", failures: 10}
		secondary := &mockProvider{name: "secondary", text: "unused"}
		m := llmprovider.NewManager(
			[]llmprovider.Provider{primary, secondary},
			&llmprovider.Config{FallbackEnabled: false, RetryAttempts: 1},
			&mockLogger{},
		)
		_, err := m.GenerateContent(context.Background(), req)
		if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
		if secondary.calls != 0 {
			t.Errorf("secondary should not be called with fallback disabled")
		}
	})

	t.Run("Retry Recovers Within Provider", func(t *testing.T) {
		flaky := &mockProvider{name: "flaky", failures: 1, text: "second try"}
		m := llmprovider.NewManager(
			[]llmprovider.Provider{flaky},
			&llmprovider.Config{RetryAttempts: 3, RetryDelay: time.Millisecond},
			&mockLogger{},
		)
		resp, err := m.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content.Text != "second try" {
			t.Errorf("expected retried answer, got %q", resp.Content.Text)
		}
	})

	t.Run("All Providers Fail", func(t *testing.T) {
		m := llmprovider.NewManager(
			[]llmprovider.Provider{
				&mockProvider{name: "a", failures: 10},
				&mockProvider{name: "b", failures: 10},
			},
			&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 1},
			&mockLogger{},
		)
		_, err := m.GenerateContent(context.Background(), req)
		if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
	})
}
