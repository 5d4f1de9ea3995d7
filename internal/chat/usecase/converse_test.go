package usecase_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"asha-assistant/internal/aggregator"
	"asha-assistant/internal/chat"
	"asha-assistant/internal/chat/usecase"
	"asha-assistant/internal/intent"
	"asha-assistant/internal/model"
	"asha-assistant/internal/moderation"
	"asha-assistant/pkg/herkey"
	"asha-assistant/pkg/llmprovider"
	"asha-assistant/pkg/log"
)

// fakeTranslator simulates the detect/translate capability. A non-pivot
// language prefixes the outbound translation so round trips are visible.
type fakeTranslator struct {
	lang         string
	detectErr    error
	translateErr error

	inboundCalls  int
	outboundCalls int
}

func (f *fakeTranslator) Detect(ctx context.Context, text string) (string, error) {
	if f.detectErr != nil {
		return "", f.detectErr
	}
	return f.lang, nil
}

func (f *fakeTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	if f.translateErr != nil {
		return "", f.translateErr
	}
	if target == model.PivotLanguage {
		f.inboundCalls++
		return strings.TrimPrefix(text, "["+source+"] "), nil
	}
	f.outboundCalls++
	return "[" + target + "] " + text, nil
}

// fakeHerKey is a scriptable provider client with call counters.
// Aggregator fetches run concurrently, so counters are locked.
type fakeHerKey struct {
	mu       sync.Mutex
	jobs     []herkey.Job
	sessions []herkey.Session
	err      error

	jobCalls     int
	sessionCalls int
}

func (f *fakeHerKey) SearchJobs(ctx context.Context, keyword string) ([]herkey.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobCalls++
	return f.jobs, f.err
}

func (f *fakeHerKey) BoostedJobs(ctx context.Context) ([]herkey.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobCalls++
	return f.jobs, f.err
}

func (f *fakeHerKey) SearchSessions(ctx context.Context, title string) ([]herkey.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessionCalls++
	return f.sessions, f.err
}

func (f *fakeHerKey) UpcomingEvents(ctx context.Context) ([]herkey.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessionCalls++
	return f.sessions, f.err
}

// fakeRepo is an in-memory SessionRepository. The recorded channel is
// signaled when the fire-and-forget write batch completes.
type fakeRepo struct {
	mu        sync.Mutex
	history   map[string][]string
	responses map[string][]string
	lastQuery map[string]string
	counters  map[string]int
	feedback  map[string][]string
	recorded  chan struct{}
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		history:   make(map[string][]string),
		responses: make(map[string][]string),
		lastQuery: make(map[string]string),
		counters:  make(map[string]int),
		feedback:  make(map[string][]string),
		recorded:  make(chan struct{}, 8),
	}
}

func (f *fakeRepo) AppendTurn(ctx context.Context, sessionID, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.history[sessionID] = append(f.history[sessionID], text)
	return nil
}

func (f *fakeRepo) AppendResponse(ctx context.Context, sessionID, response string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[sessionID] = append(f.responses[sessionID], response)
	return nil
}

func (f *fakeRepo) History(ctx context.Context, sessionID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.history[sessionID]...), nil
}

func (f *fakeRepo) SetLastQuery(ctx context.Context, userID, query string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastQuery[userID] = query
	return nil
}

func (f *fakeRepo) IncrQueryCounters(ctx context.Context, userID string) error {
	f.mu.Lock()
	f.counters[userID]++
	f.counters["total"]++
	f.mu.Unlock()
	f.recorded <- struct{}{}
	return nil
}

func (f *fakeRepo) AppendFeedback(ctx context.Context, sessionID, feedback string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.feedback[sessionID] = append(f.feedback[sessionID], feedback)
	return nil
}

func (f *fakeRepo) Feedback(ctx context.Context, sessionID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.feedback[sessionID]...), nil
}

func (f *fakeRepo) waitRecorded(t *testing.T) {
	t.Helper()
	select {
	case <-f.recorded:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for session recording")
	}
}

// fakeProvider is a scriptable completion provider capturing the last
// request it received.
type fakeProvider struct {
	mu      sync.Mutex
	text    string
	err     error
	delay   time.Duration
	calls   int
	lastReq *llmprovider.Request
}

func (f *fakeProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.mu.Lock()
	f.calls++
	f.lastReq = req
	f.mu.Unlock()
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: "assistant", Text: f.text},
		ProviderName: "fake",
		Usage:        &llmprovider.Usage{},
	}, nil
}

func (f *fakeProvider) Name() string  { return "fake" }
func (f *fakeProvider) Model() string { return "fake-model" }

type fixture struct {
	uc         chat.UseCase
	translator *fakeTranslator
	client     *fakeHerKey
	repo       *fakeRepo
	provider   *fakeProvider
}

func newFixture(translator *fakeTranslator, client *fakeHerKey, provider *fakeProvider) fixture {
	l := log.Init(log.ZapConfig{Level: "error", Mode: "production"})
	repo := newFakeRepo()
	manager := llmprovider.NewManager(
		[]llmprovider.Provider{provider},
		&llmprovider.Config{RetryAttempts: 1},
		l,
	)
	uc := usecase.New(
		l,
		translator,
		moderation.New(nil),
		intent.New(nil),
		aggregator.NewRunner(l, client),
		manager,
		repo,
	)
	return fixture{uc: uc, translator: translator, client: client, repo: repo, provider: provider}
}

var testScope = model.Scope{SessionID: "s-1", UserID: "u-1"}

func TestConverseModeration(t *testing.T) {
	fx := newFixture(&fakeTranslator{lang: "en"}, &fakeHerKey{}, &fakeProvider{text: "unused"})

	out, err := fx.uc.Converse(context.Background(), testScope, chat.ConverseInput{
		UserInput: "only men can be engineers",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Response, "potentially biased or discriminatory language") {
		t.Errorf("expected rephrase prompt, got %q", out.Response)
	}
	if !strings.Contains(out.Response, "**only men**") {
		t.Errorf("expected highlighted phrase, got %q", out.Response)
	}
	if fx.client.jobCalls != 0 || fx.client.sessionCalls != 0 {
		t.Error("flagged input must not reach providers")
	}
	if fx.provider.calls != 0 {
		t.Error("flagged input must not reach the completion provider")
	}

	fx.repo.waitRecorded(t)
	if got := fx.repo.history["s-1"]; len(got) != 1 {
		t.Errorf("flagged turn should still be recorded, history=%v", got)
	}
	if fx.repo.counters["total"] != 1 {
		t.Errorf("expected query counter increment, got %d", fx.repo.counters["total"])
	}
}

func TestConverseJobsOnlyEmpty(t *testing.T) {
	fx := newFixture(&fakeTranslator{lang: "en"}, &fakeHerKey{}, &fakeProvider{text: "unused"})

	out, err := fx.uc.Converse(context.Background(), testScope, chat.ConverseInput{
		UserInput: "search jobs for data scientist",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Sorry, no listings were found for 'data scientist'. You can check manually at https://www.herkey.com/jobs."
	if out.Response != want {
		t.Errorf("expected terminal no-listings message, got %q", out.Response)
	}
	if fx.provider.calls != 0 {
		t.Error("empty sole jobs lookup must skip the completion call")
	}
}

func TestConverseJobListings(t *testing.T) {
	client := &fakeHerKey{jobs: []herkey.Job{
		{ID: "1", Title: "Data Scientist", CompanyName: "Acme", LocationName: "Remote"},
		{ID: "2", Title: "ML Engineer", CompanyName: "Beta", LocationName: "Pune"},
	}}
	provider := &fakeProvider{text: "Here you go!", delay: 5 * time.Millisecond}
	fx := newFixture(&fakeTranslator{lang: "en"}, client, provider)

	out, err := fx.uc.Converse(context.Background(), testScope, chat.ConverseInput{
		UserInput: "search jobs for data scientist",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Response != "Here you go!" {
		t.Errorf("unexpected response: %q", out.Response)
	}
	if out.ResponseTime <= 0 {
		t.Errorf("expected positive response time, got %v", out.ResponseTime)
	}

	var grounding string
	for _, msg := range provider.lastReq.Messages {
		if msg.Role == "system" && strings.Contains(msg.Text, "job listings or data you must use") {
			grounding = msg.Text
		}
	}
	if grounding == "" {
		t.Fatal("expected grounding system message in prompt")
	}
	if strings.Count(grounding, "[Apply Here]") != 2 {
		t.Errorf("expected two listing blocks, got %q", grounding)
	}
	if strings.Count(grounding, "\n---\n") != 1 {
		t.Errorf("expected blocks joined by separator, got %q", grounding)
	}
}

func TestConverseTwoIntents(t *testing.T) {
	client := &fakeHerKey{sessions: []herkey.Session{
		{PostID: "10", PostContent: herkey.PostContent{PostTopicText: "Intro Session"}},
	}}
	provider := &fakeProvider{text: "Summary"}
	fx := newFixture(&fakeTranslator{lang: "en"}, client, provider)

	_, err := fx.uc.Converse(context.Background(), testScope, chat.ConverseInput{
		UserInput: "tell me about mentorship and events",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var grounding string
	for _, msg := range provider.lastReq.Messages {
		if msg.Role == "system" && strings.Contains(msg.Text, "you must use") {
			grounding = msg.Text
		}
	}
	mentorIdx := strings.Index(grounding, "Here are some mentorship sessions:")
	eventIdx := strings.Index(grounding, "Here are some upcoming events:")
	if mentorIdx < 0 || eventIdx < 0 {
		t.Fatalf("expected both sections in grounding, got %q", grounding)
	}
	if mentorIdx > eventIdx {
		t.Error("mentorship section should precede events section")
	}
}

func TestConverseCompletionFallback(t *testing.T) {
	provider := &fakeProvider{err: errors.New("provider down")}
	fx := newFixture(&fakeTranslator{lang: "en"}, &fakeHerKey{}, provider)

	out, err := fx.uc.Converse(context.Background(), testScope, chat.ConverseInput{
		UserInput: "how do I restart my career?",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Response != "I'm having trouble processing your request right now. Please try again later." {
		t.Errorf("expected fallback message, got %q", out.Response)
	}
}

func TestConverseRoundTrip(t *testing.T) {
	translator := &fakeTranslator{lang: "hi"}
	provider := &fakeProvider{text: "Namaste response"}
	fx := newFixture(translator, &fakeHerKey{}, provider)

	out, err := fx.uc.Converse(context.Background(), testScope, chat.ConverseInput{
		UserInput: "[hi] how do I restart my career?",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Language != "hi" {
		t.Errorf("expected detected language hi, got %q", out.Language)
	}
	if out.Response != "[hi] Namaste response" {
		t.Errorf("expected localized response, got %q", out.Response)
	}
	if translator.inboundCalls != 1 || translator.outboundCalls != 1 {
		t.Errorf("expected one translation each way, got in=%d out=%d",
			translator.inboundCalls, translator.outboundCalls)
	}
}

func TestConverseDetectionFailureFallsBackToPivot(t *testing.T) {
	translator := &fakeTranslator{detectErr: errors.New("detector offline")}
	provider := &fakeProvider{text: "ok"}
	fx := newFixture(translator, &fakeHerKey{}, provider)

	out, err := fx.uc.Converse(context.Background(), testScope, chat.ConverseInput{
		UserInput: "hello there",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Language != model.PivotLanguage {
		t.Errorf("expected pivot passthrough, got %q", out.Language)
	}
	if out.Response != "ok" {
		t.Errorf("unexpected response: %q", out.Response)
	}
}

func TestConverseValidation(t *testing.T) {
	fx := newFixture(&fakeTranslator{lang: "en"}, &fakeHerKey{}, &fakeProvider{text: "ok"})

	if _, err := fx.uc.Converse(context.Background(), testScope, chat.ConverseInput{UserInput: "   "}); !errors.Is(err, chat.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := fx.uc.Converse(context.Background(), model.Scope{UserID: "u-1"}, chat.ConverseInput{UserInput: "hi"}); !errors.Is(err, chat.ErrEmptySession) {
		t.Errorf("expected ErrEmptySession, got %v", err)
	}
}

func TestSubmitFeedbackAppends(t *testing.T) {
	fx := newFixture(&fakeTranslator{lang: "en"}, &fakeHerKey{}, &fakeProvider{text: "ok"})

	input := chat.FeedbackInput{Feedback: "very helpful"}
	if err := fx.uc.SubmitFeedback(context.Background(), testScope, input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := fx.uc.SubmitFeedback(context.Background(), testScope, input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := fx.uc.Feedback(context.Background(), testScope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("identical submissions should both persist, got %d entries", len(entries))
	}

	if err := fx.uc.SubmitFeedback(context.Background(), testScope, chat.FeedbackInput{}); !errors.Is(err, chat.ErrEmptyFeedback) {
		t.Errorf("expected ErrEmptyFeedback, got %v", err)
	}
}
