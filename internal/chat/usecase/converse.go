package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"asha-assistant/internal/chat"
	"asha-assistant/internal/model"
	"asha-assistant/pkg/llmprovider"
)

// Converse runs one full conversational turn. Provider and completion
// failures degrade to fallback content; the only errors returned to the
// caller are input validation failures.
func (uc *implUseCase) Converse(ctx context.Context, sc model.Scope, input chat.ConverseInput) (chat.ConverseOutput, error) {
	if strings.TrimSpace(input.UserInput) == "" {
		return chat.ConverseOutput{}, chat.ErrEmptyInput
	}
	if sc.SessionID == "" {
		return chat.ConverseOutput{}, chat.ErrEmptySession
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, uc.pipelineTimeout)
	defer cancel()

	turn := uc.normalize(ctx, sc, input.UserInput)

	verdict := uc.gate.Check(turn.NormalizedText)
	if verdict.Flagged {
		uc.l.Infof(ctx, "Converse: session=%s flagged phrases=%v", sc.SessionID, verdict.Matched)
		response := fmt.Sprintf(moderationResponseFormat, verdict.Annotated)
		uc.record(sc, turn, response)
		return uc.output(response, start, turn.DetectedLanguage), nil
	}

	triggers := uc.classifier.Classify(turn.NormalizedText)
	results := uc.runner.Run(ctx, triggers)

	// A sole jobs lookup with nothing found is a terminal answer, not
	// grounding for the completion provider.
	if len(results) == 1 && results[0].Kind == model.ProviderJobs &&
		results[0].Err == nil && len(results[0].Items) == 0 {
		response := noListingsMessage(results[0].Query)
		uc.record(sc, turn, response)
		return uc.output(response, start, turn.DetectedLanguage), nil
	}

	grounding := composeContext(results)
	response := uc.complete(ctx, sc, grounding, turn.NormalizedText)
	response = uc.localize(ctx, response, turn.DetectedLanguage)

	uc.record(sc, turn, response)

	return uc.output(response, start, turn.DetectedLanguage), nil
}

// normalize detects the input language and translates non-pivot text to
// the pivot language. Detection or translation failure degrades to
// pivot passthrough, never aborts the turn.
func (uc *implUseCase) normalize(ctx context.Context, sc model.Scope, raw string) model.ConversationTurn {
	turn := model.ConversationTurn{
		SessionID:        sc.SessionID,
		UserID:           sc.UserID,
		RawText:          raw,
		DetectedLanguage: model.PivotLanguage,
		NormalizedText:   raw,
		Timestamp:        time.Now(),
	}

	lang, err := uc.translator.Detect(ctx, raw)
	if err != nil {
		uc.l.Warnf(ctx, "Converse: language detection failed, treating as %s: %v", model.PivotLanguage, err)
		return turn
	}
	turn.DetectedLanguage = lang

	if lang == model.PivotLanguage {
		return turn
	}

	translated, err := uc.translator.Translate(ctx, raw, lang, model.PivotLanguage)
	if err != nil {
		uc.l.Warnf(ctx, "Converse: inbound translation failed, treating as %s: %v", model.PivotLanguage, err)
		turn.DetectedLanguage = model.PivotLanguage
		return turn
	}
	turn.NormalizedText = translated

	return turn
}

// complete builds the role-tagged prompt and invokes the completion
// chain. Any failure degrades to the fixed fallback message.
func (uc *implUseCase) complete(ctx context.Context, sc model.Scope, grounding, userText string) string {
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: "system", Text: systemInstruction},
		Temperature:       CompletionTemperature,
		MaxTokens:         CompletionMaxTokens,
		TopP:              CompletionTopP,
	}

	if history := uc.history(ctx, sc.SessionID); len(history) > 0 {
		req.Messages = append(req.Messages, llmprovider.Message{
			Role: "system",
			Text: fmt.Sprintf(historyPreambleFormat, "- "+strings.Join(history, "\n- ")),
		})
	}
	if grounding != "" {
		req.Messages = append(req.Messages, llmprovider.Message{
			Role: "system",
			Text: fmt.Sprintf(groundingPreambleFormat, grounding),
		})
	}
	req.Messages = append(req.Messages, llmprovider.Message{Role: "user", Text: userText})

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "Converse: completion failed: %v", err)
		return fallbackMessage
	}
	return resp.Content.Text
}

// history returns up to HistoryContextCap most recent prior messages.
// Read failures are logged and treated as an empty history.
func (uc *implUseCase) history(ctx context.Context, sessionID string) []string {
	history, err := uc.repo.History(ctx, sessionID)
	if err != nil {
		uc.l.Warnf(ctx, "Converse: history read failed: %v", err)
		return nil
	}
	if len(history) > HistoryContextCap {
		history = history[len(history)-HistoryContextCap:]
	}
	return history
}

// localize translates the response back to the detected language.
// Failure keeps the pivot-language response.
func (uc *implUseCase) localize(ctx context.Context, response, lang string) string {
	if lang == model.PivotLanguage {
		return response
	}
	translated, err := uc.translator.Translate(ctx, response, model.PivotLanguage, lang)
	if err != nil {
		uc.l.Warnf(ctx, "Converse: reverse translation to %s failed: %v", lang, err)
		return response
	}
	return translated
}

// record persists the turn and analytics counters off the critical
// path. Failures are logged, never surfaced.
func (uc *implUseCase) record(sc model.Scope, turn model.ConversationTurn, response string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), uc.recordTimeout)
		defer cancel()

		if err := uc.repo.AppendTurn(ctx, sc.SessionID, turn.NormalizedText); err != nil {
			uc.l.Warnf(ctx, "Converse: failed to record turn: %v", err)
		}
		if err := uc.repo.AppendResponse(ctx, sc.SessionID, response); err != nil {
			uc.l.Warnf(ctx, "Converse: failed to record response: %v", err)
		}
		if err := uc.repo.SetLastQuery(ctx, sc.UserID, turn.NormalizedText); err != nil {
			uc.l.Warnf(ctx, "Converse: failed to record last query: %v", err)
		}
		if err := uc.repo.IncrQueryCounters(ctx, sc.UserID); err != nil {
			uc.l.Warnf(ctx, "Converse: failed to increment query counters: %v", err)
		}
	}()
}

func (uc *implUseCase) output(response string, start time.Time, lang string) chat.ConverseOutput {
	return chat.ConverseOutput{
		Response:     response,
		ResponseTime: roundSeconds(time.Since(start)),
		Language:     lang,
	}
}

func noListingsMessage(query string) string {
	if query == "" {
		return noListingsDefault
	}
	return fmt.Sprintf(noListingsFormat, strings.ReplaceAll(query, "%20", " "))
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*1000) / 1000
}
