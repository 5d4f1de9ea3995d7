package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// newTranslateImpl creates a new translator implementation
func newTranslateImpl(cfg Config) (*translateImpl, error) {
	cache, err := lru.New[string, cachedResult](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("translate: failed to create cache: %w", err)
	}
	return &translateImpl{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
		cache:      cache,
	}, nil
}

// Detect returns the detected language tag of the text.
func (t *translateImpl) Detect(ctx context.Context, text string) (string, error) {
	res, err := t.call(ctx, text, LangAuto, "en")
	if err != nil {
		return "", err
	}
	if res.DetectedLang == "" {
		return "", fmt.Errorf("translate: no detected language in response")
	}
	return res.DetectedLang, nil
}

// Translate translates text from source to target language.
func (t *translateImpl) Translate(ctx context.Context, text, source, target string) (string, error) {
	if source == target {
		return text, nil
	}
	res, err := t.call(ctx, text, source, target)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

func (t *translateImpl) call(ctx context.Context, text, source, target string) (cachedResult, error) {
	key := cacheKey(text, source, target)
	if cached, ok := t.cache.Get(key); ok {
		return cached, nil
	}

	endpoint := fmt.Sprintf("%s/translate_a/single?client=gtx&dt=t&sl=%s&tl=%s&q=%s",
		t.baseURL, url.QueryEscape(source), url.QueryEscape(target), url.QueryEscape(text))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return cachedResult{}, fmt.Errorf("translate: failed to create request: %w", err)
	}

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return cachedResult{}, fmt.Errorf("translate: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return cachedResult{}, fmt.Errorf("translate: API error %d: %s", resp.StatusCode, string(raw))
	}

	result, err := parseResponse(resp.Body)
	if err != nil {
		return cachedResult{}, err
	}

	t.cache.Add(key, result)
	return result, nil
}

// parseResponse decodes the nested-array response shape:
// [[["<translated>","<original>",...],...], null, "<detected_lang>", ...]
func parseResponse(body io.Reader) (cachedResult, error) {
	var outer []json.RawMessage
	if err := json.NewDecoder(body).Decode(&outer); err != nil {
		return cachedResult{}, fmt.Errorf("translate: failed to decode response: %w", err)
	}
	if len(outer) < 3 {
		return cachedResult{}, fmt.Errorf("translate: unexpected response shape")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(outer[0], &segments); err != nil {
		return cachedResult{}, fmt.Errorf("translate: failed to decode segments: %w", err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(seg[0], &part); err != nil {
			continue
		}
		sb.WriteString(part)
	}

	var lang string
	if err := json.Unmarshal(outer[2], &lang); err != nil {
		lang = ""
	}

	return cachedResult{Text: sb.String(), DetectedLang: lang}, nil
}
