package translate

import (
	"fmt"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// DefaultBaseURL is the public translate endpoint
	DefaultBaseURL = "https://translate.googleapis.com"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 10 * time.Second

	// DefaultCacheSize bounds the in-process translation cache
	DefaultCacheSize = 512

	// LangAuto asks the server to detect the source language
	LangAuto = "auto"
)

// Config holds translator client configuration
type Config struct {
	BaseURL    string
	CacheSize  int
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.CacheSize <= 0 {
		c.CacheSize = DefaultCacheSize
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// translateImpl is the internal implementation of ITranslator
type translateImpl struct {
	baseURL    string
	httpClient *http.Client

	// cache keys are "<source>|<target>|<text>"; values carry both the
	// translated text and the detected source tag.
	cache *lru.Cache[string, cachedResult]
}

type cachedResult struct {
	Text         string
	DetectedLang string
}

func cacheKey(text, source, target string) string {
	return fmt.Sprintf("%s|%s|%s", source, target, text)
}
