package intent

import (
	"regexp"
	"strings"

	"github.com/agext/levenshtein"

	"asha-assistant/internal/model"
)

// Classifier detects lookup intents in normalized (English) input with
// additive rules: a single utterance can trigger several providers at
// once. Results come back in a fixed order so downstream composition
// is deterministic.
type Classifier struct {
	jobTitles []string
}

// New creates a classifier. An empty vocabulary falls back to the
// built-in job-title list.
func New(jobTitles []string) *Classifier {
	if len(jobTitles) == 0 {
		jobTitles = defaultJobTitles
	}
	return &Classifier{jobTitles: jobTitles}
}

var (
	roleSearchRe    = regexp.MustCompile(`search\s+\w+\s+for\s+(.+)`)
	sessionSearchRe = regexp.MustCompile(`(?:find|search)\s+(\w+)\s+for\s+(.+)`)
)

// Classify returns triggers in order: jobs, mentorship, events,
// keyword session. The jobs rules are mutually exclusive (explicit
// search phrase, then vocabulary extraction, then bare job words); the
// remaining rules fire independently of each other.
func (c *Classifier) Classify(text string) []Trigger {
	lower := strings.ToLower(text)
	words := strings.Fields(lower)

	var triggers []Trigger

	if m := roleSearchRe.FindStringSubmatch(lower); m != nil {
		if role := encodeQuery(m[1]); role != "" {
			triggers = append(triggers, Trigger{Kind: model.ProviderJobs, Query: role})
		}
	} else if found := c.extractJobTitles(words); len(found) > 0 {
		triggers = append(triggers, Trigger{Kind: model.ProviderJobs, Query: strings.Join(found, "%20")})
	} else if containsAny(lower, jobLiterals) {
		triggers = append(triggers, Trigger{Kind: model.ProviderJobs})
	}

	if fuzzyAny(words, mentorWords, SessionWordCutoff) {
		triggers = append(triggers, Trigger{Kind: model.ProviderMentorship})
	}

	if fuzzyAny(words, eventWords, SessionWordCutoff) {
		triggers = append(triggers, Trigger{Kind: model.ProviderEvents})
	}

	if m := sessionSearchRe.FindStringSubmatch(lower); m != nil {
		if kind, ok := fuzzyMatch(m[1], sessionKinds, SessionWordCutoff); ok {
			if keyword := encodeQuery(m[2]); keyword != "" {
				triggers = append(triggers, Trigger{Kind: model.ProviderKeywordSession, Query: keyword, SessionKind: kind})
			}
		}
	}

	return triggers
}

// extractJobTitles fuzzy-matches each input token against the
// vocabulary, deduplicated in first-seen order.
func (c *Classifier) extractJobTitles(words []string) []string {
	seen := make(map[string]bool)
	var found []string
	for _, word := range words {
		for _, title := range c.jobTitles {
			if levenshtein.Similarity(word, title, nil) >= JobTitleCutoff {
				if !seen[title] {
					seen[title] = true
					found = append(found, title)
				}
				break
			}
		}
	}
	return found
}

// containsAny is substring containment over the whole text, so a bare
// job word still counts with trailing punctuation or inside a longer
// word like "jobless".
func containsAny(text string, targets []string) bool {
	for _, t := range targets {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

// fuzzyMatch returns the first catalog entry the word resembles.
func fuzzyMatch(word string, targets []string, cutoff float64) (string, bool) {
	for _, t := range targets {
		if levenshtein.Similarity(word, t, nil) >= cutoff {
			return t, true
		}
	}
	return "", false
}

func fuzzyAny(words, targets []string, cutoff float64) bool {
	for _, w := range words {
		for _, t := range targets {
			if levenshtein.Similarity(w, t, nil) >= cutoff {
				return true
			}
		}
	}
	return false
}

// encodeQuery trims the raw role/keyword tail and joins interior
// whitespace with %20 for direct use as a query parameter value.
func encodeQuery(raw string) string {
	fields := strings.Fields(raw)
	return strings.Join(fields, "%20")
}
