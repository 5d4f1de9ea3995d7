package moderation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// Check compares the text against the catalog using two criteria:
// case-insensitive substring containment, and whole-text edit
// similarity above SimilarityThreshold. All matching phrases are
// collected, not just the first.
func (g *Gate) Check(text string) Verdict {
	normalized := strings.ToLower(text)

	var matched []string
	for _, phrase := range g.phrases {
		if strings.Contains(normalized, phrase) {
			matched = append(matched, phrase)
		} else if levenshtein.Similarity(phrase, normalized, nil) > SimilarityThreshold {
			matched = append(matched, phrase)
		}
	}

	if len(matched) == 0 {
		return Verdict{Annotated: text}
	}

	return Verdict{
		Flagged:   true,
		Matched:   matched,
		Annotated: annotate(text, matched),
	}
}

// annotate wraps every case-insensitive occurrence of each matched
// phrase in the highlight marker, preserving the original casing.
// Fuzzy-only matches with no literal occurrence leave the text as is.
func annotate(text string, phrases []string) string {
	for _, phrase := range phrases {
		text = highlightAll(text, phrase)
	}
	return text
}

func highlightAll(text, phrase string) string {
	lowerPhrase := strings.ToLower(phrase)
	// Lowercasing can change a rune's byte length (U+0130 lowers from
	// two bytes to one), so indices found in the lowered text must be
	// mapped back to the original through per-byte offsets.
	lowered, offsets := lowerOffsets(text)

	var sb strings.Builder
	prev := 0
	for from := 0; ; {
		idx := strings.Index(lowered[from:], lowerPhrase)
		if idx < 0 {
			break
		}
		idx += from
		start, end := offsets[idx], offsets[idx+len(lowerPhrase)]
		sb.WriteString(text[prev:start])
		sb.WriteString(HighlightMarker)
		sb.WriteString(text[start:end])
		sb.WriteString(HighlightMarker)
		prev = end
		from = idx + len(lowerPhrase)
	}
	sb.WriteString(text[prev:])
	return sb.String()
}

// lowerOffsets lowers s rune by rune and records, per byte of the
// lowered form, the byte offset of the source rune in s. A trailing
// entry maps the end of the lowered form to len(s).
func lowerOffsets(s string) (string, []int) {
	var sb strings.Builder
	offsets := make([]int, 0, len(s)+1)
	for i, r := range s {
		lr := unicode.ToLower(r)
		for n := utf8.RuneLen(lr); n > 0; n-- {
			offsets = append(offsets, i)
		}
		sb.WriteRune(lr)
	}
	offsets = append(offsets, len(s))
	return sb.String(), offsets
}
