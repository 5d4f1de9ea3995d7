package moderation

// SimilarityThreshold is the whole-text fuzzy match cutoff. Inputs that
// are near-rewordings of a catalogued phrase are flagged even without
// exact substring containment.
const SimilarityThreshold = 0.75

// HighlightMarker wraps every matched phrase occurrence in the
// annotated text.
const HighlightMarker = "**"

// defaultPhrases is the built-in biased/discriminatory phrase catalog.
// Overridable via moderation.phrases in config; order is preserved in
// verdicts.
var defaultPhrases = []string{
	"only men", "women can't", "not for girls", "girls are bad at",
	"not suitable for women", "too hard for women", "females shouldn't",
	"men are better", "girls can't", "for boys only", "just for guys",
	"women are weak", "girls must not", "men only", "not for females",
	"no girls allowed",
}
