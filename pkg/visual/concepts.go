package visual

import "strings"

// MaxConcepts caps the number of concepts taken from a query.
const MaxConcepts = 5

var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {},
	"and": {}, "or": {}, "but": {}, "so": {}, "because": {}, "if": {}, "when": {}, "where": {}, "how": {},
	"what": {}, "which": {}, "who": {}, "whom": {}, "whose": {}, "why": {},
}

// IsStopWord reports whether the lower-cased token is filtered out of concepts.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

// ExtractConcepts lower-cases the query, splits it on whitespace and keeps the
// first MaxConcepts tokens that are not stop-words, in query order.
// Tokens are not stemmed, deduplicated or stripped of punctuation.
func ExtractConcepts(query string) []string {
	concepts := make([]string, 0, MaxConcepts)
	for _, word := range strings.Fields(strings.ToLower(query)) {
		if IsStopWord(word) {
			continue
		}
		concepts = append(concepts, word)
		if len(concepts) == MaxConcepts {
			break
		}
	}
	return concepts
}
