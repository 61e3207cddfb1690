// Package scoring computes keyword-coverage (ATS) scores between job descriptions and resumes.
package scoring

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+#.\-]{2,}`)

// DefaultStopwords are dropped before scoring. Tunable; kept stable for score compatibility.
var DefaultStopwords = []string{
	"a", "an", "and", "are", "as", "at", "be", "by", "for", "from", "has", "have", "in",
	"is", "it", "its", "of", "on", "or", "that", "the", "to", "was", "were", "will", "with",
	"you", "your", "their", "they", "this", "those", "these", "we", "our", "us", "role",
	"job", "work", "team", "skills", "experience", "years", "required", "preferred",
}

var defaultStopwordSet = toSet(DefaultStopwords)

// Tokenize lowercases text and returns keyword tokens in order, stopwords removed.
func Tokenize(text string) []string {
	return tokenize(text, defaultStopwordSet)
}

// TokenSet returns the distinct tokens of text
func TokenSet(text string) map[string]struct{} {
	return toSet(Tokenize(text))
}

func tokenize(text string, stopwords map[string]struct{}) []string {
	words := tokenPattern.FindAllString(strings.ToLower(text), -1)
	out := words[:0]
	for _, w := range words {
		if _, stop := stopwords[w]; stop {
			continue
		}
		out = append(out, w)
	}
	return out
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
