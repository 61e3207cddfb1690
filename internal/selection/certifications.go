// Package selection picks the certifications most relevant to a job description.
package selection

import (
	"sort"
	"strings"

	"github.com/jonathan/application-tailor/internal/scoring"
	"github.com/jonathan/application-tailor/internal/types"
)

// DefaultMaxCertifications is used when the caller passes a non-positive limit
const DefaultMaxCertifications = 4

// scoredCertification pairs a certification with its overlap score and input position
type scoredCertification struct {
	cert  types.Certification
	score int
	index int
}

// SelectCertifications ranks certs by token overlap with the job description.
// Ties go to the later certification, since records are assumed to be listed oldest first.
// When nothing overlaps, the first maxItems certifications are returned unchanged.
func SelectCertifications(jobDescription string, certs []types.Certification, maxItems int) []types.Certification {
	if len(certs) == 0 {
		return []types.Certification{}
	}
	if maxItems <= 0 {
		maxItems = DefaultMaxCertifications
	}

	jobTokens := scoring.TokenSet(jobDescription)
	scored := make([]scoredCertification, 0, len(certs))
	for i, cert := range certs {
		scored = append(scored, scoredCertification{
			cert:  cert,
			score: overlap(jobTokens, certificationText(cert)),
			index: i,
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].index > scored[j].index
	})

	var matched []types.Certification
	for _, s := range scored {
		if s.score > 0 {
			matched = append(matched, s.cert)
		}
	}
	if len(matched) > 0 {
		return matched[:min(maxItems, len(matched))]
	}

	fallback := make([]types.Certification, min(maxItems, len(certs)))
	copy(fallback, certs)
	return fallback
}

func certificationText(cert types.Certification) string {
	return strings.TrimSpace(strings.TrimSpace(cert.Title) + " " + strings.TrimSpace(cert.Issuer))
}

// overlap counts distinct tokens of text that also appear in jobTokens
func overlap(jobTokens map[string]struct{}, text string) int {
	if len(jobTokens) == 0 {
		return 0
	}
	count := 0
	for token := range scoring.TokenSet(text) {
		if _, ok := jobTokens[token]; ok {
			count++
		}
	}
	return count
}
