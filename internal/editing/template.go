package editing

import (
	"strings"

	"github.com/jonathan/application-tailor/internal/types"
)

// LaTeX template placeholders filled from generated content
const (
	PlaceholderHeadline = "{{HEADLINE}}"
	PlaceholderSummary  = "{{SUMMARY}}"
	PlaceholderSkills   = "{{SKILLS}}"
)

var placeholders = []string{PlaceholderHeadline, PlaceholderSummary, PlaceholderSkills}

// HasTemplatePlaceholders reports whether latex carries any placeholder
func HasTemplatePlaceholders(latex string) bool {
	for _, p := range placeholders {
		if strings.Contains(latex, p) {
			return true
		}
	}
	return false
}

// RenderTemplatePlaceholders substitutes sanitized values into the placeholders.
// A rejected value renders as an empty string.
func RenderTemplatePlaceholders(latex, headline, summary, skills string) string {
	if latex == "" {
		return ""
	}
	return strings.NewReplacer(
		PlaceholderHeadline, SanitizeHeadline(headline, types.DialectLaTeX),
		PlaceholderSummary, SanitizeSection(summary, types.SectionSummary, types.DialectLaTeX),
		PlaceholderSkills, SanitizeSection(skills, types.SectionSkills, types.DialectLaTeX),
	).Replace(latex)
}
