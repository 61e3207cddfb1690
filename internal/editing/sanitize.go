// Package editing validates generated replacement text and splices it back into the original document.
package editing

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/application-tailor/internal/rendering"
	"github.com/jonathan/application-tailor/internal/sections"
	"github.com/jonathan/application-tailor/internal/types"
)

// Section replacement bounds, in characters
const (
	MaxLaTeXSectionChars     = 4500
	MaxPlainTextSectionChars = 3000
)

var trailingLineBreakPattern = regexp.MustCompile(`\\\\\s*$`)

// SanitizeSection validates replacement content for one section.
// It returns "" to reject the replacement; rejection is a policy outcome, not an error.
func SanitizeSection(text string, key types.SectionKey, dialect types.Dialect) string {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return ""
	}

	if dialect == types.DialectLaTeX {
		if hasLaTeXStructure(cleaned) {
			return ""
		}
		if utf8.RuneCountInString(cleaned) > MaxLaTeXSectionChars {
			return ""
		}
		return cleaned
	}

	cleaned = sanitizePlainSection(cleaned, key)
	if utf8.RuneCountInString(cleaned) > MaxPlainTextSectionChars {
		return ""
	}
	return cleaned
}

// sanitizePlainSection drops leading lines that echo the section's own heading
// and rejects content carrying any other heading line.
func sanitizePlainSection(cleaned string, key types.SectionKey) string {
	lines := strings.Split(cleaned, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t\r")
	}

	for len(lines) > 0 {
		echoed, ok := sections.IsHeadingLine(lines[0])
		if !ok || echoed != key {
			break
		}
		lines = lines[1:]
	}

	for _, line := range lines {
		if _, ok := sections.IsHeadingLine(line); ok {
			return ""
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// SanitizeHeadline validates a replacement headline. Only the first line is kept.
// LaTeX headlines are escaped; already-escaped characters are left alone.
func SanitizeHeadline(text string, dialect types.Dialect) string {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return ""
	}

	cleaned = strings.TrimSpace(strings.SplitN(cleaned, "\n", 2)[0])
	if dialect == types.DialectLaTeX {
		cleaned = strings.TrimSpace(trailingLineBreakPattern.ReplaceAllString(cleaned, ""))
		if hasLaTeXStructure(cleaned) {
			return ""
		}
	}
	if cleaned == "" {
		return ""
	}

	if _, isHeading := sections.CanonicalKey(cleaned); isHeading {
		return ""
	}

	if utf8.RuneCountInString(cleaned) > sections.MaxHeadlineChars {
		cleaned = strings.TrimRight(string([]rune(cleaned)[:sections.MaxHeadlineChars]), " \t")
	}
	if cleaned == "" {
		return ""
	}

	if dialect == types.DialectLaTeX {
		return rendering.EscapeLaTeX(cleaned)
	}
	return cleaned
}

func hasLaTeXStructure(text string) bool {
	return sections.ContainsLaTeXSection(text) ||
		strings.Contains(text, `\begin{document}`) ||
		strings.Contains(text, `\end{document}`)
}
