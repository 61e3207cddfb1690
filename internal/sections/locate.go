package sections

import (
	"regexp"
	"strings"

	"github.com/jonathan/application-tailor/internal/types"
)

var (
	// plainHeadingPattern matches a short all-text line, optionally colon-terminated
	plainHeadingPattern = regexp.MustCompile(`(?m)^\s*([A-Za-z][A-Za-z &/\-]{1,60})\s*:?\s*$`)
	latexSectionPattern = regexp.MustCompile(`\\section\*?\{([^{}]+)\}`)
	latexEndDocPattern  = regexp.MustCompile(`\\end\{document\}`)
)

// heading is a matched heading line or command
type heading struct {
	start, end int // span of the heading itself
	title      string
	key        types.SectionKey
	recognized bool
}

// LocateSections finds the named sections of text. The first heading per key wins.
// A document without recognized headings yields an empty map.
func LocateSections(text string, dialect types.Dialect) types.SectionMap {
	sections := make(types.SectionMap)
	if text == "" {
		return sections
	}

	var headings []heading
	tail := len(text)
	if dialect == types.DialectLaTeX {
		headings = latexHeadings(text)
		if loc := latexEndDocPattern.FindStringIndex(text); loc != nil {
			tail = loc[0]
		}
	} else {
		headings = plainHeadings(text)
	}

	for i, h := range headings {
		if !h.recognized {
			continue
		}
		if _, exists := sections[h.key]; exists {
			continue
		}

		end := tail
		if i+1 < len(headings) {
			end = headings[i+1].start
		}
		if end < h.end {
			end = h.end
		}

		sections[h.key] = types.Section{
			Key:     h.key,
			Title:   h.title,
			Start:   h.end,
			End:     end,
			Content: strings.TrimSpace(text[h.end:end]),
		}
	}

	return sections
}

// plainHeadings returns recognized heading lines only; unrecognized short lines are body text.
func plainHeadings(text string) []heading {
	var out []heading
	for _, m := range plainHeadingPattern.FindAllStringSubmatchIndex(text, -1) {
		title := strings.TrimSpace(text[m[2]:m[3]])
		key, ok := CanonicalKey(title)
		if !ok {
			continue
		}
		out = append(out, heading{start: m[0], end: m[1], title: title, key: key, recognized: true})
	}
	return out
}

// latexHeadings returns every \section command; unrecognized ones still bound the previous section.
func latexHeadings(text string) []heading {
	var out []heading
	for _, m := range latexSectionPattern.FindAllStringSubmatchIndex(text, -1) {
		title := strings.TrimSpace(text[m[2]:m[3]])
		key, ok := CanonicalKey(title)
		out = append(out, heading{start: m[0], end: m[1], title: title, key: key, recognized: ok})
	}
	return out
}

// IsHeadingLine reports whether a single line is a plain-text heading that resolves to a section key.
func IsHeadingLine(line string) (types.SectionKey, bool) {
	m := plainHeadingPattern.FindStringSubmatch(strings.TrimRight(line, "\r"))
	if m == nil {
		return "", false
	}
	return CanonicalKey(m[1])
}

// ContainsLaTeXSection reports whether text carries a \section or \section* command
func ContainsLaTeXSection(text string) bool {
	return latexSectionOpenPattern.MatchString(text)
}

var latexSectionOpenPattern = regexp.MustCompile(`\\section\*?\{`)
