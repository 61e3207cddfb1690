package sections

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/application-tailor/internal/types"
)

// MaxHeadlineChars bounds the length of a headline line, in characters
const MaxHeadlineChars = 120

var (
	// latexHeadlinePattern captures the line directly below a \scshape name line, both ending in \\
	latexHeadlinePattern = regexp.MustCompile(`(?m)(?P<prefix>^\s*.*\\scshape.*\\\\\s*$\n)(?P<indent>\s*)(?P<headline>[^\n]+?)(?P<suffix>\s*\\\\\s*)`)
	longDigitRunPattern  = regexp.MustCompile(`\d{5,}`)
	contactMarkers       = []string{"@", "linkedin", "github", "http", "www"}
)

// LocateHeadline finds the professional headline below the candidate name, or nil.
func LocateHeadline(text string, dialect types.Dialect) *types.Headline {
	if text == "" {
		return nil
	}
	if dialect == types.DialectLaTeX {
		return latexHeadline(text)
	}
	return plainHeadline(text)
}

func latexHeadline(text string) *types.Headline {
	m := latexHeadlinePattern.FindStringSubmatchIndex(text)
	if m == nil {
		return nil
	}
	idx := latexHeadlinePattern.SubexpIndex("headline")
	start, end := m[2*idx], m[2*idx+1]
	return &types.Headline{
		Text:  strings.TrimSpace(text[start:end]),
		Start: start,
		End:   end,
	}
}

type line struct {
	raw   string
	start int
}

func plainHeadline(text string) *types.Headline {
	var nonEmpty []line
	offset := 0
	for _, raw := range strings.SplitAfter(text, "\n") {
		body := strings.TrimRight(raw, "\n")
		if strings.TrimSpace(body) != "" {
			nonEmpty = append(nonEmpty, line{raw: body, start: offset})
		}
		offset += len(raw)
	}
	if len(nonEmpty) < 2 {
		return nil
	}

	// line 1 is the candidate name
	candidates := nonEmpty[1:min(len(nonEmpty), 5)]
	for _, c := range candidates {
		value := strings.TrimSpace(c.raw)
		if !isHeadlineCandidate(value) {
			continue
		}
		start := c.start + strings.Index(c.raw, value)
		return &types.Headline{Text: value, Start: start, End: start + len(value)}
	}
	return nil
}

func isHeadlineCandidate(value string) bool {
	if _, isHeading := CanonicalKey(value); isHeading {
		return false
	}
	lowered := strings.ToLower(value)
	for _, marker := range contactMarkers {
		if strings.Contains(lowered, marker) {
			return false
		}
	}
	if longDigitRunPattern.MatchString(value) {
		return false
	}
	return utf8.RuneCountInString(value) <= MaxHeadlineChars
}
