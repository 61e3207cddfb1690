package rendering

import (
	"regexp"
	"strings"
)

var (
	beginEnvPattern = regexp.MustCompile(`\\begin\{[^}]+\}`)
	endEnvPattern   = regexp.MustCompile(`\\end\{[^}]+\}`)
	// a command with one flat brace argument; applied repeatedly to unwrap nesting
	commandArgPattern = regexp.MustCompile(`\\[a-zA-Z]+\*?(?:\[[^\]]*\])?\{([^{}]*)\}`)
	bareCommandPattern = regexp.MustCompile(`\\[a-zA-Z]+\*?(?:\[[^\]]*\])?`)
	spacePattern       = regexp.MustCompile(`\s+`)
)

// unwrapPasses bounds how many levels of nested commands are unwrapped
const unwrapPasses = 4

// LaTeXToPlainText reduces LaTeX source to its readable words, for scoring and diffing.
func LaTeXToPlainText(latex string) string {
	if latex == "" {
		return ""
	}

	text := stripComments(latex)
	text = beginEnvPattern.ReplaceAllString(text, " ")
	text = endEnvPattern.ReplaceAllString(text, " ")

	for i := 0; i < unwrapPasses; i++ {
		text = commandArgPattern.ReplaceAllString(text, " $1 ")
	}

	text = bareCommandPattern.ReplaceAllString(text, " ")
	text = strings.NewReplacer("{", " ", "}", " ").Replace(text)
	text = spacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// stripComments blanks everything from an unescaped % to the end of its line.
func stripComments(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		cut := -1
		for j := 0; j < len(line); j++ {
			if line[j] == '%' && (j == 0 || line[j-1] != '\\') {
				cut = j
				break
			}
		}
		if cut < 0 {
			sb.WriteString(line)
			continue
		}
		sb.WriteString(line[:cut])
		sb.WriteByte(' ')
	}
	return sb.String()
}
