// Package rendering provides LaTeX text helpers: escaping, plain-text conversion, template placeholders and generated blocks.
package rendering

import "strings"

// reservedChars are escaped in generated LaTeX text
const reservedChars = `&%$#_{}`

// EscapeLaTeX escapes the reserved characters & % $ # _ { } unless they are
// already preceded by a backslash, so escaping is idempotent.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) + len(text)/4)

	var prev byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		if strings.IndexByte(reservedChars, c) >= 0 && prev != '\\' {
			result.WriteByte('\\')
		}
		result.WriteByte(c)
		prev = c
	}

	return result.String()
}
