package sections

import (
	"strings"
	"testing"

	"github.com/jonathan/application-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateHeadline_PlainText(t *testing.T) {
	h := LocateHeadline(plainResume, types.DialectPlainText)

	require.NotNil(t, h)
	assert.Equal(t, "Senior Backend Engineer", h.Text)
	assert.Equal(t, "Senior Backend Engineer", plainResume[h.Start:h.End])
}

func TestLocateHeadline_PlainTextSkipsContactLines(t *testing.T) {
	text := "Jane Doe\n\n  jane@example.com  \nhttps://github.com/jane\nPhone 5551234567\n   Staff Platform Engineer   \nSummary\n"

	h := LocateHeadline(text, types.DialectPlainText)

	require.NotNil(t, h)
	assert.Equal(t, "Staff Platform Engineer", h.Text)
	assert.Equal(t, h.Text, text[h.Start:h.End])
}

func TestLocateHeadline_PlainTextOnlyScansFirstFiveLines(t *testing.T) {
	text := strings.Join([]string{
		"Jane Doe",
		"jane@example.com",
		"linkedin.com/in/jane",
		"www.jane.dev",
		"Summary",
		"Distributed Systems Engineer",
	}, "\n")

	assert.Nil(t, LocateHeadline(text, types.DialectPlainText))
}

func TestLocateHeadline_PlainTextRejectsLongLines(t *testing.T) {
	text := "Jane Doe\n" + strings.Repeat("word ", 30) + "\n"
	assert.Nil(t, LocateHeadline(text, types.DialectPlainText))
}

func TestLocateHeadline_PlainTextSingleLine(t *testing.T) {
	assert.Nil(t, LocateHeadline("Jane Doe", types.DialectPlainText))
	assert.Nil(t, LocateHeadline("", types.DialectPlainText))
}

func TestLocateHeadline_LaTeX(t *testing.T) {
	h := LocateHeadline(latexResume, types.DialectLaTeX)

	require.NotNil(t, h)
	assert.Equal(t, "Senior Backend Engineer", h.Text)
	assert.Equal(t, "Senior Backend Engineer", latexResume[h.Start:h.End])
}

func TestLocateHeadline_LaTeXWithoutScshape(t *testing.T) {
	text := "\\begin{center}\n{\\Huge Jane Doe} \\\\\nSenior Backend Engineer \\\\\n\\end{center}\n"
	assert.Nil(t, LocateHeadline(text, types.DialectLaTeX))
}
