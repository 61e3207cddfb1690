package ingestion

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/application-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_PreserveMarkdownHeadings(t *testing.T) {
	input := "# Title\n## Subtitle\nContent here"
	result := CleanText(input)

	assert.Contains(t, result, "# Title")
	assert.Contains(t, result, "## Subtitle")
	assert.Contains(t, result, "Content here")
}

func TestCleanText_PreserveBulletLists(t *testing.T) {
	input := "- Item 1\n- Item 2\n* Item 3"
	result := CleanText(input)

	assert.Contains(t, result, "- Item 1")
	assert.Contains(t, result, "- Item 2")
	assert.Contains(t, result, "* Item 3")
}

func TestCleanText_PreserveGlyphBullets(t *testing.T) {
	input := "Highlights\n  •   Built   APIs\n• Led team"
	result := CleanText(input)

	assert.Equal(t, "Highlights\n  •   Built   APIs\n• Led team", result)
}

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	input := "Line    with    multiple    spaces"
	result := CleanText(input)

	assert.Contains(t, result, "Line with multiple spaces")
	assert.NotContains(t, result, "    ") // Should not have 4 spaces
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	input := "Line 1\n\n\n\n\nLine 2"
	result := CleanText(input)

	// Should have max 2 consecutive newlines
	assert.NotContains(t, result, "\n\n\n\n")
	// But should preserve up to 2
	assert.Contains(t, result, "\n\n")
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	input := "Line 1\r\nLine 2\rLine 3\nLine 4"
	result := CleanText(input)

	// All should be normalized to LF
	assert.NotContains(t, result, "\r\n")
	assert.NotContains(t, result, "\r")
	assert.Contains(t, result, "\n")
}

func TestCleanText_DeterministicOutput(t *testing.T) {
	input := "Test content   with   spaces\n\n\nMultiple   blank   lines"
	result1 := CleanText(input)
	result2 := CleanText(input)

	// Same input should produce identical output
	assert.Equal(t, result1, result2)
}

func TestCleanText_EmptyInput(t *testing.T) {
	result := CleanText("")
	assert.Empty(t, result)
}

func TestCleanText_OnlyWhitespace(t *testing.T) {
	result := CleanText("   \n  \n  ")
	assert.Empty(t, result)
}

func TestCleanText_SpecialCharacters(t *testing.T) {
	input := "Test with émojis 🚀 and spéciàl chàracters"
	result := CleanText(input)

	assert.Contains(t, result, "émojis")
	assert.Contains(t, result, "🚀")
	assert.Contains(t, result, "spéciàl chàracters")
}

func TestCleanText_PreserveIndentation(t *testing.T) {
	input := "    Indented line\n  Less indented"
	result := CleanText(input)

	// Should preserve relative indentation
	assert.Contains(t, result, "Indented")
	assert.Contains(t, result, "Less indented")
}

func TestLoadDocument_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	content := "Jane Doe\r\nBackend Engineer\r\nSUMMARY\r\nBuilds   APIs.\r\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	doc, metadata, err := LoadDocument(path)
	require.NoError(t, err)

	// text sources keep their spacing so section offsets match the file
	assert.Equal(t, "Jane Doe\nBackend Engineer\nSUMMARY\nBuilds   APIs.\n", doc.Text)
	assert.Equal(t, types.DialectPlainText, doc.Dialect)
	assert.Equal(t, path, metadata.Source)
	assert.Equal(t, FormatText, metadata.Format)
	assert.Len(t, metadata.Hash, 64)
}

func TestLoadDocument_LaTeX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.tex")
	content := "\\section{Summary}\nOld.\n\\end{document}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	doc, metadata, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, content, doc.Text)
	assert.Equal(t, types.DialectLaTeX, doc.Dialect)
	assert.Equal(t, FormatLaTeX, metadata.Format)
}

func TestLoadDocument_FileNotFound(t *testing.T) {
	_, _, err := LoadDocument(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestLoadText_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.rtf")
	require.NoError(t, os.WriteFile(path, []byte("text"), 0644))

	_, _, err := LoadText(path)
	var extractionErr *ExtractionError
	require.True(t, errors.As(err, &extractionErr))
	assert.Equal(t, "resume.rtf", extractionErr.Filename)
}

func TestLoadText_HashUniqueness(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(first, []byte("Content A"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("Content B"), 0644))

	_, metaA, err := LoadText(first)
	require.NoError(t, err)
	_, metaB, err := LoadText(second)
	require.NoError(t, err)

	assert.NotEqual(t, metaA.Hash, metaB.Hash)
}

func TestWriteOutput(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "nested", "out")

	paths, err := WriteOutput(outDir, map[string][]byte{
		"resume.tex":  []byte("tailored"),
		"report.json": []byte("{}"),
	})
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(outDir, "report.json"), paths[0])
	assert.Equal(t, filepath.Join(outDir, "resume.tex"), paths[1])

	data, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, "tailored", string(data))
}
