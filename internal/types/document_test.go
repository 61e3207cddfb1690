package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDialectFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     Dialect
	}{
		{"tex extension", "resume.tex", DialectLaTeX},
		{"upper case extension", "RESUME.TEX", DialectLaTeX},
		{"plain text", "resume.txt", DialectPlainText},
		{"pdf is extracted to plain text", "resume.pdf", DialectPlainText},
		{"no extension", "resume", DialectPlainText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DialectFromFilename(tt.filename))
		})
	}
}

func TestDialect_Valid(t *testing.T) {
	assert.True(t, DialectLaTeX.Valid())
	assert.True(t, DialectPlainText.Valid())
	assert.False(t, Dialect("markdown").Valid())
}

func TestDocument_WithText(t *testing.T) {
	doc := Document{Text: "old", Dialect: DialectLaTeX}
	updated := doc.WithText("new")

	assert.Equal(t, "old", doc.Text)
	assert.Equal(t, "new", updated.Text)
	assert.Equal(t, DialectLaTeX, updated.Dialect)
}

func TestSectionMap_Ordered(t *testing.T) {
	m := SectionMap{
		SectionSkills:     {Key: SectionSkills, Start: 40, End: 60},
		SectionSummary:    {Key: SectionSummary, Start: 5, End: 20},
		SectionExperience: {Key: SectionExperience, Start: 25, End: 35},
	}

	assert.Equal(t, []SectionKey{SectionSummary, SectionExperience, SectionSkills}, m.Keys())
}

func TestSectionKey_IsProtected(t *testing.T) {
	assert.True(t, SectionExperience.IsProtected())
	assert.True(t, SectionProjects.IsProtected())
	assert.True(t, SectionEducation.IsProtected())
	assert.False(t, SectionSummary.IsProtected())
	assert.False(t, SectionSkills.IsProtected())
	assert.False(t, SectionCertifications.IsProtected())
}

func TestTokenUsage_Add(t *testing.T) {
	var none *TokenUsage
	assert.Nil(t, none.Add(nil))

	a := &TokenUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15}
	b := &TokenUsage{PromptTokens: 1, CompletionTokens: 2, TotalTokens: 3}

	sum := a.Add(b)
	assert.Equal(t, &TokenUsage{PromptTokens: 11, CompletionTokens: 7, TotalTokens: 18}, sum)
	assert.Equal(t, 15, a.TotalTokens, "operands are not mutated")

	assert.Equal(t, a, none.Add(a))
}
