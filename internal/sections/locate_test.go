package sections

import (
	"strings"
	"testing"

	"github.com/jonathan/application-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plainResume = `Jane Doe
Senior Backend Engineer
jane@example.com | 555-123-4567

Summary
Backend engineer with Go.

Technical Skills:
Go, Kubernetes

Experience
Acme Corp - Engineer
Built payment services.

Projects
Tool X

Education
BS Computer Science
`

const latexResume = `\documentclass{article}
\begin{document}
\begin{center}
    {\Huge \scshape Jane Doe} \\
    Senior Backend Engineer \\
    \small jane@example.com
\end{center}
\section{Summary}
Backend engineer with Go.
\section{Hobbies}
Chess
\section*{Technical Skills}
Go, Kubernetes
\section{Experience}
Acme Corp
\section{Education}
BS Computer Science
\end{document}
`

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		title string
		want  types.SectionKey
		ok    bool
	}{
		{"Technical Skills", types.SectionSkills, true},
		{"tech stack", types.SectionSkills, true},
		{"TECH STACK:", types.SectionSkills, true},
		{"Professional Summary", types.SectionSummary, true},
		{"Work Experience", types.SectionExperience, true},
		{"Project Experience", types.SectionProjects, true},
		{"Licenses & Certifications", types.SectionCertifications, true},
		{"Academic Background", types.SectionEducation, true},
		{"Skills Summary", types.SectionSkills, true},
		{"Hobbies", "", false},
		{"", "", false},
		{"---", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got, ok := CanonicalKey(tt.title)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "licenses certifications", NormalizeTitle("  Licenses & Certifications: "))
	assert.Equal(t, "tech stack", NormalizeTitle("Tech\tStack"))
	assert.Equal(t, "", NormalizeTitle("***"))
}

func TestLocateSections_PlainText(t *testing.T) {
	sections := LocateSections(plainResume, types.DialectPlainText)

	require.Len(t, sections, 5)
	assert.Equal(t, "Backend engineer with Go.", sections[types.SectionSummary].Content)
	assert.Equal(t, "Go, Kubernetes", sections[types.SectionSkills].Content)
	assert.Equal(t, "Technical Skills", sections[types.SectionSkills].Title)
	assert.Equal(t, "Acme Corp - Engineer\nBuilt payment services.", sections[types.SectionExperience].Content)
	assert.Equal(t, "Tool X", sections[types.SectionProjects].Content)
	assert.Equal(t, "BS Computer Science", sections[types.SectionEducation].Content)

	for key, s := range sections {
		assert.Equal(t, strings.TrimSpace(plainResume[s.Start:s.End]), s.Content, "content of %s matches its span", key)
	}
}

func TestLocateSections_LaTeX(t *testing.T) {
	sections := LocateSections(latexResume, types.DialectLaTeX)

	require.Len(t, sections, 4)
	assert.Equal(t, "Backend engineer with Go.", sections[types.SectionSummary].Content)
	assert.Equal(t, "Go, Kubernetes", sections[types.SectionSkills].Content)
	assert.Equal(t, "Acme Corp", sections[types.SectionExperience].Content)
	assert.Equal(t, "BS Computer Science", sections[types.SectionEducation].Content)

	// the tail boundary is \end{document}
	edu := sections[types.SectionEducation]
	assert.True(t, strings.HasPrefix(latexResume[edu.End:], `\end{document}`))
}

func TestLocateSections_LaTeXMinimal(t *testing.T) {
	text := `\section{Summary}Old summary.\end{document}`
	sections := LocateSections(text, types.DialectLaTeX)

	require.Contains(t, sections, types.SectionSummary)
	s := sections[types.SectionSummary]
	assert.Equal(t, len(`\section{Summary}`), s.Start)
	assert.Equal(t, strings.Index(text, `\end{document}`), s.End)
	assert.Equal(t, "Old summary.", s.Content)
}

func TestLocateSections_FirstOccurrenceWins(t *testing.T) {
	text := "Skills\nGo\n\nSummary\nFirst\n\nSkills\nRust\n"
	sections := LocateSections(text, types.DialectPlainText)

	assert.Equal(t, "Go", sections[types.SectionSkills].Content)
	// the duplicate heading still ends the summary
	assert.Equal(t, "First", sections[types.SectionSummary].Content)
}

func TestLocateSections_NoHeadings(t *testing.T) {
	assert.Empty(t, LocateSections("just some text\nwith two lines.", types.DialectPlainText))
	assert.Empty(t, LocateSections("no section commands here", types.DialectLaTeX))
	assert.Empty(t, LocateSections("", types.DialectPlainText))
}

func TestLocateSections_SpansDoNotOverlap(t *testing.T) {
	for _, tc := range []struct {
		text    string
		dialect types.Dialect
	}{
		{plainResume, types.DialectPlainText},
		{latexResume, types.DialectLaTeX},
	} {
		ordered := LocateSections(tc.text, tc.dialect).Ordered()
		for i := 1; i < len(ordered); i++ {
			assert.LessOrEqual(t, ordered[i-1].End, ordered[i].Start)
		}
	}
}

func TestIsHeadingLine(t *testing.T) {
	key, ok := IsHeadingLine("Technical Skills:")
	assert.True(t, ok)
	assert.Equal(t, types.SectionSkills, key)

	_, ok = IsHeadingLine("Go, Kubernetes, Terraform")
	assert.False(t, ok)

	_, ok = IsHeadingLine("Hobbies")
	assert.False(t, ok)
}

func TestContainsLaTeXSection(t *testing.T) {
	assert.True(t, ContainsLaTeXSection(`text \section{Experience} more`))
	assert.True(t, ContainsLaTeXSection(`\section*{Skills}`))
	assert.False(t, ContainsLaTeXSection(`\subsection{Skills}`))
	assert.False(t, ContainsLaTeXSection(`plain words`))
}
