package rendering

import (
	"testing"

	"github.com/jonathan/application-tailor/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestLaTeXToPlainText(t *testing.T) {
	tests := []struct {
		name  string
		latex string
		want  string
	}{
		{
			name:  "empty",
			latex: "",
			want:  "",
		},
		{
			name:  "section and nested commands",
			latex: "\\section{Skills}\n\\textbf{\\emph{Go}}, Kubernetes",
			want:  "Skills Go , Kubernetes",
		},
		{
			name:  "environments removed",
			latex: "\\begin{itemize}\n\\item Built APIs\n\\end{itemize}",
			want:  "Built APIs",
		},
		{
			name:  "comments stripped",
			latex: "Shipped features % internal note\nOn time",
			want:  "Shipped features On time",
		},
		{
			name:  "escaped percent kept",
			latex: "Improved latency by 40\\% overall",
			want:  "Improved latency by 40\\% overall",
		},
		{
			name:  "optional arguments",
			latex: "\\href[pdfnewwindow]{https://example.com}{site}",
			want:  "https://example.com site",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LaTeXToPlainText(tt.latex))
		})
	}
}

func TestBuildLaTeXCertificationsSection(t *testing.T) {
	certs := []types.Certification{
		{Title: "AWS Solutions Architect", Issuer: "Amazon"},
		{Title: "  "},
		{Title: "C# & .NET"},
	}

	got := BuildLaTeXCertificationsSection(certs)

	want := "\\resumeItemListStart\n" +
		"\\resumeItem{AWS Solutions Architect (Amazon)}\n" +
		"\\resumeItem{C\\# \\& .NET}\n" +
		"\\resumeItemListEnd"
	assert.Equal(t, want, got)
}

func TestBuildLaTeXCertificationsSection_Empty(t *testing.T) {
	assert.Equal(t, "", BuildLaTeXCertificationsSection(nil))
	assert.Equal(t, "", BuildLaTeXCertificationsSection([]types.Certification{{Issuer: "Nobody"}}))
}

func TestBuildCertificationsSection_PlainText(t *testing.T) {
	certs := []types.Certification{
		{Title: "CKA", Issuer: "CNCF"},
		{Title: "PMP"},
	}
	assert.Equal(t, "- CKA (CNCF)\n- PMP", BuildCertificationsSection(certs, types.DialectPlainText))
}
