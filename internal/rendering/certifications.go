package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/application-tailor/internal/types"
)

// BuildLaTeXCertificationsSection renders certifications as a \resumeItem list.
// Returns "" when no certification has a title.
func BuildLaTeXCertificationsSection(certs []types.Certification) string {
	var items []string
	for _, cert := range certs {
		title := EscapeLaTeX(strings.TrimSpace(cert.Title))
		if title == "" {
			continue
		}
		issuer := EscapeLaTeX(strings.TrimSpace(cert.Issuer))
		content := title
		if issuer != "" {
			content = fmt.Sprintf("%s (%s)", title, issuer)
		}
		items = append(items, `\resumeItem{`+content+`}`)
	}
	if len(items) == 0 {
		return ""
	}

	lines := make([]string, 0, len(items)+2)
	lines = append(lines, `\resumeItemListStart`)
	lines = append(lines, items...)
	lines = append(lines, `\resumeItemListEnd`)
	return strings.Join(lines, "\n")
}

// BuildPlainTextCertificationsSection renders certifications as "- Title (Issuer)" lines
func BuildPlainTextCertificationsSection(certs []types.Certification) string {
	var lines []string
	for _, cert := range certs {
		if strings.TrimSpace(cert.Title) == "" {
			continue
		}
		lines = append(lines, "- "+cert.Label())
	}
	return strings.Join(lines, "\n")
}

// BuildCertificationsSection picks the builder for the dialect
func BuildCertificationsSection(certs []types.Certification, dialect types.Dialect) string {
	if dialect == types.DialectLaTeX {
		return BuildLaTeXCertificationsSection(certs)
	}
	return BuildPlainTextCertificationsSection(certs)
}
