// Package types provides type definitions for structured data used throughout the application-tailor system.
package types

import (
	"path/filepath"
	"sort"
	"strings"
)

// Dialect identifies the markup family of a resume document
type Dialect string

const (
	// DialectPlainText is an unstructured text resume
	DialectPlainText Dialect = "plain_text"
	// DialectLaTeX is a LaTeX source resume
	DialectLaTeX Dialect = "latex"
)

// Valid reports whether d is a known dialect
func (d Dialect) Valid() bool {
	return d == DialectPlainText || d == DialectLaTeX
}

// DialectFromFilename infers the dialect from a file name (.tex means LaTeX).
func DialectFromFilename(name string) Dialect {
	if strings.EqualFold(filepath.Ext(name), ".tex") {
		return DialectLaTeX
	}
	return DialectPlainText
}

// Document is an immutable resume text paired with its dialect.
type Document struct {
	Text    string  `json:"text"`
	Dialect Dialect `json:"dialect"`
}

// WithText returns a copy of the document carrying new text
func (d Document) WithText(text string) Document {
	return Document{Text: text, Dialect: d.Dialect}
}

// SectionKey is the canonical identifier of a resume section
type SectionKey string

// Canonical section keys
const (
	SectionSummary        SectionKey = "summary"
	SectionExperience     SectionKey = "experience"
	SectionProjects       SectionKey = "projects"
	SectionSkills         SectionKey = "skills"
	SectionEducation      SectionKey = "education"
	SectionCertifications SectionKey = "certifications"
)

// AllSectionKeys lists every canonical key in display order.
var AllSectionKeys = []SectionKey{
	SectionSummary,
	SectionExperience,
	SectionProjects,
	SectionSkills,
	SectionEducation,
	SectionCertifications,
}

// ProtectedSectionKeys are never rewritten by generation.
var ProtectedSectionKeys = []SectionKey{SectionExperience, SectionProjects, SectionEducation}

// IsProtected reports whether generated content may never replace this section
func (k SectionKey) IsProtected() bool {
	for _, p := range ProtectedSectionKeys {
		if p == k {
			return true
		}
	}
	return false
}

// Section is a located section of a document.
// Start and End are half-open byte offsets of the content region, excluding the heading.
type Section struct {
	Key     SectionKey `json:"key"`
	Title   string     `json:"title"`
	Start   int        `json:"start"`
	End     int        `json:"end"`
	Content string     `json:"content"`
}

// SectionMap maps canonical keys to located sections
type SectionMap map[SectionKey]Section

// Ordered returns the sections sorted by their start offset
func (m SectionMap) Ordered() []Section {
	out := make([]Section, 0, len(m))
	for _, s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// Keys returns the found keys in document order
func (m SectionMap) Keys() []SectionKey {
	ordered := m.Ordered()
	keys := make([]SectionKey, 0, len(ordered))
	for _, s := range ordered {
		keys = append(keys, s.Key)
	}
	return keys
}

// Headline is the one-line professional title directly below the candidate name
type Headline struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// SectionUpdateSet holds proposed replacement content per section key
type SectionUpdateSet map[SectionKey]string
