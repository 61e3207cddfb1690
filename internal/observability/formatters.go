// Package observability provides logging setup and formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/application-tailor/internal/diff"
	"github.com/jonathan/application-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// previewChars bounds section previews
	previewChars = 80
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if utf8.RuneCountInString(line) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSections outputs the located sections and headline of a document
func (p *Printer) PrintSections(located types.SectionMap, headline *types.Headline) {
	var sb strings.Builder

	if headline != nil {
		sb.WriteString(fmt.Sprintf("Headline: %s\n\n", headline.Text))
	} else {
		sb.WriteString("Headline: (not found)\n\n")
	}

	if len(located) == 0 {
		sb.WriteString("No recognized sections")
	}
	for _, section := range located.Ordered() {
		marker := ""
		if section.Key.IsProtected() {
			marker = " [protected]"
		}
		sb.WriteString(fmt.Sprintf("%-14s %q @%d-%d%s\n", section.Key, section.Title, section.Start, section.End, marker))
		if preview := preview(section.Content); preview != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", preview))
		}
	}

	p.printBox("DOCUMENT SECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAtsScore outputs a keyword coverage score with its matched and missing keywords
func (p *Printer) PrintAtsScore(score *types.AtsScore) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %.2f / 100\n\n", score.Score))
	writeList(&sb, "Matched", score.Matched)
	writeList(&sb, "Missing", score.Missing)

	p.printBox("ATS KEYWORD SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobKeywords outputs the keyword categories extracted from a job description
func (p *Printer) PrintJobKeywords(keywords *types.JobKeywords) {
	if keywords == nil {
		return
	}

	var sb strings.Builder
	writeList(&sb, "Technical Skills", keywords.TechnicalSkills)
	writeList(&sb, "Tools", keywords.Tools)
	writeList(&sb, "Soft Skills", keywords.SoftSkills)
	writeList(&sb, "Action Verbs", keywords.ActionVerbs)

	p.printBox("JOB KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOptimization outputs what a section optimization changed
func (p *Printer) PrintOptimization(result *types.OptimizationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Dialect:  %s\n", result.Dialect))
	sb.WriteString(fmt.Sprintf("Found:    %s\n", joinKeys(result.SectionsFound)))
	sb.WriteString(fmt.Sprintf("Applied:  %s\n", joinKeys(result.AppliedSections)))
	if result.HeadlineUpdated {
		sb.WriteString(fmt.Sprintf("Headline: %s\n", result.HeadlineUpdate))
	}
	sb.WriteString("\n")

	if len(result.ChangesMade) > 0 {
		sb.WriteString("Changes:\n")
		for _, change := range result.ChangesMade {
			sb.WriteString(fmt.Sprintf("  • %s\n", change))
		}
	}
	if result.TokenUsage != nil {
		sb.WriteString(fmt.Sprintf("\nTokens: %d prompt + %d completion = %d\n",
			result.TokenUsage.PromptTokens, result.TokenUsage.CompletionTokens, result.TokenUsage.TotalTokens))
	}

	p.printBox("SECTION OPTIMIZATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDiffSummary outputs word counts of a diff and the first added and removed words
func (p *Printer) PrintDiffSummary(entries []types.DiffEntry) {
	counts := diff.Summary(entries)

	var added, removed []string
	for _, e := range entries {
		switch e.Type {
		case types.DiffAdded:
			added = append(added, e.Word)
		case types.DiffRemoved:
			removed = append(removed, e.Word)
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("+%d added  -%d removed  =%d unchanged\n\n",
		counts[types.DiffAdded], counts[types.DiffRemoved], counts[types.DiffUnchanged]))
	writeList(&sb, "Added", added)
	writeList(&sb, "Removed", removed)

	p.printBox("WORD DIFF", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCertifications outputs the certifications chosen for a job
func (p *Printer) PrintCertifications(certs []types.Certification) {
	var sb strings.Builder
	if len(certs) == 0 {
		sb.WriteString("No certifications selected")
	}
	for i, cert := range certs {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, cert.Label()))
	}
	p.printBox("SELECTED CERTIFICATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("%s (%d):\n", label, len(items)))
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

func joinKeys(keys []types.SectionKey) string {
	if len(keys) == 0 {
		return "-"
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func preview(content string) string {
	flat := strings.Join(strings.Fields(content), " ")
	if utf8.RuneCountInString(flat) > previewChars {
		return string([]rune(flat)[:previewChars-3]) + "..."
	}
	return flat
}
