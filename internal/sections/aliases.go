// Package sections locates named sections and the headline line in plain-text and LaTeX resumes.
package sections

import (
	"regexp"
	"strings"

	"github.com/jonathan/application-tailor/internal/types"
)

// alias lists the heading spellings that resolve to one canonical key
type alias struct {
	Key     types.SectionKey
	Aliases []string
}

// aliasTable is shared by both dialects. Order matters within a match tier.
var aliasTable = []alias{
	{types.SectionSummary, []string{"summary", "professional summary", "profile", "objective"}},
	{types.SectionExperience, []string{"experience", "work experience", "professional experience", "employment"}},
	{types.SectionProjects, []string{"projects", "project", "project experience", "personal projects"}},
	{types.SectionSkills, []string{"skills", "technical skills", "core skills", "tech stack"}},
	{types.SectionEducation, []string{"education", "academic background", "academics"}},
	{types.SectionCertifications, []string{"certifications", "certification", "licenses", "licenses and certifications"}},
}

var (
	nonAlnumPattern    = regexp.MustCompile(`[^a-z0-9\s]+`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
	normalizedAliasSet = buildNormalizedAliases()
)

type matchTier func(title, alias string) bool

// tiers are tried in order across the whole table, so an exact hit on a later
// key beats a containment hit on an earlier one ("Project Experience" is projects).
var tiers = []matchTier{
	func(title, alias string) bool { return title == alias },
	strings.HasPrefix,
	strings.Contains,
}

func buildNormalizedAliases() []alias {
	out := make([]alias, 0, len(aliasTable))
	for _, entry := range aliasTable {
		normalized := make([]string, 0, len(entry.Aliases))
		for _, a := range entry.Aliases {
			normalized = append(normalized, NormalizeTitle(a))
		}
		out = append(out, alias{Key: entry.Key, Aliases: normalized})
	}
	return out
}

// NormalizeTitle lowercases a heading, replaces non-alphanumerics with spaces and collapses whitespace.
func NormalizeTitle(title string) string {
	lowered := strings.ToLower(title)
	lowered = nonAlnumPattern.ReplaceAllString(lowered, " ")
	lowered = whitespacePattern.ReplaceAllString(lowered, " ")
	return strings.TrimSpace(lowered)
}

// CanonicalKey resolves a heading title to its section key.
func CanonicalKey(title string) (types.SectionKey, bool) {
	normalized := NormalizeTitle(title)
	if normalized == "" {
		return "", false
	}

	for _, matches := range tiers {
		for _, entry := range normalizedAliasSet {
			for _, a := range entry.Aliases {
				if matches(normalized, a) {
					return entry.Key, true
				}
			}
		}
	}
	return "", false
}

// Aliases returns a copy of the heading aliases registered for key
func Aliases(key types.SectionKey) []string {
	for _, entry := range aliasTable {
		if entry.Key == key {
			return append([]string(nil), entry.Aliases...)
		}
	}
	return nil
}
