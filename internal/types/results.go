package types

// TokenUsage reports provider token accounting for one or more completions
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add sums two usages. A nil operand is treated as zero; nil+nil stays nil.
func (u *TokenUsage) Add(other *TokenUsage) *TokenUsage {
	if u == nil && other == nil {
		return nil
	}
	sum := &TokenUsage{}
	for _, v := range []*TokenUsage{u, other} {
		if v == nil {
			continue
		}
		sum.PromptTokens += v.PromptTokens
		sum.CompletionTokens += v.CompletionTokens
		sum.TotalTokens += v.TotalTokens
	}
	return sum
}

// GenerationResult is the outcome of full document generation
type GenerationResult struct {
	TailoredText    string      `json:"tailored_resume_text"`
	CoverLetterText string      `json:"cover_letter_text"`
	EmailSubject    string      `json:"email_subject"`
	EmailBody       string      `json:"email_body"`
	AtsScore        int         `json:"ats_score"`
	ChangesMade     []string    `json:"changes_made"`
	TokenUsage      *TokenUsage `json:"token_usage,omitempty"`
}

// ApplicationDocuments are the cover letter and email generated from an already tailored resume
type ApplicationDocuments struct {
	CoverLetterText string      `json:"cover_letter_text"`
	EmailSubject    string      `json:"email_subject"`
	EmailBody       string      `json:"email_body"`
	TokenUsage      *TokenUsage `json:"token_usage,omitempty"`
}

// OptimizationResult is the outcome of section-level resume optimization
type OptimizationResult struct {
	UpdatedText     string       `json:"updated_text"`
	Dialect         Dialect      `json:"dialect"`
	ChangesMade     []string     `json:"changes_made"`
	SectionsFound   []SectionKey `json:"sections_found"`
	AppliedSections []SectionKey `json:"applied_sections"`
	HeadlineUpdated bool         `json:"headline_updated"`
	HeadlineUpdate  string       `json:"headline_update,omitempty"`
	SummaryUpdate   string       `json:"summary_update,omitempty"`
	SkillsUpdate    string       `json:"skills_update,omitempty"`
	TokenUsage      *TokenUsage  `json:"token_usage,omitempty"`
}

// AtsScore is a keyword-coverage score between 0 and 100
type AtsScore struct {
	Score   float64  `json:"score"`
	Matched []string `json:"matched_keywords"`
	Missing []string `json:"missing_keywords"`
}

// DiffType classifies a word in a diff
type DiffType string

// Diff entry types
const (
	DiffAdded     DiffType = "added"
	DiffRemoved   DiffType = "removed"
	DiffUnchanged DiffType = "unchanged"
)

// DiffEntry is a single word in a word-level diff
type DiffEntry struct {
	Type DiffType `json:"type"`
	Word string   `json:"word"`
}

// TailorReport bundles the outputs of the full tailoring pipeline
type TailorReport struct {
	Optimization *OptimizationResult   `json:"optimization"`
	Application  *ApplicationDocuments `json:"application,omitempty"`
	Ats          *AtsScore             `json:"ats"`
	Diff         []DiffEntry           `json:"diff"`
	TokenUsage   *TokenUsage           `json:"token_usage,omitempty"`
}
