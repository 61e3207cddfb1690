package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/application-tailor/internal/types"
)

// DefaultTopKeywords is how many of the most frequent job tokens are scored
const DefaultTopKeywords = 40

// FrequencyScorer scores a tailored resume against the most frequent job-description tokens.
// TopN and Stopwords are policy constants, exposed for tuning.
type FrequencyScorer struct {
	TopN      int
	Stopwords []string
}

// DefaultFrequencyScorer returns the scorer with the standard 40 keywords and stopword list
func DefaultFrequencyScorer() *FrequencyScorer {
	return &FrequencyScorer{TopN: DefaultTopKeywords, Stopwords: DefaultStopwords}
}

// ScoreFromText scores with the default frequency scorer
func ScoreFromText(jobDescription, resumeText string) *types.AtsScore {
	return DefaultFrequencyScorer().Score(jobDescription, resumeText)
}

// Score ranks job tokens by frequency (ties by first appearance), keeps the top N,
// and reports which of them appear anywhere in the resume.
func (s *FrequencyScorer) Score(jobDescription, resumeText string) *types.AtsScore {
	empty := &types.AtsScore{Score: 0, Matched: []string{}, Missing: []string{}}
	if strings.TrimSpace(jobDescription) == "" {
		return empty
	}

	stopwords := toSet(s.Stopwords)
	jobTokens := tokenize(jobDescription, stopwords)
	if len(jobTokens) == 0 {
		return empty
	}

	frequency := make(map[string]int)
	var distinct []string
	for _, token := range jobTokens {
		if frequency[token] == 0 {
			distinct = append(distinct, token)
		}
		frequency[token]++
	}

	sort.SliceStable(distinct, func(i, j int) bool {
		return frequency[distinct[i]] > frequency[distinct[j]]
	})
	topN := s.TopN
	if topN <= 0 {
		topN = DefaultTopKeywords
	}
	prioritized := distinct[:min(topN, len(distinct))]

	resumeTokens := toSet(tokenize(resumeText, stopwords))
	matched := []string{}
	missing := []string{}
	for _, token := range prioritized {
		if _, ok := resumeTokens[token]; ok {
			matched = append(matched, token)
		} else {
			missing = append(missing, token)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	score := math.RoundToEven(float64(len(matched)) / float64(len(prioritized)) * 100)
	return &types.AtsScore{
		Score:   math.Max(0, math.Min(100, score)),
		Matched: matched,
		Missing: missing,
	}
}

// ScoreStructured compares extracted resume skills against the union of job keyword categories.
// The score is the matched share of distinct job keywords, rounded to 2 decimals.
func ScoreStructured(resumeSkills []string, job *types.JobKeywords) *types.AtsScore {
	result := &types.AtsScore{Score: 0, Matched: []string{}, Missing: []string{}}
	if job == nil {
		return result
	}

	seen := make(map[string]struct{})
	var jobKeywords []string
	for _, group := range [][]string{job.TechnicalSkills, job.Tools, job.SoftSkills} {
		for _, kw := range group {
			normalized := strings.ToLower(strings.TrimSpace(kw))
			if normalized == "" {
				continue
			}
			if _, dup := seen[normalized]; dup {
				continue
			}
			seen[normalized] = struct{}{}
			jobKeywords = append(jobKeywords, normalized)
		}
	}
	if len(jobKeywords) == 0 {
		return result
	}

	resumeSet := make(map[string]struct{}, len(resumeSkills))
	for _, skill := range resumeSkills {
		if normalized := strings.ToLower(strings.TrimSpace(skill)); normalized != "" {
			resumeSet[normalized] = struct{}{}
		}
	}

	for _, kw := range jobKeywords {
		if _, ok := resumeSet[kw]; ok {
			result.Matched = append(result.Matched, kw)
		} else {
			result.Missing = append(result.Missing, kw)
		}
	}
	sort.Strings(result.Matched)
	sort.Strings(result.Missing)

	result.Score = math.Round(float64(len(result.Matched))/float64(len(jobKeywords))*100*100) / 100
	return result
}
