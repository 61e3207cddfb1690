package scoring

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jonathan/application-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	got := Tokenize("We need Go, C++ and C# with Node.js experience on the Team!")
	assert.Equal(t, []string{"need", "c++", "node.js"}, got)
}

func TestTokenize_DropsShortWords(t *testing.T) {
	assert.Empty(t, Tokenize("Go is ok"))
}

func TestScoreFromText(t *testing.T) {
	jd := "Python Django python APIs Django python postgres"
	resume := "Experienced Python developer building Django services"

	got := ScoreFromText(jd, resume)

	// python x3, django x2, apis, postgres
	assert.Equal(t, []string{"django", "python"}, got.Matched)
	assert.Equal(t, []string{"apis", "postgres"}, got.Missing)
	assert.Equal(t, 50.0, got.Score)
}

func TestScoreFromText_RoundsHalfToEven(t *testing.T) {
	// 1 of 8 matched is 12.5, which rounds to 12
	jd := "alpha bravo charlie delta echo foxtrot golf hotel"
	got := ScoreFromText(jd, "alpha")
	assert.Equal(t, 12.0, got.Score)
}

func TestScoreFromText_EmptyInputs(t *testing.T) {
	got := ScoreFromText("", "anything")
	assert.Equal(t, 0.0, got.Score)
	assert.Empty(t, got.Matched)
	assert.Empty(t, got.Missing)

	got = ScoreFromText("the and of", "anything")
	assert.Equal(t, 0.0, got.Score)

	got = ScoreFromText("kubernetes terraform", "")
	assert.Equal(t, 0.0, got.Score)
	assert.Equal(t, []string{"kubernetes", "terraform"}, got.Missing)
}

func TestScoreFromText_BoundsAndPartition(t *testing.T) {
	var words []string
	for i := 0; i < 60; i++ {
		words = append(words, fmt.Sprintf("kw%02d", i))
	}
	jd := strings.Join(words, " ") + " " + strings.Join(words[:10], " ")
	resume := strings.Join(words[:25], " ")

	got := ScoreFromText(jd, resume)

	assert.GreaterOrEqual(t, got.Score, 0.0)
	assert.LessOrEqual(t, got.Score, 100.0)
	assert.Len(t, append(append([]string{}, got.Matched...), got.Missing...), DefaultTopKeywords)

	matched := make(map[string]bool)
	for _, m := range got.Matched {
		matched[m] = true
	}
	for _, m := range got.Missing {
		assert.False(t, matched[m], "%s is both matched and missing", m)
	}

	// the ten repeated keywords rank first, then first appearance decides
	assert.Contains(t, got.Matched, "kw00")
	assert.NotContains(t, append(got.Matched, got.Missing...), "kw59")
	assert.Len(t, got.Matched, 25)
	assert.Equal(t, 62.0, got.Score)
}

func TestFrequencyScorer_CustomTopN(t *testing.T) {
	scorer := &FrequencyScorer{TopN: 2, Stopwords: DefaultStopwords}
	got := scorer.Score("rust rust rust golang golang python", "python")

	assert.Equal(t, []string{"golang", "rust"}, got.Missing)
	assert.Empty(t, got.Matched)
	assert.Equal(t, 0.0, got.Score)
}

func TestScoreStructured(t *testing.T) {
	job := &types.JobKeywords{
		TechnicalSkills: []string{"Python", "Django ", "REST"},
		Tools:           []string{"Docker", "python"},
		SoftSkills:      []string{"Communication"},
		ActionVerbs:     []string{"Led"},
	}

	got := ScoreStructured([]string{" python", "Docker", "Excel"}, job)

	require.NotNil(t, got)
	assert.Equal(t, []string{"docker", "python"}, got.Matched)
	assert.Equal(t, []string{"communication", "django", "rest"}, got.Missing)
	assert.Equal(t, 40.0, got.Score)
}

func TestScoreStructured_RoundsToTwoDecimals(t *testing.T) {
	job := &types.JobKeywords{TechnicalSkills: []string{"go", "rust", "zig"}}
	got := ScoreStructured([]string{"go"}, job)
	assert.Equal(t, 33.33, got.Score)
}

func TestScoreStructured_NoJobKeywords(t *testing.T) {
	got := ScoreStructured([]string{"go"}, &types.JobKeywords{ActionVerbs: []string{"built"}})
	assert.Equal(t, 0.0, got.Score)
	assert.Empty(t, got.Matched)
	assert.Empty(t, got.Missing)

	assert.Equal(t, 0.0, ScoreStructured(nil, nil).Score)
}
