package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testResume = `Jane Doe
Backend Engineer
SUMMARY
Engineer building Python services.
EXPERIENCE
Built Django APIs at Acme.
SKILLS
Python, Django, PostgreSQL
EDUCATION
BS Computer Science
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCommands_FlagsValidation(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	resume := writeFile(t, tmpDir, "resume.txt", testResume)
	job := writeFile(t, tmpDir, "job.txt", "python django kubernetes")

	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{"sections missing --resume", []string{"sections"}, "required"},
		{"score missing job", []string{"score", "--resume", resume}, "either --job or --job-url"},
		{"score job and url", []string{"score", "--resume", resume, "--job", job, "--job-url", "http://example.com"}, "mutually exclusive"},
		{"diff missing --updated", []string{"diff", "--original", resume}, "required"},
		{"tailor missing --company", []string{"tailor", "--resume", resume, "--job", job, "--title", "Engineer"}, "required"},
		{"batch missing --manifest", []string{"batch", "--resume", resume}, "required"},
		{"sections missing file", []string{"sections", "--resume", filepath.Join(tmpDir, "nope.txt")}, "failed to load resume"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := exec.Command(binaryPath, tt.args...).CombinedOutput()
			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}

func TestSectionsCommand_JSON(t *testing.T) {
	binaryPath := getBinaryPath(t)
	resume := writeFile(t, t.TempDir(), "resume.txt", testResume)

	output, err := exec.Command(binaryPath, "sections", "--resume", resume).Output()
	require.NoError(t, err)

	var got struct {
		Dialect  string                     `json:"dialect"`
		Sections map[string]json.RawMessage `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(output, &got))
	assert.Equal(t, "plain_text", got.Dialect)
	assert.Contains(t, got.Sections, "summary")
	assert.Contains(t, got.Sections, "skills")
}

func TestScoreCommand_JSON(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	resume := writeFile(t, tmpDir, "resume.txt", testResume)
	job := writeFile(t, tmpDir, "job.txt", "python django kubernetes terraform")

	output, err := exec.Command(binaryPath, "score", "--resume", resume, "--job", job).Output()
	require.NoError(t, err)

	var got struct {
		Score   float64  `json:"score"`
		Matched []string `json:"matched_keywords"`
		Missing []string `json:"missing_keywords"`
	}
	require.NoError(t, json.Unmarshal(output, &got))
	assert.Equal(t, 50.0, got.Score)
	assert.Equal(t, []string{"django", "python"}, got.Matched)
	assert.Equal(t, []string{"kubernetes", "terraform"}, got.Missing)
}

func TestKeywordsCommand_RequiresAPIKey(t *testing.T) {
	binaryPath := getBinaryPath(t)
	job := writeFile(t, t.TempDir(), "job.txt", "python django")

	cmd := exec.Command(binaryPath, "keywords", "--job", job)
	cmd.Env = []string{"PATH=" + os.Getenv("PATH"), "HOME=" + t.TempDir()}
	cmd.Dir = t.TempDir()
	output, err := cmd.CombinedOutput()
	assert.Error(t, err)
	assert.Contains(t, string(output), "API key")
}
