package main

import (
	"path/filepath"
	"testing"

	"github.com/jonathan/application-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	assert.Equal(t, "acme-corp-senior-go-engineer", slug("Acme Corp.", "Senior Go Engineer"))
	assert.Equal(t, "c-developer", slug("", "C++ Developer"))
	assert.Equal(t, "job", slug("", "!!!"))
}

func TestLoadManifest(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "jobs.yaml", `jobs:
  - company_name: Acme
    job_title: Backend Engineer
    job_file: acme.txt
  - company_name: Globex
    job_title: Data Engineer
    job_description: Spark and Airflow
`)

	jobs, err := loadManifest(path)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, filepath.Join(tmpDir, "acme.txt"), jobs[0].JobFile)
	assert.Equal(t, "Spark and Airflow", jobs[1].JobDescription)
}

func TestLoadManifest_JSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "jobs.json",
		`{"jobs": [{"company_name": "Acme", "job_title": "SRE", "job_url": "https://example.com/sre"}]}`)

	jobs, err := loadManifest(path)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "https://example.com/sre", jobs[0].JobURL)
}

func TestLoadManifest_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := loadManifest(filepath.Join(tmpDir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read manifest")

	_, err = loadManifest(writeFile(t, tmpDir, "empty.yaml", "jobs: []\n"))
	assert.ErrorContains(t, err, "lists no jobs")

	_, err = loadManifest(writeFile(t, tmpDir, "both.yaml", `jobs:
  - company_name: Acme
    job_title: SRE
    job_file: a.txt
    job_url: https://example.com
`))
	assert.ErrorContains(t, err, "exactly one of")
}

func TestTailorArtifacts(t *testing.T) {
	report := &types.TailorReport{
		Optimization: &types.OptimizationResult{UpdatedText: "tailored"},
		Application: &types.ApplicationDocuments{
			CoverLetterText: "Dear team",
			EmailSubject:    "Application",
			EmailBody:       "Hello",
		},
		Ats: &types.AtsScore{Score: 50},
	}

	artifacts, err := tailorArtifacts("resume.tailored.txt", report)
	require.NoError(t, err)
	assert.Equal(t, "tailored", string(artifacts["resume.tailored.txt"]))
	assert.Equal(t, "Dear team", string(artifacts["cover_letter.txt"]))
	assert.Contains(t, string(artifacts["email.txt"]), "Application")
	assert.Contains(t, string(artifacts["report.json"]), `"score": 50`)

	report.Application = nil
	artifacts, err = tailorArtifacts("resume.tailored.txt", report)
	require.NoError(t, err)
	assert.Len(t, artifacts, 2)
}
