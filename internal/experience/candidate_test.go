package experience

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/application-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCandidate_YAML(t *testing.T) {
	path := writeFile(t, "candidate.yaml", `profile:
  full_name: Aleena Jomy
  email: aleena@example.com
  skills: ["Python", " Django ", "python", ""]
certifications:
  - title: AWS Cloud Practitioner
    issuer: Amazon
  - title: "  "
  - title: Django Fundamentals
`)

	candidate, err := LoadCandidate(path)
	require.NoError(t, err)

	assert.Equal(t, "Aleena Jomy", candidate.Profile.FullName)
	assert.Equal(t, []string{"Python", "Django"}, candidate.Profile.Skills)
	require.Len(t, candidate.Certifications, 2)
	assert.Equal(t, "AWS Cloud Practitioner (Amazon)", candidate.Certifications[0].Label())
	assert.Equal(t, "Django Fundamentals", candidate.Certifications[1].Title)
}

func TestLoadCandidate_JSON(t *testing.T) {
	path := writeFile(t, "candidate.json", `{"profile": {"full_name": "Jane Doe", "headline": "Backend Engineer"}}`)

	candidate, err := LoadCandidate(path)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", candidate.Profile.Headline)
	assert.Empty(t, candidate.Certifications)
}

func TestLoadCandidate_FileNotFound(t *testing.T) {
	_, err := LoadCandidate("nonexistent_file.json")
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr), "error should be LoadError type")
	assert.Equal(t, "nonexistent_file.json", loadErr.Path)
	assert.Empty(t, loadErr.Format)
	assert.Contains(t, loadErr.Error(), "failed to read candidate file nonexistent_file.json")
}

func TestLoadCandidate_InvalidContent(t *testing.T) {
	_, err := LoadCandidate(writeFile(t, "invalid.json", "{ invalid json }"))
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "json", loadErr.Format)
	assert.Contains(t, err.Error(), "as JSON")

	_, err = LoadCandidate(writeFile(t, "invalid.yaml", "profile: [unclosed"))
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "yaml", loadErr.Format)
	assert.Contains(t, err.Error(), "as YAML")
}

func TestLoadCandidate_ValidationFailure(t *testing.T) {
	_, err := LoadCandidate(writeFile(t, "bad.yaml", "profile:\n  email: not-an-email\n"))

	var normErr *NormalizationError
	require.True(t, errors.As(err, &normErr))
	assert.True(t, normErr.IsProfile())
	assert.Equal(t, []string{"Email"}, normErr.Fields)
	assert.Contains(t, err.Error(), "invalid profile (Email)")
}

func TestNormalizeCandidate_InvalidCertificationURL(t *testing.T) {
	profile := &types.UserProfile{}
	certs := []types.Certification{
		{Title: "AWS Developer", CredentialURL: "https://aws.example.com/cert"},
		{Title: "  "},
		{Title: "CKA", CredentialURL: "not a url"},
	}

	err := NormalizeCandidate(profile, &certs)
	var normErr *NormalizationError
	require.True(t, errors.As(err, &normErr))
	assert.False(t, normErr.IsProfile())
	assert.Equal(t, 1, normErr.Index)
	assert.Equal(t, "CKA", normErr.Title)
	assert.Equal(t, []string{"CredentialURL"}, normErr.Fields)
	assert.Contains(t, err.Error(), `invalid certification 1 "CKA" (CredentialURL)`)
}

func TestNormalizeSkills(t *testing.T) {
	profile := &types.UserProfile{Skills: []string{"REST  APIs", "rest apis", "Go", "  "}}
	NormalizeSkills(profile)
	assert.Equal(t, []string{"REST APIs", "Go"}, profile.Skills)
}

func TestNormalizeCertifications_KeepsOrder(t *testing.T) {
	certs := NormalizeCertifications([]types.Certification{
		{Title: " Older ", Issuer: " A "},
		{Title: ""},
		{Title: "Newer"},
	})
	require.Len(t, certs, 2)
	assert.Equal(t, "Older", certs[0].Title)
	assert.Equal(t, "A", certs[0].Issuer)
	assert.Equal(t, "Newer", certs[1].Title)
}
