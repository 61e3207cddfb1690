// Package experience loads and normalizes the candidate file: the profile sent to generation
// prompts and the certifications available for selection.
package experience

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/application-tailor/internal/types"
	"gopkg.in/yaml.v3"
)

// Candidate is the content of a candidate file
type Candidate struct {
	Profile        types.UserProfile     `json:"profile" yaml:"profile"`
	Certifications []types.Certification `json:"certifications,omitempty" yaml:"certifications"`
}

// LoadCandidate loads a candidate file as YAML (.yaml, .yml) or JSON and normalizes it
func LoadCandidate(path string) (*Candidate, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}

	var candidate Candidate
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &candidate); err != nil {
			return nil, &LoadError{Path: path, Format: "yaml", Cause: err}
		}
	default:
		if err := json.Unmarshal(content, &candidate); err != nil {
			return nil, &LoadError{Path: path, Format: "json", Cause: err}
		}
	}

	if err := NormalizeCandidate(&candidate.Profile, &candidate.Certifications); err != nil {
		return nil, err
	}
	return &candidate, nil
}
