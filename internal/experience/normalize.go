package experience

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/application-tailor/internal/types"
)

// NormalizeCandidate applies all normalization steps to a profile and its certifications, then validates them
func NormalizeCandidate(profile *types.UserProfile, certs *[]types.Certification) error {
	NormalizeSkills(profile)
	*certs = NormalizeCertifications(*certs)

	validate := validator.New()
	if err := validate.Struct(profile); err != nil {
		return newNormalizationError(profileIndex, "", err)
	}
	for i := range *certs {
		if err := validate.Struct((*certs)[i]); err != nil {
			return newNormalizationError(i, (*certs)[i].Title, err)
		}
	}
	return nil
}

// NormalizeSkills trims profile skills and drops blanks and case-insensitive duplicates
func NormalizeSkills(profile *types.UserProfile) {
	normalized := make([]string, 0, len(profile.Skills))
	seen := make(map[string]struct{})

	for _, skill := range profile.Skills {
		skill = strings.Join(strings.Fields(skill), " ")
		if skill == "" {
			continue
		}
		key := strings.ToLower(skill)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		normalized = append(normalized, skill)
	}

	profile.Skills = normalized
}

// NormalizeCertifications trims certification fields and drops entries without a title.
// Input order is kept; selection treats later entries as more recent.
func NormalizeCertifications(certs []types.Certification) []types.Certification {
	out := make([]types.Certification, 0, len(certs))
	for _, cert := range certs {
		cert.Title = strings.TrimSpace(cert.Title)
		cert.Issuer = strings.TrimSpace(cert.Issuer)
		cert.CredentialID = strings.TrimSpace(cert.CredentialID)
		cert.CredentialURL = strings.TrimSpace(cert.CredentialURL)
		if cert.Title == "" {
			continue
		}
		out = append(out, cert)
	}
	return out
}
