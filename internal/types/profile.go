package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Certification is a credential held by the candidate
type Certification struct {
	Title         string `json:"title" yaml:"title" validate:"required,max=255"`
	Issuer        string `json:"issuer,omitempty" yaml:"issuer" validate:"max=255"`
	IssueDate     string `json:"issue_date,omitempty" yaml:"issue_date"`
	ExpiryDate    string `json:"expiry_date,omitempty" yaml:"expiry_date"`
	CredentialID  string `json:"credential_id,omitempty" yaml:"credential_id" validate:"max=255"`
	CredentialURL string `json:"credential_url,omitempty" yaml:"credential_url" validate:"omitempty,url"`
}

// Label renders the certification as "Title (Issuer)", or just the title when there is no issuer.
func (c Certification) Label() string {
	title := strings.TrimSpace(c.Title)
	issuer := strings.TrimSpace(c.Issuer)
	if issuer == "" {
		return title
	}
	return fmt.Sprintf("%s (%s)", title, issuer)
}

// JobData describes the job being applied to
type JobData struct {
	CompanyName    string `json:"company_name" yaml:"company_name" validate:"required,max=255"`
	JobTitle       string `json:"job_title" yaml:"job_title" validate:"required,max=255"`
	JobDescription string `json:"job_description" yaml:"job_description" validate:"required"`
	Requirements   string `json:"requirements,omitempty" yaml:"requirements"`
}

// Validate validates the JobData using the validator.
func (j *JobData) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}

// UserProfile is the candidate profile serialized into generation prompts
type UserProfile struct {
	FullName string            `json:"full_name,omitempty" yaml:"full_name"`
	Email    string            `json:"email,omitempty" yaml:"email" validate:"omitempty,email"`
	Phone    string            `json:"phone,omitempty" yaml:"phone"`
	Location string            `json:"location,omitempty" yaml:"location"`
	Headline string            `json:"headline,omitempty" yaml:"headline"`
	Skills   []string          `json:"skills,omitempty" yaml:"skills"`
	Links    map[string]string `json:"links,omitempty" yaml:"links"`
}

// Validate validates the UserProfile using the validator.
func (p *UserProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// JobKeywords are the categorized keywords extracted from a job description
type JobKeywords struct {
	TechnicalSkills []string `json:"technical_skills"`
	Tools           []string `json:"tools"`
	SoftSkills      []string `json:"soft_skills"`
	ActionVerbs     []string `json:"action_verbs"`
}

// ParsedExperience is one role extracted from a resume
type ParsedExperience struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Duration         string   `json:"duration,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// ParsedEducation is one education entry extracted from a resume
type ParsedEducation struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution"`
	Year        string `json:"year,omitempty"`
}

// ParsedResume is structured data extracted from free resume text
type ParsedResume struct {
	Name       string             `json:"name,omitempty"`
	Email      string             `json:"email,omitempty"`
	Phone      string             `json:"phone,omitempty"`
	Skills     []string           `json:"skills"`
	Experience []ParsedExperience `json:"experience"`
	Education  []ParsedEducation  `json:"education"`
}
