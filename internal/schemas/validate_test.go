package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePayload_SectionUpdate(t *testing.T) {
	payload := map[string]any{
		"headline":     "Backend Developer Intern",
		"summary":      "Backend-focused developer.",
		"skills":       "Python, Django",
		"changes_made": []any{"Tuned summary"},
	}
	assert.NoError(t, ValidatePayload(ContractSectionUpdate, payload))

	// every field is optional; missing sections come back empty
	assert.NoError(t, ValidatePayload(ContractSectionUpdate, map[string]any{}))

	err := ValidatePayload(ContractSectionUpdate, map[string]any{"summary": []any{"not", "a", "string"}})
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, ContractSectionUpdate, validationErr.Contract)
	assert.Equal(t, "summary", validationErr.Errors[0].Field)
}

func TestValidatePayload_FullTailoring(t *testing.T) {
	valid := map[string]any{
		"tailored_resume_text": "resume",
		"cover_letter_text":    "letter",
		"email_subject":        "subject",
		"email_body":           "body",
		"ats_score":            "87",
		"changes_made":         []any{},
	}
	assert.NoError(t, ValidatePayload(ContractFullTailoring, valid))

	missing := map[string]any{
		"tailored_resume_text": "resume",
		"cover_letter_text":    "",
		"email_subject":        "subject",
	}
	err := ValidatePayload(ContractFullTailoring, missing)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.GreaterOrEqual(t, len(validationErr.Errors), 2)
	assert.Contains(t, err.Error(), "full_tailoring validation failed")
}

func TestValidatePayload_ApplicationDocuments(t *testing.T) {
	err := ValidatePayload(ContractApplicationDocuments, map[string]any{"cover_letter_text": "letter"})
	assert.Error(t, err)
}

func TestValidatePayload_UnknownContract(t *testing.T) {
	err := ValidatePayload(Contract("nonexistent"), map[string]any{})
	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "nonexistent.schema.json")
}

func TestValidateContractJSON(t *testing.T) {
	assert.NoError(t, ValidateContractJSON(ContractJobKeywords, `{"technical_skills": ["go"], "tools": []}`))
	assert.Error(t, ValidateContractJSON(ContractJobKeywords, `{"tools": "docker"}`))
	assert.NoError(t, ValidateContractJSON(ContractParsedResume, `{"name": "Jane", "education": [{"degree": "BS", "year": 2020}]}`))
}

func TestAllContractsLoad(t *testing.T) {
	for _, contract := range Contracts {
		t.Run(string(contract), func(t *testing.T) {
			_, err := load(contract)
			assert.NoError(t, err)
		})
	}
}

func TestValidateJSONString_Valid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"name": "test"}`

	err := ValidateJSONString(schemaContent, jsonContent)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"age": 30}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "name")
	assert.Contains(t, errorMsg, "age")
}

func TestValidateJSONString_NestedFieldValidation(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["person"],
		"properties": {
			"person": {
				"type": "object",
				"required": ["name"],
				"properties": {
					"name": {"type": "string"}
				}
			}
		}
	}`

	jsonContent := `{"person": {}}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
	// Check that the field path includes nested field
	found := false
	for _, fieldErr := range validationErr.Errors {
		if fieldErr.Field != "" {
			found = true
			break
		}
	}
	assert.True(t, found, "should include field path in error")
}

func TestValidateJSONString_ArrayValidation(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"properties": {
			"items": {
				"type": "array",
				"items": {"type": "string"},
				"minItems": 1
			}
		}
	}`

	jsonContent := `{"items": []}`

	err := ValidateJSONString(schemaContent, jsonContent)
	// This may or may not error depending on schema strictness
	// Just ensure it doesn't panic
	_ = err
}
