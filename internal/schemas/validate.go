// Package schemas validates provider payloads against the embedded JSON Schema contracts.
package schemas

import (
	"fmt"
	"strings"
	"sync"

	contracts "github.com/jonathan/application-tailor/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// Contract names a provider response contract
type Contract string

// Response contracts
const (
	ContractFullTailoring        Contract = "full_tailoring"
	ContractSectionUpdate        Contract = "section_update"
	ContractApplicationDocuments Contract = "application_documents"
	ContractJobKeywords          Contract = "job_keywords"
	ContractParsedResume         Contract = "parsed_resume"
)

// Contracts lists every embedded contract
var Contracts = []Contract{
	ContractFullTailoring,
	ContractSectionUpdate,
	ContractApplicationDocuments,
	ContractJobKeywords,
	ContractParsedResume,
}

// Filename returns the embedded schema file of the contract
func (c Contract) Filename() string {
	return string(c) + ".schema.json"
}

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Contract Contract
	Errors   []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	if ve.Contract != "" {
		sb.WriteString(fmt.Sprintf("%s validation failed:\n", ve.Contract))
	} else {
		sb.WriteString("validation failed:\n")
	}
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// compiled caches parsed contract schemas
var (
	compiled   = make(map[Contract]*gojsonschema.Schema)
	compiledMu sync.Mutex
)

func load(contract Contract) (*gojsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if schema, ok := compiled[contract]; ok {
		return schema, nil
	}

	data, err := contracts.FS.ReadFile(contract.Filename())
	if err != nil {
		return nil, &SchemaLoadError{Path: contract.Filename(), Message: "unknown contract", Cause: err}
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, &SchemaLoadError{Path: contract.Filename(), Message: "invalid schema", Cause: err}
	}
	compiled[contract] = schema
	return schema, nil
}

// ValidatePayload validates a decoded provider payload against a contract
func ValidatePayload(contract Contract, payload any) error {
	schema, err := load(contract)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(payload))
	if err != nil {
		return &SchemaLoadError{
			Path:    contract.Filename(),
			Message: "document could not be loaded",
			Cause:   err,
		}
	}
	return toValidationError(contract, result)
}

// ValidateContractJSON validates raw JSON content against a contract
func ValidateContractJSON(contract Contract, jsonContent string) error {
	schema, err := load(contract)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(jsonContent))
	if err != nil {
		return &SchemaLoadError{
			Path:    contract.Filename(),
			Message: "document could not be loaded",
			Cause:   err,
		}
	}
	return toValidationError(contract, result)
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    "(string schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}
	return toValidationError("", result)
}

func toValidationError(contract Contract, result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	// Build structured error
	validationErr := &ValidationError{
		Contract: contract,
		Errors:   make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
