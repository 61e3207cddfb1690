package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "JobKeywords", "ParsedResume")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "map[string]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Input text
	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---

// JobKeywordsSchema returns the extraction schema for job description keywords.
func JobKeywordsSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "JobKeywords",
		Description: `Extract technical skills, tools, frameworks, soft skills, and action verbs
from the following job description.`,
		Fields: []SchemaField{
			{
				Name:        "technical_skills",
				Type:        "[\"string\"]",
				Description: "list of technical skills",
				Required:    true,
			},
			{
				Name:        "tools",
				Type:        "[\"string\"]",
				Description: "list of tools and technologies",
				Required:    true,
			},
			{
				Name:        "soft_skills",
				Type:        "[\"string\"]",
				Description: "list of soft skills",
				Required:    true,
			},
			{
				Name:        "action_verbs",
				Type:        "[\"string\"]",
				Description: "list of action verbs",
				Required:    true,
			},
		},
	}
}

// ResumeParseSchema returns the extraction schema for structured resume parsing.
func ResumeParseSchema() ExtractionSchema {
	return ExtractionSchema{
		Name:        "ParsedResume",
		Description: `Parse the following resume and extract the candidate's contact details, skills, experience and education.`,
		Fields: []SchemaField{
			{Name: "name", Type: "\"string\"", Required: true},
			{Name: "email", Type: "\"string\""},
			{Name: "phone", Type: "\"string\""},
			{
				Name:        "skills",
				Type:        "[\"string\"]",
				Description: "list of skills",
				Required:    true,
			},
			{
				Name:        "experience",
				Type:        "[{\"title\", \"company\", \"duration\", \"responsibilities\": [\"string\"]}]",
				Description: "one entry per role",
				Required:    true,
			},
			{
				Name:        "education",
				Type:        "[{\"degree\", \"institution\", \"year\"}]",
				Description: "one entry per degree",
				Required:    true,
			},
		},
	}
}
