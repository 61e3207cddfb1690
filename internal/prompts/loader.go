// Package prompts holds the generation prompts of the tailoring service.
// They live in tailoring.json, embedded at compile time, and are addressed by Key.
package prompts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

//go:embed tailoring.json
var tailoringJSON []byte

// Key names a prompt in tailoring.json
type Key string

// System prompts
const (
	DocumentSystem         Key = "document-system"
	LaTeXSectionSystem     Key = "latex-section-system"
	PlainTextSectionSystem Key = "plain-text-section-system"
	ApplicationSystem      Key = "application-system"
	ExtractionSystem       Key = "extraction-system"
)

// User prompt templates
const (
	GenerateDocuments    Key = "generate-documents"
	ApplicationDocuments Key = "application-documents"
	OptimizeSections     Key = "optimize-sections"
)

// Keys is the full prompt set; tailoring.json must define each of them
var Keys = []Key{
	DocumentSystem, LaTeXSectionSystem, PlainTextSectionSystem, ApplicationSystem, ExtractionSystem,
	GenerateDocuments, ApplicationDocuments, OptimizeSections,
}

var placeholderPattern = regexp.MustCompile(`\{\{\.(\w+)\}\}`)

// load parses the embedded file once and checks it against Keys
var load = sync.OnceValues(func() (map[Key]string, error) {
	return parse(tailoringJSON)
})

func parse(data []byte) (map[Key]string, error) {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file tailoring.json: %w", err)
	}

	set := make(map[Key]string, len(Keys))
	for _, key := range Keys {
		text, ok := raw[string(key)]
		if !ok || strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("prompt %q missing from tailoring.json", key)
		}
		set[key] = text
	}
	return set, nil
}

// Known reports whether key belongs to the prompt set
func (k Key) Known() bool {
	for _, key := range Keys {
		if key == k {
			return true
		}
	}
	return false
}

// Get returns the prompt for key. Unknown keys are an error.
func Get(key Key) (string, error) {
	if !key.Known() {
		return "", fmt.Errorf("unknown prompt key %q", key)
	}
	set, err := load()
	if err != nil {
		return "", err
	}
	return set[key], nil
}

// MustGet is Get for prompts required by the service; it panics on unknown keys.
func MustGet(key Key) string {
	prompt, err := Get(key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Placeholders lists the {{.Name}} fields a prompt template expects, in order of first use
func Placeholders(key Key) ([]string, error) {
	prompt, err := Get(key)
	if err != nil {
		return nil, err
	}
	var names []string
	seen := make(map[string]bool)
	for _, m := range placeholderPattern.FindAllStringSubmatch(prompt, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names, nil
}

// Render fills a prompt template. Every placeholder it declares needs a value in data;
// values themselves are inserted verbatim.
func Render(key Key, data map[string]string) (string, error) {
	names, err := Placeholders(key)
	if err != nil {
		return "", err
	}
	for _, name := range names {
		if _, ok := data[name]; !ok {
			return "", fmt.Errorf("prompt %s: no value for {{.%s}}", key, name)
		}
	}
	return Format(MustGet(key), data), nil
}

// MustRender is Render for the service's fixed prompt data; it panics on a missing value.
func MustRender(key Key, data map[string]string) string {
	prompt, err := Render(key, data)
	if err != nil {
		panic(fmt.Sprintf("failed to render prompt: %v", err))
	}
	return prompt
}

// Format replaces placeholders in the form {{.Key}} with values from data.
// Each placeholder is replaced once, so values containing placeholder syntax are left alone.
func Format(template string, data map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		if value, ok := data[name]; ok {
			return value
		}
		return match
	})
}
