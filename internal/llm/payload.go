package llm

import (
	"encoding/json"
	"strings"
)

const parseExcerptChars = 200

// ExtractJSONPayload decodes the JSON object in a provider response.
// The whole text is tried first, then the body of the first ```json fence, then of the first ``` fence.
func ExtractJSONPayload(text string) (map[string]any, error) {
	if text == "" {
		return nil, &ParseError{Message: "empty response from AI service"}
	}

	var payload map[string]any
	err := json.Unmarshal([]byte(text), &payload)
	if err == nil && payload != nil {
		return payload, nil
	}

	if fenced, ok := fenceBody(text, "```json"); ok {
		return decodeFenced(fenced, text)
	}
	if fenced, ok := fenceBody(text, "```"); ok {
		return decodeFenced(fenced, text)
	}

	return nil, &ParseError{
		Message: "invalid JSON response from AI service",
		Excerpt: excerpt(text, parseExcerptChars),
		Cause:   err,
	}
}

// fenceBody returns the text between the first opening marker and the next closing fence
func fenceBody(text, opening string) (string, bool) {
	_, after, found := strings.Cut(text, opening)
	if !found {
		return "", false
	}
	body, _, _ := strings.Cut(after, "```")
	return strings.TrimSpace(body), true
}

// decodeFenced parses a fence body; failures quote the raw response
func decodeFenced(body, raw string) (map[string]any, error) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(body), &payload); err != nil || payload == nil {
		return nil, &ParseError{
			Message: "invalid JSON inside code fence",
			Excerpt: excerpt(raw, parseExcerptChars),
			Cause:   err,
		}
	}
	return payload, nil
}

func excerpt(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
