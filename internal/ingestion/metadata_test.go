package ingestion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_JSONRoundTrip(t *testing.T) {
	metadata := &Metadata{
		Source:    "resume.tex",
		Format:    FormatLaTeX,
		Timestamp: "2024-01-01T00:00:00Z",
		Hash:      "abcd1234",
		Chars:     42,
	}

	jsonBytes, err := metadata.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"format": "latex"`)
	assert.NotContains(t, string(jsonBytes), "platform")

	var unmarshaled Metadata
	require.NoError(t, json.Unmarshal(jsonBytes, &unmarshaled))
	assert.Equal(t, *metadata, unmarshaled)
}

func TestComputeHash(t *testing.T) {
	hash1 := computeHash("test content")
	hash2 := computeHash("different content")

	// Hash should be 64 hex characters (SHA256)
	assert.Len(t, hash1, 64)
	assert.NotEqual(t, hash1, hash2)
	assert.Equal(t, hash1, computeHash("test content"))
}

func TestNewMetadata(t *testing.T) {
	content := "Résumé text"
	metadata := NewMetadata(content, "https://example.com/job")

	assert.Equal(t, "https://example.com/job", metadata.Source)
	assert.Equal(t, computeHash(content), metadata.Hash)
	assert.Equal(t, 11, metadata.Chars)

	// Verify timestamp is valid RFC3339
	_, err := time.Parse(time.RFC3339, metadata.Timestamp)
	assert.NoError(t, err)
}

func TestNewMetadata_EmptySource(t *testing.T) {
	metadata := NewMetadata("test content", "")

	assert.Empty(t, metadata.Source)
	assert.NotEmpty(t, metadata.Timestamp)
	assert.NotEmpty(t, metadata.Hash)
}
