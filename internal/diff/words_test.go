package diff

import (
	"testing"

	"github.com/jonathan/application-tailor/internal/types"
	"github.com/stretchr/testify/assert"
)

func entries(pairs ...string) []types.DiffEntry {
	var out []types.DiffEntry
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, types.DiffEntry{Type: types.DiffType(pairs[i]), Word: pairs[i+1]})
	}
	return out
}

func TestWords(t *testing.T) {
	tests := []struct {
		name     string
		original string
		updated  string
		expected []types.DiffEntry
	}{
		{
			name:     "identical",
			original: "built REST APIs",
			updated:  "built  REST\nAPIs",
			expected: entries("unchanged", "built", "unchanged", "REST", "unchanged", "APIs"),
		},
		{
			name:     "replace emits removed then added",
			original: "junior python developer",
			updated:  "backend django developer",
			expected: entries(
				"removed", "junior", "removed", "python",
				"added", "backend", "added", "django",
				"unchanged", "developer",
			),
		},
		{
			name:     "insert",
			original: "python developer",
			updated:  "python django developer",
			expected: entries("unchanged", "python", "added", "django", "unchanged", "developer"),
		},
		{
			name:     "delete",
			original: "python django developer",
			updated:  "python developer",
			expected: entries("unchanged", "python", "removed", "django", "unchanged", "developer"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Words(tt.original, tt.updated))
		})
	}
}

func TestWords_Empty(t *testing.T) {
	assert.Empty(t, Words("", ""))
	assert.Equal(t, entries("added", "hello"), Words("", "hello"))
	assert.Equal(t, entries("removed", "hello"), Words("hello", "   "))
}

func TestSummary(t *testing.T) {
	counts := Summary(Words("a b c", "a x c d"))
	assert.Equal(t, 1, counts[types.DiffRemoved])
	assert.Equal(t, 2, counts[types.DiffAdded])
	assert.Equal(t, 2, counts[types.DiffUnchanged])
}
