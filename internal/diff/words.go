// Package diff produces word-level diffs between an original and a tailored document.
package diff

import (
	"strings"

	"github.com/jonathan/application-tailor/internal/types"
	"github.com/pmezard/go-difflib/difflib"
)

// Words splits both texts on whitespace and returns the word diff in document order.
// A replaced run is reported as its removed words followed by its added words.
func Words(original, updated string) []types.DiffEntry {
	a := strings.Fields(original)
	b := strings.Fields(updated)

	entries := make([]types.DiffEntry, 0, max(len(a), len(b)))
	for _, op := range difflib.NewMatcher(a, b).GetOpCodes() {
		switch op.Tag {
		case 'e':
			entries = appendWords(entries, types.DiffUnchanged, a[op.I1:op.I2])
		case 'd':
			entries = appendWords(entries, types.DiffRemoved, a[op.I1:op.I2])
		case 'i':
			entries = appendWords(entries, types.DiffAdded, b[op.J1:op.J2])
		case 'r':
			entries = appendWords(entries, types.DiffRemoved, a[op.I1:op.I2])
			entries = appendWords(entries, types.DiffAdded, b[op.J1:op.J2])
		}
	}
	return entries
}

// Summary counts entries by type
func Summary(entries []types.DiffEntry) map[types.DiffType]int {
	counts := map[types.DiffType]int{
		types.DiffAdded:     0,
		types.DiffRemoved:   0,
		types.DiffUnchanged: 0,
	}
	for _, e := range entries {
		counts[e.Type]++
	}
	return counts
}

func appendWords(entries []types.DiffEntry, kind types.DiffType, words []string) []types.DiffEntry {
	for _, w := range words {
		entries = append(entries, types.DiffEntry{Type: kind, Word: w})
	}
	return entries
}
