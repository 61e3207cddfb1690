package editing

import (
	"fmt"
	"sort"

	"github.com/jonathan/application-tailor/internal/types"
)

// HeadlineKey labels the headline edit
const HeadlineKey = "headline"

// Edit replaces text[Start:End] of the original document with Replacement.
type Edit struct {
	Key         string
	Start       int
	End         int
	Replacement string
}

// SpanError reports an edit whose span is invalid against the document
type SpanError struct {
	Message string
	Edit    Edit
}

func (e *SpanError) Error() string {
	return fmt.Sprintf("span error: %s (%s [%d:%d])", e.Message, e.Edit.Key, e.Edit.Start, e.Edit.End)
}

// ApplyEdits applies all edits against the original text in one pass.
// Offsets refer to the unedited text, so edits are folded from the highest start down.
func ApplyEdits(text string, edits []Edit) (string, error) {
	if len(edits) == 0 {
		return text, nil
	}

	ordered := make([]Edit, len(edits))
	copy(ordered, edits)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Start > ordered[j].Start })

	for i, e := range ordered {
		if e.Start < 0 || e.End < e.Start || e.End > len(text) {
			return "", &SpanError{Message: "span out of range", Edit: e}
		}
		if i > 0 && e.End > ordered[i-1].Start {
			return "", &SpanError{Message: fmt.Sprintf("overlaps %s edit", ordered[i-1].Key), Edit: e}
		}
	}

	result := text
	for _, e := range ordered {
		result = result[:e.Start] + e.Replacement + result[e.End:]
	}
	return result, nil
}

// SectionEdits builds one edit per update that survives sanitization and targets a located section.
// Protected sections are never edited.
func SectionEdits(located types.SectionMap, updates types.SectionUpdateSet, dialect types.Dialect) []Edit {
	var edits []Edit
	for _, key := range types.AllSectionKeys {
		proposed, ok := updates[key]
		if !ok || key.IsProtected() {
			continue
		}
		section, found := located[key]
		if !found {
			continue
		}
		sanitized := SanitizeSection(proposed, key, dialect)
		if sanitized == "" {
			continue
		}
		edits = append(edits, Edit{
			Key:         string(key),
			Start:       section.Start,
			End:         section.End,
			Replacement: "\n" + sanitized + "\n",
		})
	}
	return edits
}

// HeadlineEdit builds the headline edit. ok is false when there is no headline,
// the candidate is rejected, or it equals the current headline.
func HeadlineEdit(headline *types.Headline, candidate string, dialect types.Dialect) (Edit, bool) {
	if headline == nil {
		return Edit{}, false
	}
	sanitized := SanitizeHeadline(candidate, dialect)
	if sanitized == "" || sanitized == headline.Text {
		return Edit{}, false
	}
	return Edit{Key: HeadlineKey, Start: headline.Start, End: headline.End, Replacement: sanitized}, true
}

// WithHeadline appends the headline edit unless it overlaps one of the section edits.
func WithHeadline(edits []Edit, headline Edit) ([]Edit, bool) {
	for _, e := range edits {
		if headline.Start < e.End && e.Start < headline.End {
			return edits, false
		}
	}
	return append(edits, headline), true
}

// ApplySectionUpdates replaces the updated sections of text
func ApplySectionUpdates(text string, located types.SectionMap, updates types.SectionUpdateSet, dialect types.Dialect) (string, error) {
	return ApplyEdits(text, SectionEdits(located, updates, dialect))
}

// ApplyHeadlineUpdate replaces the headline. changed is false for rejected or no-op candidates.
func ApplyHeadlineUpdate(text string, headline *types.Headline, candidate string, dialect types.Dialect) (updated string, changed bool, err error) {
	edit, ok := HeadlineEdit(headline, candidate, dialect)
	if !ok {
		return text, false, nil
	}
	updated, err = ApplyEdits(text, []Edit{edit})
	if err != nil {
		return text, false, err
	}
	return updated, true, nil
}
