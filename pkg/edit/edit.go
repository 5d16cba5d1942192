// Package edit provides byte-offset text splicing for the editing engine.
// Splices drive autocomplete commits and image placeholder substitution.
package edit

import (
	"fmt"
	"sort"
	"strings"
)

// TextEdit represents a single replacement of bytes [Start, End) with NewText.
type TextEdit struct {
	// Start is the byte index where the edit begins (inclusive).
	Start int

	// End is the byte index where the edit ends (exclusive).
	End int

	// NewText is the replacement text. Empty means deletion.
	NewText string
}

// ValidationError describes an edit with an invalid range.
type ValidationError struct {
	Edit    TextEdit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.Start, e.Edit.End, e.Message)
}

// ConflictError describes overlapping edits.
type ConflictError struct {
	First  TextEdit
	Second TextEdit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("overlapping edits: [%d:%d] and [%d:%d]",
		e.First.Start, e.First.End, e.Second.Start, e.Second.End)
}

// Validate checks that all edits have valid ranges for the given content length.
func Validate(edits []TextEdit, contentLen int) error {
	for _, e := range edits {
		if e.Start < 0 {
			return &ValidationError{Edit: e, Message: "start offset is negative"}
		}
		if e.End < e.Start {
			return &ValidationError{Edit: e, Message: "end offset is before start offset"}
		}
		if e.End > contentLen {
			return &ValidationError{
				Edit:    e,
				Message: fmt.Sprintf("end offset %d exceeds content length %d", e.End, contentLen),
			}
		}
	}
	return nil
}

// Prepare validates and sorts edits and rejects overlaps.
// Returns a sorted copy ready for Apply.
func Prepare(edits []TextEdit, contentLen int) ([]TextEdit, error) {
	if len(edits) == 0 {
		return nil, nil
	}
	if err := Validate(edits, contentLen); err != nil {
		return nil, err
	}

	sorted := make([]TextEdit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start < sorted[i-1].End {
			return nil, &ConflictError{First: sorted[i-1], Second: sorted[i]}
		}
	}

	return sorted, nil
}

// Apply applies sorted, non-overlapping edits to content.
// Use Prepare first; Apply assumes its contract holds.
func Apply(content string, edits []TextEdit) string {
	if len(edits) == 0 {
		return content
	}

	var b strings.Builder
	delta := 0
	for _, e := range edits {
		delta += len(e.NewText) - (e.End - e.Start)
	}
	b.Grow(len(content) + delta)

	cursor := 0
	for _, e := range edits {
		b.WriteString(content[cursor:e.Start])
		b.WriteString(e.NewText)
		cursor = e.End
	}
	b.WriteString(content[cursor:])

	return b.String()
}

// Splice replaces bytes [start, end) of content with newText and returns the
// result together with the cursor position immediately after the insertion.
// Out-of-bounds or inverted ranges leave content unchanged and report ok=false.
func Splice(content string, start, end int, newText string) (result string, cursor int, ok bool) {
	if start < 0 || end < start || end > len(content) {
		return content, -1, false
	}
	result = content[:start] + newText + content[end:]
	return result, start + len(newText), true
}
