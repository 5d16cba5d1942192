package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/flowtasks/flowtext/pkg/render"
	"github.com/flowtasks/flowtext/pkg/tags"
)

// ForStyle returns the lipgloss style for a segment style kind.
func (s *Styles) ForStyle(kind render.StyleKind) lipgloss.Style {
	switch kind {
	case render.StyleMarker:
		return s.Marker
	case render.StyleBold:
		return s.Bold
	case render.StyleItalic:
		return s.Italic
	case render.StyleHashtag:
		return s.Hashtag
	case render.StyleImage:
		return s.Image
	default:
		return s.Plain
	}
}

// FormatSegments renders a segment list as one styled string.
// Newlines inside segments pass through untouched, so multi-line
// descriptions keep their shape.
func (s *Styles) FormatSegments(segments []render.Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(s.ForStyle(seg.Style).Render(seg.Text))
	}
	return b.String()
}

// FormatDropdown renders the suggestion dropdown with one line per tag and
// the selected entry highlighted.
func (s *Styles) FormatDropdown(suggestions []tags.Tag, selected int) string {
	var b strings.Builder
	for i, tag := range suggestions {
		line := "#" + tag.FullPath
		if tag.Depth > 0 {
			line = "  " + line
		}
		if i == selected {
			b.WriteString(s.Selected.Render(line))
		} else {
			b.WriteString(s.Suggestion.Render(line))
		}
		if i < len(suggestions)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
