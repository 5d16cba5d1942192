// Package render turns description text and its pattern matches into an
// ordered list of styled segments.
//
// Rendering is lossless: markers stay visible and every source byte appears
// in exactly one segment, so concatenating the segment texts reproduces the
// input. Any UI layer (terminal, HTML, native text view) can consume the
// segment list through its own style adapter.
package render

import (
	"strings"

	"github.com/flowtasks/flowtext/pkg/scan"
	"github.com/flowtasks/flowtext/pkg/span"
)

//go:generate stringer -type=StyleKind -trimprefix=Style

// StyleKind describes the semantic style of a segment.
type StyleKind uint8

const (
	StylePlain   StyleKind = iota
	StyleMarker            // the literal ** or * punctuation
	StyleBold              // content between bold markers
	StyleItalic            // content between italic markers
	StyleHashtag           // full hashtag including '#'
	StyleImage             // full image reference including brackets
)

// Segment is a contiguous run of text sharing one style.
type Segment struct {
	Text  string
	Style StyleKind
}

// Render walks matches in order and emits styled segments covering all of
// text. Matches must be sorted and non-overlapping (the scan contract).
// Bold and italic matches emit marker/content/marker triples; hashtag and
// image matches emit a single segment with markers included. Gaps and
// trailing text become plain segments; text without matches is one plain
// segment. Empty text yields no segments.
func Render(text string, matches []span.Match) []Segment {
	if text == "" {
		return nil
	}
	if len(matches) == 0 {
		return []Segment{{Text: text, Style: StylePlain}}
	}

	segments := make([]Segment, 0, len(matches)*3+1)
	prev := 0

	for _, m := range matches {
		if m.Start > prev {
			segments = append(segments, Segment{Text: text[prev:m.Start], Style: StylePlain})
		}
		segments = append(segments, matchSegments(text, m)...)
		prev = m.End
	}

	if prev < len(text) {
		segments = append(segments, Segment{Text: text[prev:], Style: StylePlain})
	}

	return segments
}

// Annotate scans and renders text in one step.
func Annotate(text string) []Segment {
	return Render(text, scan.Scan(text))
}

// Join concatenates the segment texts. For segments produced by Render this
// reproduces the source text exactly.
func Join(segments []Segment) string {
	var b strings.Builder
	total := 0
	for _, seg := range segments {
		total += len(seg.Text)
	}
	b.Grow(total)
	for _, seg := range segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// matchSegments emits the structurally appropriate segments for one match.
func matchSegments(text string, m span.Match) []Segment {
	full := m.Text(text)

	switch m.Kind {
	case span.KindBold:
		return []Segment{
			{Text: "**", Style: StyleMarker},
			{Text: m.Content, Style: StyleBold},
			{Text: "**", Style: StyleMarker},
		}
	case span.KindItalic:
		return []Segment{
			{Text: "*", Style: StyleMarker},
			{Text: m.Content, Style: StyleItalic},
			{Text: "*", Style: StyleMarker},
		}
	case span.KindHashtag:
		return []Segment{{Text: full, Style: StyleHashtag}}
	case span.KindImageRef:
		return []Segment{{Text: full, Style: StyleImage}}
	default:
		return []Segment{{Text: full, Style: StylePlain}}
	}
}
