package scan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowtasks/flowtext/pkg/scan"
	"github.com/flowtasks/flowtext/pkg/span"
)

func TestScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected []span.Match
	}{
		{
			name:     "empty text",
			text:     "",
			expected: nil,
		},
		{
			name:     "plain text",
			text:     "nothing to see here",
			expected: nil,
		},
		{
			name: "bold",
			text: "do **this** now",
			expected: []span.Match{
				{Kind: span.KindBold, Start: 3, End: 11, Content: "this"},
			},
		},
		{
			name: "italic",
			text: "do *this* now",
			expected: []span.Match{
				{Kind: span.KindItalic, Start: 3, End: 9, Content: "this"},
			},
		},
		{
			name: "italic at string boundaries",
			text: "*word*",
			expected: []span.Match{
				{Kind: span.KindItalic, Start: 0, End: 6, Content: "word"},
			},
		},
		{
			name: "adjacent italics both kept",
			text: "*a* *b*",
			expected: []span.Match{
				{Kind: span.KindItalic, Start: 0, End: 3, Content: "a"},
				{Kind: span.KindItalic, Start: 4, End: 7, Content: "b"},
			},
		},
		{
			name: "hashtag",
			text: "buy milk #home",
			expected: []span.Match{
				{Kind: span.KindHashtag, Start: 9, End: 14, Content: "home"},
			},
		},
		{
			name: "hashtag with one sub level",
			text: "text #proj/sub more",
			expected: []span.Match{
				{Kind: span.KindHashtag, Start: 5, End: 14, Content: "proj/sub"},
			},
		},
		{
			name: "hashtag depth is capped at one sub level",
			text: "#a/b/c",
			expected: []span.Match{
				{Kind: span.KindHashtag, Start: 0, End: 4, Content: "a/b"},
			},
		},
		{
			name: "numbered image reference",
			text: "see [img2]",
			expected: []span.Match{
				{Kind: span.KindImageRef, Start: 4, End: 10, Content: "2"},
			},
		},
		{
			name: "pending image placeholder",
			text: "[img...]",
			expected: []span.Match{
				{Kind: span.KindImageRef, Start: 0, End: 8, Content: "..."},
			},
		},
		{
			name:     "unterminated bold is plain",
			text:     "**abc",
			expected: nil,
		},
		{
			name:     "unpaired italic marker is plain",
			text:     "*abc",
			expected: nil,
		},
		{
			name:     "malformed image ref is plain",
			text:     "[imgx] [img]",
			expected: nil,
		},
		{
			name: "all four kinds",
			text: "a **b** *c* #d [img2]",
			expected: []span.Match{
				{Kind: span.KindBold, Start: 2, End: 7, Content: "b"},
				{Kind: span.KindItalic, Start: 8, End: 11, Content: "c"},
				{Kind: span.KindHashtag, Start: 12, End: 14, Content: "d"},
				{Kind: span.KindImageRef, Start: 15, End: 21, Content: "2"},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := scan.Scan(testCase.text)
			assert.Equal(t, testCase.expected, got)
			assert.True(t, span.Validate(got, len(testCase.text)))
		})
	}
}

func TestScan_BoldWinsOverInnerItalic(t *testing.T) {
	t.Parallel()

	matches := scan.Scan("**a*b*c**")

	require.Len(t, matches, 1)
	assert.Equal(t, span.KindBold, matches[0].Kind)
	assert.Equal(t, 0, matches[0].Start)
	assert.Equal(t, 9, matches[0].End)
	assert.Equal(t, "a*b*c", matches[0].Content)
}

func TestScan_BoldWinsOverInnerHashtag(t *testing.T) {
	t.Parallel()

	matches := scan.Scan("**#tag**")

	require.Len(t, matches, 1)
	assert.Equal(t, span.KindBold, matches[0].Kind)
}

func TestScan_ItalicNotAdjacentToSecondStar(t *testing.T) {
	t.Parallel()

	// "*a**b*" has a second star adjacent to both candidate markers.
	assert.Empty(t, scan.Scan("*a**b*"))
}

func FuzzScan(f *testing.F) {
	f.Add("")
	f.Add("plain")
	f.Add("**bold** and *italic*")
	f.Add("**a*b*c**")
	f.Add("#proj/sub [img3] [img...]")
	f.Add("* ** *** **** #")
	f.Add("**#a** *#b* [img1]#c")

	f.Fuzz(func(t *testing.T, text string) {
		matches := scan.Scan(text)

		if !span.Validate(matches, len(text)) {
			t.Fatalf("scan produced invalid matches for %q: %#v", text, matches)
		}

		// Every match text must be reproducible from its offsets.
		for _, m := range matches {
			if m.Text(text) == "" {
				t.Errorf("match %#v has empty text in %q", m, text)
			}
		}
	})
}
