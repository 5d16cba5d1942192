package span_test

import (
	"testing"

	"github.com/flowtasks/flowtext/pkg/span"
)

func TestMatch_Text(t *testing.T) {
	t.Parallel()

	source := "do **this** now"

	tests := []struct {
		name     string
		match    span.Match
		expected string
	}{
		{
			name:     "full bold match",
			match:    span.Match{Kind: span.KindBold, Start: 3, End: 11, Content: "this"},
			expected: "**this**",
		},
		{
			name:     "leading text",
			match:    span.Match{Kind: span.KindBold, Start: 0, End: 2},
			expected: "do",
		},
		{
			name:     "empty range",
			match:    span.Match{Start: 5, End: 5},
			expected: "",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := testCase.match.Text(source)
			if got != testCase.expected {
				t.Errorf("expected %q, got %q", testCase.expected, got)
			}
		})
	}
}

func TestMatch_TextInvalidRange(t *testing.T) {
	t.Parallel()

	source := "hello"

	tests := []struct {
		name  string
		match span.Match
	}{
		{
			name:  "negative start",
			match: span.Match{Start: -1, End: 3},
		},
		{
			name:  "end past content",
			match: span.Match{Start: 0, End: 100},
		},
		{
			name:  "start after end",
			match: span.Match{Start: 5, End: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.match.Text(source); got != "" {
				t.Errorf("expected empty string for invalid range, got %q", got)
			}
		})
	}
}

func TestMatch_Overlaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     span.Match
		expected bool
	}{
		{"disjoint", span.Match{Start: 0, End: 3}, span.Match{Start: 3, End: 6}, false},
		{"nested", span.Match{Start: 0, End: 9}, span.Match{Start: 3, End: 6}, true},
		{"partial", span.Match{Start: 0, End: 5}, span.Match{Start: 4, End: 8}, true},
		{"identical", span.Match{Start: 2, End: 4}, span.Match{Start: 2, End: 4}, true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := testCase.a.Overlaps(testCase.b); got != testCase.expected {
				t.Errorf("a.Overlaps(b) = %v, want %v", got, testCase.expected)
			}
			if got := testCase.b.Overlaps(testCase.a); got != testCase.expected {
				t.Errorf("b.Overlaps(a) = %v, want %v", got, testCase.expected)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     span.Kind
		expected string
	}{
		{span.KindBold, "Bold"},
		{span.KindItalic, "Italic"},
		{span.KindHashtag, "Hashtag"},
		{span.KindImageRef, "ImageRef"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()

			if tt.kind.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.kind.String())
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		matches    []span.Match
		contentLen int
		expected   bool
	}{
		{
			name:       "empty is valid",
			matches:    nil,
			contentLen: 0,
			expected:   true,
		},
		{
			name: "sorted non-overlapping",
			matches: []span.Match{
				{Start: 0, End: 3},
				{Start: 5, End: 9},
			},
			contentLen: 10,
			expected:   true,
		},
		{
			name: "adjacent is valid",
			matches: []span.Match{
				{Start: 0, End: 3},
				{Start: 3, End: 6},
			},
			contentLen: 6,
			expected:   true,
		},
		{
			name: "overlap is invalid",
			matches: []span.Match{
				{Start: 0, End: 4},
				{Start: 3, End: 6},
			},
			contentLen: 6,
			expected:   false,
		},
		{
			name: "unsorted is invalid",
			matches: []span.Match{
				{Start: 5, End: 9},
				{Start: 0, End: 3},
			},
			contentLen: 10,
			expected:   false,
		},
		{
			name: "empty match is invalid",
			matches: []span.Match{
				{Start: 3, End: 3},
			},
			contentLen: 5,
			expected:   false,
		},
		{
			name: "end past content is invalid",
			matches: []span.Match{
				{Start: 0, End: 9},
			},
			contentLen: 5,
			expected:   false,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := span.Validate(testCase.matches, testCase.contentLen)
			if got != testCase.expected {
				t.Errorf("expected %v, got %v", testCase.expected, got)
			}
		})
	}
}
