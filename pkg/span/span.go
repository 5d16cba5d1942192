// Package span defines the pattern match model shared by the scanner and renderer.
package span

//go:generate stringer -type=Kind -trimprefix=Kind

// Kind classifies an inline pattern found in description text.
//
// The declaration order is the scan precedence: when two candidate matches
// overlap, the kind declared first wins and the later candidate is dropped.
// Changing this order changes which pattern wins in ambiguous text, so it
// is a fixed contract, not an implementation detail.
type Kind uint8

const (
	KindBold     Kind = iota // **content**
	KindItalic               // *content*
	KindHashtag              // #tag or #tag/sub
	KindImageRef             // [imgN] or [img...]
)

// Match represents a classified span of bytes in description text.
// Offsets are half-open: the match covers [Start, End).
type Match struct {
	// Kind classifies what this match represents.
	Kind Kind

	// Start is the byte index where the match begins (inclusive).
	Start int

	// End is the byte index where the match ends (exclusive).
	End int

	// Content is the inner text with markers stripped. For hashtags this is
	// the path after '#'; for image refs the index digits or "...".
	Content string
}

// Text returns the full source text of this match, markers included.
func (m Match) Text(source string) string {
	if m.Start < 0 || m.End > len(source) || m.Start > m.End {
		return ""
	}
	return source[m.Start:m.End]
}

// Len returns the length of this match in bytes.
func (m Match) Len() int {
	return m.End - m.Start
}

// Overlaps reports whether this match shares any byte with other.
func (m Match) Overlaps(other Match) bool {
	return m.Start < other.End && other.Start < m.End
}

// Validate checks that a match slice satisfies the scanner contract:
// matches are sorted ascending by Start, non-overlapping, non-empty, and
// stay within [0, contentLen). Returns true if valid.
func Validate(matches []Match, contentLen int) bool {
	for i, m := range matches {
		if m.Start < 0 || m.End > contentLen || m.Start >= m.End {
			return false
		}
		if i > 0 && m.Start < matches[i-1].End {
			return false
		}
	}
	return true
}
