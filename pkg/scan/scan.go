// Package scan finds inline markup patterns in description text.
//
// The scanner recognises four pattern classes: bold, italic, hashtag, and
// image reference. Patterns are collected in a fixed precedence order
// (bold, italic, hashtag, image ref); any candidate that overlaps an
// already accepted match is discarded. The result is sorted ascending by
// start offset and never overlaps.
package scan

import (
	"regexp"
	"sort"

	"github.com/flowtasks/flowtext/pkg/span"
)

// Pattern expressions, one per span.Kind.
//
// Bold content is non-greedy and ends at the nearest following marker pair,
// so "**a*b*c**" is one bold match and the inner single stars never reach
// the italic pass. Go's regexp has no lookaround, so the italic expression
// captures one context byte on each side and the scanner trims the captured
// group back to the marker pair.
var (
	boldRe    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe  = regexp.MustCompile(`(^|[^*])\*([^*\n]+)\*($|[^*])`)
	hashtagRe = regexp.MustCompile(`#([A-Za-z0-9_]+(?:/[A-Za-z0-9_]+)?)`)
	imageRe   = regexp.MustCompile(`\[img([0-9]+|\.\.\.)\]`)
)

// Scan finds all inline patterns in text.
// The returned matches are sorted ascending by Start and do not overlap.
// Empty or markup-free text yields an empty result; malformed markers
// (an unterminated "**", an unpaired "*") simply produce no match.
func Scan(text string) []span.Match {
	if text == "" {
		return nil
	}

	var accepted []span.Match

	accepted = appendMatches(accepted, span.KindBold, boldRe, text)
	accepted = appendItalicMatches(accepted, text)
	accepted = appendMatches(accepted, span.KindHashtag, hashtagRe, text)
	accepted = appendMatches(accepted, span.KindImageRef, imageRe, text)

	sort.Slice(accepted, func(i, j int) bool {
		return accepted[i].Start < accepted[j].Start
	})

	return accepted
}

// appendMatches runs re over text and accepts every candidate that does not
// overlap an already accepted match. The first capture group is the content.
func appendMatches(accepted []span.Match, kind span.Kind, re *regexp.Regexp, text string) []span.Match {
	for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
		m := span.Match{
			Kind:    kind,
			Start:   loc[0],
			End:     loc[1],
			Content: text[loc[2]:loc[3]],
		}
		if !overlapsAny(accepted, m) {
			accepted = append(accepted, m)
		}
	}
	return accepted
}

// appendItalicMatches handles the italic pass. The expression consumes one
// byte of context on each side to rule out adjacent asterisks, and consumed
// context would hide an immediately following candidate ("*a* *b*"), so the
// pass rescans from the end of each marker pair rather than the end of the
// regexp match.
func appendItalicMatches(accepted []span.Match, text string) []span.Match {
	pos := 0
	for pos < len(text) {
		loc := italicRe.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		// Content is group 2; the marker pair surrounds it.
		start := pos + loc[4] - 1
		end := pos + loc[5] + 1
		m := span.Match{
			Kind:    span.KindItalic,
			Start:   start,
			End:     end,
			Content: text[pos+loc[4] : pos+loc[5]],
		}
		if !overlapsAny(accepted, m) {
			accepted = append(accepted, m)
		}
		pos = end
	}
	return accepted
}

func overlapsAny(accepted []span.Match, m span.Match) bool {
	for _, a := range accepted {
		if a.Overlaps(m) {
			return true
		}
	}
	return false
}
