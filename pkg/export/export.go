// Package export converts description text to HTML for sharing.
//
// Image references and hashtags are rewritten into standard Markdown before
// conversion, so the output needs no custom renderer: a resolvable [imgN]
// becomes an image, a hashtag becomes a link when a tag base URL is set.
// Unresolvable references stay as literal text.
package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/flowtasks/flowtext/pkg/attach"
	"github.com/flowtasks/flowtext/pkg/edit"
	"github.com/flowtasks/flowtext/pkg/scan"
	"github.com/flowtasks/flowtext/pkg/span"
)

// Options controls HTML export.
type Options struct {
	// Resolver maps image indices to displayable locations.
	// Nil leaves all image references as literal text.
	Resolver attach.Resolver

	// TagBaseURL, when non-empty, turns hashtags into links of the form
	// <TagBaseURL>/<full-path>.
	TagBaseURL string
}

// HTML renders description text as HTML.
func HTML(text string, opts Options) (string, error) {
	rewritten, err := rewrite(text, opts)
	if err != nil {
		return "", err
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert([]byte(rewritten), &buf); err != nil {
		return "", fmt.Errorf("convert description: %w", err)
	}
	return buf.String(), nil
}

// rewrite replaces image references and hashtags with Markdown equivalents.
func rewrite(text string, opts Options) (string, error) {
	var edits []edit.TextEdit

	for _, m := range scan.Scan(text) {
		switch m.Kind {
		case span.KindImageRef:
			replacement, ok := imageMarkdown(m, opts.Resolver)
			if ok {
				edits = append(edits, edit.TextEdit{Start: m.Start, End: m.End, NewText: replacement})
			}
		case span.KindHashtag:
			if opts.TagBaseURL != "" {
				link := fmt.Sprintf("[#%s](%s/%s)", m.Content, opts.TagBaseURL, m.Content)
				edits = append(edits, edit.TextEdit{Start: m.Start, End: m.End, NewText: link})
			}
		}
	}

	prepared, err := edit.Prepare(edits, len(text))
	if err != nil {
		return "", fmt.Errorf("rewrite description: %w", err)
	}
	return edit.Apply(text, prepared), nil
}

// imageMarkdown builds the Markdown image for a resolvable reference.
// Pending placeholders and unknown indices are left alone.
func imageMarkdown(m span.Match, resolver attach.Resolver) (string, bool) {
	if resolver == nil || m.Content == "..." {
		return "", false
	}
	index, err := strconv.Atoi(m.Content)
	if err != nil {
		return "", false
	}
	location, ok := resolver.Resolve(index)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("![img%d](%s)", index, location), true
}
