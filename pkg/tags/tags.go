// Package tags provides the hierarchical tag catalog and the suggestion
// source consumed by hashtag autocomplete.
package tags

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Tag is a hierarchical label addressable by a hashtag-like path string.
// A tag is at most one level deep ("proj" or "proj/sub"), matching the
// hashtag grammar the scanner accepts.
type Tag struct {
	// Name is the final path element ("sub" for "proj/sub").
	Name string

	// FullPath is the complete path without the leading '#'.
	FullPath string

	// Depth is 0 for top-level tags and 1 for sub-tags.
	Depth int
}

// Source supplies ordered tag suggestions for a query prefix.
// Implementations may hit a network or database; a failed query is treated
// by callers as "no suggestions", never surfaced as a user-visible error.
type Source interface {
	Query(ctx context.Context, prefix string) ([]Tag, error)
}

// MaxDepth is the deepest tag path the catalog accepts.
const MaxDepth = 1

// Catalog is an in-memory Source with case-insensitive prefix matching.
// Safe for concurrent use.
type Catalog struct {
	mu   sync.RWMutex
	tags []Tag
}

// NewCatalog creates a catalog from full tag paths.
// Paths deeper than MaxDepth or with empty elements are rejected.
func NewCatalog(paths []string) (*Catalog, error) {
	c := &Catalog{}
	for _, p := range paths {
		if err := c.Add(p); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add registers a tag by its full path. Duplicates are ignored.
func (c *Catalog) Add(path string) error {
	tag, err := Parse(path)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.tags {
		if strings.EqualFold(existing.FullPath, tag.FullPath) {
			return nil
		}
	}
	c.tags = append(c.tags, tag)
	sortTags(c.tags)
	return nil
}

// Query returns all tags whose full path starts with prefix,
// case-insensitively, ordered by depth then path. An empty prefix returns
// the whole catalog.
func (c *Catalog) Query(_ context.Context, prefix string) ([]Tag, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lower := strings.ToLower(prefix)
	var out []Tag
	for _, t := range c.tags {
		if strings.HasPrefix(strings.ToLower(t.FullPath), lower) {
			out = append(out, t)
		}
	}
	return out, nil
}

// Len returns the number of tags in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tags)
}

// All returns a copy of every tag in catalog order.
func (c *Catalog) All() []Tag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Tag, len(c.tags))
	copy(out, c.tags)
	return out
}

// Parse converts a full path string into a Tag.
// A leading '#' is tolerated and stripped.
func Parse(path string) (Tag, error) {
	path = strings.TrimPrefix(path, "#")
	if path == "" {
		return Tag{}, fmt.Errorf("empty tag path")
	}

	parts := strings.Split(path, "/")
	if len(parts) > MaxDepth+1 {
		return Tag{}, fmt.Errorf("tag path %q exceeds max depth %d", path, MaxDepth)
	}
	for _, part := range parts {
		if part == "" {
			return Tag{}, fmt.Errorf("tag path %q has an empty element", path)
		}
	}

	return Tag{
		Name:     parts[len(parts)-1],
		FullPath: path,
		Depth:    len(parts) - 1,
	}, nil
}

func sortTags(ts []Tag) {
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].Depth != ts[j].Depth {
			return ts[i].Depth < ts[j].Depth
		}
		return strings.ToLower(ts[i].FullPath) < strings.ToLower(ts[j].FullPath)
	})
}
