// Package suggest implements hashtag autocomplete over a text buffer.
//
// The controller is a synchronous state machine driven by the host editing
// surface: every text or cursor change is reported through Observe, keyboard
// navigation moves the selection, and Commit splices the chosen tag into the
// text. The controller owns only its session record; the text buffer stays
// with the host.
package suggest

import (
	"context"

	"github.com/flowtasks/flowtext/pkg/edit"
	"github.com/flowtasks/flowtext/pkg/tags"
)

// State is the controller lifecycle state.
type State uint8

const (
	// StateIdle means no hashtag query is being composed.
	StateIdle State = iota

	// StateComposing means a '#query' is tracked and suggestions are shown.
	StateComposing
)

// Session tracks an in-progress hashtag query.
type Session struct {
	// QueryStart is the byte offset of the tracked '#'.
	QueryStart int

	// Cursor is the cursor position at the time of the last Observe.
	Cursor int

	// Query is the text between the '#' and the cursor.
	Query string

	// Suggestions is the ordered suggestion list for Query.
	Suggestions []tags.Tag

	// Selected is the index of the highlighted suggestion.
	Selected int
}

// Controller observes text and cursor changes and maintains the
// autocomplete session. Not safe for concurrent use; the host event loop
// calls it from a single goroutine.
type Controller struct {
	source  tags.Source
	state   State
	session Session
}

// NewController creates a controller backed by the given suggestion source.
func NewController(source tags.Source) *Controller {
	return &Controller{source: source}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Session returns a copy of the current session.
// Meaningful only while composing.
func (c *Controller) Session() Session {
	return c.session
}

// Active reports whether a suggestion dropdown should be visible.
func (c *Controller) Active() bool {
	return c.state == StateComposing && len(c.session.Suggestions) > 0
}

// Observe processes a text or cursor change.
//
// Scanning backward from the cursor through same-line text, the nearest '#'
// with no whitespace between it and the cursor opens or updates a session;
// anything else (no '#', intervening whitespace, a newline) ends it. A
// source failure or an empty suggestion list also ends the session: the
// dropdown hides, no error surfaces.
func (c *Controller) Observe(ctx context.Context, text string, cursor int) {
	start, ok := queryStart(text, cursor)
	if !ok {
		c.reset()
		return
	}

	query := text[start+1 : cursor]
	suggestions, err := c.source.Query(ctx, query)
	if err != nil || len(suggestions) == 0 {
		c.reset()
		return
	}

	selected := 0
	if c.state == StateComposing && c.session.QueryStart == start && c.session.Selected < len(suggestions) {
		selected = c.session.Selected
	}

	c.state = StateComposing
	c.session = Session{
		QueryStart:  start,
		Cursor:      cursor,
		Query:       query,
		Suggestions: suggestions,
		Selected:    selected,
	}
}

// MoveDown advances the selection, wrapping past the end.
func (c *Controller) MoveDown() {
	c.move(1)
}

// MoveUp retreats the selection, wrapping past the start.
func (c *Controller) MoveUp() {
	c.move(-1)
}

func (c *Controller) move(delta int) {
	n := len(c.session.Suggestions)
	if c.state != StateComposing || n == 0 {
		return
	}
	c.session.Selected = ((c.session.Selected+delta)%n + n) % n
}

// Commit splices the selected suggestion into text: the region from the
// tracked '#' through the session cursor becomes "#<FullPath> " and the
// returned cursor sits just after the inserted space. A stale session
// (text changed underneath it) is a bounds-checked no-op with ok false.
// On success the controller returns to idle.
func (c *Controller) Commit(text string) (newText string, newCursor int, ok bool) {
	if c.state != StateComposing || len(c.session.Suggestions) == 0 {
		return text, -1, false
	}

	s := c.session
	tag := s.Suggestions[s.Selected]

	if s.QueryStart >= len(text) || text[s.QueryStart] != '#' {
		return text, -1, false
	}
	newText, newCursor, ok = edit.Splice(text, s.QueryStart, s.Cursor, "#"+tag.FullPath+" ")
	if !ok {
		return text, -1, false
	}

	c.reset()
	return newText, newCursor, true
}

// Cancel ends the session, e.g. on escape.
func (c *Controller) Cancel() {
	c.reset()
}

// Blur ends the session on focus loss not caused by a commit.
func (c *Controller) Blur() {
	c.reset()
}

func (c *Controller) reset() {
	c.state = StateIdle
	c.session = Session{}
}

// queryStart finds the '#' opening an in-progress query before cursor.
// It scans backward through same-line text and stops at whitespace or a
// newline; reaching a '#' first means a query is being composed.
func queryStart(text string, cursor int) (int, bool) {
	if cursor < 0 || cursor > len(text) {
		return 0, false
	}
	for i := cursor - 1; i >= 0; i-- {
		switch text[i] {
		case '#':
			return i, true
		case ' ', '\t', '\n', '\r':
			return 0, false
		}
	}
	return 0, false
}
