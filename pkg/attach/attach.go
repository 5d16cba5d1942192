// Package attach implements the paste-to-upload image flow.
//
// A paste inserts a synchronous placeholder token into the text and starts
// the upload in the background. When the upload resolves, the host applies
// a single substitution: the placeholder becomes a numbered image reference
// on success and disappears on failure. A busy flag rejects a second paste
// while one is in flight; there is no cancellation and no timeout.
package attach

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/flowtasks/flowtext/pkg/edit"
)

// Pending is the placeholder token standing in for an image whose index is
// not yet known.
const Pending = "[img...]"

// Ref returns the resolved reference for a stored image index.
func Ref(index int) string {
	return fmt.Sprintf("[img%d]", index)
}

// Uploader stores pasted image bytes and returns the index of the new image.
type Uploader interface {
	Upload(ctx context.Context, data []byte, mime string) (int, error)
}

// Resolver turns a stored image index into a displayable location.
type Resolver interface {
	Resolve(index int) (string, bool)
}

// ErrUploadInFlight is returned when a paste arrives while an earlier
// upload has not finished.
var ErrUploadInFlight = errors.New("attach: an upload is already in flight")

// Result is the outcome of one upload.
type Result struct {
	Index int
	Err   error
}

// Paster coordinates placeholder insertion with the background upload.
type Paster struct {
	uploader Uploader
	busy     atomic.Bool
}

// NewPaster creates a Paster backed by the given uploader.
func NewPaster(uploader Uploader) *Paster {
	return &Paster{uploader: uploader}
}

// Busy reports whether an upload is in flight.
func (p *Paster) Busy() bool {
	return p.busy.Load()
}

// Paste inserts the pending placeholder at cursor and starts the upload.
// It returns the updated text, the cursor after the placeholder, and a
// channel delivering exactly one Result when the upload finishes. The host
// applies that result with the Finish method, which also releases the busy
// flag; the flag stays set through the whole paste, so a second paste can
// never land between upload completion and the placeholder substitution.
// A concurrent paste fails with ErrUploadInFlight; an out-of-range cursor
// leaves the text unchanged.
func (p *Paster) Paste(ctx context.Context, text string, cursor int, data []byte, mime string) (string, int, <-chan Result, error) {
	if !p.busy.CompareAndSwap(false, true) {
		return text, cursor, nil, ErrUploadInFlight
	}

	newText, newCursor, ok := edit.Splice(text, cursor, cursor, Pending)
	if !ok {
		p.busy.Store(false)
		return text, cursor, nil, fmt.Errorf("attach: cursor %d out of range", cursor)
	}

	done := make(chan Result, 1)
	go func() {
		index, err := p.uploader.Upload(ctx, data, mime)
		done <- Result{Index: index, Err: err}
		close(done)
	}()

	return newText, newCursor, done, nil
}

// Finish applies res to text and releases the busy flag. Hosts that pasted
// through this Paster must resolve results here rather than through the
// package function, or the paster stays busy.
func (p *Paster) Finish(text string, res Result) string {
	defer p.busy.Store(false)
	return Finish(text, res)
}

// Finish applies an upload result to text. The first pending placeholder
// becomes Ref(index) on success and is removed on failure; surrounding text
// is untouched either way. Text without a placeholder passes through, so a
// stale result cannot corrupt an edited buffer.
func Finish(text string, res Result) string {
	at := strings.Index(text, Pending)
	if at < 0 {
		return text
	}
	if res.Err != nil {
		return text[:at] + text[at+len(Pending):]
	}
	return text[:at] + Ref(res.Index) + text[at+len(Pending):]
}
