package attach_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowtasks/flowtext/pkg/attach"
)

// blockingUploader holds every upload until release is closed.
type blockingUploader struct {
	release chan struct{}
	index   int
	err     error
}

func (u *blockingUploader) Upload(context.Context, []byte, string) (int, error) {
	<-u.release
	return u.index, u.err
}

func TestRef(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[img0]", attach.Ref(0))
	assert.Equal(t, "[img12]", attach.Ref(12))
}

func TestFinish(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		result   attach.Result
		expected string
	}{
		{
			name:     "success resolves placeholder",
			text:     "before [img...] after",
			result:   attach.Result{Index: 3},
			expected: "before [img3] after",
		},
		{
			name:     "failure removes placeholder",
			text:     "before [img...] after",
			result:   attach.Result{Err: errors.New("upload failed")},
			expected: "before  after",
		},
		{
			name:     "no placeholder passes through",
			text:     "nothing pending here",
			result:   attach.Result{Index: 7},
			expected: "nothing pending here",
		},
		{
			name:     "only first placeholder is replaced",
			text:     "[img...] [img...]",
			result:   attach.Result{Index: 0},
			expected: "[img0] [img...]",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := attach.Finish(testCase.text, testCase.result)
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestPaster_Paste(t *testing.T) {
	t.Parallel()

	uploader := &blockingUploader{release: make(chan struct{}), index: 3}
	paster := attach.NewPaster(uploader)

	text, cursor, done, err := paster.Paste(context.Background(), "ab", 1, []byte("png bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "a[img...]b", text)
	assert.Equal(t, 1+len(attach.Pending), cursor)
	assert.True(t, paster.Busy())

	close(uploader.release)

	var res attach.Result
	select {
	case res = <-done:
		require.NoError(t, res.Err)
		assert.Equal(t, 3, res.Index)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for upload result")
	}

	// The flag is held until the result is applied.
	assert.True(t, paster.Busy())
	assert.Equal(t, "a[img3]b", paster.Finish(text, res))
	assert.False(t, paster.Busy())
}

func TestPaster_BusyUntilResultApplied(t *testing.T) {
	t.Parallel()

	uploader := &blockingUploader{release: make(chan struct{}), index: 0}
	paster := attach.NewPaster(uploader)

	text, _, done, err := paster.Paste(context.Background(), "", 0, nil, "image/png")
	require.NoError(t, err)

	close(uploader.release)
	res := <-done

	// The upload is finished but the buffer still holds the placeholder; a
	// paste here would insert a second placeholder and the pending result
	// would resolve the wrong one.
	_, _, _, err = paster.Paste(context.Background(), text, 0, nil, "image/png")
	require.ErrorIs(t, err, attach.ErrUploadInFlight)

	text = paster.Finish(text, res)
	assert.Equal(t, "[img0]", text)
	assert.False(t, paster.Busy())
}

func TestPaster_RejectsConcurrentPaste(t *testing.T) {
	t.Parallel()

	uploader := &blockingUploader{release: make(chan struct{})}
	paster := attach.NewPaster(uploader)

	first, _, done, err := paster.Paste(context.Background(), "", 0, nil, "image/png")
	require.NoError(t, err)

	text, cursor, _, err := paster.Paste(context.Background(), "other", 2, nil, "image/png")
	require.ErrorIs(t, err, attach.ErrUploadInFlight)
	assert.Equal(t, "other", text)
	assert.Equal(t, 2, cursor)

	close(uploader.release)
	paster.Finish(first, <-done)
	assert.False(t, paster.Busy())
}

func TestPaster_OutOfRangeCursor(t *testing.T) {
	t.Parallel()

	uploader := &blockingUploader{release: make(chan struct{})}
	paster := attach.NewPaster(uploader)

	text, cursor, _, err := paster.Paste(context.Background(), "ab", 9, nil, "image/png")
	require.Error(t, err)
	assert.Equal(t, "ab", text)
	assert.Equal(t, 9, cursor)

	// The busy flag is released so a corrected paste can proceed.
	assert.False(t, paster.Busy())
}

func TestPaster_FailedUploadReleasesBusy(t *testing.T) {
	t.Parallel()

	uploader := &blockingUploader{release: make(chan struct{}), err: errors.New("disk full")}
	paster := attach.NewPaster(uploader)

	text, _, done, err := paster.Paste(context.Background(), "x", 1, nil, "image/png")
	require.NoError(t, err)

	close(uploader.release)
	res := <-done
	require.Error(t, res.Err)

	assert.Equal(t, "x", paster.Finish(text, res))
	assert.False(t, paster.Busy())
}

func TestDirStore(t *testing.T) {
	t.Parallel()

	store, err := attach.NewDirStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Upload(context.Background(), []byte("png"), "image/png")
	require.NoError(t, err)
	second, err := store.Upload(context.Background(), []byte("jpg"), "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, 2, store.Len())

	path, ok := store.Resolve(0)
	require.True(t, ok)
	assert.FileExists(t, path)

	_, ok = store.Resolve(2)
	assert.False(t, ok)
	_, ok = store.Resolve(-1)
	assert.False(t, ok)
}

func TestDirStore_CancelledContext(t *testing.T) {
	t.Parallel()

	store, err := attach.NewDirStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Upload(ctx, []byte("png"), "image/png")
	assert.Error(t, err)
	assert.Equal(t, 0, store.Len())
}
