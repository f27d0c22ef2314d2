package account

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/docwiser/internal/models"
)

var (
	pngBytes = "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00"
	gifBytes = "GIF89a\x01\x00\x01\x00\x00\x00\x00;"
)

func waitResult(t *testing.T, ch <-chan StampResult) StampResult {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("stamp load did not complete")
		return StampResult{}
	}
}

func newStampAccount(t *testing.T) (*testAccount, *StampLoader) {
	t.Helper()
	a := newTestAccount(t, models.DocTypeStatement)
	_, err := a.profiles.GetOrCreate(context.Background(), "a@x.com")
	require.NoError(t, err)
	return a, NewStampLoader(a.profiles, 1024)
}

func TestStampLoader_Load(t *testing.T) {
	a, loader := newStampAccount(t)
	ctx := context.Background()

	_, ch := loader.Load(ctx, "a@x.com", strings.NewReader(pngBytes))
	result := waitResult(t, ch)
	require.NoError(t, result.Err)
	assert.True(t, result.Applied)

	p, err := a.profiles.Load(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p.Stamp, "data:image/png;base64,"), p.Stamp)
}

func TestStampLoader_StaleCompletionIsDiscarded(t *testing.T) {
	a, loader := newStampAccount(t)
	ctx := context.Background()

	slowReader, slowWriter := io.Pipe()
	firstToken, first := loader.Load(ctx, "a@x.com", slowReader)

	secondToken, second := loader.Load(ctx, "a@x.com", strings.NewReader(gifBytes))
	assert.Greater(t, secondToken, firstToken)
	require.NoError(t, waitResult(t, second).Err)

	// The older request finishes last and must not win.
	_, err := slowWriter.Write([]byte(pngBytes))
	require.NoError(t, err)
	require.NoError(t, slowWriter.Close())

	result := waitResult(t, first)
	assert.ErrorIs(t, result.Err, ErrStaleStamp)
	assert.False(t, result.Applied)

	p, err := a.profiles.Load(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p.Stamp, "data:image/gif;base64,"), p.Stamp)
}

func TestStampLoader_ClearDiscardsInFlight(t *testing.T) {
	a, loader := newStampAccount(t)
	ctx := context.Background()

	_, ch := loader.Load(ctx, "a@x.com", strings.NewReader(pngBytes))
	require.NoError(t, waitResult(t, ch).Err)

	slowReader, slowWriter := io.Pipe()
	_, pending := loader.Load(ctx, "a@x.com", slowReader)
	require.NoError(t, loader.Clear(ctx, "a@x.com"))

	_, _ = slowWriter.Write([]byte(gifBytes))
	slowWriter.Close()
	assert.ErrorIs(t, waitResult(t, pending).Err, ErrStaleStamp)

	p, err := a.profiles.Load(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, p.Stamp)
}

func TestStampLoader_FailuresKeepPreviousStamp(t *testing.T) {
	a, loader := newStampAccount(t)
	ctx := context.Background()

	_, ch := loader.Load(ctx, "a@x.com", strings.NewReader(pngBytes))
	require.NoError(t, waitResult(t, ch).Err)
	before, err := a.profiles.Load(ctx, "a@x.com")
	require.NoError(t, err)

	tests := []struct {
		name   string
		reader io.Reader
	}{
		{"not an image", strings.NewReader("hello, plain text")},
		{"too large", strings.NewReader(pngBytes + strings.Repeat("x", 2048))},
		{"empty", strings.NewReader("")},
		{"read error", io.MultiReader(strings.NewReader("GIF"), errReader{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ch := loader.Load(ctx, "a@x.com", tt.reader)
			result := waitResult(t, ch)
			assert.Error(t, result.Err)
			assert.False(t, result.Applied)

			after, err := a.profiles.Load(ctx, "a@x.com")
			require.NoError(t, err)
			assert.Equal(t, before.Stamp, after.Stamp)
		})
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }
