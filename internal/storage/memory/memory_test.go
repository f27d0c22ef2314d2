package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/docwiser/internal/storage"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	value := []byte("hello")
	require.NoError(t, s.Put(ctx, "k", value))
	value[0] = 'j'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got), "store must copy on write")

	got[0] = 'x'
	again, _ := s.Get(ctx, "k")
	assert.Equal(t, "hello", string(again), "store must copy on read")

	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, s.Delete(ctx, "k"))
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
