package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/docwiser/internal/storage"
)

func newTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")
	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestSQLiteStore(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	t.Run("Get returns ErrNotFound for missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "soa.users")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Put then Get", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "soa.current_user", []byte("a@x.com")))
		got, err := store.Get(ctx, "soa.current_user")
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", string(got))
	})

	t.Run("Put overwrites", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "soa.users", []byte(`{"a":1}`)))
		require.NoError(t, store.Put(ctx, "soa.users", []byte(`{"a":2}`)))
		got, err := store.Get(ctx, "soa.users")
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":2}`, string(got))
	})

	t.Run("empty value is stored", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "empty", nil))
		got, err := store.Get(ctx, "empty")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Delete is idempotent", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "gone", []byte("x")))
		require.NoError(t, store.Delete(ctx, "gone"))
		require.NoError(t, store.Delete(ctx, "gone"))
		_, err := store.Get(ctx, "gone")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestSQLiteStore_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	store, dbPath := newTestStore(t)
	require.NoError(t, store.Put(ctx, "soa_estimate.users", []byte(`{}`)))
	require.NoError(t, store.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "soa_estimate.users")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(got))
}
