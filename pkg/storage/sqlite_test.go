package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paylinkbr/paylink-core/pkg/config"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLite(context.Background(), config.StorageConfig{
		SQLitePath: filepath.Join(t.TempDir(), "device.db"),
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.Set(ctx, "k1", "v1"))
	value, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, "v1", value)
}

func TestSQLiteOverwrite(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.Set(ctx, "k1", "old"))
	require.NoError(t, store.Set(ctx, "k1", "new"))
	value, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, "new", value)
}

func TestSQLiteMissingKey(t *testing.T) {
	store := openTestStore(t)
	_, err := store.Get(context.Background(), "absent")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestSQLiteDelManyKeys(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.Set(ctx, "a", "1"))
	require.NoError(t, store.Set(ctx, "b", "2"))
	require.NoError(t, store.Set(ctx, "c", "3"))

	require.NoError(t, store.Del(ctx, "a", "b"))

	_, err := store.Get(ctx, "a")
	require.True(t, errors.Is(err, ErrNotFound))
	_, err = store.Get(ctx, "b")
	require.True(t, errors.Is(err, ErrNotFound))
	value, err := store.Get(ctx, "c")
	require.NoError(t, err)
	require.Equal(t, "3", value)
}

func TestSQLiteDelNoKeysIsNoop(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Del(context.Background()))
}
