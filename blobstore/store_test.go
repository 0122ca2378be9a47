package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]BlobStore {
	return map[string]BlobStore{
		"memory": NewMemoryStore(),
		"local":  NewLocalStore(t.TempDir()),
	}
}

func TestBlobStore_Lifecycle(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			data := []byte("hello world, this is a guide tree blob")
			require.NoError(t, store.Put(ctx, "trees/a.gtree", data))
			require.NoError(t, store.Put(ctx, "trees/b.gtree", []byte("b")))
			require.NoError(t, store.Put(ctx, "other", []byte("o")))

			blob, err := store.Open(ctx, "trees/a.gtree")
			require.NoError(t, err)
			defer blob.Close()
			require.Equal(t, int64(len(data)), blob.Size())

			buf := make([]byte, 5)
			n, err := blob.ReadAt(ctx, buf, 6)
			require.NoError(t, err)
			assert.Equal(t, 5, n)
			assert.Equal(t, "world", string(buf))

			n, err = blob.ReadAt(ctx, make([]byte, 10), int64(len(data))-3)
			assert.ErrorIs(t, err, io.EOF)
			assert.Equal(t, 3, n)

			got, err := ReadAll(ctx, store, "trees/a.gtree")
			require.NoError(t, err)
			assert.Equal(t, data, got)

			names, err := store.List(ctx, "trees/")
			require.NoError(t, err)
			assert.Equal(t, []string{"trees/a.gtree", "trees/b.gtree"}, names)

			all, err := store.List(ctx, "")
			require.NoError(t, err)
			assert.Len(t, all, 3)

			require.NoError(t, store.Put(ctx, "trees/a.gtree", []byte("replaced")))
			got, err = ReadAll(ctx, store, "trees/a.gtree")
			require.NoError(t, err)
			assert.Equal(t, "replaced", string(got))

			require.NoError(t, store.Delete(ctx, "trees/a.gtree"))
			require.NoError(t, store.Delete(ctx, "trees/a.gtree"))

			_, err = store.Open(ctx, "trees/a.gtree")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestBlobStore_EmptyBlob(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(ctx, "empty", nil))

			got, err := ReadAll(ctx, store, "empty")
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestMemoryStore_CopiesOnPut(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte("abc")
	require.NoError(t, store.Put(ctx, "x", data))
	data[0] = 'z'

	got, err := ReadAll(ctx, store, "x")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestLocalStore_SkipsTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewLocalStore(dir)

	require.NoError(t, store.Put(ctx, "a", []byte("a")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tmp-b-123"), []byte("partial"), 0o644))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, names)
}

func TestLocalStore_MissingRoot(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "missing"))

	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLocalStore_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewLocalStore(t.TempDir())
	assert.ErrorIs(t, store.Put(ctx, "a", []byte("a")), context.Canceled)
}
