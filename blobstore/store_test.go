package blobstore

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBlobStore exercises the BlobStore contract shared by every
// implementation.
func testBlobStore(t *testing.T, store BlobStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("PutOpen", func(t *testing.T) {
		data := []byte("hello world, this is a test blob")
		require.NoError(t, store.Put(ctx, "data-001.bin", data))

		blob, err := store.Open(ctx, "data-001.bin")
		require.NoError(t, err)
		defer blob.Close()

		assert.Equal(t, int64(len(data)), blob.Size())

		buf := make([]byte, 5)
		n, err := blob.ReadAt(ctx, buf, 6)
		require.NoError(t, err)
		assert.Equal(t, 5, n)
		assert.Equal(t, "world", string(buf))

		partial := make([]byte, 10)
		n, err = blob.ReadAt(ctx, partial, int64(len(data)-4))
		assert.Equal(t, 4, n)
		assert.ErrorIs(t, err, io.EOF)

		all, err := ReadAll(ctx, blob)
		require.NoError(t, err)
		assert.Equal(t, data, all)

		streamed, err := io.ReadAll(NewReader(ctx, blob))
		require.NoError(t, err)
		assert.Equal(t, data, streamed)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "over.bin", []byte("first")))
		require.NoError(t, store.Put(ctx, "over.bin", []byte("second")))

		blob, err := store.Open(ctx, "over.bin")
		require.NoError(t, err)
		defer blob.Close()

		got, err := ReadAll(ctx, blob)
		require.NoError(t, err)
		assert.Equal(t, "second", string(got))
	})

	t.Run("PutCopiesData", func(t *testing.T) {
		data := []byte("abc")
		require.NoError(t, store.Put(ctx, "copy.bin", data))
		data[0] = 'X'

		blob, err := store.Open(ctx, "copy.bin")
		require.NoError(t, err)
		defer blob.Close()

		got, err := ReadAll(ctx, blob)
		require.NoError(t, err)
		assert.Equal(t, "abc", string(got))
	})

	t.Run("Empty", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "empty.bin", nil))

		blob, err := store.Open(ctx, "empty.bin")
		require.NoError(t, err)
		defer blob.Close()

		assert.Zero(t, blob.Size())
		got, err := ReadAll(ctx, blob)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := store.Open(ctx, "missing.bin")
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("ListDelete", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "tables/a.idxa", []byte("a")))
		require.NoError(t, store.Put(ctx, "tables/b.idxa", []byte("b")))
		require.NoError(t, store.Put(ctx, "other/c.idxa", []byte("c")))

		names, err := store.List(ctx, "tables/")
		require.NoError(t, err)
		assert.Equal(t, []string{"tables/a.idxa", "tables/b.idxa"}, names)

		require.NoError(t, store.Delete(ctx, "tables/a.idxa"))
		require.NoError(t, store.Delete(ctx, "tables/a.idxa"), "deleting a missing blob is not an error")

		names, err = store.List(ctx, "tables/")
		require.NoError(t, err)
		assert.Equal(t, []string{"tables/b.idxa"}, names)

		_, err = store.Open(ctx, "tables/a.idxa")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Canceled", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		assert.ErrorIs(t, store.Put(canceled, "canceled.bin", []byte("x")), context.Canceled)
		_, err := store.Open(canceled, "data-001.bin")
		assert.Error(t, err)
	})
}

func TestMemoryStore(t *testing.T) {
	testBlobStore(t, NewMemoryStore())
}

func TestLocalStore(t *testing.T) {
	testBlobStore(t, NewLocalStore(t.TempDir()))
}

func TestCachingStore(t *testing.T) {
	testBlobStore(t, NewCachingStore(NewMemoryStore(), 1<<20))
}

func TestCachingStore_Hits(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	store := NewCachingStore(inner, 1<<20)

	require.NoError(t, store.Put(ctx, "t.idxa", []byte("v1")))

	for range 3 {
		b, err := store.Open(ctx, "t.idxa")
		require.NoError(t, err)
		got, err := ReadAll(ctx, b)
		require.NoError(t, err)
		assert.Equal(t, "v1", string(got))
	}

	hits, misses := store.Stats()
	assert.Equal(t, int64(2), hits)
	assert.Equal(t, int64(1), misses)

	require.NoError(t, store.Put(ctx, "t.idxa", []byte("v2")))
	b, err := store.Open(ctx, "t.idxa")
	require.NoError(t, err)
	got, err := ReadAll(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(got), "Put invalidates the cached blob")

	require.NoError(t, store.Delete(ctx, "t.idxa"))
	_, err = store.Open(ctx, "t.idxa")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_InvalidName(t *testing.T) {
	assert.ErrorIs(t, NewMemoryStore().Put(context.Background(), "", nil), ErrInvalidName)
}

func TestBytesBlob_ReadAt(t *testing.T) {
	ctx := context.Background()
	b := bytesBlob("abc")

	_, err := b.ReadAt(ctx, make([]byte, 1), -1)
	assert.ErrorIs(t, err, errNegativeOffset)

	p := make([]byte, 4)
	n, err := b.ReadAt(ctx, p, 1)
	assert.Equal(t, 2, n)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "bc", string(p[:n]))

	_, err = b.ReadAt(ctx, p, 3)
	assert.ErrorIs(t, err, io.EOF)

	data, err := b.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))
}
