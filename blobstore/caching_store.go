package blobstore

import (
	"context"

	"github.com/hupe1980/idxarray/internal/cache"
)

// CachingStore wraps a BlobStore and keeps recently opened blobs in memory.
//
// Blobs are cached whole, which suits snapshots: they are small and always
// read in full. Put and Delete through the CachingStore invalidate the
// entry; writes made directly to the inner store are not observed.
type CachingStore struct {
	inner BlobStore
	cache *cache.LRU
}

// NewCachingStore creates a new CachingStore holding at most capacity
// bytes of blob data.
func NewCachingStore(inner BlobStore, capacity int64) *CachingStore {
	return &CachingStore{
		inner: inner,
		cache: cache.NewLRU(capacity),
	}
}

// Open returns the cached blob or reads it from the inner store.
func (s *CachingStore) Open(ctx context.Context, name string) (Blob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if data, ok := s.cache.Get(name); ok {
		return bytesBlob(data), nil
	}

	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	data, err := ReadAll(ctx, b)
	if err != nil {
		return nil, err
	}
	s.cache.Set(name, data)
	return bytesBlob(data), nil
}

// Put writes through to the inner store.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	defer s.cache.Delete(name)
	return s.inner.Put(ctx, name, data)
}

// Delete removes the blob from the cache and the inner store.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	defer s.cache.Delete(name)
	return s.inner.Delete(ctx, name)
}

// List is served by the inner store.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Stats returns the cache hit and miss counts.
func (s *CachingStore) Stats() (hits, misses int64) {
	return s.cache.Stats()
}
