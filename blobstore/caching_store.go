package blobstore

import (
	"context"
	"slices"

	"github.com/mr-c/raptor/internal/cache"
)

// CachingStore keeps whole blobs read from a slower store in an in-process
// cache. Artifacts are small and immutable once published, so the entire
// blob is the unit of caching.
type CachingStore struct {
	inner BlobStore
	cache cache.Cache[[]byte]
}

// NewCachingStore wraps inner with a byte cache.
func NewCachingStore(inner BlobStore, c cache.Cache[[]byte]) *CachingStore {
	return &CachingStore{inner: inner, cache: c}
}

// Open serves the blob from the cache, reading it through on a miss.
func (s *CachingStore) Open(ctx context.Context, name string) (Blob, error) {
	data, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return NewBytesBlob(data), nil
}

// Get returns the blob contents, reading through on a miss.
func (s *CachingStore) Get(ctx context.Context, name string) ([]byte, error) {
	if data, ok := s.cache.Get(name); ok {
		return slices.Clone(data), nil
	}
	data, err := ReadAll(ctx, s.inner, name)
	if err != nil {
		return nil, err
	}
	s.cache.Set(name, slices.Clone(data))
	return data, nil
}

// Put invalidates the cached copy and writes through.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	s.cache.Remove(name)
	return s.inner.Put(ctx, name, data)
}

// Delete invalidates the cached copy and deletes from the inner store.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	s.cache.Remove(name)
	return s.inner.Delete(ctx, name)
}

// List delegates to the inner store.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}
