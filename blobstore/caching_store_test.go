package blobstore

import (
	"context"
	"testing"

	"github.com/mr-c/raptor/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	*MemoryStore
	gets int
}

func (c *countingStore) Get(ctx context.Context, name string) ([]byte, error) {
	c.gets++
	return c.MemoryStore.Get(ctx, name)
}

func newTestCachingStore() (*CachingStore, *countingStore) {
	inner := &countingStore{MemoryStore: NewMemoryStore()}
	lru := cache.NewLRU(1<<20, func(b []byte) int64 { return int64(len(b)) }, nil)
	return NewCachingStore(inner, lru), inner
}

func TestCachingStore_Contract(t *testing.T) {
	s, _ := newTestCachingStore()
	storeSuite(t, s)
}

func TestCachingStore_ReadThrough(t *testing.T) {
	ctx := t.Context()
	s, inner := newTestCachingStore()

	require.NoError(t, inner.Put(ctx, "a", []byte("one")))

	for range 3 {
		got, err := s.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, []byte("one"), got)
	}
	assert.Equal(t, 1, inner.gets)

	// Put invalidates the cached copy.
	require.NoError(t, s.Put(ctx, "a", []byte("two")))
	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), got)
	assert.Equal(t, 2, inner.gets)

	require.NoError(t, s.Delete(ctx, "a"))
	_, err = s.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCachingStore_ReturnsCopies(t *testing.T) {
	ctx := t.Context()
	s, inner := newTestCachingStore()
	require.NoError(t, inner.Put(ctx, "a", []byte{1, 2}))

	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	got[0] = 9

	again, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, again)
}
