package correction

import (
	"context"
	"errors"
	"fmt"

	"github.com/mr-c/raptor/blobstore"
	"github.com/mr-c/raptor/internal/compress"
)

// Cache persists correction tables across runs.
//
// Load reports (table, true, nil) on a hit and (Table{}, false, nil) when no
// artifact exists. A stored artifact that cannot be trusted yields an error
// for which IsStale is true; callers Evict it and rebuild.
type Cache interface {
	Load(ctx context.Context, p Params) (Table, bool, error)
	Store(ctx context.Context, p Params, t Table) error
	Evict(ctx context.Context, p Params) error
}

// BlobCache stores tables as artifacts in a blobstore.
type BlobCache struct {
	store       blobstore.BlobStore
	compression compress.Type
}

// CacheOption configures a BlobCache.
type CacheOption func(*BlobCache)

// WithCompression selects the payload compression of written artifacts.
// Reading accepts every supported compression regardless.
func WithCompression(t compress.Type) CacheOption {
	return func(c *BlobCache) {
		c.compression = t
	}
}

// NewBlobCache returns a cache backed by store.
func NewBlobCache(store blobstore.BlobStore, opts ...CacheOption) *BlobCache {
	c := &BlobCache{store: store, compression: compress.None}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BlobStore returns the underlying store.
func (c *BlobCache) BlobStore() blobstore.BlobStore { return c.store }

// Load reads the table for p. With ThresholdOverride set nothing is read.
func (c *BlobCache) Load(ctx context.Context, p Params) (Table, bool, error) {
	if p.ThresholdOverride {
		return Table{}, false, nil
	}

	key := Key(p)
	data, err := blobstore.ReadAll(ctx, c.store, key)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return Table{}, false, nil
		}
		return Table{}, false, fmt.Errorf("read %s: %w", key, err)
	}

	t, err := Decode(data)
	if err != nil {
		return Table{}, false, fmt.Errorf("%s: %w", key, err)
	}

	// The key pins the parameters, so the covered range must match them.
	if minimal, maximal := p.Bounds(); t.Min() != minimal || t.Max() != maximal {
		return Table{}, false, fmt.Errorf("%s: %w: covers [%d, %d], parameters need [%d, %d]",
			key, ErrCorruptArtifact, t.Min(), t.Max(), minimal, maximal)
	}
	return t, true, nil
}

// Store writes t as the artifact for p. Whether an existing artifact is
// replaced depends on the store: the local and memory stores overwrite it,
// the first-writer-wins remote stores keep it. Callers replacing an artifact
// Evict it first.
func (c *BlobCache) Store(ctx context.Context, p Params, t Table) error {
	data, err := Encode(t, c.compression)
	if err != nil {
		return err
	}
	key := Key(p)
	if err := c.store.Put(ctx, key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Evict deletes the artifact for p.
func (c *BlobCache) Evict(ctx context.Context, p Params) error {
	return c.store.Delete(ctx, Key(p))
}

// List returns the names of all correction artifacts in the store.
func (c *BlobCache) List(ctx context.Context) ([]string, error) {
	names, err := c.store.List(ctx, keyPrefix)
	if err != nil {
		return nil, err
	}
	out := names[:0]
	for _, n := range names {
		if IsKey(n) {
			out = append(out, n)
		}
	}
	return out, nil
}

type disabled struct{}

// Disabled returns a Cache that never finds or keeps anything.
func Disabled() Cache { return disabled{} }

func (disabled) Load(context.Context, Params) (Table, bool, error) { return Table{}, false, nil }
func (disabled) Store(context.Context, Params, Table) error         { return nil }
func (disabled) Evict(context.Context, Params) error                { return nil }
