package raptor

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/mr-c/raptor/blobstore"
	"github.com/mr-c/raptor/correction"
	"github.com/mr-c/raptor/internal/cache"
	"github.com/mr-c/raptor/internal/resource"
)

// Corrector computes correction tables and keeps them in a persistent cache.
//
// A Corrector is safe for concurrent use. Concurrent requests for the same
// parameters share one load or build.
type Corrector struct {
	opts options

	tables cache.Cache[correction.Table]
	rc     *resource.Controller
	group  singleflight.Group

	mu     sync.Mutex
	caches map[string]correction.Cache // default caches by index directory
}

// New creates a Corrector.
func New(optFns ...Option) *Corrector {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.cache == nil && opts.store != nil {
		opts.cache = correction.NewBlobCache(opts.store, correction.WithCompression(opts.compression))
	}

	c := &Corrector{
		opts:   opts,
		rc:     opts.resources,
		caches: make(map[string]correction.Cache),
	}
	if opts.memoryCacheBytes > 0 {
		c.tables = cache.NewShardedLRU[correction.Table](opts.memoryCacheBytes, tableSize, c.rc)
	}
	return c
}

// PrecomputeCorrection computes or loads the correction table for p using a
// Corrector configured by opts.
func PrecomputeCorrection(ctx context.Context, p correction.Params, opts ...Option) (correction.Table, error) {
	return New(opts...).Precompute(ctx, p)
}

// Precompute returns the correction table for p.
//
// With ThresholdOverride set, Precompute returns the absent table and does
// nothing else. A stored table is used when one exists; a corrupt or foreign
// artifact is discarded and rebuilt. If the artifact store cannot be read the
// error matches ErrCacheRead. If the computed table cannot be written,
// Precompute returns the table together with an error matching ErrCacheWrite.
func (c *Corrector) Precompute(ctx context.Context, p correction.Params) (correction.Table, error) {
	if p.ThresholdOverride {
		return correction.Table{}, nil
	}
	if err := p.Validate(); err != nil {
		return correction.Table{}, err
	}

	store := c.cacheFor(p)
	key := correction.Key(p)
	memKey := c.memoryKey(p, key)

	if c.tables != nil {
		if t, ok := c.tables.Get(memKey); ok {
			c.opts.metricsCollector.RecordMemoryHit()
			return t, nil
		}
	}

	v, _, _ := c.group.Do(memKey, func() (any, error) {
		t, err := c.precompute(ctx, store, p, key)
		return result{table: t, err: err}, nil
	})
	res := v.(result)

	if c.tables != nil && !res.table.IsZero() {
		c.tables.Set(memKey, res.table)
	}
	return res.table, res.err
}

type result struct {
	table correction.Table
	err   error
}

func (c *Corrector) precompute(ctx context.Context, store correction.Cache, p correction.Params, key string) (correction.Table, error) {
	log := c.opts.logger.WithParams(p.PatternSize, p.WindowSize, p.KmerSize(), p.FPR, p.PMax)

	t, hit, err := c.load(ctx, store, p, key, log)
	switch {
	case err == nil && hit:
		return t, nil
	case err == nil:
	case correction.IsStale(err):
		log.LogCorruption(ctx, key, err)
		c.opts.metricsCollector.RecordCorruption()
		if err := store.Evict(ctx, p); err != nil && !errors.Is(err, blobstore.ErrNotFound) {
			log.WarnContext(ctx, "evicting stale correction artifact failed", "key", key, "error", err)
		}
	default:
		return correction.Table{}, translateError("load", key, err)
	}

	t, err = c.build(ctx, p, log)
	if err != nil {
		return correction.Table{}, err
	}

	if err := c.store(ctx, store, p, t, key, log); err != nil {
		return t, translateError("store", key, err)
	}
	return t, nil
}

func (c *Corrector) load(ctx context.Context, store correction.Cache, p correction.Params, key string, log *Logger) (correction.Table, bool, error) {
	if err := c.rc.WaitStore(ctx); err != nil {
		return correction.Table{}, false, err
	}

	start := time.Now()
	t, hit, err := store.Load(ctx, p)
	c.opts.metricsCollector.RecordLoad(hit, time.Since(start), err)
	if !correction.IsStale(err) {
		log.LogLoad(ctx, key, hit, err)
	}
	return t, hit, err
}

func (c *Corrector) build(ctx context.Context, p correction.Params, log *Logger) (correction.Table, error) {
	if err := c.rc.AcquireBuild(ctx); err != nil {
		return correction.Table{}, err
	}
	defer c.rc.ReleaseBuild()

	start := time.Now()
	t, err := correction.Build(p)
	elapsed := time.Since(start)

	c.opts.metricsCollector.RecordBuild(t.Len(), elapsed, err)
	log.LogBuild(ctx, t.Len(), elapsed, err)
	return t, err
}

func (c *Corrector) store(ctx context.Context, store correction.Cache, p correction.Params, t correction.Table, key string, log *Logger) error {
	var err error
	for attempt := 1; attempt <= c.opts.storeRetries+1; attempt++ {
		if err = c.rc.WaitStore(ctx); err != nil {
			return err
		}

		start := time.Now()
		err = store.Store(ctx, p, t)
		c.opts.metricsCollector.RecordStore(time.Since(start), err)
		log.LogStore(ctx, key, attempt, err)
		if err == nil {
			return nil
		}
	}
	return err
}

// cacheFor returns the persistent cache for p.
func (c *Corrector) cacheFor(p correction.Params) correction.Cache {
	switch {
	case !c.opts.caching:
		return correction.Disabled()
	case c.opts.cache != nil:
		return c.opts.cache
	}

	dir := p.CacheDir()

	c.mu.Lock()
	defer c.mu.Unlock()

	if bc, ok := c.caches[dir]; ok {
		return bc
	}
	bc := correction.NewBlobCache(blobstore.NewLocalStore(dir), correction.WithCompression(c.opts.compression))
	c.caches[dir] = bc
	return bc
}

// memoryKey scopes key by index directory when tables live next to the index.
func (c *Corrector) memoryKey(p correction.Params, key string) string {
	if !c.opts.caching || c.opts.cache != nil {
		return key
	}
	return filepath.Join(p.CacheDir(), key)
}

func tableSize(t correction.Table) int64 {
	return int64(t.Len())*8 + 32
}
