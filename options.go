package raptor

import (
	"github.com/mr-c/raptor/blobstore"
	"github.com/mr-c/raptor/correction"
	"github.com/mr-c/raptor/internal/compress"
	"github.com/mr-c/raptor/internal/resource"
)

// Compression selects how artifact payloads are compressed on write.
type Compression = compress.Type

const (
	// CompressionNone stores payloads as is.
	CompressionNone = compress.None
	// CompressionLZ4 compresses payloads with LZ4.
	CompressionLZ4 = compress.LZ4
	// CompressionZstd compresses payloads with Zstandard.
	CompressionZstd = compress.Zstd
)

// DefaultMemoryCacheBytes is the default capacity of the in-process table cache.
const DefaultMemoryCacheBytes = 4 << 20

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	cache            correction.Cache
	store            blobstore.BlobStore
	caching          bool
	compression      compress.Type
	memoryCacheBytes int64
	storeRetries     int
	resources        *resource.Controller
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		caching:          true,
		compression:      compress.None,
		memoryCacheBytes: DefaultMemoryCacheBytes,
		storeRetries:     1,
	}
}

// Option configures a Corrector.
type Option func(*options)

// WithLogger configures structured logging.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &raptor.BasicMetricsCollector{}
//	c := raptor.New(raptor.WithMetricsCollector(metrics))
//	// ... precompute tables ...
//	stats := metrics.GetStats()
//	fmt.Printf("Builds: %d, Corruptions: %d\n", stats.BuildCount, stats.Corruptions)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithCache persists tables through c instead of the index directory.
// It takes precedence over WithStore.
func WithCache(c correction.Cache) Option {
	return func(o *options) {
		o.cache = c
	}
}

// WithStore persists tables as artifacts in store.
// The compression configured by WithCompression applies.
func WithStore(store blobstore.BlobStore) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithCaching enables or disables persistent caching. Disabled, every
// Precompute builds the table and nothing is read or written.
func WithCaching(enabled bool) Option {
	return func(o *options) {
		o.caching = enabled
	}
}

// WithCompression selects the payload compression of written artifacts.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithMemoryCache sets the capacity in bytes of the in-process table cache.
// 0 disables it.
func WithMemoryCache(bytes int64) Option {
	return func(o *options) {
		o.memoryCacheBytes = bytes
	}
}

// WithStoreRetries sets how often a failed artifact write is retried.
func WithStoreRetries(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.storeRetries = n
	}
}

// WithResourceLimits bounds in-process cache memory, concurrent table builds
// and artifact store operations per second. Zero values mean the defaults:
// unlimited memory, one build at a time, unlimited store rate.
func WithResourceLimits(memoryBytes, maxConcurrentBuilds int64, storeOpsPerSec float64) Option {
	return func(o *options) {
		o.resources = resource.NewController(resource.Config{
			MemoryLimitBytes:    memoryBytes,
			MaxConcurrentBuilds: maxConcurrentBuilds,
			StoreOpsPerSec:      storeOpsPerSec,
		})
	}
}
