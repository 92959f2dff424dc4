package cache

// SizeFunc reports the number of bytes a cached value holds.
type SizeFunc[V any] func(V) int64

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits    int64
	Misses  int64
	Entries int
	Bytes   int64
}

// Cache is a string-keyed in-process cache.
// Cached values must be treated as immutable by callers.
type Cache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V)
	Remove(key string)
	// Invalidate removes entries whose key matches the predicate.
	Invalidate(predicate func(key string) bool)
	Stats() Stats
}
