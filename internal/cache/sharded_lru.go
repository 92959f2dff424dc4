package cache

import (
	"hash/maphash"

	"github.com/mr-c/raptor/internal/resource"
)

const numShards = 16

// ShardedLRU distributes keys over independent LRUs.
type ShardedLRU[V any] struct {
	shards [numShards]*LRU[V]
	seed   maphash.Seed
}

// NewShardedLRU creates a sharded cache; capacity is divided evenly across shards.
func NewShardedLRU[V any](capacity int64, sizeOf SizeFunc[V], rc *resource.Controller) *ShardedLRU[V] {
	shardCapacity := max(capacity/numShards, 1)

	s := &ShardedLRU[V]{seed: maphash.MakeSeed()}
	for i := range numShards {
		s.shards[i] = NewLRU(shardCapacity, sizeOf, rc)
	}
	return s
}

func (s *ShardedLRU[V]) shard(key string) *LRU[V] {
	return s.shards[maphash.String(s.seed, key)%numShards]
}

// Get returns a cached value.
func (s *ShardedLRU[V]) Get(key string) (V, bool) {
	return s.shard(key).Get(key)
}

// Set caches a value.
func (s *ShardedLRU[V]) Set(key string, value V) {
	s.shard(key).Set(key, value)
}

// Remove drops key from the cache.
func (s *ShardedLRU[V]) Remove(key string) {
	s.shard(key).Remove(key)
}

// Invalidate removes entries matching the predicate from every shard.
func (s *ShardedLRU[V]) Invalidate(predicate func(key string) bool) {
	for _, sh := range s.shards {
		sh.Invalidate(predicate)
	}
}

// Stats sums the counters of all shards.
func (s *ShardedLRU[V]) Stats() Stats {
	var total Stats
	for _, sh := range s.shards {
		st := sh.Stats()
		total.Hits += st.Hits
		total.Misses += st.Misses
		total.Entries += st.Entries
		total.Bytes += st.Bytes
	}
	return total
}
