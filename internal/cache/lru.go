package cache

import (
	"container/list"
	"sync"
	"sync/atomic"

	"github.com/mr-c/raptor/internal/resource"
)

// LRU evicts the least recently used entries once its byte capacity is exceeded.
type LRU[V any] struct {
	mu        sync.Mutex
	capacity  int64
	size      int64
	sizeOf    SizeFunc[V]
	items     map[string]*list.Element
	evictList *list.List
	rc        *resource.Controller

	hits   atomic.Int64
	misses atomic.Int64
}

type entry[V any] struct {
	key   string
	value V
	size  int64
}

// NewLRU creates an LRU holding at most capacity bytes as measured by sizeOf.
// If rc is non-nil, every admitted byte is reserved against its memory limit.
func NewLRU[V any](capacity int64, sizeOf SizeFunc[V], rc *resource.Controller) *LRU[V] {
	return &LRU[V]{
		capacity:  capacity,
		sizeOf:    sizeOf,
		items:     make(map[string]*list.Element),
		evictList: list.New(),
		rc:        rc,
	}
}

// Get returns a cached value and marks it as recently used.
func (c *LRU[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.hits.Add(1)
		c.evictList.MoveToFront(el)
		return el.Value.(*entry[V]).value, true
	}
	c.misses.Add(1)
	var zero V
	return zero, false
}

// Set caches value under key. Values larger than the capacity, or that the
// resource controller refuses, are not cached.
func (c *LRU[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	size := c.sizeOf(value)
	if size > c.capacity {
		return
	}

	if el, ok := c.items[key]; ok {
		c.removeElement(el)
	}

	// Evict locally first so released bytes are available to the controller.
	for c.size+size > c.capacity {
		el := c.evictList.Back()
		if el == nil {
			break
		}
		c.removeElement(el)
	}

	if err := c.rc.AcquireMemory(size); err != nil {
		return
	}

	c.items[key] = c.evictList.PushFront(&entry[V]{key: key, value: value, size: size})
	c.size += size
}

// Remove drops key from the cache.
func (c *LRU[V]) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.removeElement(el)
	}
}

// Invalidate removes entries matching the predicate.
func (c *LRU[V]) Invalidate(predicate func(key string) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var doomed []*list.Element
	for key, el := range c.items {
		if predicate(key) {
			doomed = append(doomed, el)
		}
	}
	for _, el := range doomed {
		c.removeElement(el)
	}
}

// Stats returns the current counters.
func (c *LRU[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: len(c.items),
		Bytes:   c.size,
	}
}

func (c *LRU[V]) removeElement(el *list.Element) {
	c.evictList.Remove(el)
	e := el.Value.(*entry[V])
	delete(c.items, e.key)
	c.size -= e.size
	c.rc.ReleaseMemory(e.size)
}
