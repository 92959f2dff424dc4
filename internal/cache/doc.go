// Package cache provides in-process LRU caches bounded by byte size.
//
// [LRU] is a single mutex-protected list. [ShardedLRU] spreads keys over
// 16 LRUs by maphash to reduce contention when many goroutines precompute
// corrections at once. Both can report their footprint to a
// resource.Controller, which may refuse admission when its memory limit
// is reached.
package cache
