// Package blobstore stores correction artifacts by flat name.
//
// BlobStore is the storage abstraction used by the correction cache:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    Put(ctx, name, data) error          // atomic publish
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// # Built-in Implementations
//
//   - LocalStore: a directory, written by temp file + fsync + rename, read via mmap
//   - MemoryStore: in-process map for tests
//   - CachingStore: read-through whole-blob cache in front of another store
//   - s3.Store, minio.Store, dynamo.Store, redis.Store: shared remote caches
//
// Remote stores publish with first-writer-wins semantics. Every writer of a
// given name produces identical bytes, so losing a race is success.
package blobstore
