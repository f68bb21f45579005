// Package blobstore provides the storage abstraction for idxarray snapshots.
//
// BlobStore is the interface for reading and writing named, immutable
// blobs. Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-process map, for tests and caches
//   - LocalStore: local filesystem with atomic writes and mmap reads
//   - CachingStore: LRU read cache in front of another store
//   - minio.Store: MinIO and S3-compatible object storage
//   - s3.Store: Amazon S3 with CRC32C-validated uploads
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    Put(ctx, name, data) error          // Atomic write
//	    Delete(ctx, name) error             // Missing blobs are not an error
//	    List(ctx, prefix) ([]string, error) // Sorted
//	}
//
// Missing blobs are reported with an error satisfying
// errors.Is(err, ErrNotFound).
package blobstore
