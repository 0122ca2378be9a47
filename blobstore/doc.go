// Package blobstore provides storage for persisted guide trees.
//
// BlobStore is the interface for reading and writing whole, immutable blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-process map, for tests and short-lived pipelines
//   - LocalStore: local filesystem with atomic writes
//   - minio.Store: MinIO and other S3-compatible object stores
//   - s3.Store: Amazon S3 with managed uploads
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage backends:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)      // Open for reading
//	    Put(ctx, name, data) error         // Atomic write
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
