// Package blobstore provides storage abstraction for record files.
//
// A record file is written once and ingested many times, so stores only offer
// whole-blob writes (Put) and read-only handles (Open). Implementations must be
// safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local file system with mmap support
//   - MemoryStore: in-process map, for tests and examples
//   - s3.Store: Amazon S3 with range reads and multipart uploads
//   - minio.Store: MinIO and other S3-compatible services
//
// # Zero-copy reads
//
// Blobs that also implement [Mappable] expose their whole content as a byte
// slice. Ingestion decodes records straight out of that slice; all other blobs
// are streamed through ReadRange.
package blobstore
