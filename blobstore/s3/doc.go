// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("records/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	report, err := vecload.IngestBlob(ctx, store, "batch-001.bin", m)
//
// # Features
//
//   - Range reads streamed straight into the record decoder
//   - Multipart uploads for large record files
//   - Automatic pagination for listing
//   - Custom endpoints for S3-compatible services
package s3
