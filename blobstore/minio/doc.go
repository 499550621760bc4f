// Package minio provides a BlobStore implementation using the MinIO client.
//
// MinIO is an S3-compatible object storage system. This package uses the
// official MinIO Go client, so it also works with Ceph, SeaweedFS and Garage.
//
// # Basic Usage
//
//	store, err := minioblob.Dial("localhost:9000", "minioadmin", "minioadmin", false, "my-bucket", "records/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := vecload.IngestBlob(ctx, store, "batch-001.bin", m)
//
// Blobs are streamed through ranged GETs; none of them are Mappable.
package minio
