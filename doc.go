// Package vecload ingests binary float32 records into preallocated row-major
// matrices.
//
// A record is an opaque byte buffer holding exactly W little-endian IEEE-754
// float32 values. Ingestion copies each well-formed record into the next free
// row of a caller-owned (R, W) [Matrix]; records of any other length are
// skipped with a warning and never consume a row.
//
// # Quick Start
//
// In-memory batches:
//
//	m := vecload.NewMatrix(1024, 512)
//	report, err := vecload.IngestSequence(records, m)
//	fmt.Println(report.Written, "rows written")
//
// Record files (MessagePack bin 8/16/32 framed, optionally zstd or LZ4
// compressed):
//
//	report, err := vecload.IngestFile(ctx, "batch.bin", m, vecload.WithMmap(true))
//
// Object stores:
//
//	store, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("records/"))
//	report, err := vecload.IngestBlob(ctx, store, "batch.bin", m)
//
// # Capacity
//
// The in-memory path rejects a batch with more records than the matrix has
// rows before writing anything. The file paths cannot know the record count
// up front; they fail with [ErrCapacityExceeded] once a record arrives at a
// full matrix and keep the rows already written.
//
// # Errors
//
// Typed errors carry the relevant sizes and unwrap to the underlying cause.
// Framing failures match the sentinels [ErrMalformedLength],
// [ErrTruncatedPayload], [ErrRecordTooLarge] and [ErrIO] via errors.Is.
package vecload
