package vecload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/hupe1980/vecload/blobstore"
	"github.com/hupe1980/vecload/internal/compress"
	"github.com/hupe1980/vecload/internal/frame"
	"github.com/hupe1980/vecload/internal/ingest"
	"github.com/hupe1980/vecload/internal/mmap"
	"github.com/hupe1980/vecload/resource"
)

type runFunc func(ctx context.Context, d *ingest.Driver, t ingest.Target) (ingest.Result, error)

// run validates the call, drives fn and reports the outcome to the logger
// and the metrics collector. The returned Report is never nil.
func run(ctx context.Context, kind, source string, o options, dst *Matrix, fn runFunc) (*Report, error) {
	start := time.Now()
	log := o.logger.WithSource(source)

	var res ingest.Result
	err := o.validate()
	if err == nil {
		err = dst.check()
	}
	if err == nil {
		d := &ingest.Driver{
			Width: o.rowWidth,
			Copy:  o.copyFunc(),
			OnSkip: func(s ingest.Skip) {
				log.LogSkip(ctx, s.Index, s.Err.Actual, s.Err.Expected)
			},
		}
		res, err = fn(ctx, d, target{dst})
	}
	err = translateError(err)

	report := newReport(res, time.Since(start))
	o.metricsCollector.RecordIngest(kind, report.Written, len(report.Skipped), report.Duration, err)
	log.LogIngest(ctx, kind, report, err)
	return report, err
}

// IngestSequence copies an in-memory batch of records into dst.
//
// The batch must fit: more records than dst has rows fails with
// *ErrTooManyRecords before anything is written, even when enough of them
// would be skipped. Records of the wrong size are skipped and logged.
func IngestSequence(records [][]byte, dst *Matrix, optFns ...Option) (*Report, error) {
	return ingestSequence(context.Background(), records, dst, applyOptions(optFns))
}

func ingestSequence(ctx context.Context, records [][]byte, dst *Matrix, o options) (*Report, error) {
	return run(ctx, KindSequence, KindSequence, o, dst, func(ctx context.Context, d *ingest.Driver, t ingest.Target) (ingest.Result, error) {
		return d.RunSlice(ctx, records, t)
	})
}

// Collect drains seq into owned memory. Every yielded buffer is cloned, so the
// iterator may reuse its buffers. The first iterator error aborts collection.
func Collect(seq iter.Seq2[[]byte, error]) ([][]byte, error) {
	var records [][]byte
	for rec, err := range seq {
		if err != nil {
			return nil, err
		}
		records = append(records, bytes.Clone(rec))
	}
	return records, nil
}

// IngestIter collects seq and ingests the result like IngestSequence.
func IngestIter(seq iter.Seq2[[]byte, error], dst *Matrix, optFns ...Option) (*Report, error) {
	records, err := Collect(seq)
	if err != nil {
		return &Report{}, err
	}
	return IngestSequence(records, dst, optFns...)
}

// IngestFile streams the framed records of the file at path into dst.
//
// The destination shape is checked before the file is opened. A framed record
// arriving after the last row was written fails with *ErrCapacityExceeded;
// the rows written so far stay in place.
func IngestFile(ctx context.Context, path string, dst *Matrix, optFns ...Option) (*Report, error) {
	return ingestFile(ctx, path, dst, applyOptions(optFns))
}

func ingestFile(ctx context.Context, path string, dst *Matrix, o options) (*Report, error) {
	return run(ctx, KindFile, path, o, dst, func(ctx context.Context, d *ingest.Driver, t ingest.Target) (ingest.Result, error) {
		if err := d.CheckShape(t); err != nil {
			return ingest.Result{}, err
		}
		if o.mappable() {
			return ingestMapped(ctx, path, o, d, t)
		}
		return ingestOpened(ctx, path, o, d, t)
	})
}

func ingestOpened(ctx context.Context, path string, o options, d *ingest.Driver, t ingest.Target) (res ingest.Result, err error) {
	f, err := o.fileSystem.Open(path)
	if err != nil {
		return res, &ErrCannotOpenFile{Path: path, cause: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrIO, path, cerr)
		}
	}()
	return ingestStream(ctx, f, o, d, t)
}

func ingestMapped(ctx context.Context, path string, o options, d *ingest.Driver, t ingest.Target) (ingest.Result, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return ingest.Result{}, &ErrCannotOpenFile{Path: path, cause: err}
	}
	defer m.Close()
	return ingestBytes(ctx, m.Bytes(), o, d, t)
}

// ingestBytes decodes records in place unless data is compressed.
func ingestBytes(ctx context.Context, data []byte, o options, d *ingest.Driver, t ingest.Target) (ingest.Result, error) {
	ct := o.compression
	if ct == CompressionAuto {
		ct = compress.Detect(data)
	}
	if ct == CompressionNone {
		return d.RunStream(ctx, frame.NewSliceReader(data, o.frameOptions()), t)
	}
	o.compression = ct
	return ingestStream(ctx, bytes.NewReader(data), o, d, t)
}

func ingestStream(ctx context.Context, r io.Reader, o options, d *ingest.Driver, t ingest.Target) (ingest.Result, error) {
	if o.controller != nil {
		r = resource.NewRateLimitedReader(ctx, r, o.controller)
	}

	rc, _, err := compress.NewReader(r, o.compression, o.bufferSize)
	if err != nil {
		return ingest.Result{}, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer rc.Close()

	return d.RunStream(ctx, frame.NewReader(rc, o.frameOptions()), t)
}

// IngestReader streams framed records from r into dst with the same rules as
// IngestFile. r is not closed.
func IngestReader(ctx context.Context, r io.Reader, dst *Matrix, optFns ...Option) (*Report, error) {
	o := applyOptions(optFns)
	return run(ctx, KindReader, KindReader, o, dst, func(ctx context.Context, d *ingest.Driver, t ingest.Target) (ingest.Result, error) {
		if err := d.CheckShape(t); err != nil {
			return ingest.Result{}, err
		}
		return ingestStream(ctx, r, o, d, t)
	})
}

// IngestBlob ingests the named blob from store. Mappable blobs are decoded in
// place; all others are streamed with a single ranged read.
func IngestBlob(ctx context.Context, store blobstore.BlobStore, name string, dst *Matrix, optFns ...Option) (*Report, error) {
	return ingestBlob(ctx, store, name, dst, applyOptions(optFns))
}

func ingestBlob(ctx context.Context, store blobstore.BlobStore, name string, dst *Matrix, o options) (*Report, error) {
	return run(ctx, KindBlob, name, o, dst, func(ctx context.Context, d *ingest.Driver, t ingest.Target) (ingest.Result, error) {
		if err := d.CheckShape(t); err != nil {
			return ingest.Result{}, err
		}

		blob, err := store.Open(ctx, name)
		if err != nil {
			return ingest.Result{}, &ErrCannotOpenFile{Path: name, cause: err}
		}
		defer blob.Close()

		if m, ok := blob.(blobstore.Mappable); ok {
			data, err := m.Bytes()
			if err != nil {
				return ingest.Result{}, fmt.Errorf("%w: %w", ErrIO, err)
			}
			return ingestBytes(ctx, data, o, d, t)
		}

		if blob.Size() == 0 {
			return ingest.Result{}, nil
		}
		rc, err := blob.ReadRange(ctx, 0, blob.Size())
		if err != nil {
			if errors.Is(err, blobstore.ErrNotFound) {
				return ingest.Result{}, &ErrCannotOpenFile{Path: name, cause: err}
			}
			return ingest.Result{}, fmt.Errorf("%w: %w", ErrIO, err)
		}
		defer rc.Close()

		return ingestStream(ctx, rc, o, d, t)
	})
}
