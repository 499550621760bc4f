package vecload

import (
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/vecload/internal/conv"
	"github.com/hupe1980/vecload/internal/ingest"
)

// Skip is a record that was not written.
type Skip struct {
	// Index is the position of the record in the input.
	Index int
	Err   *ErrRecordSize
}

// Report summarizes one ingestion call. It is returned on failure too and
// then describes the partial result.
type Report struct {
	// Written is the number of rows filled, starting at row 0.
	Written int
	// Records is the number of records consumed, including skipped ones.
	Records int
	// Skipped lists skipped records in input order.
	Skipped []Skip
	// Duration is the wall time of the call.
	Duration time.Duration

	skipped *roaring.Bitmap
}

func newReport(res ingest.Result, d time.Duration) *Report {
	r := &Report{
		Written:  res.Written,
		Records:  res.Records,
		Duration: d,
		skipped:  roaring.New(),
	}
	for _, s := range res.Skips {
		r.Skipped = append(r.Skipped, Skip{
			Index: s.Index,
			Err:   &ErrRecordSize{Index: s.Index, Actual: s.Err.Actual, Expected: s.Err.Expected},
		})
		if idx, err := conv.IntToUint32(s.Index); err == nil {
			r.skipped.Add(idx)
		}
	}
	return r
}

// IsSkipped reports whether the i-th input record was skipped.
func (r *Report) IsSkipped(i int) bool {
	idx, err := conv.IntToUint32(i)
	if err != nil || r.skipped == nil {
		return false
	}
	return r.skipped.Contains(idx)
}

// SkippedBitmap returns a copy of the skipped input indices.
func (r *Report) SkippedBitmap() *roaring.Bitmap {
	if r.skipped == nil {
		return roaring.New()
	}
	return r.skipped.Clone()
}
