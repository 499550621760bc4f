package ingest

import (
	"context"
	"errors"
	"io"

	"github.com/hupe1980/vecload/internal/frame"
	"github.com/hupe1980/vecload/internal/rowcopy"
)

// Target is a row-major float32 destination.
type Target interface {
	Rows() int
	Cols() int
	Row(i int) []float32
}

// Skip describes a record that was not written.
type Skip struct {
	// Index is the position of the record in the input, counting skipped ones.
	Index int
	Err   *rowcopy.SizeError
}

// Result summarizes a run. It is valid even when the run failed.
type Result struct {
	Written int
	Records int
	Skips   []Skip
}

// Driver copies records into a Target.
type Driver struct {
	// Width is the expected number of columns.
	Width int
	// Copy moves one record into one row. Defaults to rowcopy.Copy.
	Copy rowcopy.Func
	// OnSkip is called for every skipped record, in input order.
	OnSkip func(Skip)
}

// CheckShape verifies the destination row width.
func (d *Driver) CheckShape(dst Target) error {
	if dst.Cols() != d.Width {
		return &ShapeError{Expected: d.Width, Actual: dst.Cols()}
	}
	return nil
}

// RunSlice ingests an in-memory batch. Nothing is written when the shape
// check or the capacity pre-check fails.
func (d *Driver) RunSlice(ctx context.Context, records [][]byte, dst Target) (Result, error) {
	var res Result
	if err := d.CheckShape(dst); err != nil {
		return res, err
	}
	if len(records) > dst.Rows() {
		return res, &TooManyRecordsError{Records: len(records), Capacity: dst.Rows()}
	}

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		d.step(&res, rec, dst)
	}
	return res, nil
}

// RunStream ingests records from src until io.EOF. On a source or capacity
// error the rows written so far stay in place and are counted in the result.
func (d *Driver) RunStream(ctx context.Context, src frame.Source, dst Target) (Result, error) {
	var res Result
	if err := d.CheckShape(dst); err != nil {
		return res, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		rec, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return res, nil
			}
			return res, err
		}
		if res.Written >= dst.Rows() {
			return res, &CapacityError{Capacity: dst.Rows()}
		}
		d.step(&res, rec, dst)
	}
}

func (d *Driver) step(res *Result, rec []byte, dst Target) {
	idx := res.Records
	res.Records++

	copyFn := d.Copy
	if copyFn == nil {
		copyFn = rowcopy.Copy
	}

	err := copyFn(dst.Row(res.Written), rec)
	if err == nil {
		res.Written++
		return
	}

	var se *rowcopy.SizeError
	if !errors.As(err, &se) {
		se = &rowcopy.SizeError{Actual: len(rec), Expected: d.Width * rowcopy.ElemSize}
	}
	skip := Skip{Index: idx, Err: se}
	res.Skips = append(res.Skips, skip)
	if d.OnSkip != nil {
		d.OnSkip(skip)
	}
}
