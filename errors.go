package vecload

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vecload/internal/frame"
	"github.com/hupe1980/vecload/internal/ingest"
)

var (
	// ErrMalformedLength is returned when a record does not start with a
	// bin 8/16/32 length prefix.
	ErrMalformedLength = frame.ErrMalformedLength
	// ErrTruncatedPayload is returned when a file ends inside a record.
	ErrTruncatedPayload = frame.ErrTruncatedPayload
	// ErrRecordTooLarge is returned when a declared length exceeds the
	// configured maximum record size.
	ErrRecordTooLarge = frame.ErrRecordTooLarge
	// ErrIO is returned when reading the underlying file fails.
	ErrIO = frame.ErrIO

	// ErrNilMatrix is returned when the destination matrix is nil.
	ErrNilMatrix = errors.New("destination matrix is nil")
	// ErrSharedDestination is returned by IngestMany when two jobs write
	// into the same matrix.
	ErrSharedDestination = errors.New("jobs share a destination matrix")
)

// ErrShapeMismatch indicates the destination column count differs from the
// configured row width.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrShapeMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("shape mismatch: destination has %d columns, expected %d", e.Actual, e.Expected)
}

func (e *ErrShapeMismatch) Unwrap() error { return e.cause }

// ErrTooManyRecords indicates an in-memory batch larger than the matrix.
// Nothing is written when it is returned.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrTooManyRecords struct {
	Records  int
	Capacity int
	cause    error
}

func (e *ErrTooManyRecords) Error() string {
	return fmt.Sprintf("capacity exceeded: %d records for %d rows", e.Records, e.Capacity)
}

func (e *ErrTooManyRecords) Unwrap() error { return e.cause }

// ErrCapacityExceeded indicates a framed record arrived after every row was
// written. Rows written before it stay in place.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrCapacityExceeded struct {
	Capacity int
	cause    error
}

func (e *ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("capacity exceeded: matrix holds %d rows", e.Capacity)
}

func (e *ErrCapacityExceeded) Unwrap() error { return e.cause }

// ErrCannotOpenFile indicates a record file or blob could not be opened.
type ErrCannotOpenFile struct {
	Path  string
	cause error
}

func (e *ErrCannotOpenFile) Error() string {
	return fmt.Sprintf("cannot open file %q: %v", e.Path, e.cause)
}

func (e *ErrCannotOpenFile) Unwrap() error { return e.cause }

// ErrRecordSize describes a skipped record. It never fails a call; it is
// reported through Report.Skipped and the logger.
type ErrRecordSize struct {
	Index    int
	Actual   int
	Expected int
}

func (e *ErrRecordSize) Error() string {
	return fmt.Sprintf("record %d: size %d does not match %d", e.Index, e.Actual, e.Expected)
}

// ErrInvalidRowWidth indicates a non-positive configured row width.
type ErrInvalidRowWidth struct {
	Width int
}

func (e *ErrInvalidRowWidth) Error() string {
	return fmt.Sprintf("invalid row width: %d", e.Width)
}

// ErrInvalidMatrix indicates a matrix whose backing slice does not hold
// Rows*Cols values.
type ErrInvalidMatrix struct {
	Rows int
	Cols int
	Len  int
}

func (e *ErrInvalidMatrix) Error() string {
	return fmt.Sprintf("invalid matrix: %dx%d needs %d values, has %d", e.Rows, e.Cols, e.Rows*e.Cols, e.Len)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var se *ingest.ShapeError
	if errors.As(err, &se) {
		return &ErrShapeMismatch{Expected: se.Expected, Actual: se.Actual, cause: err}
	}
	var tm *ingest.TooManyRecordsError
	if errors.As(err, &tm) {
		return &ErrTooManyRecords{Records: tm.Records, Capacity: tm.Capacity, cause: err}
	}
	var ce *ingest.CapacityError
	if errors.As(err, &ce) {
		return &ErrCapacityExceeded{Capacity: ce.Capacity, cause: err}
	}

	return err
}
