package frame

import (
	"io"

	"github.com/tinylib/msgp/msgp"
)

// SliceReader decodes records from an in-memory image without copying.
type SliceReader struct {
	data  []byte
	off   int
	limit int
}

// NewSliceReader returns a SliceReader over data. Only MaxRecordSize is used
// from opts.
func NewSliceReader(data []byte, opts Options) *SliceReader {
	return &SliceReader{data: data, limit: opts.MaxRecordSize}
}

// Offset returns the number of bytes consumed so far.
func (r *SliceReader) Offset() int64 { return int64(r.off) }

// Next returns the next record as a sub-slice of the image.
func (r *SliceReader) Next() ([]byte, error) {
	if r.off >= len(r.data) {
		return nil, io.EOF
	}
	remaining := r.data[r.off:]

	size, rest, err := msgp.ReadBytesHeader(remaining)
	if err != nil {
		return nil, headerError(remaining, int64(r.off), err)
	}
	n, err := checkLength(size, r.limit, int64(r.off))
	if err != nil {
		return nil, err
	}

	start := r.off + len(remaining) - len(rest)
	if len(rest) < n {
		return nil, truncatedError(n, len(rest), int64(start))
	}
	r.off = start + n
	return rest[:n:n], nil
}
