package frame

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/vecload/internal/conv"
	"github.com/tinylib/msgp/msgp"
)

// maxHeaderSize is the size of a bin32 header: marker plus four length bytes.
const maxHeaderSize = 5

const (
	// DefaultBufferSize is the read buffer used when Options.BufferSize is zero.
	DefaultBufferSize = 64 * 1024
	// DefaultMaxRecordSize bounds a single record before any allocation happens.
	DefaultMaxRecordSize = 100 * 1024 * 1024
)

// Source yields records until io.EOF.
type Source interface {
	Next() ([]byte, error)
}

// Options configures record readers.
type Options struct {
	// BufferSize is the bufio buffer size for Reader. Values below the header
	// size are raised to DefaultBufferSize.
	BufferSize int
	// MaxRecordSize rejects records whose declared length is larger.
	// Zero disables the check.
	MaxRecordSize int
}

// DefaultOptions returns the reader defaults.
func DefaultOptions() Options {
	return Options{
		BufferSize:    DefaultBufferSize,
		MaxRecordSize: DefaultMaxRecordSize,
	}
}

// Reader decodes records from a byte stream.
type Reader struct {
	br   *bufio.Reader
	opts Options
	buf  []byte
	off  int64
}

// NewReader returns a Reader over r. If r is already a *bufio.Reader with a
// large enough buffer it is used directly.
func NewReader(r io.Reader, opts Options) *Reader {
	if opts.BufferSize < maxHeaderSize {
		opts.BufferSize = DefaultBufferSize
	}
	return &Reader{
		br:   bufio.NewReaderSize(r, opts.BufferSize),
		opts: opts,
	}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 { return r.off }

// Next returns the next record. The slice is reused by the following call.
func (r *Reader) Next() ([]byte, error) {
	hdr, err := r.br.Peek(maxHeaderSize)
	if len(hdr) == 0 {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, ioError(r.off, err)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, ioError(r.off, err)
	}

	size, rest, err := msgp.ReadBytesHeader(hdr)
	if err != nil {
		return nil, headerError(hdr, r.off, err)
	}
	n, err := checkLength(size, r.opts.MaxRecordSize, r.off)
	if err != nil {
		return nil, err
	}

	consumed := len(hdr) - len(rest)
	if _, err := r.br.Discard(consumed); err != nil {
		return nil, ioError(r.off, err)
	}
	r.off += int64(consumed)

	if cap(r.buf) < n {
		r.buf = make([]byte, n)
	}
	r.buf = r.buf[:n]

	got, err := io.ReadFull(r.br, r.buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, truncatedError(n, got, r.off)
		}
		return nil, ioError(r.off+int64(got), err)
	}
	r.off += int64(n)
	return r.buf, nil
}

func checkLength(size uint32, limit int, off int64) (int, error) {
	n, err := conv.Uint32ToInt(size)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRecordTooLarge, err)
	}
	if limit > 0 && n > limit {
		return 0, fmt.Errorf("%w: %d bytes at offset %d exceeds limit %d", ErrRecordTooLarge, n, off, limit)
	}
	return n, nil
}
