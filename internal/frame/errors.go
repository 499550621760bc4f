package frame

import (
	"errors"
	"fmt"

	"github.com/tinylib/msgp/msgp"
)

var (
	// ErrMalformedLength is returned when a record does not start with a bin marker.
	ErrMalformedLength = errors.New("malformed record length")
	// ErrTruncatedPayload is returned when the input ends inside a record.
	ErrTruncatedPayload = errors.New("truncated record")
	// ErrRecordTooLarge is returned when a declared length exceeds the configured limit.
	ErrRecordTooLarge = errors.New("record too large")
	// ErrIO wraps failures of the underlying reader.
	ErrIO = errors.New("record read failed")
)

func headerError(hdr []byte, off int64, err error) error {
	if errors.Is(err, msgp.ErrShortBytes) {
		return fmt.Errorf("%w: length prefix cut short at offset %d", ErrTruncatedPayload, off)
	}
	return fmt.Errorf("%w: marker 0x%02x at offset %d: %w", ErrMalformedLength, hdr[0], off, err)
}

func truncatedError(declared, got int, off int64) error {
	return fmt.Errorf("%w: declared %d bytes at offset %d, only %d available", ErrTruncatedPayload, declared, off, got)
}

func ioError(off int64, err error) error {
	return fmt.Errorf("%w at offset %d: %w", ErrIO, off, err)
}
