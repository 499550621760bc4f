package frame

import (
	"fmt"
	"io"

	"github.com/hupe1980/vecload/internal/conv"
	"github.com/tinylib/msgp/msgp"
)

// Writer encodes records as MessagePack bin blobs.
type Writer struct {
	mw    *msgp.Writer
	count int
}

// NewWriter returns a buffered Writer. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{mw: msgp.NewWriter(w)}
}

// Write appends one record.
func (w *Writer) Write(record []byte) error {
	if _, err := conv.IntToUint32(len(record)); err != nil {
		return fmt.Errorf("%w: %w", ErrRecordTooLarge, err)
	}
	if err := w.mw.WriteBytes(record); err != nil {
		return err
	}
	w.count++
	return nil
}

// Flush writes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.mw.Flush()
}

// Count returns the number of records written.
func (w *Writer) Count() int { return w.count }

// AppendRecord appends the framed record to dst.
func AppendRecord(dst, record []byte) []byte {
	return msgp.AppendBytes(dst, record)
}
