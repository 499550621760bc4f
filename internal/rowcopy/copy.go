package rowcopy

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// ElemSize is the encoded size of one float32 element in bytes.
const ElemSize = 4

// Func copies src into dst. Both Copy and CopyChecked satisfy it.
type Func func(dst []float32, src []byte) error

// SizeError reports a record whose byte length does not match the row.
type SizeError struct {
	Actual   int
	Expected int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("size %d does not match %d", e.Actual, e.Expected)
}

func checkSize(dst []float32, src []byte) error {
	if want := len(dst) * ElemSize; len(src) != want {
		return &SizeError{Actual: len(src), Expected: want}
	}
	return nil
}

// Copy reinterprets src as little-endian float32 values and copies them into dst.
// dst is left untouched when the length check fails.
func Copy(dst []float32, src []byte) error {
	if err := checkSize(dst, src); err != nil {
		return err
	}
	if len(dst) == 0 {
		return nil
	}
	if cpu.IsBigEndian {
		decode(dst, src)
		return nil
	}

	// The byte view covers exactly dst's backing array; the size check above
	// guarantees copy fills it completely.
	view := unsafe.Slice((*byte)(unsafe.Pointer(&dst[0])), len(src)) //nolint:gosec // bulk transfer gated by checkSize
	copy(view, src)
	return nil
}

// CopyChecked is the portable variant of Copy. It decodes element by element.
func CopyChecked(dst []float32, src []byte) error {
	if err := checkSize(dst, src); err != nil {
		return err
	}
	decode(dst, src)
	return nil
}

func decode(dst []float32, src []byte) {
	for i := range dst {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[i*ElemSize:]))
	}
}
