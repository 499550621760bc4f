// Package compress wraps record files in zstd or LZ4 frame streams.
//
// Readers detect the codec from the leading magic bytes, so a caller can point
// the ingestion path at a plain, .zst, or .lz4 record file without saying which.
package compress

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Type identifies a stream codec.
type Type uint8

const (
	// Auto detects the codec from the stream header. Only valid for readers.
	Auto Type = iota
	// None reads or writes the stream unchanged.
	None
	// Zstd uses the zstd frame format.
	Zstd
	// LZ4 uses the LZ4 frame format.
	LZ4
)

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

const magicSize = 4

// ErrUnknownType is returned for an unsupported Type value.
var ErrUnknownType = errors.New("unknown compression type")

func (t Type) String() string {
	switch t {
	case Auto:
		return "auto"
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// Parse maps a name such as "zstd" to a Type.
func Parse(name string) (Type, error) {
	switch name {
	case "", "auto":
		return Auto, nil
	case "none":
		return None, nil
	case "zstd", "zst":
		return Zstd, nil
	case "lz4":
		return LZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}

// Detect returns the codec whose magic prefixes header, or None.
func Detect(header []byte) Type {
	switch {
	case bytes.HasPrefix(header, zstdMagic):
		return Zstd
	case bytes.HasPrefix(header, lz4Magic):
		return LZ4
	default:
		return None
	}
}

// NewReader returns a decompressing reader over r. With Auto the codec is
// detected; the returned reader then sits on a bufio.Reader of bufSize bytes.
// Close releases decoder resources but does not close r.
func NewReader(r io.Reader, t Type, bufSize int) (io.ReadCloser, Type, error) {
	if t == Auto {
		br := bufio.NewReaderSize(r, bufSize)
		header, err := br.Peek(magicSize)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, Auto, err
		}
		t = Detect(header)
		r = br
	}

	switch t {
	case None:
		return io.NopCloser(r), None, nil
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, Zstd, err
		}
		return &zstdReadCloser{dec: dec}, Zstd, nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), LZ4, nil
	default:
		return nil, t, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
}

// NewWriter returns a compressing writer over w. Close flushes the codec frame
// but does not close w.
func NewWriter(w io.Writer, t Type) (io.WriteCloser, error) {
	switch t {
	case None, Auto:
		return nopWriteCloser{w}, nil
	case Zstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		return enc, nil
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
}

type zstdReadCloser struct {
	dec *zstd.Decoder
}

func (z *zstdReadCloser) Read(p []byte) (int, error) { return z.dec.Read(p) }

func (z *zstdReadCloser) Close() error {
	z.dec.Close()
	return nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
