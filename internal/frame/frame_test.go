package frame

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeAll(t *testing.T, records ...[]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, rec := range records {
		require.NoError(t, w.Write(rec))
	}
	require.NoError(t, w.Flush())
	require.Equal(t, len(records), w.Count())
	return buf.Bytes()
}

func payload(n int, seed byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = seed + byte(i)
	}
	return b
}

func drain(t *testing.T, src Source) ([][]byte, error) {
	t.Helper()
	var out [][]byte
	for {
		rec, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return out, err
		}
		out = append(out, bytes.Clone(rec))
	}
}

// readers builds both reader kinds over the same image.
func readers(image []byte, opts Options) map[string]Source {
	return map[string]Source{
		"stream": NewReader(bytes.NewReader(image), opts),
		"slice":  NewSliceReader(image, opts),
	}
}

func TestWriterEncoding(t *testing.T) {
	t.Run("bin8", func(t *testing.T) {
		got := encodeAll(t, []byte{1, 2, 3})
		assert.Equal(t, []byte{0xc4, 0x03, 1, 2, 3}, got)
	})

	t.Run("bin16", func(t *testing.T) {
		got := encodeAll(t, payload(300, 0))
		assert.Equal(t, []byte{0xc5, 0x01, 0x2c}, got[:3])
		assert.Len(t, got, 303)
	})

	t.Run("bin32", func(t *testing.T) {
		got := encodeAll(t, payload(70000, 0))
		assert.Equal(t, []byte{0xc6, 0x00, 0x01, 0x11, 0x70}, got[:5])
	})

	t.Run("append matches writer", func(t *testing.T) {
		rec := payload(2048, 9)
		assert.Equal(t, encodeAll(t, rec), AppendRecord(nil, rec))
	})
}

func TestRoundTrip(t *testing.T) {
	records := [][]byte{payload(2048, 1), {}, payload(255, 2), payload(256, 3), payload(65536, 4), payload(100, 5)}
	image := encodeAll(t, records...)

	for name, src := range readers(image, DefaultOptions()) {
		t.Run(name, func(t *testing.T) {
			got, err := drain(t, src)
			require.NoError(t, err)
			require.Len(t, got, len(records))
			for i := range records {
				assert.Equal(t, len(records[i]), len(got[i]), "record %d", i)
				assert.True(t, bytes.Equal(records[i], got[i]), "record %d", i)
			}

			// EOF is sticky.
			_, err = src.Next()
			assert.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestEmptyInput(t *testing.T) {
	for name, src := range readers(nil, DefaultOptions()) {
		t.Run(name, func(t *testing.T) {
			rec, err := src.Next()
			assert.Nil(t, rec)
			assert.Equal(t, io.EOF, err)
		})
	}
}

func TestMalformedLength(t *testing.T) {
	cases := map[string][]byte{
		"positive fixint": {0x01, 0x02},
		"uint8":           {0xcc, 0x01},
		"fixarray":        {0x92, 0x01, 0x02},
		"nil":             {0xc0},
	}
	for name, image := range cases {
		image := append(encodeAll(t, payload(8, 0)), image...)
		for kind, src := range readers(image, DefaultOptions()) {
			t.Run(name+"/"+kind, func(t *testing.T) {
				got, err := drain(t, src)
				assert.Len(t, got, 1)
				assert.ErrorIs(t, err, ErrMalformedLength)
				assert.NotErrorIs(t, err, ErrTruncatedPayload)
				assert.Contains(t, err.Error(), "offset 10")
			})
		}
	}
}

func TestTruncated(t *testing.T) {
	full := encodeAll(t, payload(16, 0), payload(2048, 0))

	t.Run("payload", func(t *testing.T) {
		image := full[:len(full)-10]
		for kind, src := range readers(image, DefaultOptions()) {
			t.Run(kind, func(t *testing.T) {
				got, err := drain(t, src)
				assert.Len(t, got, 1)
				assert.ErrorIs(t, err, ErrTruncatedPayload)
				assert.Contains(t, err.Error(), "declared 2048 bytes")
			})
		}
	})

	t.Run("length prefix", func(t *testing.T) {
		image := append(encodeAll(t, payload(4, 0)), 0xc5, 0x08)
		for kind, src := range readers(image, DefaultOptions()) {
			t.Run(kind, func(t *testing.T) {
				got, err := drain(t, src)
				assert.Len(t, got, 1)
				assert.ErrorIs(t, err, ErrTruncatedPayload)
			})
		}
	})

	t.Run("marker only", func(t *testing.T) {
		for kind, src := range readers([]byte{0xc4}, DefaultOptions()) {
			t.Run(kind, func(t *testing.T) {
				_, err := src.Next()
				assert.ErrorIs(t, err, ErrTruncatedPayload)
			})
		}
	})
}

func TestRecordTooLarge(t *testing.T) {
	image := encodeAll(t, payload(64, 0), payload(65, 0))
	opts := Options{MaxRecordSize: 64}

	for kind, src := range readers(image, opts) {
		t.Run(kind, func(t *testing.T) {
			got, err := drain(t, src)
			assert.Len(t, got, 1)
			assert.ErrorIs(t, err, ErrRecordTooLarge)
		})
	}

	t.Run("limit disabled", func(t *testing.T) {
		got, err := drain(t, NewSliceReader(image, Options{}))
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("huge declared length is rejected before allocation", func(t *testing.T) {
		_, err := NewReader(bytes.NewReader([]byte{0xc6, 0xff, 0xff, 0xff, 0xff}), DefaultOptions()).Next()
		assert.ErrorIs(t, err, ErrRecordTooLarge)
	})
}

func TestReaderIOError(t *testing.T) {
	boom := errors.New("disk on fire")
	image := encodeAll(t, payload(32, 0), payload(32, 1))

	t.Run("inside payload", func(t *testing.T) {
		r := NewReader(io.MultiReader(bytes.NewReader(image[:40]), iotest.ErrReader(boom)), Options{BufferSize: 16})
		got, err := drain(t, r)
		assert.Len(t, got, 1)
		assert.ErrorIs(t, err, ErrIO)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("at record boundary", func(t *testing.T) {
		r := NewReader(io.MultiReader(bytes.NewReader(image[:34]), iotest.ErrReader(boom)), DefaultOptions())
		got, err := drain(t, r)
		assert.Len(t, got, 1)
		assert.ErrorIs(t, err, ErrIO)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("one byte reads", func(t *testing.T) {
		r := NewReader(iotest.OneByteReader(bytes.NewReader(image)), DefaultOptions())
		got, err := drain(t, r)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, int64(len(image)), r.Offset())
	})
}

func TestReaderReusesBuffer(t *testing.T) {
	image := encodeAll(t, payload(8, 0), payload(8, 100))
	r := NewReader(bytes.NewReader(image), DefaultOptions())

	first, err := r.Next()
	require.NoError(t, err)
	firstCopy := bytes.Clone(first)

	second, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, payload(8, 100), second)
	assert.Equal(t, payload(8, 0), firstCopy)
}

func TestSliceReaderAliasesImage(t *testing.T) {
	image := encodeAll(t, payload(4, 0))
	r := NewSliceReader(image, DefaultOptions())

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, 4, cap(rec))

	image[2] = 0xee
	assert.Equal(t, byte(0xee), rec[0])
	assert.Equal(t, int64(len(image)), r.Offset())
}
