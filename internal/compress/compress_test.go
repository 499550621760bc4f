package compress

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, typ Type, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := NewWriter(&buf, typ)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte{0xc5, 0x08, 0x00, 1, 2, 3, 4}, 1000)

	for _, typ := range []Type{None, Zstd, LZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			encoded := roundTrip(t, typ, data)
			assert.Equal(t, typ, Detect(encoded))

			for _, readAs := range []Type{Auto, typ} {
				r, got, err := NewReader(bytes.NewReader(encoded), readAs, 4096)
				require.NoError(t, err)
				assert.Equal(t, typ, got)

				decoded, err := io.ReadAll(r)
				require.NoError(t, err)
				require.NoError(t, r.Close())
				assert.Equal(t, data, decoded)
			}
		})
	}
}

func TestDetectShortInput(t *testing.T) {
	for _, in := range [][]byte{nil, {0x28}, {0xc4, 0x00}} {
		r, typ, err := NewReader(bytes.NewReader(in), Auto, 16)
		require.NoError(t, err)
		assert.Equal(t, None, typ)
		got, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, len(in), len(got))
	}
}

func TestParse(t *testing.T) {
	for name, want := range map[string]Type{"": Auto, "auto": Auto, "none": None, "zstd": Zstd, "zst": Zstd, "lz4": LZ4} {
		got, err := Parse(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := Parse("gzip")
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Equal(t, "Type(9)", Type(9).String())
}
