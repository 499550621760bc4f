package rowcopy

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(vals []float32) []byte {
	b := make([]byte, len(vals)*ElemSize)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(b[i*ElemSize:], math.Float32bits(v))
	}
	return b
}

func TestCopy(t *testing.T) {
	for name, fn := range map[string]Func{"fast": Copy, "checked": CopyChecked} {
		t.Run(name, func(t *testing.T) {
			t.Run("exact length", func(t *testing.T) {
				src := []float32{1, -2.5, 3.25, 0}
				dst := make([]float32, len(src))
				require.NoError(t, fn(dst, encode(src)))
				assert.Equal(t, src, dst)
			})

			t.Run("special values keep their bits", func(t *testing.T) {
				nan := math.Float32frombits(0x7fc00001)
				negZero := math.Float32frombits(0x80000000)
				src := []float32{nan, float32(math.Inf(1)), float32(math.Inf(-1)), negZero, math.SmallestNonzeroFloat32}
				dst := make([]float32, len(src))
				require.NoError(t, fn(dst, encode(src)))
				for i := range src {
					assert.Equal(t, math.Float32bits(src[i]), math.Float32bits(dst[i]), "element %d", i)
				}
			})

			t.Run("short record leaves row untouched", func(t *testing.T) {
				dst := []float32{7, 7, 7}
				err := fn(dst, make([]byte, 8))
				var se *SizeError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, 8, se.Actual)
				assert.Equal(t, 12, se.Expected)
				assert.Equal(t, []float32{7, 7, 7}, dst)
			})

			t.Run("long record", func(t *testing.T) {
				dst := make([]float32, 2)
				err := fn(dst, make([]byte, 9))
				assert.EqualError(t, err, "size 9 does not match 8")
			})

			t.Run("empty row", func(t *testing.T) {
				assert.NoError(t, fn(nil, nil))
				assert.Error(t, fn(nil, []byte{1}))
			})
		})
	}
}

func TestCopyUnalignedSource(t *testing.T) {
	want := []float32{1.5, 2.5, 3.5}
	buf := append([]byte{0xff}, encode(want)...)
	dst := make([]float32, 3)
	require.NoError(t, Copy(dst, buf[1:]))
	assert.Equal(t, want, dst)
}

func BenchmarkCopy(b *testing.B) {
	src := encode(make([]float32, 512))
	dst := make([]float32, 512)
	b.SetBytes(int64(len(src)))

	b.Run("fast", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Copy(dst, src)
		}
	})
	b.Run("checked", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = CopyChecked(dst, src)
		}
	})
}
