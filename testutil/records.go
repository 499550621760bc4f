package testutil

import (
	"encoding/binary"
	"math"

	"github.com/hupe1980/vecload/internal/frame"
)

// Encode returns the little-endian float32 payload of row.
func Encode(row []float32) []byte {
	b := make([]byte, 0, len(row)*4)
	for _, v := range row {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
	}
	return b
}

// Records encodes every row.
func Records(rows [][]float32) [][]byte {
	out := make([][]byte, len(rows))
	for i, row := range rows {
		out[i] = Encode(row)
	}
	return out
}

// Frame returns a record file image holding records in order.
func Frame(records ...[]byte) []byte {
	var image []byte
	for _, rec := range records {
		image = frame.AppendRecord(image, rec)
	}
	return image
}

// Ramp returns [1, 2, ..., n].
func Ramp(n int) []float32 {
	row := make([]float32, n)
	for i := range row {
		row[i] = float32(i + 1)
	}
	return row
}

// SpecialValues returns a row of width w cycling through NaN, ±Inf, -0,
// the smallest subnormal and the float32 extremes.
func SpecialValues(w int) []float32 {
	specials := []float32{
		float32(math.NaN()),
		float32(math.Inf(1)),
		float32(math.Inf(-1)),
		float32(math.Copysign(0, -1)),
		math.SmallestNonzeroFloat32,
		math.MaxFloat32,
		-math.MaxFloat32,
	}
	row := make([]float32, w)
	for i := range row {
		row[i] = specials[i%len(specials)]
	}
	return row
}
