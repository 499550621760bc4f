package vecload

import "fmt"

// Matrix is a row-major float32 matrix owned by the caller.
//
// Ingestion writes rows in order starting at row 0 and never touches rows
// past Report.Written.
type Matrix struct {
	Rows int
	Cols int
	Data []float32
}

// NewMatrix allocates a zeroed rows x cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("vecload: negative matrix shape %dx%d", rows, cols))
	}
	return &Matrix{
		Rows: rows,
		Cols: cols,
		Data: make([]float32, rows*cols),
	}
}

// MatrixFrom wraps existing storage without copying.
func MatrixFrom(data []float32, rows, cols int) (*Matrix, error) {
	m := &Matrix{Rows: rows, Cols: cols, Data: data}
	if err := m.check(); err != nil {
		return nil, err
	}
	return m, nil
}

// Row returns row i. The slice has capacity Cols, so appending to it never
// overwrites the next row.
func (m *Matrix) Row(i int) []float32 {
	off := i * m.Cols
	return m.Data[off : off+m.Cols : off+m.Cols]
}

func (m *Matrix) check() error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.Rows < 0 || m.Cols < 0 || len(m.Data) != m.Rows*m.Cols {
		return &ErrInvalidMatrix{Rows: m.Rows, Cols: m.Cols, Len: len(m.Data)}
	}
	return nil
}

// target adapts a Matrix to the ingest driver.
type target struct{ m *Matrix }

func (t target) Rows() int           { return t.m.Rows }
func (t target) Cols() int           { return t.m.Cols }
func (t target) Row(i int) []float32 { return t.m.Row(i) }
