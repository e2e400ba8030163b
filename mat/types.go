// SPDX-License-Identifier: MIT
// Package mat: the Mat dense matrix type, its constructors and core
// accessors. Algorithms live in their own files (gauss_jordan.go, lu.go,
// cholesky.go, ops_*.go); this file is storage and indexing only.

package mat

import "github.com/katalvlaran/geomat/vec"

// Epsilon is the package-wide numeric tolerance: pivot magnitudes at or
// below Epsilon are treated as zero by the elimination and decomposition
// kernels, and EqualWithin's default comparisons use it.
const Epsilon = 1e-12

// Mat is a dense rows×cols matrix of float64 backed by a flat row-major
// slice: element (r,c) lives at data[r*cols+c]. The shape is fixed at
// construction and never changes; operations that would need a different
// shape allocate a fresh Mat.
//
// The zero value of Mat is not usable; build instances with New,
// NewDiagonal, NewFromSlice or Identity.
type Mat struct {
	rows, cols int
	data       []float64
}

// New returns a zero-filled rows×cols matrix.
//
// Errors: ErrBadShape when rows <= 0 or cols <= 0.
// Complexity: O(rows*cols) for the backing allocation.
func New(rows, cols int) (*Mat, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matErrorf(opNew, err)
	}

	return &Mat{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// NewDiagonal returns a rows×cols matrix with s on the main diagonal and
// zero elsewhere. For non-square shapes the diagonal runs min(rows, cols)
// entries. NewDiagonal(n, n, 1) is the n×n identity.
//
// Errors: ErrBadShape when rows <= 0 or cols <= 0.
func NewDiagonal(rows, cols int, s float64) (*Mat, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	n := min(rows, cols)
	for i := 0; i < n; i++ {
		m.data[i*cols+i] = s
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
//
// Errors: ErrBadShape when n <= 0.
func Identity(n int) (*Mat, error) {
	return NewDiagonal(n, n, 1)
}

// NewFromSlice builds a rows×cols matrix from row-major coefficients.
// The slice is copied; the caller's buffer stays independent.
//
// Errors: ErrBadShape when rows <= 0, cols <= 0, or len(data) != rows*cols.
func NewFromSlice(rows, cols int, data []float64) (*Mat, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matErrorf(opNewFromSlice, err)
	}
	if len(data) != rows*cols {
		return nil, matErrorf(opNewFromSlice, ErrBadShape)
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Mat{rows: rows, cols: cols, data: buf}, nil
}

// MustFromSlice is NewFromSlice that panics on error. Intended for
// package-level literals and tests where the shape is known correct.
func MustFromSlice(rows, cols int, data []float64) *Mat {
	m, err := NewFromSlice(rows, cols, data)
	if err != nil {
		panic(err)
	}

	return m
}

// Rows returns the row count. O(1).
func (m *Mat) Rows() int { return m.rows }

// Cols returns the column count. O(1).
func (m *Mat) Cols() int { return m.cols }

// At returns element (r, c).
//
// Errors: ErrOutOfRange when r or c is outside bounds.
func (m *Mat) At(r, c int) (float64, error) {
	if err := m.validateIndex(r, c); err != nil {
		return 0, matErrorf(opAt, err)
	}

	return m.data[r*m.cols+c], nil
}

// Set assigns element (r, c).
//
// Errors: ErrOutOfRange when r or c is outside bounds.
func (m *Mat) Set(r, c int, value float64) error {
	if err := m.validateIndex(r, c); err != nil {
		return matErrorf(opSet, err)
	}
	m.data[r*m.cols+c] = value

	return nil
}

// Data exposes the row-major backing slice directly, without copying.
// Mutating the returned slice mutates the matrix; treat it as a borrowed
// view for bulk reads and interop (e.g. uploading coefficient buffers).
func (m *Mat) Data() []float64 { return m.data }

// Clone returns an independent deep copy of m.
func (m *Mat) Clone() *Mat {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Mat{rows: m.rows, cols: m.cols, data: buf}
}

// Zero resets every element to 0, keeping the shape.
func (m *Mat) Zero() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// LoadDiagonal zeroes m and writes s along the main diagonal, in place.
func (m *Mat) LoadDiagonal(s float64) {
	m.Zero()
	n := min(m.rows, m.cols)
	for i := 0; i < n; i++ {
		m.data[i*m.cols+i] = s
	}
}

// Row returns row r as a fresh vec.Vector of length Cols().
//
// Errors: ErrOutOfRange when r is outside bounds.
func (m *Mat) Row(r int) (vec.Vector, error) {
	if r < 0 || r >= m.rows {
		return nil, matErrorf(opRow, ErrOutOfRange)
	}
	out := make(vec.Vector, m.cols)
	copy(out, m.data[r*m.cols:(r+1)*m.cols])

	return out, nil
}

// Col returns column c as a fresh vec.Vector of length Rows().
//
// Errors: ErrOutOfRange when c is outside bounds.
func (m *Mat) Col(c int) (vec.Vector, error) {
	if c < 0 || c >= m.cols {
		return nil, matErrorf(opCol, ErrOutOfRange)
	}
	out := make(vec.Vector, m.rows)
	for r := 0; r < m.rows; r++ {
		out[r] = m.data[r*m.cols+c]
	}

	return out, nil
}

// SetRow overwrites row r with the leading Cols() components of v.
// v may be longer than the row (the tail is ignored), never shorter.
//
// Errors: ErrOutOfRange for a bad row index; ErrDimensionMismatch when
// len(v) < Cols().
func (m *Mat) SetRow(r int, v vec.Vector) error {
	if r < 0 || r >= m.rows {
		return matErrorf(opSetRow, ErrOutOfRange)
	}
	if len(v) < m.cols {
		return matErrorf(opSetRow, ErrDimensionMismatch)
	}
	copy(m.data[r*m.cols:(r+1)*m.cols], v[:m.cols])

	return nil
}

// SetCol overwrites column c with the leading Rows() components of v.
// v may be longer than the column (the tail is ignored), never shorter.
//
// Errors: ErrOutOfRange for a bad column index; ErrDimensionMismatch when
// len(v) < Rows().
func (m *Mat) SetCol(c int, v vec.Vector) error {
	if c < 0 || c >= m.cols {
		return matErrorf(opSetCol, ErrOutOfRange)
	}
	if len(v) < m.rows {
		return matErrorf(opSetCol, ErrDimensionMismatch)
	}
	for r := 0; r < m.rows; r++ {
		m.data[r*m.cols+c] = v[r]
	}

	return nil
}

// SwapRows exchanges rows i and j in place.
//
// Errors: ErrOutOfRange when either index is outside bounds.
func (m *Mat) SwapRows(i, j int) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.rows {
		return matErrorf(opSwapRows, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	ri := m.data[i*m.cols : (i+1)*m.cols]
	rj := m.data[j*m.cols : (j+1)*m.cols]
	for c := 0; c < m.cols; c++ {
		ri[c], rj[c] = rj[c], ri[c]
	}

	return nil
}

// SwapCols exchanges columns i and j in place.
//
// Errors: ErrOutOfRange when either index is outside bounds.
func (m *Mat) SwapCols(i, j int) error {
	if i < 0 || i >= m.cols || j < 0 || j >= m.cols {
		return matErrorf(opSwapCols, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	for r := 0; r < m.rows; r++ {
		base := r * m.cols
		m.data[base+i], m.data[base+j] = m.data[base+j], m.data[base+i]
	}

	return nil
}
