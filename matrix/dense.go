// SPDX-License-Identifier: MIT

// Package matrix: Dense[T]: row-major storage over float64 or complex128.
//
// Purpose:
//   - Provide the single concrete matrix type consumed by every kernel.
//   - Keep element access bounds-safe (At/Set never panic on bad indices).
//
// Determinism & Performance:
//   - Flat backing slice, row-major; kernels index data directly.
//   - No hidden sharing: Clone, Slice and RawData always copy.
package matrix

import (
	"fmt"
	"strings"
)

// Method names used in Dense error contexts.
const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// Dense is a row-major r×c matrix with elements of type T.
// The zero value is not usable; construct with NewDense, NewDenseFrom or Identity.
type Dense[T Scalar] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense[T Scalar](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNewDense, ErrInvalidDimensions)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewDenseFrom creates an r×c Dense matrix holding a copy of data (row-major).
// Returns ErrDimensionMismatch if len(data) != rows*cols.
// Complexity: O(r*c).
func NewDenseFrom[T Scalar](rows, cols int, data []T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opNewDense, ErrDimensionMismatch)
	}
	copy(m.data, data) // caller keeps ownership of data

	return m, nil
}

// Identity returns the n×n identity matrix I_n.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity[T Scalar](n int) (*Dense[T], error) {
	I, err := NewDense[T](n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	one := FromReal[T](1)
	for i := 0; i < n; i++ {
		I.data[i*n+i] = one
	}

	return I, nil
}

// mustDense allocates an r×c Dense for internal callers whose shapes are
// already validated (rows, cols ≥ 1).
func mustDense[T Scalar](rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// Rows returns the number of rows in the matrix.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense[T]) Cols() int { return m.c }

// Dims returns (rows, cols).
func (m *Dense[T]) Dims() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrIndexOutOfBounds (wrapped with coordinates) for invalid indices.
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Returns ErrIndexOutOfBounds (wrapped with coordinates) for invalid indices.
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// RawData returns a row-major copy of the elements.
func (m *Dense[T]) RawData() []T {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return cp
}

// Slice returns a copy of the block rows [r0,r1) × cols [c0,c1).
// Returns ErrIndexOutOfBounds for an empty or out-of-range block.
// Complexity: O((r1-r0)*(c1-c0)).
func (m *Dense[T]) Slice(r0, r1, c0, c1 int) (*Dense[T], error) {
	if r0 < 0 || c0 < 0 || r1 > m.r || c1 > m.c || r0 >= r1 || c0 >= c1 {
		return nil, matrixErrorf(opSlice, ErrIndexOutOfBounds)
	}
	out := mustDense[T](r1-r0, c1-c0)
	for i := r0; i < r1; i++ {
		copy(out.data[(i-r0)*out.c:(i-r0+1)*out.c], m.data[i*m.c+c0:i*m.c+c1])
	}

	return out, nil
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%v", m.data[i*m.c+j]))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
