// SPDX-License-Identifier: MIT
package euclidean

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stiefel/matrix"
)

// ErrShape is returned when a matrix does not have the shape of the Space.
var ErrShape = errors.New("euclidean: matrix shape does not match space")

// ErrInvalidSpace is returned by New for non-positive dimensions.
var ErrInvalidSpace = errors.New("euclidean: dimensions must be > 0")

// Space is the real or complex matrix space of fixed shape rows×cols.
type Space struct {
	rows, cols int
}

// New returns the space of rows×cols matrices.
func New(rows, cols int) (Space, error) {
	if rows <= 0 || cols <= 0 {
		return Space{}, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidSpace)
	}

	return Space{rows: rows, cols: cols}, nil
}

// Dims returns (rows, cols).
func (s Space) Dims() (rows, cols int) { return s.rows, s.cols }

// String implements fmt.Stringer.
func (s Space) String() string { return fmt.Sprintf("Euclidean(%d, %d)", s.rows, s.cols) }

// CheckShape returns nil when a is non-nil and rows×cols.
func CheckShape[T matrix.Scalar](s Space, a *matrix.Dense[T]) error {
	if a == nil {
		return fmt.Errorf("%v: %w", s, matrix.ErrNilMatrix)
	}
	if r, c := a.Dims(); r != s.rows || c != s.cols {
		return fmt.Errorf("%v: got %dx%d: %w", s, r, c, ErrShape)
	}

	return nil
}

// Inner returns Re tr(XᴴY).
func Inner[T matrix.Scalar](s Space, x, y *matrix.Dense[T]) (float64, error) {
	if err := CheckShape(s, x); err != nil {
		return 0, err
	}
	if err := CheckShape(s, y); err != nil {
		return 0, err
	}

	return matrix.Inner(x, y)
}

// Norm returns the Frobenius norm √⟨X,X⟩.
func Norm[T matrix.Scalar](s Space, x *matrix.Dense[T]) (float64, error) {
	if err := CheckShape(s, x); err != nil {
		return 0, err
	}

	return matrix.FrobeniusNorm(x), nil
}

// Zero returns the zero matrix of the space.
func Zero[T matrix.Scalar](s Space) (*matrix.Dense[T], error) {
	return matrix.NewDense[T](s.rows, s.cols)
}

// Embed returns a copy of p as an element of the space. The embedding of a
// matrix manifold is the inclusion, so only the shape is checked.
func Embed[T matrix.Scalar](s Space, p *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := CheckShape(s, p); err != nil {
		return nil, err
	}

	return p.Clone(), nil
}

// Distance returns ‖X − Y‖_F.
func Distance[T matrix.Scalar](s Space, x, y *matrix.Dense[T]) (float64, error) {
	if err := CheckShape(s, x); err != nil {
		return 0, err
	}
	if err := CheckShape(s, y); err != nil {
		return 0, err
	}
	d, err := matrix.Sub(x, y)
	if err != nil {
		return 0, err
	}

	return matrix.FrobeniusNorm(d), nil
}
