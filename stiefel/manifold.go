// SPDX-License-Identifier: MIT
// Package stiefel: manifold descriptor and closed-form dimension queries.

package stiefel

import (
	"fmt"

	"github.com/katalvlaran/stiefel/euclidean"
	"github.com/katalvlaran/stiefel/matrix"
)

// Field is the scalar field of the manifold.
type Field int

const (
	// Real is ℝ; points are *matrix.Dense[float64].
	Real Field = iota + 1
	// Complex is ℂ; points are *matrix.Dense[complex128].
	Complex
	// Quaternion is ℍ; supported by the dimension queries only.
	Quaternion
)

// String implements fmt.Stringer.
func (f Field) String() string {
	switch f {
	case Real:
		return "ℝ"
	case Complex:
		return "ℂ"
	case Quaternion:
		return "ℍ"
	}

	return fmt.Sprintf("Field(%d)", int(f))
}

// RealDimension is the dimension of the field as a real vector space (1, 2 or 4).
// Unknown fields report 0.
func (f Field) RealDimension() int {
	switch f {
	case Real:
		return 1
	case Complex:
		return 2
	case Quaternion:
		return 4
	}

	return 0
}

// Manifold describes St(n, k, 𝔽). It is an immutable value; the zero value
// is invalid: numerical operations reject it with ErrInvalidManifold.
type Manifold struct {
	n, k  int
	field Field
}

// New returns the descriptor of St(n, k, field).
// Errors: ErrInvalidManifold unless n ≥ k ≥ 1 and field is Real, Complex or Quaternion.
func New(n, k int, field Field) (Manifold, error) {
	if k < 1 || n < k {
		return Manifold{}, stiefelErrorf(opNew, fmt.Errorf("n=%d, k=%d: %w", n, k, ErrInvalidManifold))
	}
	if field.RealDimension() == 0 {
		return Manifold{}, stiefelErrorf(opNew, fmt.Errorf("%v: %w", field, ErrInvalidManifold))
	}

	return Manifold{n: n, k: k, field: field}, nil
}

// Rows returns n.
func (M Manifold) Rows() int { return M.n }

// Cols returns k.
func (M Manifold) Cols() int { return M.k }

// Field returns the scalar field.
func (M Manifold) Field() Field { return M.field }

// RepresentationSize returns the shape (n, k) of points and tangent vectors.
func (M Manifold) RepresentationSize() (n, k int) { return M.n, M.k }

// Dimension returns the real dimension of the manifold:
//
//	ℝ: nk − k(k+1)/2
//	ℂ: 2nk − k²
//	ℍ: 4nk − k(2k−1)
func (M Manifold) Dimension() int {
	n, k := M.n, M.k
	switch M.field {
	case Real:
		return n*k - k*(k+1)/2
	case Complex:
		return 2*n*k - k*k
	case Quaternion:
		return 4*n*k - k*(2*k-1)
	}

	return 0
}

// IsFlat reports whether the manifold is one-dimensional (a circle), the
// only case in which its curvature vanishes.
func (M Manifold) IsFlat() bool { return M.Dimension() == 1 }

// String implements fmt.Stringer.
func (M Manifold) String() string {
	return fmt.Sprintf("Stiefel(%d, %d, %v)", M.n, M.k, M.field)
}

// embedding returns the ambient space the manifold lives in.
func (M Manifold) embedding() euclidean.Space {
	s, _ := euclidean.New(M.n, M.k) // n ≥ k ≥ 1 once validated
	return s
}

// checkField ensures T matches the manifold field.
func checkField[T matrix.Scalar](M Manifold) error {
	switch M.field {
	case Real:
		if matrix.IsComplex[T]() {
			return ErrFieldMismatch
		}
	case Complex:
		if !matrix.IsComplex[T]() {
			return ErrFieldMismatch
		}
	case Quaternion:
		return ErrUnsupportedField
	default:
		return ErrInvalidManifold
	}

	return nil
}

// checkShape ensures m is a non-nil n×k matrix.
func checkShape[T matrix.Scalar](M Manifold, m *matrix.Dense[T]) error {
	if m == nil {
		return ErrNilMatrix
	}
	if r, c := m.Dims(); r != M.n || c != M.k {
		return fmt.Errorf("got %dx%d, want %dx%d: %w", r, c, M.n, M.k, ErrShapeMismatch)
	}

	return nil
}

// checkInputs runs checkField and then checkShape on every operand, in
// that order, wrapping the first failure with op.
func checkInputs[T matrix.Scalar](op string, M Manifold, ms ...*matrix.Dense[T]) error {
	if err := checkField[T](M); err != nil {
		return stiefelErrorf(op, err)
	}
	for _, m := range ms {
		if err := checkShape(M, m); err != nil {
			return stiefelErrorf(op, err)
		}
	}

	return nil
}
