// SPDX-License-Identifier: MIT

// Package stiefel: inverse retractions.
//
// Both methods start from A = pᴴq (k×k) and return X = q·B − p for a k×k
// matrix B chosen so that pᴴX = AB − I is skew-Hermitian:
//
//   - Polar: B Hermitian positive definite, AB + BAᴴ = 2I (a Lyapunov equation).
//   - QR:    B upper triangular with real positive diagonal, AB + (AB)ᴴ = 2I,
//     built one column at a time.
//
// They are local inverses: defined for q close to p, and failing with
// ErrSingularSystem once the underlying systems degenerate.
package stiefel

import (
	"fmt"
	"math"

	"github.com/katalvlaran/stiefel/matrix"
)

// singularTol bounds pivots and determinants in the QR inverse below which
// a leading block of A is treated as singular.
const singularTol = 1e-14

// InverseRetract returns X with R_p(X) = q for the retraction matching method.
//
// Errors:
//   - ErrFieldMismatch / ErrUnsupportedField, ErrNilMatrix, ErrShapeMismatch.
//   - ErrUnsupportedMethod for an unknown method.
//   - ErrSingularSystem when p and q are too far apart.
func InverseRetract[T matrix.Scalar](M Manifold, p, q *matrix.Dense[T], method InverseRetractionMethod) (*matrix.Dense[T], error) {
	if err := checkInputs(opInverseRetract, M, p, q); err != nil {
		return nil, err
	}

	var (
		X   *matrix.Dense[T]
		err error
	)
	switch method {
	case PolarInverseRetraction:
		X, err = inverseRetractPolar(p, q)
	case QRInverseRetraction:
		X, err = inverseRetractQR(p, q)
	default:
		return nil, stiefelErrorf(opInverseRetract, ErrUnsupportedMethod)
	}
	if err != nil {
		return nil, numericErrorf(opInverseRetract, err)
	}

	return X, nil
}

// inverseRetractPolar solves AB + BAᴴ = 2I and returns qB − p. The Lyapunov
// equation can have a solution for q far from p (A = −I gives B = −I), but
// only a positive definite B comes from a polar retraction.
func inverseRetractPolar[T matrix.Scalar](p, q *matrix.Dense[T]) (*matrix.Dense[T], error) {
	a, err := matrix.HMul(p, q)
	if err != nil {
		return nil, err
	}
	two, err := matrix.Identity[T](a.Rows())
	if err != nil {
		return nil, err
	}
	if two, err = matrix.Scale(two, matrix.FromReal[T](2)); err != nil {
		return nil, err
	}
	b, err := matrix.Lyapunov(a, two)
	if err != nil {
		return nil, err
	}
	if err := matrix.ValidatePositiveDefinite(b); err != nil {
		return nil, err
	}

	return frameFromFactor(p, q, b)
}

// inverseRetractQR returns qR − p with R = qrInverseFactor(pᴴq).
func inverseRetractQR[T matrix.Scalar](p, q *matrix.Dense[T]) (*matrix.Dense[T], error) {
	a, err := matrix.HMul(p, q)
	if err != nil {
		return nil, err
	}
	r, err := qrInverseFactor(a)
	if err != nil {
		return nil, err
	}

	return frameFromFactor(p, q, r)
}

// frameFromFactor returns q·b − p.
func frameFromFactor[T matrix.Scalar](p, q, b *matrix.Dense[T]) (*matrix.Dense[T], error) {
	qb, err := matrix.Mul(q, b)
	if err != nil {
		return nil, err
	}

	return matrix.Sub(qb, p)
}

// qrInverseFactor returns the upper-triangular R with real positive
// diagonal such that M = AR satisfies M + Mᴴ = 2I. k ≤ 2 use closed forms.
func qrInverseFactor[T matrix.Scalar](a *matrix.Dense[T]) (*matrix.Dense[T], error) {
	switch a.Rows() {
	case 1:
		return qrInverseFactor1(a)
	case 2:
		return qrInverseFactor2(a)
	}

	return qrInverseFactorN(a)
}

// qrInverseColumn combines the two solutions of column i,
// x = Aᵢ⁻¹[b; 0] and s = Aᵢ⁻¹eᵢ, into r = x + μs. The diagonal entry
// Mᵢᵢ = μ has Re μ = 1; Im μ is chosen so that Rᵢᵢ = xᵢ + μsᵢ is real,
// which is automatic for the real field.
func qrInverseColumn[T matrix.Scalar](x, s []T) ([]T, error) {
	i := len(x) - 1
	mu := matrix.FromReal[T](1)
	if matrix.IsComplex[T]() {
		c, d := x[i], s[i]
		if math.Abs(matrix.RealPart(d)) <= singularTol {
			return nil, fmt.Errorf("column %d: %w", i, matrix.ErrSingular)
		}
		theta := -(matrix.ImagPart(c) + matrix.ImagPart(d)) / matrix.RealPart(d)
		mu = matrix.FromComplex[T](complex(1, theta))
	}
	r := make([]T, len(x))
	for j := range x {
		r[j] = x[j] + mu*s[j]
	}
	// Drop rounding noise from the imaginary part of the diagonal.
	r[i] = matrix.FromReal[T](matrix.RealPart(r[i]))
	if matrix.RealPart(r[i]) <= 0 {
		return nil, fmt.Errorf("column %d: non-positive diagonal: %w", i, matrix.ErrSingular)
	}

	return r, nil
}

// offDiagonalRHS returns bⱼ = −conj(Σₗ A[i,l]·R[l,j]) for j < i: the entries
// above the diagonal of column i of M = AR mirror those already fixed below it.
func offDiagonalRHS[T matrix.Scalar](a, r *matrix.Dense[T], i int) []T {
	b := make([]T, i+1)
	for j := 0; j < i; j++ {
		var sum T
		for l := 0; l <= j; l++ {
			ail, _ := a.At(i, l)
			rlj, _ := r.At(l, j)
			sum += ail * rlj
		}
		b[j] = -matrix.ScalarConj(sum)
	}

	return b
}

// qrInverseFactor1 handles k = 1: R = |1/a|²/Re(1/a), i.e. 1/a for real a.
func qrInverseFactor1[T matrix.Scalar](a *matrix.Dense[T]) (*matrix.Dense[T], error) {
	a00, _ := a.At(0, 0)
	if matrix.ScalarAbs(a00) <= singularTol {
		return nil, fmt.Errorf("leading minor 1: %w", matrix.ErrSingular)
	}
	one := matrix.FromReal[T](1)
	col, err := qrInverseColumn([]T{0}, []T{one / a00})
	if err != nil {
		return nil, err
	}

	return matrix.NewDenseFrom(1, 1, col)
}

// qrInverseFactor2 handles k = 2 with Cramer's rule on the 2×2 block.
func qrInverseFactor2[T matrix.Scalar](a *matrix.Dense[T]) (*matrix.Dense[T], error) {
	r1, err := qrInverseFactor1(a)
	if err != nil {
		return nil, err
	}
	r00, _ := r1.At(0, 0)
	a00, _ := a.At(0, 0)
	a01, _ := a.At(0, 1)
	a10, _ := a.At(1, 0)
	a11, _ := a.At(1, 1)

	det := a00*a11 - a01*a10
	if matrix.ScalarAbs(det) <= singularTol {
		return nil, fmt.Errorf("leading minor 2: %w", matrix.ErrSingular)
	}
	b0 := -matrix.ScalarConj(a10 * r00)
	x := []T{a11 * b0 / det, -a10 * b0 / det}
	s := []T{-a01 / det, a00 / det}
	col, err := qrInverseColumn(x, s)
	if err != nil {
		return nil, err
	}

	var zero T
	return matrix.NewDenseFrom(2, 2, []T{r00, col[0], zero, col[1]})
}

// qrInverseFactorN is the general column recurrence: for i = 0..k−1 solve
// the leading (i+1)×(i+1) block of A against [b | eᵢ] and combine.
func qrInverseFactorN[T matrix.Scalar](a *matrix.Dense[T]) (*matrix.Dense[T], error) {
	k := a.Rows()
	r, err := matrix.NewDense[T](k, k)
	if err != nil {
		return nil, err
	}
	one := matrix.FromReal[T](1)
	for i := 0; i < k; i++ {
		block, err := a.Slice(0, i+1, 0, i+1)
		if err != nil {
			return nil, err
		}
		rhs, err := matrix.NewDense[T](i+1, 2)
		if err != nil {
			return nil, err
		}
		for j, v := range offDiagonalRHS(a, r, i) {
			_ = rhs.Set(j, 0, v)
		}
		_ = rhs.Set(i, 1, one)

		sol, err := matrix.Solve(block, rhs)
		if err != nil {
			return nil, fmt.Errorf("leading minor %d: %w", i+1, err)
		}
		x, s := make([]T, i+1), make([]T, i+1)
		for j := 0; j <= i; j++ {
			x[j], _ = sol.At(j, 0)
			s[j], _ = sol.At(j, 1)
		}
		col, err := qrInverseColumn(x, s)
		if err != nil {
			return nil, err
		}
		for j, v := range col {
			_ = r.Set(j, i, v)
		}
	}

	return r, nil
}
