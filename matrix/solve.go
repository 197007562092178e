// SPDX-License-Identifier: MIT

// Package matrix: linear, Sylvester and Lyapunov solvers.
//
// Determinism & Policy:
//   - Solve uses gonum's LU with partial pivoting; a singular or numerically
//     singular system (condition number above mat.ConditionTolerance) is
//     reported as ErrSingular rather than returning an untrustworthy result.
//   - Sylvester vectorises AX + XB = C into (I⊗A + Bᵀ⊗I)·vec(X) = vec(C).
//     The operands here are k×k with k the number of frame columns, so the
//     k²×k² system stays small.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Solve returns x with a·x = b for square a.
//
// Implementation:
//   - Stage 1: validate a square and a.Rows == b.Rows.
//   - Stage 2: lift both operands to gonum (block embedding for complex) and
//     run (*mat.Dense).Solve (LU with partial pivoting).
//   - Stage 3: map the solution back.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
//   - ErrSingular when gonum reports a singular / ill-conditioned system.
//
// Complexity:
//   - Time O(n³ + n²·m), Space O(n² + n·m).
func Solve[T Scalar](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if a.r != b.r {
		return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
	}

	ga, gb := toGonum(a), toGonum(b)
	var x mat.Dense
	if err := x.Solve(ga, gb); err != nil {
		return nil, matrixErrorf(opSolve, fmt.Errorf("%w (%v)", ErrSingular, err))
	}

	return fromGonum[T](&x), nil
}

// Sylvester solves A·X + X·B = C for X (A k×k, B l×l, C k×l).
//
// Implementation:
//   - Stage 1: build K = I_l⊗A + Bᵀ⊗I_k (kl×kl) and vec(C) (column-major).
//   - Stage 2: Solve(K, vec C) and fold the solution back into k×l.
//
// Behavior highlights:
//   - A unique solution exists iff no eigenvalue of A is the negative of an
//     eigenvalue of B; otherwise K is singular and ErrSingular is returned.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O((kl)³), Space O((kl)²).
func Sylvester[T Scalar](a, b, c *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSylvester, err)
	}
	if err := ValidateSquare(b); err != nil {
		return nil, matrixErrorf(opSylvester, err)
	}
	if err := ValidateShape(c, a.r, b.r); err != nil {
		return nil, matrixErrorf(opSylvester, err)
	}

	k, l := a.r, b.r
	kl := k * l
	K := mustDense[T](kl, kl)
	v := mustDense[T](kl, 1)
	var i, j, p int
	for j = 0; j < l; j++ {
		for i = 0; i < k; i++ {
			row := j*k + i
			v.data[row] = c.data[i*l+j]
			// (I_l ⊗ A): block (j,j) holds A.
			for p = 0; p < k; p++ {
				K.data[row*kl+j*k+p] += a.data[i*k+p]
			}
			// (Bᵀ ⊗ I_k): block (j,q) holds B[q,j]·I_k.
			for p = 0; p < l; p++ {
				K.data[row*kl+p*k+i] += b.data[p*l+j]
			}
		}
	}

	x, err := Solve(K, v)
	if err != nil {
		return nil, matrixErrorf(opSylvester, err)
	}
	out := mustDense[T](k, l)
	for j = 0; j < l; j++ {
		for i = 0; i < k; i++ {
			out.data[i*l+j] = x.data[j*k+i]
		}
	}

	return out, nil
}

// Lyapunov solves the continuous Lyapunov equation A·X + X·Aᴴ = C.
// Delegates to Sylvester(A, Aᴴ, C).
// Errors: as Sylvester.
func Lyapunov[T Scalar](a, c *Dense[T]) (*Dense[T], error) {
	ah, err := H(a)
	if err != nil {
		return nil, matrixErrorf(opLyapunov, err)
	}
	x, err := Sylvester(a, ah, c)
	if err != nil {
		return nil, matrixErrorf(opLyapunov, err)
	}

	return x, nil
}

// SolveRight returns x with x·a = b, i.e. b·a⁻¹, for square a.
// Implemented as (Solve(aᴴ, bᴴ))ᴴ.
// Errors: as Solve; ErrDimensionMismatch when b.Cols != a.Rows.
func SolveRight[T Scalar](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if b.c != a.r {
		return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
	}
	ah, err := H(a)
	if err != nil {
		return nil, err
	}
	bh, err := H(b)
	if err != nil {
		return nil, err
	}
	xh, err := Solve(ah, bh)
	if err != nil {
		return nil, err
	}

	return H(xh)
}
