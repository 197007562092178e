// SPDX-License-Identifier: MIT

// Package matrix: SVD- and eigen-based matrix functions.
//
// Purpose:
//   - PolarFactor: the unitary polar factor U·Vᴴ of a tall matrix.
//   - SqrtHermitian: principal square root of a Hermitian PSD matrix.
//   - ValidatePositiveDefinite: Cholesky test of the Hermitian part.
//   - Expm: matrix exponential.
//
// All three are matrix functions, so the complex path goes through the real
// block embedding (see embed.go) and gonum's real kernels.
package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// negEigTol is the relative threshold below which a negative eigenvalue in
// SqrtHermitian is treated as rounding noise and clamped to zero.
const negEigTol = 1e-12

// PolarFactor returns U·Vᴴ where a = U·Σ·Vᴴ is the thin SVD of a (rows ≥ cols).
// For full column rank this is the nearest matrix with orthonormal columns
// to a in the Frobenius norm.
//
// Implementation:
//   - Stage 1: lift a to gonum; thin SVD (mat.SVDThin).
//   - Stage 2: multiply U by Vᵀ and map back.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (rows < cols), ErrNoConvergence.
//
// Complexity:
//   - Time O(n·k²), Space O(n·k).
func PolarFactor[T Scalar](a *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opPolar, err)
	}
	if a.r < a.c {
		return nil, matrixErrorf(opPolar, ErrDimensionMismatch)
	}

	var svd mat.SVD
	if ok := svd.Factorize(toGonum(a), mat.SVDThin); !ok {
		return nil, matrixErrorf(opPolar, ErrNoConvergence)
	}
	var u, v, uv mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	uv.Mul(&u, v.T())

	return fromGonum[T](&uv), nil
}

// SqrtHermitian returns the principal square root of the Hermitian positive
// semidefinite matrix a. Only the Hermitian part of a is used.
//
// Implementation:
//   - Stage 1: lift a; symmetrize into a mat.SymDense.
//   - Stage 2: mat.EigenSym → V·diag(√λ)·Vᵀ.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNoConvergence,
//     ErrNotPositive when λ_min < −negEigTol·max(1, λ_max).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func SqrtHermitian[T Scalar](a *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSqrtHermitian, err)
	}

	sym := hermitianSym(toGonum(a))
	n := sym.SymmetricDim()

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, matrixErrorf(opSqrtHermitian, ErrNoConvergence)
	}
	vals := es.Values(nil) // ascending
	limit := negEigTol * math.Max(1, math.Abs(vals[n-1]))
	if vals[0] < -limit {
		return nil, matrixErrorf(opSqrtHermitian, ErrNotPositive)
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	// Scale eigenvector columns by √λ, then form (V√Λ)·Vᵀ.
	scaled := mat.DenseCopyOf(&vecs)
	for j, lambda := range vals {
		s := math.Sqrt(math.Max(lambda, 0))
		for i := 0; i < n; i++ {
			scaled.Set(i, j, scaled.At(i, j)*s)
		}
	}
	var root mat.Dense
	root.Mul(scaled, vecs.T())

	return fromGonum[T](&root), nil
}

// ValidatePositiveDefinite reports whether the Hermitian part of a is
// positive definite, by attempting a Cholesky factorization of it.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotPositive.
// Complexity: O(n³).
func ValidatePositiveDefinite[T Scalar](a *Dense[T]) error {
	if err := ValidateSquare(a); err != nil {
		return matrixErrorf(opPosDef, err)
	}

	var ch mat.Cholesky
	if ok := ch.Factorize(hermitianSym(toGonum(a))); !ok {
		return matrixErrorf(opPosDef, ErrNotPositive)
	}

	return nil
}

// hermitianSym returns the symmetric part (g + gᵀ)/2 of a square gonum matrix.
// For the block embedding of a complex matrix this is the embedding of its
// Hermitian part.
func hermitianSym(g mat.Matrix) *mat.SymDense {
	n, _ := g.Dims()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, 0.5*(g.At(i, j)+g.At(j, i)))
		}
	}

	return sym
}

// Expm returns the matrix exponential e^a of a square matrix.
// Delegates to gonum's Padé-based (*mat.Dense).Exp.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³).
func Expm[T Scalar](a *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opExpm, err)
	}
	var e mat.Dense
	e.Exp(toGonum(a))

	return fromGonum[T](&e), nil
}
