// SPDX-License-Identifier: MIT

// Package matrix: thin QR factorization.
// QR computes a = Q×R for an n×k matrix (n ≥ k) with Q n×k having
// orthonormal columns and R k×k upper triangular with a REAL diagonal
// (the LAPACK Householder convention). Signs of diag(R) are whatever the
// reflections produce; callers that need a canonical sign apply their own
// correction.
package matrix

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// QR returns the thin factors Q (n×k) and R (k×k) of a = Q×R.
//
// Implementation:
//   - Real:    gonum mat.QR (LAPACK Dgeqrf/Dorgqr), leading k columns of Q.
//   - Complex: Householder reflections H = I − τvvᴴ chosen so that
//     Hᴴx = βe₁ with real β, applied column by column.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (rows < cols).
//
// Complexity:
//   - Time O(n·k²), Space O(n·k).
func QR[T Scalar](a *Dense[T]) (*Dense[T], *Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	if a.r < a.c {
		return nil, nil, matrixErrorf(opQR, ErrDimensionMismatch)
	}
	if IsComplex[T]() {
		return householderQR(a)
	}

	// Stage 1: factorize with gonum.
	var f mat.QR
	f.Factorize(toGonum(a))
	var qFull, rFull mat.Dense
	f.QTo(&qFull)
	f.RTo(&rFull)

	// Stage 2: keep the thin blocks.
	n, k := a.r, a.c

	return fromGonum[T](qFull.Slice(0, n, 0, k)), fromGonum[T](rFull.Slice(0, k, 0, k)), nil
}

// householderQR is the native complex path of QR.
//
// Reflector construction (per column j, x = A[j:n, j]):
//
//	alpha = x₀, xnorm = ‖x[1:]‖
//	xnorm == 0 && Im(alpha) == 0 → τ = 0, β = alpha (H = I)
//	otherwise β = −sign(Re alpha)·‖x‖,
//	          τ = (β − Re alpha)/β − i·Im(alpha)/β,
//	          v = (1, x[1:]/(alpha − β))
//
// so that Hᴴx = βe₁. Hᴴ is applied to the trailing columns, and the thin Q
// is accumulated afterwards as H₀H₁⋯H_{k−1}[I_k; 0].
func householderQR[T Scalar](a *Dense[T]) (*Dense[T], *Dense[T], error) {
	n, k := a.r, a.c
	w := any(a.Clone().data).([]complex128) // working copy, becomes R above the diagonal
	vs := make([][]complex128, k)           // reflector vectors, v[0] == 1
	taus := make([]complex128, k)           // reflector scales

	var (
		i, j, l     int
		alpha, beta complex128
		xnorm, norm float64
		dot         complex128
	)
	for j = 0; j < k; j++ {
		alpha = w[j*k+j]
		xnorm = 0
		for i = j + 1; i < n; i++ {
			xnorm = math.Hypot(xnorm, cmplx.Abs(w[i*k+j]))
		}
		v := make([]complex128, n-j)
		v[0] = 1
		if xnorm == 0 && imag(alpha) == 0 {
			vs[j], taus[j] = v, 0 // H = I; column already reduced
			continue
		}
		norm = math.Hypot(cmplx.Abs(alpha), xnorm)
		beta = complex(-math.Copysign(norm, real(alpha)), 0)
		taus[j] = complex((real(beta)-real(alpha))/real(beta), -imag(alpha)/real(beta))
		scale := 1 / (alpha - beta)
		for i = j + 1; i < n; i++ {
			v[i-j] = w[i*k+j] * scale
		}
		vs[j] = v

		// Column j becomes (β, 0, …, 0).
		w[j*k+j] = beta
		for i = j + 1; i < n; i++ {
			w[i*k+j] = 0
		}
		// Apply Hᴴ = I − conj(τ)vvᴴ to the trailing columns.
		ct := cmplx.Conj(taus[j])
		for l = j + 1; l < k; l++ {
			dot = 0
			for i = j; i < n; i++ {
				dot += cmplx.Conj(v[i-j]) * w[i*k+l]
			}
			dot *= ct
			for i = j; i < n; i++ {
				w[i*k+l] -= v[i-j] * dot
			}
		}
	}

	// Extract R (k×k upper triangle).
	r := mustDense[T](k, k)
	rd := any(r.data).([]complex128)
	for i = 0; i < k; i++ {
		for l = i; l < k; l++ {
			rd[i*k+l] = w[i*k+l]
		}
	}

	// Accumulate thin Q = H₀⋯H_{k−1}[I_k; 0], applying H_j = I − τvvᴴ in reverse.
	q := mustDense[T](n, k)
	qd := any(q.data).([]complex128)
	for i = 0; i < k; i++ {
		qd[i*k+i] = 1
	}
	for j = k - 1; j >= 0; j-- {
		if taus[j] == 0 {
			continue
		}
		v := vs[j]
		for l = 0; l < k; l++ {
			dot = 0
			for i = j; i < n; i++ {
				dot += cmplx.Conj(v[i-j]) * qd[i*k+l]
			}
			dot *= taus[j]
			for i = j; i < n; i++ {
				qd[i*k+l] -= v[i-j] * dot
			}
		}
	}

	return q, r, nil
}
