// SPDX-License-Identifier: MIT

// Package matrix provides small dense matrices over the real and complex
// fields together with the numerical kernels needed by manifold geometry.
//
// 🚀 What is inside?
//
//	Dense[T] is a row-major matrix whose element type T is float64 or
//	complex128. On top of it the package offers:
//	  • arithmetic:   Add, Sub, Scale, Mul, H (conjugate transpose),
//	                  HermitianPart, SkewHermitianPart
//	  • measurement:  FrobeniusNorm, Inner, AllClose
//	  • factorizations: QR (thin, Householder), PolarFactor (via SVD)
//	  • solvers:      Solve (LU with pivoting), Sylvester, Lyapunov
//	  • functions:    SqrtHermitian, ValidatePositiveDefinite, Expm
//	  • sampling:     RandNormal
//
// ✨ Numeric backend:
//
//	Real kernels delegate to gonum (mat.QR, mat.SVD, mat.EigenSym, LU solves,
//	Dense.Exp). Complex inputs are lifted into the real 2×2 block embedding
//
//	    A + iB  ↦  [ A  −B ]
//	               [ B   A ]
//
//	which is an algebra homomorphism compatible with conjugate transposition,
//	so solves, polar factors, square roots and exponentials computed on the
//	embedding map back to the complex answer. QR is the exception: the block
//	form of an upper-triangular matrix is not upper-triangular, so complex QR
//	runs native Householder reflections with a real diagonal.
//
// ⚙️ Usage:
//
//	a, _ := matrix.NewDenseFrom(3, 2, []float64{1, 0, 0, 1, 1, 1})
//	q, r, err := matrix.QR(a)
//
// All kernels are pure: operands are never mutated and every result is a
// freshly allocated Dense. Failures are reported with the sentinels in
// errors.go, wrapped with an operation tag.
package matrix
