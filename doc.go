// SPDX-License-Identifier: MIT

// Package stiefel is the root of a small numerical library for optimization
// on the Stiefel manifold St(n, k) of n×k matrices with orthonormal columns,
// over the real or complex field.
//
// 🚀 What is inside?
//
//   - matrix/   : generic dense matrices over float64 and complex128, with
//     QR, polar, Sylvester/Lyapunov solvers and the exponential
//   - euclidean/: the ambient Euclidean space of n×k matrices
//   - stiefel/  : the manifold: validation, projection, retractions
//     (polar, QR, Cayley, Padé), the exponential map, inverse
//     retractions and vector transports
//   - cmd/stiefelcheck: a CLI that samples random points and reports how
//     well each operation satisfies its defining identities
//
// Quick example:
//
//	M, _ := stiefel.New(5, 2, stiefel.Real)
//	p, _ := stiefel.RandomPoint[float64](M, rand.NewPCG(1, 1), 1)
//	X, _ := stiefel.RandomTangent(M, rand.NewPCG(2, 2), p, 1)
//	q, _ := stiefel.Retract(M, p, X, 0.1, stiefel.PolarRetraction)
//	Y, _ := stiefel.InverseRetract(M, p, q, stiefel.PolarInverseRetraction)
//	// Y ≈ 0.1·X
package stiefel
