// SPDX-License-Identifier: MIT

// Package stiefel implements the numerical geometry of the Stiefel manifold
//
//	St(n, k, 𝔽) = { p ∈ 𝔽^{n×k} : pᴴp = Iₖ },  𝔽 ∈ {ℝ, ℂ}
//
// as needed by a Riemannian optimizer: retractions, inverse retractions,
// vector transports, validity checks, dimension formulas and sampling.
//
// 🚀 What is here
//
//   - Manifold: immutable (n, k, field) descriptor, safe to share.
//   - CheckPoint / CheckVector: residual checks returning *DomainError.
//   - Retract: Polar, QR, Cayley and Padé(m) retractions; Exp: the exponential
//     map of the embedded metric.
//   - InverseRetract: Polar and QR inverse retractions.
//   - VectorTransportDirection / VectorTransportTo: differentiated Cayley,
//     Polar and QR retractions and projection transport.
//   - Project, Inner, Norm, ZeroVector, Embed: tangent projector and the
//     operations forwarded to the ambient euclidean.Space.
//   - RandomPoint / RandomTangent: Gaussian sampling.
//
// ✨ Conventions
//
//   - Points and tangent vectors are *matrix.Dense[T]; T is float64 for the
//     real field and complex128 for the complex field. Mixing them is
//     ErrFieldMismatch. Quaternion manifolds answer dimension queries only.
//   - Every operation validates shapes first (ErrShapeMismatch) and never
//     mutates its inputs.
//   - Numerical failures of the underlying solves surface as
//     ErrSingularSystem; errors.Is also matches the matrix sentinel.
//
// ⚙️ Concurrency
//
// All functions are pure. A Manifold and any inputs may be shared across
// goroutines as long as nobody mutates the matrices concurrently.
package stiefel
