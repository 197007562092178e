// SPDX-License-Identifier: MIT

// Package euclidean is the ambient space 𝔽^{n×k} in which manifolds of
// matrices are embedded.
//
// A Space only carries its shape. The metric is the real Frobenius inner
// product ⟨X,Y⟩ = Re tr(XᴴY), which is also the metric that embedded
// submanifolds such as the Stiefel manifold inherit. Manifold packages
// forward inner products, norms, zero vectors and embeddings here by
// explicit calls instead of re-implementing them.
package euclidean
