// SPDX-License-Identifier: MIT
// Package stiefel: tangent projector and the operations forwarded to the
// ambient euclidean.Space (inner product, norm, zero vector, embedding).

package stiefel

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stiefel/euclidean"
	"github.com/katalvlaran/stiefel/matrix"
)

// Project returns the orthogonal projection of an arbitrary n×k matrix A
// onto the tangent space at p:
//
//	A − p·Herm(pᴴA),  Herm(B) = (B + Bᴴ)/2.
//
// p is assumed to be a point; it is not checked.
func Project[T matrix.Scalar](M Manifold, p, A *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := checkInputs(opProject, M, p, A); err != nil {
		return nil, err
	}
	y, err := project(p, A)
	if err != nil {
		return nil, numericErrorf(opProject, err)
	}

	return y, nil
}

// project is Project without validation.
func project[T matrix.Scalar](p, A *matrix.Dense[T]) (*matrix.Dense[T], error) {
	pa, err := matrix.HMul(p, A)
	if err != nil {
		return nil, err
	}
	sym, err := matrix.HermitianPart(pa)
	if err != nil {
		return nil, err
	}
	ps, err := matrix.Mul(p, sym)
	if err != nil {
		return nil, err
	}

	return matrix.Sub(A, ps)
}

// Inner returns the metric ⟨X, Y⟩_p = Re tr(XᴴY) inherited from the embedding.
func Inner[T matrix.Scalar](M Manifold, p, X, Y *matrix.Dense[T]) (float64, error) {
	if err := checkInputs(opEmbedding, M, p); err != nil {
		return 0, err
	}
	v, err := euclidean.Inner(M.embedding(), X, Y)
	if err != nil {
		return 0, embeddingErrorf(err)
	}

	return v, nil
}

// Norm returns √⟨X, X⟩_p.
func Norm[T matrix.Scalar](M Manifold, p, X *matrix.Dense[T]) (float64, error) {
	if err := checkInputs(opEmbedding, M, p); err != nil {
		return 0, err
	}
	v, err := euclidean.Norm(M.embedding(), X)
	if err != nil {
		return 0, embeddingErrorf(err)
	}

	return v, nil
}

// ZeroVector returns the zero tangent vector at p.
func ZeroVector[T matrix.Scalar](M Manifold, p *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := checkInputs(opEmbedding, M, p); err != nil {
		return nil, err
	}

	return euclidean.Zero[T](M.embedding())
}

// Embed returns p as an element of the ambient space 𝔽^{n×k} (a copy).
func Embed[T matrix.Scalar](M Manifold, p *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := checkInputs(opEmbedding, M, p); err != nil {
		return nil, err
	}

	return euclidean.Embed(M.embedding(), p)
}

// embeddingErrorf maps ambient-space errors onto this package's sentinels.
func embeddingErrorf(err error) error {
	switch {
	case errors.Is(err, euclidean.ErrShape):
		return fmt.Errorf("%s: %w: %w", opEmbedding, ErrShapeMismatch, err)
	case errors.Is(err, matrix.ErrNilMatrix):
		return fmt.Errorf("%s: %w: %w", opEmbedding, ErrNilMatrix, err)
	}

	return stiefelErrorf(opEmbedding, err)
}
