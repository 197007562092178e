// SPDX-License-Identifier: MIT
// Package stiefel: Gaussian sampling of points and tangent vectors.

package stiefel

import (
	"math/rand/v2"

	"github.com/katalvlaran/stiefel/matrix"
)

// RandomPoint draws p as the Q factor of an n×k matrix of independent
// N(0, σ²) entries (complex normal for ℂ). For σ > 0 this is distributed
// uniformly (Haar) up to the column signs of the QR factorization.
// A nil src uses the global math/rand/v2 generator.
//
// Errors: ErrFieldMismatch / ErrUnsupportedField.
func RandomPoint[T matrix.Scalar](M Manifold, src rand.Source, sigma float64) (*matrix.Dense[T], error) {
	if err := checkField[T](M); err != nil {
		return nil, stiefelErrorf(opRandomPoint, err)
	}
	a, err := matrix.RandNormal[T](M.n, M.k, sigma, src)
	if err != nil {
		return nil, stiefelErrorf(opRandomPoint, err)
	}
	q, _, err := matrix.QR(a)
	if err != nil {
		return nil, numericErrorf(opRandomPoint, err)
	}

	return q, nil
}

// RandomTangent draws a unit-norm tangent vector at p: an N(0, σ²) matrix
// projected onto T_pSt and rescaled to ‖X‖_F = 1. σ therefore only shapes
// the draw, not the returned magnitude. If the projection vanishes (σ = 0)
// the zero vector is returned.
//
// Errors: ErrFieldMismatch / ErrUnsupportedField, ErrNilMatrix, ErrShapeMismatch.
func RandomTangent[T matrix.Scalar](M Manifold, src rand.Source, p *matrix.Dense[T], sigma float64) (*matrix.Dense[T], error) {
	if err := checkInputs(opRandomTangent, M, p); err != nil {
		return nil, err
	}
	z, err := matrix.RandNormal[T](M.n, M.k, sigma, src)
	if err != nil {
		return nil, stiefelErrorf(opRandomTangent, err)
	}
	x, err := project(p, z)
	if err != nil {
		return nil, numericErrorf(opRandomTangent, err)
	}
	norm := matrix.FrobeniusNorm(x)
	if norm == 0 {
		return x, nil
	}

	return matrix.Scale(x, matrix.FromReal[T](1/norm))
}
