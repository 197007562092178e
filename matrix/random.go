// SPDX-License-Identifier: MIT

// Package matrix: Gaussian random matrices.
package matrix

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// RandNormal returns an r×c matrix of independent N(0, σ²) entries drawn from
// src. Complex entries have independent real and imaginary parts of variance
// σ²/2, so E|z|² = σ² in both fields. A nil src falls back to the global
// math/rand/v2 generator.
//
// Errors: ErrInvalidDimensions.
// Complexity: O(r*c).
func RandNormal[T Scalar](rows, cols int, sigma float64, src rand.Source) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opRandNormal, err)
	}

	if !IsComplex[T]() {
		dist := distuv.Normal{Mu: 0, Sigma: sigma, Src: src}
		data := any(m.data).([]float64)
		for idx := range data {
			data[idx] = dist.Rand()
		}
		return m, nil
	}

	dist := distuv.Normal{Mu: 0, Sigma: sigma / math.Sqrt2, Src: src}
	data := any(m.data).([]complex128)
	for idx := range data {
		re := dist.Rand()
		data[idx] = complex(re, dist.Rand())
	}

	return m, nil
}
