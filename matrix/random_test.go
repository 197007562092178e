// SPDX-License-Identifier: MIT
// Package matrix_test checks Gaussian sampling determinism and moments.
package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stiefel/matrix"
)

func TestRandNormal_Deterministic(t *testing.T) {
	a, err := matrix.RandNormal[complex128](3, 2, 1, rand.NewPCG(5, 5))
	require.NoError(t, err)
	b, err := matrix.RandNormal[complex128](3, 2, 1, rand.NewPCG(5, 5))
	require.NoError(t, err)
	assert.Equal(t, a.RawData(), b.RawData())
}

func TestRandNormal_Moments(t *testing.T) {
	const n, sigma = 200, 2.0
	for _, tc := range []struct {
		name string
		norm func() float64
	}{
		{"real", func() float64 {
			m, err := matrix.RandNormal[float64](n, n, sigma, rand.NewPCG(1, 2))
			require.NoError(t, err)
			return matrix.FrobeniusNorm(m)
		}},
		{"complex", func() float64 {
			m, err := matrix.RandNormal[complex128](n, n, sigma, rand.NewPCG(1, 2))
			require.NoError(t, err)
			return matrix.FrobeniusNorm(m)
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := tc.norm()
			// E‖M‖² = n²σ² in both fields.
			assert.InEpsilon(t, n*n*sigma*sigma, f*f, 0.05)
		})
	}
}

func TestRandNormal_Errors(t *testing.T) {
	_, err := matrix.RandNormal[float64](0, 2, 1, rand.NewPCG(1, 1))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
