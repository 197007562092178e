// SPDX-License-Identifier: MIT
package stiefel_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stiefel/matrix"
	"github.com/katalvlaran/stiefel/stiefel"
)

var inversePairs = []struct {
	retraction stiefel.RetractionMethod
	inverse    stiefel.InverseRetractionMethod
}{
	{stiefel.PolarRetraction, stiefel.PolarInverseRetraction},
	{stiefel.QRRetraction, stiefel.QRInverseRetraction},
}

func TestInverseRetract_RoundTrip(t *testing.T) {
	t.Run("real", func(t *testing.T) { testRoundTrip[float64](t, stiefel.Real) })
	t.Run("complex", func(t *testing.T) { testRoundTrip[complex128](t, stiefel.Complex) })
}

func testRoundTrip[T matrix.Scalar](t *testing.T, f stiefel.Field) {
	for _, s := range shapes {
		M := mustManifold(t, s.n, s.k, f)
		p := mustPoint[T](t, M, uint64(7*s.n+s.k))
		for _, pair := range inversePairs {
			for _, size := range []float64{1e-1, 1e-2} {
				t.Run(fmt.Sprintf("%v/%v/|X|=%g", M, pair.inverse, size), func(t *testing.T) {
					X := mustTangent(t, M, p, uint64(s.n*s.k)+11, size)
					q, err := stiefel.Retract(M, p, X, 1, pair.retraction)
					require.NoError(t, err)

					Y, err := stiefel.InverseRetract(M, p, q, pair.inverse)
					require.NoError(t, err)
					require.NoError(t, stiefel.CheckVector(M, p, Y))
					assert.Less(t, distance(t, X, Y), size*size*size)
				})
			}
		}
	}
}

func TestInverseRetract_LargeStep(t *testing.T) {
	// Both inverses are exact within their domain, not just to third order.
	M := mustManifold(t, 6, 3, stiefel.Complex)
	p := mustPoint[complex128](t, M, 5)
	X := mustTangent(t, M, p, 6, 0.8)
	for _, pair := range inversePairs {
		q, err := stiefel.Retract(M, p, X, 1, pair.retraction)
		require.NoError(t, err)
		Y, err := stiefel.InverseRetract(M, p, q, pair.inverse)
		require.NoError(t, err)
		requireClose(t, X, Y, 1e-9)
	}
}

func TestInverseRetract_Identical(t *testing.T) {
	M := mustManifold(t, 4, 2, stiefel.Real)
	p := mustPoint[float64](t, M, 2)
	for _, pair := range inversePairs {
		Y, err := stiefel.InverseRetract(M, p, p, pair.inverse)
		require.NoError(t, err)
		assert.Less(t, matrix.FrobeniusNorm(Y), 1e-12)
	}
}

func TestInverseRetract_Singular(t *testing.T) {
	// Orthogonal points: A = pᴴq = 0, so neither system is solvable.
	for _, k := range []int{1, 2, 3} {
		M := mustManifold(t, 2*k, k, stiefel.Real)
		p, err := matrix.NewDense[float64](2*k, k)
		require.NoError(t, err)
		q, err := matrix.NewDense[float64](2*k, k)
		require.NoError(t, err)
		for j := 0; j < k; j++ {
			require.NoError(t, p.Set(j, j, 1))
			require.NoError(t, q.Set(k+j, j, 1))
		}
		for _, pair := range inversePairs {
			_, err := stiefel.InverseRetract(M, p, q, pair.inverse)
			require.ErrorIs(t, err, stiefel.ErrSingularSystem, "k=%d %v", k, pair.inverse)
			require.ErrorIs(t, err, matrix.ErrSingular)
		}
	}
}

func TestInverseRetract_PolarRejectsFarPoints(t *testing.T) {
	// For q = −p and q = p·Rot(θ) with cos θ < 0 the Lyapunov equation has
	// the solution B = I/cos θ, negative definite, which no polar retraction
	// produces.
	t.Run("real", func(t *testing.T) { testPolarFarPoints[float64](t, stiefel.Real) })
	t.Run("complex", func(t *testing.T) { testPolarFarPoints[complex128](t, stiefel.Complex) })
}

func testPolarFarPoints[T matrix.Scalar](t *testing.T, f stiefel.Field) {
	M := mustManifold(t, 4, 2, f)
	p := mustPoint[T](t, M, 9)

	neg, err := matrix.Scale(p, matrix.FromReal[T](-1))
	require.NoError(t, err)
	c, s := matrix.FromReal[T](math.Cos(2.5)), matrix.FromReal[T](math.Sin(2.5))
	rot, err := matrix.Mul(p, mustDense(t, 2, 2, c, -s, s, c))
	require.NoError(t, err)

	for _, q := range []*matrix.Dense[T]{neg, rot} {
		X, err := stiefel.InverseRetract(M, p, q, stiefel.PolarInverseRetraction)
		require.ErrorIs(t, err, stiefel.ErrSingularSystem)
		require.ErrorIs(t, err, matrix.ErrNotPositive)
		assert.Nil(t, X)
	}
}

func TestInverseRetract_Errors(t *testing.T) {
	M := mustManifold(t, 3, 1, stiefel.Real)
	p := mustDense(t, 3, 1, 1.0, 0, 0)
	_, err := stiefel.InverseRetract(M, p, p, stiefel.InverseRetractionMethod(0))
	require.ErrorIs(t, err, stiefel.ErrUnsupportedMethod)
	_, err = stiefel.InverseRetract(M, p, mustDense(t, 1, 3, 1.0, 0, 0), stiefel.QRInverseRetraction)
	require.ErrorIs(t, err, stiefel.ErrShapeMismatch)
}
