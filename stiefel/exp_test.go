// SPDX-License-Identifier: MIT
package stiefel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stiefel/matrix"
	"github.com/katalvlaran/stiefel/stiefel"
)

func TestExp_GreatCircle(t *testing.T) {
	// On St(3,1) = S², exp_{e₁}(θe₂) = cos θ·e₁ + sin θ·e₂.
	M := mustManifold(t, 3, 1, stiefel.Real)
	p := mustDense(t, 3, 1, 1.0, 0, 0)
	X := mustDense(t, 3, 1, 0.0, 1, 0)
	for _, theta := range []float64{0.3, 1, math.Pi / 2, 2.5} {
		q, err := stiefel.Exp(M, p, X, theta)
		require.NoError(t, err)
		requireClose(t, mustDense(t, 3, 1, math.Cos(theta), math.Sin(theta), 0), q, 1e-12)
	}
}

func TestExp_OnManifoldAndFirstOrder(t *testing.T) {
	for _, f := range []stiefel.Field{stiefel.Real, stiefel.Complex} {
		M := mustManifold(t, 6, 3, f)
		if f == stiefel.Real {
			checkExp[float64](t, M)
		} else {
			checkExp[complex128](t, M)
		}
	}
}

func checkExp[T matrix.Scalar](t *testing.T, M stiefel.Manifold) {
	p := mustPoint[T](t, M, 21)
	X := mustTangent(t, M, p, 22, 1)

	q, err := stiefel.Exp(M, p, X, 1)
	require.NoError(t, err)
	require.NoError(t, stiefel.CheckPoint(M, q))

	const h = 1e-3
	qh, err := stiefel.Exp(M, p, X, h)
	require.NoError(t, err)
	require.Less(t, distance(t, lin(t, 1, p, h, X), qh), 10*h*h)

	q0, err := stiefel.Exp(M, p, X, 0)
	require.NoError(t, err)
	require.Equal(t, p.RawData(), q0.RawData())
}

func TestExp_AgreesWithRetractionsToSecondOrder(t *testing.T) {
	// Polar is a second-order retraction: ‖R_p(hX) − exp_p(hX)‖ = O(h³).
	M := mustManifold(t, 5, 2, stiefel.Real)
	p := mustPoint[float64](t, M, 31)
	X := mustTangent(t, M, p, 32, 1)
	const h = 1e-2
	e, err := stiefel.Exp(M, p, X, h)
	require.NoError(t, err)
	r, err := stiefel.Retract(M, p, X, h, stiefel.PolarRetraction)
	require.NoError(t, err)
	require.Less(t, distance(t, e, r), 10*h*h*h)
}
