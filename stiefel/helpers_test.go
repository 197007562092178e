// SPDX-License-Identifier: MIT
// Package stiefel_test contains shared fixtures: seeded manifolds, points
// and tangent vectors, plus closeness assertions.

package stiefel_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stiefel/matrix"
	"github.com/katalvlaran/stiefel/stiefel"
)

// tol is the default elementwise comparison tolerance.
const tol = 1e-10

func mustManifold(t testing.TB, n, k int, f stiefel.Field) stiefel.Manifold {
	t.Helper()
	M, err := stiefel.New(n, k, f)
	require.NoError(t, err)

	return M
}

func src(seed uint64) rand.Source { return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15) }

func mustPoint[T matrix.Scalar](t testing.TB, M stiefel.Manifold, seed uint64) *matrix.Dense[T] {
	t.Helper()
	p, err := stiefel.RandomPoint[T](M, src(seed), 1)
	require.NoError(t, err)

	return p
}

// mustTangent returns a tangent vector at p with Frobenius norm scale.
func mustTangent[T matrix.Scalar](t testing.TB, M stiefel.Manifold, p *matrix.Dense[T], seed uint64, scale float64) *matrix.Dense[T] {
	t.Helper()
	X, err := stiefel.RandomTangent(M, src(seed), p, 1)
	require.NoError(t, err)
	X, err = matrix.Scale(X, matrix.FromReal[T](scale))
	require.NoError(t, err)

	return X
}

func mustDense[T matrix.Scalar](t testing.TB, r, c int, data ...T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}

// distance returns ‖a − b‖_F.
func distance[T matrix.Scalar](t testing.TB, a, b *matrix.Dense[T]) float64 {
	t.Helper()
	d, err := matrix.Sub(a, b)
	require.NoError(t, err)

	return matrix.FrobeniusNorm(d)
}

func requireClose[T matrix.Scalar](t testing.TB, want, got *matrix.Dense[T], eps float64) {
	t.Helper()
	require.LessOrEqualf(t, distance(t, want, got), eps, "want\n%vgot\n%v", want, got)
}

// lin returns a·x + b·y.
func lin[T matrix.Scalar](t testing.TB, a float64, x *matrix.Dense[T], b float64, y *matrix.Dense[T]) *matrix.Dense[T] {
	t.Helper()
	ax, err := matrix.Scale(x, matrix.FromReal[T](a))
	require.NoError(t, err)
	out, err := matrix.AddScaled(ax, matrix.FromReal[T](b), y)
	require.NoError(t, err)

	return out
}

// allRetractions is every retraction method under test.
var allRetractions = []stiefel.RetractionMethod{
	stiefel.PolarRetraction,
	stiefel.QRRetraction,
	stiefel.CayleyRetraction,
	stiefel.PadeRetraction(2),
	stiefel.PadeRetraction(3),
}

// shapes covers the closed-form QR inverse paths (k = 1, 2) and the general one.
var shapes = []struct{ n, k int }{{3, 1}, {4, 2}, {6, 3}, {5, 5}}
