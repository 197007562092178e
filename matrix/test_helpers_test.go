// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the kernels under test.
//   - Keep all data finite and well-formed; random data is always seeded.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stiefel/matrix"
)

// tol is the comparison tolerance used for O(n³) kernels on small inputs.
const tol = 1e-10

// MustDense builds an r×c matrix from row-major data or fails the test.
func MustDense[T matrix.Scalar](t testing.TB, r, c int, data ...T) *matrix.Dense[T] {
	t.Helper()
	if len(data) == 0 {
		m, err := matrix.NewDense[T](r, c)
		require.NoError(t, err)
		return m
	}
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt[T matrix.Scalar](t testing.TB, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandomDense draws a seeded r×c N(0,1) matrix.
func RandomDense[T matrix.Scalar](t testing.TB, r, c int, seed uint64) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.RandNormal[T](r, c, 1, rand.NewPCG(seed, seed))
	require.NoError(t, err)

	return m
}

// RequireClose fails the test unless got ≈ want element-wise within tol.
func RequireClose[T matrix.Scalar](t testing.TB, want, got *matrix.Dense[T], eps float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, eps)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\nwant %v\ngot  %v", want, got)
}

// MustMul is Mul with a fatal error path.
func MustMul[T matrix.Scalar](t testing.TB, a, b *matrix.Dense[T]) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.Mul(a, b)
	require.NoError(t, err)

	return m
}

// MustIdentity returns Iₙ or fails the test.
func MustIdentity[T matrix.Scalar](t testing.TB, n int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.Identity[T](n)
	require.NoError(t, err)

	return m
}

// RequireOrthonormal asserts qᴴq ≈ I.
func RequireOrthonormal[T matrix.Scalar](t testing.TB, q *matrix.Dense[T]) {
	t.Helper()
	g, err := matrix.HMul(q, q)
	require.NoError(t, err)
	RequireClose(t, MustIdentity[T](t, q.Cols()), g, tol)
}
