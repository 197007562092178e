// SPDX-License-Identifier: MIT
// Package matrix_test verifies the linear, Sylvester and Lyapunov solvers.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stiefel/matrix"
)

func TestSolve(t *testing.T) {
	a := MustDense(t, 2, 2, 2.0, 1, 1, 3)
	b := MustDense(t, 2, 1, 3.0, 5)
	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	RequireClose(t, MustDense(t, 2, 1, 0.8, 1.4), x, tol)
}

func TestSolve_Complex(t *testing.T) {
	a := RandomDense[complex128](t, 4, 4, 3)
	want := RandomDense[complex128](t, 4, 2, 4)
	x, err := matrix.Solve(a, MustMul(t, a, want))
	require.NoError(t, err)
	RequireClose(t, want, x, 1e-9)
}

func TestSolve_Singular(t *testing.T) {
	a := MustDense(t, 2, 2, 1.0, 2, 2, 4)
	_, err := matrix.Solve(a, MustDense(t, 2, 1, 1.0, 1))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Solve(a, MustDense[float64](t, 3, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSolveRight(t *testing.T) {
	a := RandomDense[complex128](t, 3, 3, 21)
	want := RandomDense[complex128](t, 2, 3, 22)
	x, err := matrix.SolveRight(a, MustMul(t, want, a))
	require.NoError(t, err)
	RequireClose(t, want, x, 1e-9)
}

func TestSylvester(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3} {
		a := RandomDense[float64](t, 3, 3, seed)
		b := RandomDense[float64](t, 2, 2, seed+100)
		// Shift both operators so their spectra cannot cancel.
		a, _ = matrix.AddScaled(a, 5, MustIdentity[float64](t, 3))
		b, _ = matrix.AddScaled(b, 5, MustIdentity[float64](t, 2))
		c := RandomDense[float64](t, 3, 2, seed+200)

		x, err := matrix.Sylvester(a, b, c)
		require.NoError(t, err)
		lhs, err := matrix.Add(MustMul(t, a, x), MustMul(t, x, b))
		require.NoError(t, err)
		RequireClose(t, c, lhs, 1e-9)
	}
}

func TestSylvester_Singular(t *testing.T) {
	// A = I, B = −I: eigenvalues cancel.
	a := MustIdentity[float64](t, 2)
	b, err := matrix.Scale(a, -1)
	require.NoError(t, err)
	_, err = matrix.Sylvester(a, b, a)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestLyapunov_Complex(t *testing.T) {
	a := RandomDense[complex128](t, 3, 3, 9)
	a, _ = matrix.AddScaled(a, 4, MustIdentity[complex128](t, 3))
	c := MustIdentity[complex128](t, 3)

	x, err := matrix.Lyapunov(a, c)
	require.NoError(t, err)
	ah, err := matrix.H(a)
	require.NoError(t, err)
	lhs, err := matrix.Add(MustMul(t, a, x), MustMul(t, x, ah))
	require.NoError(t, err)
	RequireClose(t, c, lhs, 1e-9)
}
