// SPDX-License-Identifier: MIT

// Package matrix: bridge between Dense[T] and gonum's *mat.Dense.
//
// Real matrices are copied as-is. A complex r×c matrix Z = A + iB is lifted
// to the real 2r×2c block matrix
//
//	[ A  −B ]
//	[ B   A ]
//
// The map is linear, multiplicative and sends Zᴴ to the transpose of the
// lift, so any kernel that is a matrix function or a unique solution of a
// linear equation commutes with it. fromGonum reads the complex matrix back
// from the left block column.
package matrix

import "gonum.org/v1/gonum/mat"

// toGonum copies (or lifts, for complex128) m into a fresh *mat.Dense.
// Complexity: O(r*c) real, O(4*r*c) complex.
func toGonum[T Scalar](m *Dense[T]) *mat.Dense {
	if !IsComplex[T]() {
		data := any(m.data).([]float64)
		return mat.NewDense(m.r, m.c, append([]float64(nil), data...))
	}
	data := any(m.data).([]complex128)
	g := mat.NewDense(2*m.r, 2*m.c, nil)
	var re, im float64
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			re, im = real(data[i*m.c+j]), imag(data[i*m.c+j])
			g.Set(i, j, re)
			g.Set(i, m.c+j, -im)
			g.Set(m.r+i, j, im)
			g.Set(m.r+i, m.c+j, re)
		}
	}

	return g
}

// fromGonum converts g back into a Dense[T]. For complex128, g must have the
// block layout produced by toGonum (even dimensions).
// Complexity: O(r*c).
func fromGonum[T Scalar](g mat.Matrix) *Dense[T] {
	gr, gc := g.Dims()
	if !IsComplex[T]() {
		out := mustDense[T](gr, gc)
		data := any(out.data).([]float64)
		for i := 0; i < gr; i++ {
			for j := 0; j < gc; j++ {
				data[i*gc+j] = g.At(i, j)
			}
		}
		return out
	}
	r, c := gr/2, gc/2
	out := mustDense[T](r, c)
	data := any(out.data).([]complex128)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = complex(g.At(i, j), g.At(r+i, j))
		}
	}

	return out
}
