// SPDX-License-Identifier: MIT

// Package matrix: element types and scalar helpers.
// This file holds ONLY the Scalar constraint and the tiny generic helpers
// that let kernels treat float64 and complex128 uniformly (conjugation,
// modulus, real/imaginary parts, lifting a real number into T).
package matrix

import (
	"math"
	"math/cmplx"
)

// Scalar is the set of supported element types: the real field (float64)
// and the complex field (complex128).
type Scalar interface {
	float64 | complex128
}

// IsComplex reports whether T is the complex element type.
// Complexity: O(1).
func IsComplex[T Scalar]() bool {
	var z T
	_, ok := any(z).(complex128)

	return ok
}

// FromReal lifts a real number into T (x + 0i for complex128).
func FromReal[T Scalar](x float64) T {
	var z T
	if _, ok := any(z).(complex128); ok {
		return any(complex(x, 0)).(T)
	}

	return any(x).(T)
}

// FromComplex converts c into T. For float64 the imaginary part is dropped.
func FromComplex[T Scalar](c complex128) T {
	var z T
	if _, ok := any(z).(complex128); ok {
		return any(c).(T)
	}

	return any(real(c)).(T)
}

// ScalarConj returns the complex conjugate of x (identity on reals).
func ScalarConj[T Scalar](x T) T {
	if c, ok := any(x).(complex128); ok {
		return any(cmplx.Conj(c)).(T)
	}

	return x
}

// ScalarAbs returns |x|.
func ScalarAbs[T Scalar](x T) float64 {
	switch v := any(x).(type) {
	case complex128:
		return cmplx.Abs(v)
	case float64:
		return math.Abs(v)
	}

	return 0
}

// RealPart returns Re(x).
func RealPart[T Scalar](x T) float64 {
	switch v := any(x).(type) {
	case complex128:
		return real(v)
	case float64:
		return v
	}

	return 0
}

// ImagPart returns Im(x); always 0 for float64.
func ImagPart[T Scalar](x T) float64 {
	if c, ok := any(x).(complex128); ok {
		return imag(c)
	}

	return 0
}
