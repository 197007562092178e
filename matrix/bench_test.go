// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the dense kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/stiefel/matrix"
)

// benchShapes are tall n×k frames typical of Stiefel points.
var benchShapes = []struct{ n, k int }{{16, 4}, {64, 8}, {256, 16}}

// sinks to defeat dead-code elimination
var (
	sinkR *matrix.Dense[float64]
	sinkC *matrix.Dense[complex128]
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, s := range benchShapes {
		b.Run(fmt.Sprintf("n=%d,k=%d", s.n, s.k), func(b *testing.B) {
			x := RandomDense[float64](b, s.n, s.k, 1337)
			y := RandomDense[float64](b, s.k, s.n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkR = m
			}
		})
	}
}

func BenchmarkQR(b *testing.B) {
	b.ReportAllocs()
	for _, s := range benchShapes {
		b.Run(fmt.Sprintf("real/n=%d,k=%d", s.n, s.k), func(b *testing.B) {
			x := RandomDense[float64](b, s.n, s.k, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				q, _, err := matrix.QR(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkR = q
			}
		})
		b.Run(fmt.Sprintf("complex/n=%d,k=%d", s.n, s.k), func(b *testing.B) {
			x := RandomDense[complex128](b, s.n, s.k, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				q, _, err := matrix.QR(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkC = q
			}
		})
	}
}

func BenchmarkPolarFactor(b *testing.B) {
	b.ReportAllocs()
	for _, s := range benchShapes {
		b.Run(fmt.Sprintf("n=%d,k=%d", s.n, s.k), func(b *testing.B) {
			x := RandomDense[float64](b, s.n, s.k, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				u, err := matrix.PolarFactor(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkR = u
			}
		})
	}
}
