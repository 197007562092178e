// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/stiefel/matrix"
)

// ExampleQR factors a small real matrix and checks orthonormality of Q.
func ExampleQR() {
	a, _ := matrix.NewDenseFrom(3, 2, []float64{
		3, 1,
		0, 2,
		4, 1,
	})
	q, r, _ := matrix.QR(a)
	g, _ := matrix.HMul(q, q)
	I, _ := matrix.Identity[float64](2)
	ok, _ := matrix.AllClose(g, I, 0, 1e-12)
	r00, _ := r.At(0, 0)

	fmt.Println("QᵀQ = I:", ok)
	fmt.Printf("|R00| = %.1f\n", max(r00, -r00))
	// Output:
	// QᵀQ = I: true
	// |R00| = 5.0
}

// ExampleSylvester solves a diagonal Sylvester equation.
func ExampleSylvester() {
	a, _ := matrix.NewDenseFrom(1, 1, []float64{2})
	b, _ := matrix.NewDenseFrom(1, 1, []float64{3})
	c, _ := matrix.NewDenseFrom(1, 1, []float64{10})
	x, _ := matrix.Sylvester(a, b, c)
	v, _ := x.At(0, 0)
	fmt.Printf("x = %.1f\n", v)
	// Output:
	// x = 2.0
}
