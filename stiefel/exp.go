// SPDX-License-Identifier: MIT
package stiefel

import "github.com/katalvlaran/stiefel/matrix"

// Exp returns the Riemannian exponential exp_p(tX) for the metric inherited
// from the embedding (the geodesic through p with initial velocity X):
//
//	[p  Y] · expm([[A, −S], [I, A]]) · [expm(−A); 0],  Y = tX, A = pᴴY, S = YᴴY.
//
// Unlike the retractions it is exact, at the price of two matrix
// exponentials of size 2k and k.
//
// Errors: as Retract, without ErrUnsupportedMethod.
func Exp[T matrix.Scalar](M Manifold, p, X *matrix.Dense[T], t float64) (*matrix.Dense[T], error) {
	if err := checkInputs(opExp, M, p, X); err != nil {
		return nil, err
	}
	if t == 0 {
		return p.Clone(), nil
	}
	q, err := geodesic(p, X, t, M.k)
	if err != nil {
		return nil, numericErrorf(opExp, err)
	}

	return q, nil
}

func geodesic[T matrix.Scalar](p, X *matrix.Dense[T], t float64, k int) (*matrix.Dense[T], error) {
	y, err := matrix.Scale(X, matrix.FromReal[T](t))
	if err != nil {
		return nil, err
	}
	a, err := matrix.HMul(p, y)
	if err != nil {
		return nil, err
	}
	s, err := matrix.HMul(y, y)
	if err != nil {
		return nil, err
	}
	negS, err := matrix.Scale(s, matrix.FromReal[T](-1))
	if err != nil {
		return nil, err
	}
	I, err := matrix.Identity[T](k)
	if err != nil {
		return nil, err
	}

	top, err := matrix.HStack(a, negS)
	if err != nil {
		return nil, err
	}
	bottom, err := matrix.HStack(I, a)
	if err != nil {
		return nil, err
	}
	block, err := matrix.VStack(top, bottom)
	if err != nil {
		return nil, err
	}
	eb, err := matrix.Expm(block)
	if err != nil {
		return nil, err
	}
	// Only the first k columns of expm(block) meet the non-zero rows of [expm(−A); 0].
	left, err := eb.Slice(0, 2*k, 0, k)
	if err != nil {
		return nil, err
	}

	negA, err := matrix.Scale(a, matrix.FromReal[T](-1))
	if err != nil {
		return nil, err
	}
	ea, err := matrix.Expm(negA)
	if err != nil {
		return nil, err
	}
	frame, err := matrix.HStack(p, y)
	if err != nil {
		return nil, err
	}

	return matrix.MulChain(frame, left, ea)
}
