// SPDX-License-Identifier: MIT

// Package stiefel: vector transports.
//
// A differentiated-retraction transport moves X ∈ T_pSt to
// T_qSt, q = R_p(d), by the differential of R_p at d. Each is linear in X
// and produces a tangent vector at q:
//
//   - Cayley: (q₁⁻¹W_X)(q₁⁻¹p), q₁ = I − ½W_d.
//   - Polar:  qΛ + (X − qqᴴX)S⁻¹, S = (I + dᴴd)^{1/2}, ΛS + SΛ = qᴴX − Xᴴq.
//   - QR:     q·skew(T) + X̃ − qT, X̃ = XR⁻¹, T = qᴴX̃, R the sign-corrected
//     triangular factor of p + d.
//
// Projection transport ignores the retraction and projects X onto T_qSt.
package stiefel

import (
	"github.com/katalvlaran/stiefel/matrix"
)

// VectorTransportDirection transports X from p along direction d, i.e. to
// the tangent space at R_p(d). Projection transport uses the Polar
// retraction to locate the target.
//
// Errors:
//   - ErrFieldMismatch / ErrUnsupportedField, ErrNilMatrix, ErrShapeMismatch.
//   - ErrUnsupportedMethod for a transport other than Projection or the
//     differentiated Cayley, Polar and QR retractions.
//   - ErrSingularSystem from the underlying solves.
//
// The QR transport builds skew(T) from the strictly lower triangle of T,
// mirrored as −conj above the diagonal. The variant built from the upper
// triangle found in some references is not the differential of the QR
// retraction, because the dR·R⁻¹ part of T is upper triangular.
func VectorTransportDirection[T matrix.Scalar](M Manifold, p, X, d *matrix.Dense[T], method VectorTransportMethod) (*matrix.Dense[T], error) {
	if err := checkInputs(opTransport, M, p, X, d); err != nil {
		return nil, err
	}

	var (
		y   *matrix.Dense[T]
		err error
	)
	switch {
	case method.kind == transportProjection:
		y, err = transportProjectDirection(p, X, d)
	case method.kind == transportDifferentiated && method.retraction == CayleyRetraction:
		y, err = transportCayley(p, X, d)
	case method.kind == transportDifferentiated && method.retraction == PolarRetraction:
		y, err = transportPolar(p, X, d)
	case method.kind == transportDifferentiated && method.retraction == QRRetraction:
		y, err = transportQR(p, X, d)
	default:
		return nil, stiefelErrorf(opTransport, ErrUnsupportedMethod)
	}
	if err != nil {
		return nil, numericErrorf(opTransport, err)
	}

	return y, nil
}

// VectorTransportTo transports X from p to the tangent space at q.
// Polar and QR recover the direction with the matching inverse retraction;
// Cayley has no inverse here and returns ErrUnsupportedMethod; Projection
// projects X at q directly.
//
// Errors: as VectorTransportDirection and InverseRetract.
func VectorTransportTo[T matrix.Scalar](M Manifold, p, X, q *matrix.Dense[T], method VectorTransportMethod) (*matrix.Dense[T], error) {
	if err := checkInputs(opTransportTo, M, p, X, q); err != nil {
		return nil, err
	}

	var inverse InverseRetractionMethod
	switch {
	case method.kind == transportProjection:
		y, err := project(q, X)
		if err != nil {
			return nil, numericErrorf(opTransportTo, err)
		}
		return y, nil
	case method.kind == transportDifferentiated && method.retraction == PolarRetraction:
		inverse = PolarInverseRetraction
	case method.kind == transportDifferentiated && method.retraction == QRRetraction:
		inverse = QRInverseRetraction
	default:
		return nil, stiefelErrorf(opTransportTo, ErrUnsupportedMethod)
	}

	d, err := InverseRetract(M, p, q, inverse)
	if err != nil {
		return nil, stiefelErrorf(opTransportTo, err)
	}
	y, err := VectorTransportDirection(M, p, X, d, method)
	if err != nil {
		return nil, stiefelErrorf(opTransportTo, err)
	}

	return y, nil
}

// transportProjectDirection projects X at the Polar retraction of d.
func transportProjectDirection[T matrix.Scalar](p, X, d *matrix.Dense[T]) (*matrix.Dense[T], error) {
	q, err := retractPolar(p, d, 1)
	if err != nil {
		return nil, err
	}

	return project(q, X)
}

// transportCayley is the differentiated Cayley retraction.
func transportCayley[T matrix.Scalar](p, X, d *matrix.Dense[T]) (*matrix.Dense[T], error) {
	pp, err := halfProjector(p)
	if err != nil {
		return nil, err
	}
	wd, err := skewOperator(pp, p, d)
	if err != nil {
		return nil, err
	}
	wx, err := skewOperator(pp, p, X)
	if err != nil {
		return nil, err
	}
	I, err := matrix.Identity[T](p.Rows())
	if err != nil {
		return nil, err
	}
	q1, err := matrix.AddScaled(I, matrix.FromReal[T](-0.5), wd)
	if err != nil {
		return nil, err
	}

	left, err := matrix.Solve(q1, wx)
	if err != nil {
		return nil, err
	}
	right, err := matrix.Solve(q1, p)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(left, right)
}

// transportPolar is the differentiated Polar retraction.
func transportPolar[T matrix.Scalar](p, X, d *matrix.Dense[T]) (*matrix.Dense[T], error) {
	q, err := retractPolar(p, d, 1)
	if err != nil {
		return nil, err
	}
	dd, err := matrix.HMul(d, d)
	if err != nil {
		return nil, err
	}
	I, err := matrix.Identity[T](p.Cols())
	if err != nil {
		return nil, err
	}
	gram, err := matrix.Add(I, dd)
	if err != nil {
		return nil, err
	}
	s, err := matrix.SqrtHermitian(gram)
	if err != nil {
		return nil, err
	}

	qx, err := matrix.HMul(q, X)
	if err != nil {
		return nil, err
	}
	// qᴴX − Xᴴq = 2·Skew(qᴴX)
	rhs, err := matrix.SkewHermitianPart(qx)
	if err != nil {
		return nil, err
	}
	if rhs, err = matrix.Scale(rhs, matrix.FromReal[T](2)); err != nil {
		return nil, err
	}
	lambda, err := matrix.Sylvester(s, s, rhs)
	if err != nil {
		return nil, err
	}

	qqx, err := matrix.Mul(q, qx)
	if err != nil {
		return nil, err
	}
	normal, err := matrix.Sub(X, qqx)
	if err != nil {
		return nil, err
	}
	normal, err = matrix.SolveRight(s, normal)
	if err != nil {
		return nil, err
	}
	ql, err := matrix.Mul(q, lambda)
	if err != nil {
		return nil, err
	}

	return matrix.Add(ql, normal)
}

// transportQR is the differentiated QR retraction.
func transportQR[T matrix.Scalar](p, X, d *matrix.Dense[T]) (*matrix.Dense[T], error) {
	a, err := matrix.Add(p, d)
	if err != nil {
		return nil, err
	}
	q, r, err := matrix.QR(a)
	if err != nil {
		return nil, err
	}
	D := qrSignCorrection(r)
	if q, err = matrix.ScaleColumns(q, D); err != nil {
		return nil, err
	}
	if r, err = matrix.ScaleRows(r, D); err != nil {
		return nil, err
	}

	xrf, err := matrix.SolveRight(r, X)
	if err != nil {
		return nil, err
	}
	tm, err := matrix.HMul(q, xrf)
	if err != nil {
		return nil, err
	}
	sk, err := skewLower(tm)
	if err != nil {
		return nil, err
	}
	// q·skew(T) − q·T = q·(skew(T) − T)
	diff, err := matrix.Sub(sk, tm)
	if err != nil {
		return nil, err
	}
	qd, err := matrix.Mul(q, diff)
	if err != nil {
		return nil, err
	}

	return matrix.Add(qd, xrf)
}

// skewLower returns the skew-Hermitian part that qᴴ·dq contributes to
// T = qᴴ·dY·R⁻¹ = qᴴdq + dR·R⁻¹. The second term is upper triangular with a
// real diagonal, so the strictly lower triangle of t is kept, mirrored as
// −conj above, and the diagonal keeps only i·Im(tᵢᵢ) (zero for real t).
func skewLower[T matrix.Scalar](t *matrix.Dense[T]) (*matrix.Dense[T], error) {
	k := t.Rows()
	out, err := matrix.NewDense[T](k, k)
	if err != nil {
		return nil, err
	}
	for i := 0; i < k; i++ {
		tii, _ := t.At(i, i)
		_ = out.Set(i, i, matrix.FromComplex[T](complex(0, matrix.ImagPart(tii))))
		for j := 0; j < i; j++ {
			tij, _ := t.At(i, j)
			_ = out.Set(i, j, tij)
			_ = out.Set(j, i, -matrix.ScalarConj(tij))
		}
	}

	return out, nil
}
