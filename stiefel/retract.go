// SPDX-License-Identifier: MIT

// Package stiefel: retractions.
//
// Every retraction R_p(tX) maps a tangent vector back onto the manifold,
// returns p itself at t = 0, and agrees with p + tX to first order in t.
//
//   - Polar: the unitary polar factor of p + tX (nearest point in ‖·‖_F).
//   - QR:    the Q factor of p + tX with diag(R) made non-negative.
//   - Padé(m), Cayley = Padé(1): (qₘ(W))⁻¹pₘ(W)·p with W = t·W(p, X) skew.
package stiefel

import (
	"github.com/katalvlaran/stiefel/matrix"
)

// Retract returns R_p(tX) for the given method.
//
// Inputs:
//   - p: a point of M; X: a tangent vector at p. Neither is checked
//     numerically, only their shapes.
//   - t: step length; t == 0 returns a copy of p.
//
// The QR sign correction is D = sign(sign(Re Rᵢᵢ) + ½), so only Rᵢᵢ = 0 is
// tie-broken to +1 and every negative Rᵢᵢ flips its column. This differs
// from sign(Rᵢᵢ + ½), which also keeps columns with Rᵢᵢ ∈ [−½, 0) and then
// leaves R with a negative diagonal. For tangent X, Rᵢᵢ ≥ 1 and the two agree.
//
// Errors:
//   - ErrFieldMismatch / ErrUnsupportedField, ErrNilMatrix, ErrShapeMismatch.
//   - ErrUnsupportedMethod for an invalid method value.
//   - ErrSingularSystem when a Padé denominator is singular or the SVD fails.
//
// Complexity:
//   - Polar, QR: O(nk²). Padé(m): O(m·n³).
func Retract[T matrix.Scalar](M Manifold, p, X *matrix.Dense[T], t float64, method RetractionMethod) (*matrix.Dense[T], error) {
	if err := checkInputs(opRetract, M, p, X); err != nil {
		return nil, err
	}
	if !method.valid() {
		return nil, stiefelErrorf(opRetract, ErrUnsupportedMethod)
	}
	if t == 0 {
		return p.Clone(), nil
	}

	var (
		q   *matrix.Dense[T]
		err error
	)
	switch method.kind {
	case retractionPolar:
		q, err = retractPolar(p, X, t)
	case retractionQR:
		q, err = retractQR(p, X, t)
	case retractionPade:
		q, err = retractPade(p, X, t, method.order)
	}
	if err != nil {
		return nil, numericErrorf(opRetract, err)
	}

	return q, nil
}

// retractPolar returns the polar factor of p + tX.
func retractPolar[T matrix.Scalar](p, X *matrix.Dense[T], t float64) (*matrix.Dense[T], error) {
	a, err := matrix.AddScaled(p, matrix.FromReal[T](t), X)
	if err != nil {
		return nil, err
	}

	return matrix.PolarFactor(a)
}

// retractQR returns Q·D for p + tX = QR, D from qrSignCorrection.
func retractQR[T matrix.Scalar](p, X *matrix.Dense[T], t float64) (*matrix.Dense[T], error) {
	a, err := matrix.AddScaled(p, matrix.FromReal[T](t), X)
	if err != nil {
		return nil, err
	}
	q, r, err := matrix.QR(a)
	if err != nil {
		return nil, err
	}

	return matrix.ScaleColumns(q, qrSignCorrection(r))
}

// qrSignCorrection returns D = sign(sign(Re Rᵢᵢ) + ½): +1 for Rᵢᵢ ≥ 0 and −1
// otherwise. Q·D and D·R are then the QR factors with non-negative diagonal,
// and a vanishing Rᵢᵢ resolves to +1 rather than to 0.
func qrSignCorrection[T matrix.Scalar](r *matrix.Dense[T]) []T {
	diag := matrix.Diag(r)
	d := make([]T, len(diag))
	for i, v := range diag {
		if sign(matrix.RealPart(v))+0.5 >= 0 {
			d[i] = matrix.FromReal[T](1)
		} else {
			d[i] = matrix.FromReal[T](-1)
		}
	}

	return d
}

// sign is the three-valued sign function (sign(0) = 0).
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}

	return 0
}

// halfProjector returns Pₚ = I − ½ppᴴ (n×n).
func halfProjector[T matrix.Scalar](p *matrix.Dense[T]) (*matrix.Dense[T], error) {
	ph, err := matrix.H(p)
	if err != nil {
		return nil, err
	}
	pph, err := matrix.Mul(p, ph)
	if err != nil {
		return nil, err
	}
	I, err := matrix.Identity[T](p.Rows())
	if err != nil {
		return nil, err
	}

	return matrix.AddScaled(I, matrix.FromReal[T](-0.5), pph)
}

// skewOperator returns W(p, X) = PₚXpᴴ − pXᴴPₚ, an n×n skew-Hermitian
// matrix with W·p = X whenever X is tangent at p.
func skewOperator[T matrix.Scalar](pp, p, X *matrix.Dense[T]) (*matrix.Dense[T], error) {
	ph, err := matrix.H(p)
	if err != nil {
		return nil, err
	}
	left, err := matrix.MulChain(pp, X, ph)
	if err != nil {
		return nil, err
	}
	lh, err := matrix.H(left)
	if err != nil {
		return nil, err
	}

	// (PₚXpᴴ)ᴴ = pXᴴPₚ since Pₚ is Hermitian.
	return matrix.Sub(left, lh)
}

// retractPade evaluates the order-m Padé approximant of exp(W) applied to p.
//
// pₘ(W) = Σₖ cₖWᵏ, qₘ(W) = Σₖ cₖ(−W)ᵏ with cₖ = (2m−k)!m!/((2m)!(m−k)!k!),
// accumulated as c₀ = m!/(2m)! and cₖ = cₖ₋₁·(m−k+1)/((2m−k+1)k).
// The result is Solve(qₘ(W), pₘ(W)·p).
func retractPade[T matrix.Scalar](p, X *matrix.Dense[T], t float64, m int) (*matrix.Dense[T], error) {
	pp, err := halfProjector(p)
	if err != nil {
		return nil, err
	}
	w, err := skewOperator(pp, p, X)
	if err != nil {
		return nil, err
	}
	if w, err = matrix.Scale(w, matrix.FromReal[T](t)); err != nil {
		return nil, err
	}

	n := p.Rows()
	c := padeLeading(m)
	term, err := matrix.Identity[T](n)
	if err != nil {
		return nil, err
	}
	if term, err = matrix.Scale(term, matrix.FromReal[T](c)); err != nil {
		return nil, err
	}
	num, den := term.Clone(), term.Clone()
	sgn := 1.0
	for k := 1; k <= m; k++ {
		ratio := float64(m-k+1) / float64((2*m-k+1)*k)
		if term, err = matrix.Mul(term, w); err != nil {
			return nil, err
		}
		if term, err = matrix.Scale(term, matrix.FromReal[T](ratio)); err != nil {
			return nil, err
		}
		sgn = -sgn
		if num, err = matrix.Add(num, term); err != nil {
			return nil, err
		}
		if den, err = matrix.AddScaled(den, matrix.FromReal[T](sgn), term); err != nil {
			return nil, err
		}
	}

	rhs, err := matrix.Mul(num, p)
	if err != nil {
		return nil, err
	}

	return matrix.Solve(den, rhs)
}

// padeLeading returns c₀ = m!/(2m)! = 1/((m+1)(m+2)⋯(2m)).
func padeLeading(m int) float64 {
	c := 1.0
	for j := m + 1; j <= 2*m; j++ {
		c /= float64(j)
	}

	return c
}
