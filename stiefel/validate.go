// SPDX-License-Identifier: MIT
// Package stiefel: point and tangent-vector validation.

package stiefel

import (
	"math"

	"github.com/katalvlaran/stiefel/matrix"
)

// CheckPoint reports whether p lies on M: pᴴp = Iₖ up to tolerance.
//
// Errors:
//   - ErrFieldMismatch / ErrUnsupportedField, ErrNilMatrix, ErrShapeMismatch.
//   - *DomainError wrapping ErrNotOnManifold with Residual = ‖pᴴp − I‖_F.
func CheckPoint[T matrix.Scalar](M Manifold, p *matrix.Dense[T], opts ...Option) error {
	if err := checkInputs(opCheckPoint, M, p); err != nil {
		return err
	}
	o := gatherOptions(opts...)

	c, err := matrix.HMul(p, p)
	if err != nil {
		return numericErrorf(opCheckPoint, err)
	}
	I, err := matrix.Identity[T](M.k)
	if err != nil {
		return numericErrorf(opCheckPoint, err)
	}
	d, err := matrix.Sub(c, I)
	if err != nil {
		return numericErrorf(opCheckPoint, err)
	}

	residual := matrix.FrobeniusNorm(d)
	tol := o.bound(math.Max(matrix.FrobeniusNorm(c), math.Sqrt(float64(M.k))))
	if !(residual <= tol) {
		return &DomainError{Op: opCheckPoint, Err: ErrNotOnManifold, Residual: residual, Tol: tol}
	}

	return nil
}

// CheckVector reports whether X is tangent to M at p: pᴴX + Xᴴp = 0 up to
// tolerance. The base point itself is only checked with WithPointCheck.
//
// Errors:
//   - ErrFieldMismatch / ErrUnsupportedField, ErrNilMatrix, ErrShapeMismatch.
//   - CheckPoint errors under WithPointCheck.
//   - *DomainError wrapping ErrNotInTangentSpace with Residual = ‖pᴴX + Xᴴp‖_F.
func CheckVector[T matrix.Scalar](M Manifold, p, X *matrix.Dense[T], opts ...Option) error {
	if err := checkInputs(opCheckVector, M, p, X); err != nil {
		return err
	}
	o := gatherOptions(opts...)
	if o.checkPoint {
		if err := CheckPoint(M, p, opts...); err != nil {
			return err
		}
	}

	residual, err := skewResidual(p, X)
	if err != nil {
		return numericErrorf(opCheckVector, err)
	}
	tol := o.bound(matrix.FrobeniusNorm(X))
	if !(residual <= tol) {
		return &DomainError{Op: opCheckVector, Err: ErrNotInTangentSpace, Residual: residual, Tol: tol}
	}

	return nil
}

// skewResidual returns ‖pᴴX + Xᴴp‖_F = 2‖Herm(pᴴX)‖_F.
func skewResidual[T matrix.Scalar](p, X *matrix.Dense[T]) (float64, error) {
	a, err := matrix.HMul(p, X)
	if err != nil {
		return 0, err
	}
	h, err := matrix.HermitianPart(a)
	if err != nil {
		return 0, err
	}

	return 2 * matrix.FrobeniusNorm(h), nil
}
