// SPDX-License-Identifier: MIT
// Package stiefel: sentinel error set and the structured residual error.

package stiefel

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stiefel/matrix"
)

var (
	// ErrInvalidManifold indicates n < k, k < 1 or an unknown field in New.
	ErrInvalidManifold = errors.New("stiefel: invalid manifold parameters")

	// ErrShapeMismatch indicates an input whose dimensions disagree with the manifold.
	ErrShapeMismatch = errors.New("stiefel: matrix shape does not match manifold")

	// ErrNotOnManifold is carried by the DomainError of CheckPoint.
	ErrNotOnManifold = errors.New("stiefel: point is not on the manifold")

	// ErrNotInTangentSpace is carried by the DomainError of CheckVector.
	ErrNotInTangentSpace = errors.New("stiefel: vector is not in the tangent space")

	// ErrSingularSystem indicates a (near-)singular linear, Sylvester or
	// Lyapunov system, typically because two points are too far apart.
	ErrSingularSystem = errors.New("stiefel: singular system")

	// ErrUnsupportedField is returned for numerical operations on quaternion manifolds.
	ErrUnsupportedField = errors.New("stiefel: unsupported field")

	// ErrUnsupportedMethod is returned for an unknown method value or an
	// unavailable combination (Cayley transport to a target point).
	ErrUnsupportedMethod = errors.New("stiefel: unsupported method")

	// ErrFieldMismatch indicates the element type does not match the manifold field.
	ErrFieldMismatch = errors.New("stiefel: element type does not match manifold field")

	// ErrNilMatrix indicates a nil point or vector.
	ErrNilMatrix = errors.New("stiefel: nil matrix")
)

// Operation tags.
const (
	opNew            = "New"
	opCheckPoint     = "CheckPoint"
	opCheckVector    = "CheckVector"
	opRetract        = "Retract"
	opExp            = "Exp"
	opInverseRetract = "InverseRetract"
	opTransport      = "VectorTransportDirection"
	opTransportTo    = "VectorTransportTo"
	opProject        = "Project"
	opEmbedding      = "Embedding"
	opRandomPoint    = "RandomPoint"
	opRandomTangent  = "RandomTangent"
)

// DomainError reports a point or vector that failed a residual check.
// Residual is the Frobenius norm of the violated identity.
type DomainError struct {
	Op       string
	Err      error
	Residual float64
	Tol      float64
}

// Error implements error.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %v (residual %.3g > tol %.3g)", e.Op, e.Err, e.Residual, e.Tol)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *DomainError) Unwrap() error { return e.Err }

// stiefelErrorf wraps err with an operation tag.
func stiefelErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// numericErrorf wraps a matrix kernel failure. Singular, indefinite and
// non-converging kernels additionally match ErrSingularSystem.
func numericErrorf(op string, err error) error {
	if errors.Is(err, matrix.ErrSingular) ||
		errors.Is(err, matrix.ErrNotPositive) ||
		errors.Is(err, matrix.ErrNoConvergence) {
		return fmt.Errorf("%s: %w: %w", op, ErrSingularSystem, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}
