// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel should
// panic on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, ErrX) so the
// message reads "<Op>: matrix: ..." and errors.Is still matches.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> numerical failure.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned when a linear, Sylvester or Lyapunov system has
	// no unique solution, or is too ill-conditioned to trust the result.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotPositive is returned by SqrtHermitian when the input has a
	// clearly negative eigenvalue, and by ValidatePositiveDefinite.
	ErrNotPositive = errors.New("matrix: matrix is not positive semidefinite")

	// ErrNoConvergence is returned when an iterative factorization (SVD,
	// symmetric eigen-decomposition) fails to converge.
	ErrNoConvergence = errors.New("matrix: factorization did not converge")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNewDense      = "NewDense"
	opIdentity      = "Identity"
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opScale         = "Scale"
	opH             = "H"
	opInner         = "Inner"
	opAllClose      = "AllClose"
	opSlice         = "Slice"
	opQR            = "QR"
	opSolve         = "Solve"
	opSylvester     = "Sylvester"
	opLyapunov      = "Lyapunov"
	opPolar         = "PolarFactor"
	opSqrtHermitian = "SqrtHermitian"
	opPosDef        = "ValidatePositiveDefinite"
	opExpm          = "Expm"
	opRandNormal    = "RandNormal"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
