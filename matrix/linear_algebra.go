// SPDX-License-Identifier: MIT
// Package matrix provides universal arithmetic on Dense[T], including
// element-wise addition, subtraction, scaling, matrix multiplication and
// conjugate transposition. All functions perform strict fail-fast validation
// and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel allocates exactly one result; operands are never mutated.
//   - Loop orders are fixed so results are bitwise reproducible.

package matrix

import "math"

// addScaled computes out = a + alpha*b for identically shaped operands.
// Internal helper for Add/Sub/AddScaled to share validation and the flat loop.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b). Allocate result.
//   - Stage 2: single flat loop 0..n-1 over both backing slices.
//
// Inputs:
//   - a, b : conformable matrices (non-nil; same rows/cols).
//   - alpha: scalar multiplier of b.
//   - opTag: operation tag used for error wrapping.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateSameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addScaled[T Scalar](a, b *Dense[T], alpha T, opTag string) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := mustDense[T](a.r, a.c)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + alpha*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Add[T Scalar](a, b *Dense[T]) (*Dense[T], error) {
	return addScaled(a, b, FromReal[T](1), opAdd)
}

// Sub computes the element-wise difference C = A − B.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub[T Scalar](a, b *Dense[T]) (*Dense[T], error) {
	return addScaled(a, b, FromReal[T](-1), opSub)
}

// AddScaled computes C = A + alpha·B, the axpy form used for p + tX.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func AddScaled[T Scalar](a *Dense[T], alpha T, b *Dense[T]) (*Dense[T], error) {
	return addScaled(a, b, alpha, opAdd)
}

// Scale returns alpha·m.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale[T Scalar](m *Dense[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := mustDense[T](m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = alpha * v
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j loop over row-major strides, skipping zero A[i,k].
//
// Determinism:
//   - Fixed loop order i→k→j.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Scalar](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res := mustDense[T](a.r, b.c)
	var (
		i, j, k    int
		av         T
		zero       T
		rowA, rowR int
	)
	for i = 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowA+k]
			if av == zero {
				continue // skip zero for performance
			}
			rowB := k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// MulChain multiplies the operands left to right: ms[0]×ms[1]×…×ms[len-1].
// Errors: ErrNilMatrix for an empty chain, otherwise Mul errors.
func MulChain[T Scalar](ms ...*Dense[T]) (*Dense[T], error) {
	if len(ms) == 0 || ms[0] == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	acc := ms[0].Clone()
	var err error
	for _, m := range ms[1:] {
		if acc, err = Mul(acc, m); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// H returns the conjugate transpose mᴴ (plain transpose for float64).
// Errors: ErrNilMatrix. Complexity: O(r*c).
func H[T Scalar](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opH, err)
	}
	res := mustDense[T](m.c, m.r)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = ScalarConj(m.data[base+j])
		}
	}

	return res, nil
}

// HMul computes aᴴ·b without materialising aᴴ.
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Rows != b.Rows).
// Complexity: O(a.c * a.r * b.c).
func HMul[T Scalar](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.r != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	res := mustDense[T](a.c, b.c)
	for l := 0; l < a.r; l++ {
		rowA, rowB := l*a.c, l*b.c
		for i := 0; i < a.c; i++ {
			av := ScalarConj(a.data[rowA+i])
			for j := 0; j < b.c; j++ {
				res.data[i*b.c+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// HermitianPart returns (m + mᴴ)/2 for a square m.
// Errors: ErrNilMatrix, ErrNonSquare.
func HermitianPart[T Scalar](m *Dense[T]) (*Dense[T], error) {
	return hermitianCombine(m, FromReal[T](1))
}

// SkewHermitianPart returns (m − mᴴ)/2 for a square m.
// Errors: ErrNilMatrix, ErrNonSquare.
func SkewHermitianPart[T Scalar](m *Dense[T]) (*Dense[T], error) {
	return hermitianCombine(m, FromReal[T](-1))
}

// hermitianCombine computes (m + sign·mᴴ)/2 in one pass.
func hermitianCombine[T Scalar](m *Dense[T], sign T) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	n := m.r
	half := FromReal[T](0.5)
	res := mustDense[T](n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			res.data[i*n+j] = half * (m.data[i*n+j] + sign*ScalarConj(m.data[j*n+i]))
		}
	}

	return res, nil
}

// FrobeniusNorm returns sqrt(Σ|m_ij|²). A nil matrix has norm 0.
// Complexity: O(r*c).
func FrobeniusNorm[T Scalar](m *Dense[T]) float64 {
	if m == nil {
		return 0
	}
	var sum, a float64
	for _, v := range m.data {
		a = ScalarAbs(v)
		sum += a * a
	}

	return math.Sqrt(sum)
}

// Inner returns the real Frobenius inner product Re tr(aᴴb).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Inner[T Scalar](a, b *Dense[T]) (float64, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opInner, err)
	}
	var sum float64
	for idx := range a.data {
		sum += RealPart(ScalarConj(a.data[idx]) * b.data[idx])
	}

	return sum, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN never compares close.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|.
//
// Complexity: O(r*c).
func AllClose[T Scalar](a, b *Dense[T], rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for idx := range a.data {
		diff := ScalarAbs(a.data[idx] - b.data[idx])
		if !(diff <= atol+rtol*ScalarAbs(b.data[idx])) { // NaN fails here
			return false, nil
		}
	}

	return true, nil
}

// ScaleColumns returns m·diag(d): column j multiplied by d[j].
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(d) != Cols).
// Complexity: O(r*c).
func ScaleColumns[T Scalar](m *Dense[T], d []T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if len(d) != m.c {
		return nil, matrixErrorf(opScale, ErrDimensionMismatch)
	}
	res := mustDense[T](m.r, m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[i*m.c+j] = m.data[i*m.c+j] * d[j]
		}
	}

	return res, nil
}

// ScaleRows returns diag(d)·m: row i multiplied by d[i].
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(d) != Rows).
// Complexity: O(r*c).
func ScaleRows[T Scalar](m *Dense[T], d []T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if len(d) != m.r {
		return nil, matrixErrorf(opScale, ErrDimensionMismatch)
	}
	res := mustDense[T](m.r, m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[i*m.c+j] = d[i] * m.data[i*m.c+j]
		}
	}

	return res, nil
}

// HStack concatenates a and b side by side: [a b].
// Errors: ErrNilMatrix, ErrDimensionMismatch (row counts differ).
func HStack[T Scalar](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a, b); err != nil {
		return nil, matrixErrorf(opSlice, err)
	}
	if a.r != b.r {
		return nil, matrixErrorf(opSlice, ErrDimensionMismatch)
	}
	c := a.c + b.c
	res := mustDense[T](a.r, c)
	for i := 0; i < a.r; i++ {
		copy(res.data[i*c:i*c+a.c], a.data[i*a.c:(i+1)*a.c])
		copy(res.data[i*c+a.c:(i+1)*c], b.data[i*b.c:(i+1)*b.c])
	}

	return res, nil
}

// VStack stacks a on top of b: [a; b].
// Errors: ErrNilMatrix, ErrDimensionMismatch (column counts differ).
func VStack[T Scalar](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a, b); err != nil {
		return nil, matrixErrorf(opSlice, err)
	}
	if a.c != b.c {
		return nil, matrixErrorf(opSlice, ErrDimensionMismatch)
	}
	res := mustDense[T](a.r+b.r, a.c)
	copy(res.data, a.data)
	copy(res.data[len(a.data):], b.data)

	return res, nil
}

// Diag returns a copy of the main diagonal of m.
// A nil matrix yields nil.
func Diag[T Scalar](m *Dense[T]) []T {
	if m == nil {
		return nil
	}
	n := min(m.r, m.c)
	d := make([]T, n)
	for i := 0; i < n; i++ {
		d[i] = m.data[i*m.c+i]
	}

	return d
}
