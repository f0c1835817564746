// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, scalar scaling, factorization and symmetric eigen-decomposition.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Notes:
//   - Non-*Dense operands are materialized once through toDense, so every
//     kernel runs a single flat-slice loop.
//   - Operands are never mutated; every kernel allocates its result.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for substitutions and accumulations.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU and Det.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opTrace     = "Trace"
	opEigen     = "Eigen"
	opLU        = "LU"
	opDet       = "Det"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); materialize operands.
//   - Stage 2: single flat loop 0..n-1.
//
// Complexity: Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range res.data {
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add returns a + b. Shapes must match.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a − b. Shapes must match.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul returns the matrix product a×b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: row-major i→k→j accumulation; zero a[i,k] entries are skipped.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop order i→k→j.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(dm.c, dm.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < dm.r; i++ {
		for j = 0; j < dm.c; j++ {
			res.data[j*dm.r+i] = dm.data[i*dm.c+j]
		}
	}

	return res, nil
}

// Scale returns alpha·m.
// Errors: ErrNilMatrix, ErrNaNInf (non-finite alpha). Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := dm.clone()
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// MatVec returns y = m·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols). Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, dm.r)
	var (
		i, j int
		base int
		sum  float64
	)
	for i = 0; i < dm.r; i++ {
		base = i * dm.c
		sum = ZeroSum
		for j = 0; j < dm.c; j++ {
			sum += dm.data[base+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Trace returns the sum of the diagonal of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	dm, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	sum := ZeroSum
	for i := 0; i < dm.r; i++ {
		sum += dm.data[i*dm.r+i]
	}

	return sum, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed order.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (if U[i,i]==0 during factorization).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Without pivoting, symmetric positive-definite inputs (covariance
//     matrices) always factor; general inputs may hit a zero leading minor.
func LU(m Matrix) (Matrix, Matrix, error) {
	l, u, err := lu(m)
	if err != nil {
		return nil, nil, err
	}

	return l, u, nil
}

// lu is the typed variant of LU used by LU and Det.
func lu(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	dm, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := dm.r
	L, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	var (
		i, j, k      int
		sum          float64
		baseI, baseJ int
	)
	for i = 0; i < n; i++ {
		L.data[i*n+i] = 1.0
	}
	for i = 0; i < n; i++ {
		baseI = i * n
		// U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[baseI+k] * U.data[k*n+j]
			}
			U.data[baseI+j] = dm.data[baseI+j] - sum
		}
		if U.data[baseI+i] == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}
		// L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			baseJ = j * n
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[baseJ+k] * U.data[k*n+i]
			}
			L.data[baseJ+i] = (dm.data[baseJ+i] - sum) / U.data[baseI+i]
		}
	}

	return L, U, nil
}

// Det returns the determinant of m as the product of the LU pivots.
// A zero leading minor makes the unpivoted factorization fail; Det then
// falls back to Gaussian elimination with partial pivoting on a private
// copy, and an exactly singular matrix yields (0, nil).
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n^3), Space O(n^2).
func Det(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	_, U, err := lu(m)
	switch {
	case err == nil:
		n := U.r
		det := 1.0
		for i := 0; i < n; i++ {
			det *= U.data[i*n+i]
		}

		return det, nil
	case !errors.Is(err, ErrSingular):
		return 0, matrixErrorf(opDet, err)
	}
	src, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return pivotedDet(src.clone()), nil
}

// pivotedDet eliminates A in place with partial pivoting.
func pivotedDet(A *Dense) float64 {
	n := A.r
	var (
		i, j, k, piv int
		best, f      float64
	)
	det := 1.0
	for k = 0; k < n; k++ {
		// Partial pivot: largest |A[i,k]| for i >= k.
		piv, best = k, math.Abs(A.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(A.data[i*n+k]); v > best {
				piv, best = i, v
			}
		}
		if best == ZeroPivot {
			return 0
		}
		if piv != k {
			for j = 0; j < n; j++ {
				A.data[k*n+j], A.data[piv*n+j] = A.data[piv*n+j], A.data[k*n+j]
			}
			det = -det
		}
		det *= A.data[k*n+k]
		for i = k + 1; i < n; i++ {
			f = A.data[i*n+k] / A.data[k*n+k]
			for j = k; j < n; j++ {
				A.data[i*n+j] -= f * A.data[k*n+j]
			}
		}
	}

	return det
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
// Implementation:
//   - Stage 1: Validate symmetric square input within tol.
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order and
//     apply a Jacobi rotation, until max |A[p,q]| < tol or maxIter rotations.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix, unsorted).
//   - Matrix: Q whose columns are eigenvectors.
//
// Errors:
//   - ErrNonSquare, ErrAsymmetry, ErrMatrixEigenFailed (not converged).
//
// Complexity:
//   - Time O(maxIter * n^2), Space O(n^2).
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	A := src.clone()
	n := A.r
	Q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	var (
		iter, i, j, k int
		p, q          int
		maxOff, off   float64
		app, aqq, apq float64
		akp, akq      float64
		theta, t      float64
		c, s          float64
	)
	for iter = 0; ; iter++ {
		// Find pivot (p,q) maximizing |A[p,q]|
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(A.data[i*n+j])
				if off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if maxOff < tol {
			break
		}
		if iter >= maxIter {
			return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
		}

		app = A.data[p*n+p]
		aqq = A.data[q*n+q]
		apq = A.data[p*n+q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for k = 0; k < n; k++ {
			if k == p || k == q {
				continue
			}
			akp = A.data[k*n+p]
			akq = A.data[k*n+q]
			A.data[k*n+p] = c*akp - s*akq
			A.data[p*n+k] = A.data[k*n+p]
			A.data[k*n+q] = s*akp + c*akq
			A.data[q*n+k] = A.data[k*n+q]
		}
		A.data[p*n+p] = app - t*apq
		A.data[q*n+q] = aqq + t*apq
		A.data[p*n+q] = 0
		A.data[q*n+p] = 0

		for k = 0; k < n; k++ {
			akp = Q.data[k*n+p]
			akq = Q.data[k*n+q]
			Q.data[k*n+p] = c*akp - s*akq
			Q.data[k*n+q] = s*akp + c*akq
		}
	}

	vals := make([]float64, n)
	for i = 0; i < n; i++ {
		vals[i] = A.data[i*n+i]
	}

	return vals, Q, nil
}
