// SPDX-License-Identifier: MIT

// Package matrix - public convenience facade.
//
// Purpose:
//   - The identity constructor and tolerant comparisons.
//   - Option-driven wrappers over kernels whose tuning knobs live in options.go.
package matrix

import "math"

const (
	opAllClose    = "AllClose"
	opVecAllClose = "VecAllClose"
	opAddVec      = "AddVec"
)

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions for n <= 0.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// EigenSym runs Eigen with the tolerance and rotation budget resolved from opts
// (WithEpsilon, WithMaxSweeps).
func EigenSym(m Matrix, opts ...Option) ([]float64, Matrix, error) {
	o := gatherOptions(opts...)

	return Eigen(m, o.eps, o.maxSweeps)
}

// AllClose checks element-wise |a−b| ≤ atol + rtol·|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := toDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := toDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return closeSlices(da.data, db.data, math.Abs(rtol), math.Abs(atol)), nil
}

// VecAllClose is AllClose for vectors of equal length.
func VecAllClose(a, b []float64, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opVecAllClose, ErrNaNInf)
	}
	if len(a) != len(b) {
		return false, matrixErrorf(opVecAllClose, ErrDimensionMismatch)
	}

	return closeSlices(a, b, math.Abs(rtol), math.Abs(atol)), nil
}

// closeSlices is the shared |a−b| ≤ atol + rtol·|b| loop; early exit on violation.
func closeSlices(a, b []float64, rtol, atol float64) bool {
	for idx := range a {
		if math.Abs(a[idx]-b[idx]) > atol+rtol*math.Abs(b[idx]) {
			return false
		}
	}

	return true
}

// AddVec returns a + b elementwise.
// Errors: ErrDimensionMismatch.
func AddVec(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, matrixErrorf(opAddVec, ErrDimensionMismatch)
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out, nil
}
