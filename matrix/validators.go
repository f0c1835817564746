// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/symmetry checks here.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	// A typed nil *Dense hidden inside the interface is still nil to us.
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is NotNil(a) → NotNil(b) → SameShape(a,b).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible checks a,b non-nil and a.Cols == b.Rows.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidatePhaseSpace checks m is square with an even dimension 2N.
func ValidatePhaseSpace(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if m.Rows()%2 != 0 {
		return validatorErrorf("ValidatePhaseSpace", ErrOddDimension)
	}

	return nil
}

// ValidateSymmetric verifies |m[i,j] − m[j,i]| ≤ tol for all i<j.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry.
// Complexity: O(n²) over the upper triangle.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	d, err := toDense(m)
	if err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	n := d.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(d.data[i*n+j]-d.data[j*n+i]) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateSymplectic verifies S Ω Sᵀ = Ω elementwise within eps, where Ω is
// the xxpp symplectic form of matching size.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrOddDimension, ErrNotSymplectic.
// Complexity: O(n³).
func ValidateSymplectic(s Matrix, eps float64) error {
	if err := ValidatePhaseSpace(s); err != nil {
		return err
	}
	omega, err := SymplecticForm(s.Rows() / 2)
	if err != nil {
		return validatorErrorf("ValidateSymplectic", err)
	}
	so, err := Mul(s, omega)
	if err != nil {
		return validatorErrorf("ValidateSymplectic", err)
	}
	st, err := Transpose(s)
	if err != nil {
		return validatorErrorf("ValidateSymplectic", err)
	}
	sost, err := Mul(so, st)
	if err != nil {
		return validatorErrorf("ValidateSymplectic", err)
	}
	ok, err := AllClose(sost, omega, 0, eps)
	if err != nil {
		return validatorErrorf("ValidateSymplectic", err)
	}
	if !ok {
		return validatorErrorf("ValidateSymplectic", ErrNotSymplectic)
	}

	return nil
}
