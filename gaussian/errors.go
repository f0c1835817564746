// SPDX-License-Identifier: MIT
// Package gaussian: sentinel error set.

package gaussian

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrBadHbar indicates ħ is not a finite positive number.
	ErrBadHbar = errors.New("gaussian: hbar must be finite and > 0")

	// ErrParamLength indicates per-mode parameter slices of different or zero length.
	ErrParamLength = errors.New("gaussian: parameter lengths must match and be > 0")

	// ErrNonFiniteParam indicates a NaN or ±Inf gate/state parameter.
	ErrNonFiniteParam = errors.New("gaussian: parameter is NaN or Inf")

	// ErrNegativeOccupation indicates a thermal occupation below zero.
	ErrNegativeOccupation = errors.New("gaussian: thermal occupation must be >= 0")

	// ErrShape indicates covariance and means disagree on the number of modes.
	ErrShape = errors.New("gaussian: covariance/means shape mismatch")

	// ErrUnphysical indicates Σ + i(ħ/2)Ω is not positive semidefinite.
	ErrUnphysical = errors.New("gaussian: covariance violates the uncertainty principle")

	// ErrNotPure indicates a pure state was required but purity < 1.
	ErrNotPure = errors.New("gaussian: state is not pure")
)

// gaussianErrorf wraps err with an operation tag.
func gaussianErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateHbar rejects non-finite or non-positive ħ.
func validateHbar(hbar float64) error {
	if math.IsNaN(hbar) || math.IsInf(hbar, 0) || hbar <= 0 {
		return ErrBadHbar
	}

	return nil
}

// validateParams checks that every slice has the same non-zero length and
// only finite entries.
func validateParams(params ...[]float64) error {
	if len(params) == 0 || len(params[0]) == 0 {
		return ErrParamLength
	}
	n := len(params[0])
	for _, p := range params {
		if len(p) != n {
			return ErrParamLength
		}
		for _, v := range p {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNonFiniteParam
			}
		}
	}

	return nil
}
