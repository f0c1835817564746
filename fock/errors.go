// SPDX-License-Identifier: MIT
// Package fock: sentinel error set.

package fock

import (
	"errors"
	"fmt"
)

var (
	// ErrCutoff indicates a non-positive Fock cutoff.
	ErrCutoff = errors.New("fock: cutoff must be > 0")

	// ErrNumberOutOfRange indicates a photon number outside [0, cutoff).
	ErrNumberOutOfRange = errors.New("fock: photon number out of range")

	// ErrNonFinite indicates a NaN or ±Inf parameter or amplitude.
	ErrNonFinite = errors.New("fock: parameter is NaN or Inf")

	// ErrEmptyKet indicates a ket with no amplitudes.
	ErrEmptyKet = errors.New("fock: empty ket")

	// ErrDimension indicates mismatched ket/operator dimensions.
	ErrDimension = errors.New("fock: dimension mismatch")

	// ErrZeroNorm indicates a ket whose norm is zero.
	ErrZeroNorm = errors.New("fock: zero norm")

	// ErrNilOperator indicates a nil *Operator.
	ErrNilOperator = errors.New("fock: nil operator")
)

// fockErrorf wraps err with an operation tag.
func fockErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
