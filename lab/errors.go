// SPDX-License-Identifier: MIT
// Package lab: sentinel error set.
//
// Callers match with errors.Is. Errors from matrix, gaussian and fock are
// wrapped, never replaced, so their sentinels stay reachable too.

package lab

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyState indicates the zero State value was used.
	ErrEmptyState = errors.New("lab: empty state")

	// ErrModeMismatch indicates target modes outside the state, repeated
	// targets, or two states/gates disagreeing on the number of modes.
	ErrModeMismatch = errors.New("lab: mode mismatch")

	// ErrBadParameters indicates gate or state parameters of the wrong length
	// or with non-finite values.
	ErrBadParameters = errors.New("lab: bad parameters")

	// ErrNoFockRepresentation indicates a gate that has no Fock-basis form here.
	ErrNoFockRepresentation = errors.New("lab: gate has no Fock representation")

	// ErrNotPure indicates a pure state was required.
	ErrNotPure = errors.New("lab: state is not pure")

	// ErrUnphysical indicates a covariance that violates the uncertainty principle.
	ErrUnphysical = errors.New("lab: unphysical state")

	// ErrMultimodeFock indicates a Fock conversion of more than one mode.
	ErrMultimodeFock = errors.New("lab: Fock representation is single-mode only")
)

// labErrorf wraps err with an operation tag.
func labErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// labKindErrorf tags err and also marks it with a lab sentinel.
func labKindErrorf(tag string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", tag, kind, err)
}
