// SPDX-License-Identifier: MIT

// Package lab - the immutable State value and its accessors.
package lab

import (
	"errors"

	"github.com/katalvlaran/mustard/fock"
	"github.com/katalvlaran/mustard/gaussian"
	"github.com/katalvlaran/mustard/matrix"
)

// State is an immutable N-mode state. Exactly one representation is set:
// (cov, means) for Gaussian states, ket for single-mode Fock states.
// The zero value is empty and rejected by every operation.
type State struct {
	modes int
	cov   *matrix.Dense
	means []float64
	ket   fock.Ket
	opts  Options
}

// Modes returns the number of modes (0 for the empty State).
func (s State) Modes() int { return s.modes }

// IsGaussian reports whether s is held as covariance and means.
func (s State) IsGaussian() bool { return s.cov != nil }

// IsFock reports whether s is held as a truncated ket.
func (s State) IsFock() bool { return s.ket != nil }

// Hbar returns the ħ convention s was built with.
func (s State) Hbar() float64 { return s.opts.hbar }

// Tolerance returns the tolerance Equal uses when s is its first argument.
func (s State) Tolerance() float64 { return s.opts.tol }

// Cutoff returns the ket length for Fock states and the configured default
// cutoff otherwise.
func (s State) Cutoff() int {
	if s.ket != nil {
		return len(s.ket)
	}

	return s.opts.cutoff
}

// Cov returns a copy of the covariance, or nil for Fock states.
func (s State) Cov() *matrix.Dense {
	if s.cov == nil {
		return nil
	}

	return s.cov.Clone().(*matrix.Dense)
}

// Means returns a copy of the mean vector, or nil for Fock states.
func (s State) Means() []float64 {
	if s.means == nil {
		return nil
	}
	out := make([]float64, len(s.means))
	copy(out, s.means)

	return out
}

// Ket returns a copy of the ket, or nil for Gaussian states.
func (s State) Ket() fock.Ket { return s.ket.Clone() }

func (s State) validate() error {
	if s.modes == 0 || (s.cov == nil && s.ket == nil) {
		return ErrEmptyState
	}

	return nil
}

// withGaussian returns a Gaussian state sharing s's options.
// cov and means must not be aliased by anyone else.
func (s State) withGaussian(cov *matrix.Dense, means []float64) State {
	return State{modes: s.modes, cov: cov, means: means, opts: s.opts}
}

// withKet returns a single-mode Fock state sharing s's options.
func (s State) withKet(k fock.Ket) State {
	return State{modes: 1, ket: k, opts: s.opts}
}

// withNonzeroKet is withKet for kets computed by truncation or by a truncated
// operator. A ket whose amplitudes all vanished (the cutoff dropped the whole
// state, or e^{−|α|²/2} underflowed) is not a state.
// Errors: ErrBadParameters wrapping fock.ErrZeroNorm.
func (s State) withNonzeroKet(tag string, k fock.Ket) (State, error) {
	if fock.Norm(k) == 0 {
		return State{}, labKindErrorf(tag, ErrBadParameters, fock.ErrZeroNorm)
	}

	return s.withKet(k), nil
}

// Purity returns Tr ρ². Fock states are kets and always pure.
// Errors: ErrEmptyState, gaussian sentinels.
func (s State) Purity() (float64, error) {
	if err := s.validate(); err != nil {
		return 0, labErrorf("Purity", err)
	}
	if s.ket != nil {
		return 1, nil
	}
	p, err := gaussian.Purity(s.cov, s.opts.hbar)
	if err != nil {
		return 0, labErrorf("Purity", err)
	}

	return p, nil
}

// MeanPhotonNumbers returns ⟨n̂k⟩ for every mode.
// Errors: ErrEmptyState, gaussian and fock sentinels.
func (s State) MeanPhotonNumbers() ([]float64, error) {
	if err := s.validate(); err != nil {
		return nil, labErrorf("MeanPhotonNumbers", err)
	}
	if s.ket != nil {
		n, err := fock.MeanPhotonNumber(s.ket)
		if err != nil {
			return nil, labErrorf("MeanPhotonNumbers", err)
		}

		return []float64{n}, nil
	}
	n, err := gaussian.MeanPhotonNumbers(s.cov, s.means, s.opts.hbar)
	if err != nil {
		return nil, labErrorf("MeanPhotonNumbers", err)
	}

	return n, nil
}

// FieldExpectations returns ⟨ak⟩ for every mode.
// Errors: ErrEmptyState, gaussian and fock sentinels.
func (s State) FieldExpectations() ([]complex128, error) {
	if err := s.validate(); err != nil {
		return nil, labErrorf("FieldExpectations", err)
	}
	if s.ket != nil {
		a, err := fock.Annihilation(s.ket)
		if err != nil {
			return nil, labErrorf("FieldExpectations", err)
		}

		return []complex128{a}, nil
	}
	a, err := gaussian.FieldExpectations(s.means, s.opts.hbar)
	if err != nil {
		return nil, labErrorf("FieldExpectations", err)
	}

	return a, nil
}

// ToFock returns s in the Fock basis truncated at cutoff.
//
// Gaussian input must be single-mode and pure within PurityTolerance; it is
// decomposed into D(α)S(r, φ)|0⟩ and the leading cutoff amplitudes are
// computed exactly.
// Fock input is truncated or zero-padded to the new cutoff.
//
// Errors: ErrEmptyState, ErrMultimodeFock, ErrNotPure, ErrBadParameters
// (cutoff <= 0, or no amplitude left below the cutoff), gaussian and fock
// sentinels.
func (s State) ToFock(cutoff int) (State, error) {
	if err := s.validate(); err != nil {
		return State{}, labErrorf("ToFock", err)
	}
	if cutoff <= 0 {
		return State{}, labKindErrorf("ToFock", ErrBadParameters, fock.ErrCutoff)
	}
	if s.ket != nil {
		k := make(fock.Ket, cutoff)
		copy(k, s.ket)

		return s.withNonzeroKet("ToFock", k)
	}
	if s.modes != 1 {
		return State{}, labErrorf("ToFock", ErrMultimodeFock)
	}
	alpha, r, phi, err := gaussian.SingleModeParameters(s.cov, s.means, s.opts.hbar, PurityTolerance)
	if err != nil {
		if errors.Is(err, gaussian.ErrNotPure) {
			return State{}, labKindErrorf("ToFock", ErrNotPure, err)
		}

		return State{}, labErrorf("ToFock", err)
	}
	k, err := fock.DisplacedSqueezed(alpha, r, phi, cutoff)
	if err != nil {
		return State{}, labErrorf("ToFock", err)
	}

	return s.withNonzeroKet("ToFock", k)
}
