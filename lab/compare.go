// SPDX-License-Identifier: MIT

// Package lab - phase-space versus Fock-basis consistency.
package lab

import (
	"math"

	"github.com/katalvlaran/mustard/fock"
)

// Comparison is the outcome of running one gate through both representations.
type Comparison struct {
	Gate   string
	Cutoff int

	// Discrepancy is 1 − F between the Fock image of the phase-space result
	// and the result of the Fock-basis path.
	Discrepancy float64

	// Truncation is the largest probability mass either Fock ket lost to the
	// cutoff.
	Truncation float64

	// Tolerance is the tolerance of the input state.
	Tolerance float64
}

// Agree reports Discrepancy ≤ Tolerance + Truncation.
func (c Comparison) Agree() bool {
	return c.Discrepancy <= c.Tolerance+c.Truncation
}

// CompareRepresentations applies g to a single-mode pure Gaussian state twice:
//   - phase-space path: g on (Σ, μ), then conversion to Fock at cutoff;
//   - Fock path: conversion to Fock at cutoff, then g on the ket.
//
// No truncation bound is assumed. The error the cutoff introduces is measured
// and reported in Truncation.
//
// Errors: ErrEmptyState, ErrBadParameters (s already Fock, cutoff <= 0),
// ErrMultimodeFock, ErrNotPure, ErrNoFockRepresentation, gate errors.
func CompareRepresentations(g Gate, s State, cutoff int) (Comparison, error) {
	if err := s.validate(); err != nil {
		return Comparison{}, labErrorf("CompareRepresentations", err)
	}
	if !s.IsGaussian() || g == nil {
		return Comparison{}, labErrorf("CompareRepresentations", ErrBadParameters)
	}

	phase, err := g.Apply(s)
	if err != nil {
		return Comparison{}, labErrorf("CompareRepresentations", err)
	}
	phaseKet, err := phase.ToFock(cutoff)
	if err != nil {
		return Comparison{}, labErrorf("CompareRepresentations", err)
	}
	in, err := s.ToFock(cutoff)
	if err != nil {
		return Comparison{}, labErrorf("CompareRepresentations", err)
	}
	out, err := g.Apply(in)
	if err != nil {
		return Comparison{}, labErrorf("CompareRepresentations", err)
	}
	f, err := fock.Fidelity(phaseKet.ket, out.ket)
	if err != nil {
		return Comparison{}, labErrorf("CompareRepresentations", err)
	}

	return Comparison{
		Gate:        g.Name(),
		Cutoff:      cutoff,
		Discrepancy: 1 - f,
		Truncation:  math.Max(fock.TailProbability(phaseKet.ket), fock.TailProbability(out.ket)),
		Tolerance:   s.opts.tol,
	}, nil
}

// TruncationError returns the probability mass of s beyond cutoff.
// Errors: as State.ToFock.
func TruncationError(s State, cutoff int) (float64, error) {
	f, err := s.ToFock(cutoff)
	if err != nil {
		return 0, labErrorf("TruncationError", err)
	}

	return fock.TailProbability(f.ket), nil
}
