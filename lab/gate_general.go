// SPDX-License-Identifier: MIT

// Package lab - the general Gaussian unitary.
package lab

import (
	"github.com/katalvlaran/mustard/gaussian"
	"github.com/katalvlaran/mustard/matrix"
)

// GaussianGate applies an arbitrary symplectic S: Σ → S Σ Sᵀ, μ → S μ.
type GaussianGate struct {
	s     *matrix.Dense
	modes []int
}

// Ggate validates s as a 2k×2k symplectic matrix (within matrix.DefaultEpsilon)
// and returns the gate that applies it to k target modes. Without OnModes, k
// must equal the state's mode count.
//
// Errors: ErrBadParameters (not symplectic, odd or non-square), ErrModeMismatch
// (OnModes disagrees with the size of s).
func Ggate(s matrix.Matrix, opts ...GateOption) (*GaussianGate, error) {
	if err := matrix.ValidateSymplectic(s, matrix.DefaultEpsilon); err != nil {
		return nil, labKindErrorf("Ggate", ErrBadParameters, err)
	}
	o := gatherGateOptions(opts...)
	if o.modes != nil && 2*len(o.modes) != s.Rows() {
		return nil, labErrorf("Ggate", ErrModeMismatch)
	}
	d, err := matrix.NewFromRows(rowsOf(s))
	if err != nil {
		return nil, labErrorf("Ggate", err)
	}

	return &GaussianGate{s: d, modes: o.modes}, nil
}

// Name returns "Ggate".
func (g *GaussianGate) Name() string { return "Ggate" }

// Symplectic returns a copy of S.
func (g *GaussianGate) Symplectic() *matrix.Dense { return g.s.Clone().(*matrix.Dense) }

// Inverse returns the gate of S⁻¹ = −Ω Sᵀ Ω.
func (g *GaussianGate) Inverse() Gate {
	inv, err := gaussian.InverseSymplectic(g.s)
	if err != nil {
		// g.s was validated at construction, so this cannot happen.
		panic(err)
	}

	return &GaussianGate{s: inv, modes: append([]int(nil), g.modes...)}
}

// Apply transforms (Σ, μ) by S on the target modes.
// Errors: ErrEmptyState, ErrModeMismatch, ErrNoFockRepresentation.
func (g *GaussianGate) Apply(s State) (State, error) {
	if err := s.validate(); err != nil {
		return State{}, labErrorf("Ggate", err)
	}
	if s.IsFock() {
		return State{}, labErrorf("Ggate", ErrNoFockRepresentation)
	}
	targets, err := resolveModes(g.modes, s.modes)
	if err != nil {
		return State{}, labErrorf("Ggate", err)
	}
	if 2*len(targets) != g.s.Rows() {
		return State{}, labErrorf("Ggate", ErrModeMismatch)
	}
	out, err := applySymplectic(s, g.s, targets)
	if err != nil {
		return State{}, labErrorf("Ggate", err)
	}

	return out, nil
}
