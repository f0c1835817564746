// SPDX-License-Identifier: MIT

// Package lab - mode-wise squeezing and rotation gates.
package lab

import (
	"github.com/katalvlaran/mustard/fock"
	"github.com/katalvlaran/mustard/gaussian"
)

// SqueezingGate is S(r, φ) on each target mode.
type SqueezingGate struct {
	r, phi []float64
	modes  []int
}

// Sgate returns the single-mode squeezing gate. Parameters broadcast as in Dgate.
func Sgate(r, phi []float64, opts ...GateOption) *SqueezingGate {
	o := gatherGateOptions(opts...)

	return &SqueezingGate{r: cloneFloats(r), phi: cloneFloats(phi), modes: o.modes}
}

// Name returns "Sgate".
func (g *SqueezingGate) Name() string { return "Sgate" }

// Inverse returns Sgate(−r, φ).
func (g *SqueezingGate) Inverse() Gate {
	return &SqueezingGate{r: negated(g.r), phi: cloneFloats(g.phi), modes: append([]int(nil), g.modes...)}
}

// Apply transforms (Σ, μ) by the squeezing symplectic.
// Errors: ErrEmptyState, ErrModeMismatch, ErrBadParameters, ErrNoFockRepresentation.
func (g *SqueezingGate) Apply(s State) (State, error) {
	if err := s.validate(); err != nil {
		return State{}, labErrorf("Sgate", err)
	}
	if s.IsFock() {
		return State{}, labErrorf("Sgate", ErrNoFockRepresentation)
	}
	targets, err := resolveModes(g.modes, s.modes)
	if err != nil {
		return State{}, labErrorf("Sgate", err)
	}
	rs, err := broadcast(g.r, len(targets))
	if err != nil {
		return State{}, labErrorf("Sgate", err)
	}
	phis, err := broadcast(g.phi, len(targets))
	if err != nil {
		return State{}, labErrorf("Sgate", err)
	}
	block, err := gaussian.SqueezingSymplectic(rs, phis)
	if err != nil {
		return State{}, paramErrorf("Sgate", err)
	}
	out, err := applySymplectic(s, block, targets)
	if err != nil {
		return State{}, labErrorf("Sgate", err)
	}

	return out, nil
}

// RotationGate is R(θ) = exp(iθn̂) on each target mode.
type RotationGate struct {
	theta []float64
	modes []int
}

// Rgate returns the phase rotation gate. Parameters broadcast as in Dgate.
func Rgate(theta []float64, opts ...GateOption) *RotationGate {
	o := gatherGateOptions(opts...)

	return &RotationGate{theta: cloneFloats(theta), modes: o.modes}
}

// Name returns "Rgate".
func (g *RotationGate) Name() string { return "Rgate" }

// Inverse returns Rgate(−θ).
func (g *RotationGate) Inverse() Gate {
	return &RotationGate{theta: negated(g.theta), modes: append([]int(nil), g.modes...)}
}

// Apply rotates the phase space of each target mode. On a Fock state it
// multiplies ⟨n|ψ⟩ by e^{iθn}.
// Errors: ErrEmptyState, ErrModeMismatch, ErrBadParameters.
func (g *RotationGate) Apply(s State) (State, error) {
	if err := s.validate(); err != nil {
		return State{}, labErrorf("Rgate", err)
	}
	targets, err := resolveModes(g.modes, s.modes)
	if err != nil {
		return State{}, labErrorf("Rgate", err)
	}
	thetas, err := broadcast(g.theta, len(targets))
	if err != nil {
		return State{}, labErrorf("Rgate", err)
	}
	if s.IsFock() {
		op, err := fock.Rotation(thetas[0], len(s.ket))
		if err != nil {
			return State{}, labErrorf("Rgate", err)
		}
		k, err := fock.Apply(op, s.ket)
		if err != nil {
			return State{}, labErrorf("Rgate", err)
		}

		return s.withKet(k), nil
	}
	block, err := gaussian.RotationSymplectic(thetas)
	if err != nil {
		return State{}, paramErrorf("Rgate", err)
	}
	out, err := applySymplectic(s, block, targets)
	if err != nil {
		return State{}, labErrorf("Rgate", err)
	}

	return out, nil
}
