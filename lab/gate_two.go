// SPDX-License-Identifier: MIT

// Package lab - two-mode gates: beam splitter and two-mode squeezing.
package lab

import (
	"math"

	"github.com/katalvlaran/mustard/gaussian"
	"github.com/katalvlaran/mustard/matrix"
)

// twoModeGate is the shared shape of BSgate and S2gate: two scalar parameters
// and a pair of target modes.
type twoModeGate struct {
	name  string
	a, b  float64
	modes []int
	build func(a, b float64) (*matrix.Dense, error)
}

func (g *twoModeGate) Name() string { return g.name }

// Params returns the two scalar parameters.
func (g *twoModeGate) Params() (float64, float64) { return g.a, g.b }

func (g *twoModeGate) Apply(s State) (State, error) {
	if err := s.validate(); err != nil {
		return State{}, labErrorf(g.name, err)
	}
	if s.IsFock() {
		return State{}, labErrorf(g.name, ErrNoFockRepresentation)
	}
	if math.IsNaN(g.a) || math.IsInf(g.a, 0) || math.IsNaN(g.b) || math.IsInf(g.b, 0) {
		return State{}, labErrorf(g.name, ErrBadParameters)
	}
	targets, err := resolvePair(g.modes, s.modes)
	if err != nil {
		return State{}, labErrorf(g.name, err)
	}
	block, err := g.build(g.a, g.b)
	if err != nil {
		return State{}, labErrorf(g.name, err)
	}
	out, err := applySymplectic(s, block, targets)
	if err != nil {
		return State{}, labErrorf(g.name, err)
	}

	return out, nil
}

// Inverse negates the first parameter: B(θ, φ)⁻¹ = B(−θ, φ) and
// S2(r, φ)⁻¹ = S2(−r, φ).
func (g *twoModeGate) Inverse() Gate {
	return &twoModeGate{
		name:  g.name,
		a:     -g.a,
		b:     g.b,
		modes: append([]int(nil), g.modes...),
		build: g.build,
	}
}

// BSgate returns the beam splitter with transmissivity angle θ and phase φ,
// acting on modes 0 and 1 unless OnModes names another pair.
func BSgate(theta, phi float64, opts ...GateOption) Gate {
	o := gatherGateOptions(opts...)

	return &twoModeGate{name: "BSgate", a: theta, b: phi, modes: o.modes, build: gaussian.BeamsplitterSymplectic}
}

// S2gate returns the two-mode squeezer S2(r, φ), acting on modes 0 and 1
// unless OnModes names another pair.
func S2gate(r, phi float64, opts ...GateOption) Gate {
	o := gatherGateOptions(opts...)

	return &twoModeGate{name: "S2gate", a: r, b: phi, modes: o.modes, build: gaussian.TwoModeSqueezingSymplectic}
}
