// SPDX-License-Identifier: MIT

// Package lab is the user-facing surface of mustard: immutable quantum states
// of continuous-variable modes, the gates that act on them, and a tolerance-based
// equality predicate.
//
// A State is held in one of two representations:
//   - Gaussian: a 2N×2N covariance Σ and a 2N mean vector μ in xxpp ordering
//     (x1..xN, p1..pN), together with the ħ convention used to build them.
//   - Fock: a single-mode ket truncated at a photon-number cutoff.
//
// Gates implement Gate. Dgate, Sgate and Rgate act mode-wise and take either a
// single parameter broadcast to every target mode or one parameter per target.
// BSgate and S2gate act on a pair of modes; Ggate applies an arbitrary
// symplectic matrix. Every gate exposes Inverse, and a Circuit composes gates in
// order. Gates never mutate their input.
//
// Equality:
//
//	Equal(a, b)          // uses the tolerance carried by a
//	ApproxEqual(a, b, t) // explicit tolerance
//
// Gaussian states compare covariance and means element-wise. Fock states
// compare by fidelity. Mixed pairs convert the Gaussian side into the Fock
// basis at the Fock side's cutoff.
//
// Representation checks: CompareRepresentations runs one gate through the
// phase-space path and through the Fock path and reports the observed
// discrepancy next to the truncation error the cutoff introduces.
//
// Example:
//
//	vac, _ := lab.Vacuum(1)
//	d := lab.Dgate([]float64{1.5}, []float64{-0.7})
//	out, _ := d.Apply(vac)
//	back, _ := d.Inverse().Apply(out)
//	lab.Equal(vac, back) // true
package lab
