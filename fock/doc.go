// SPDX-License-Identifier: MIT

// Package fock implements the truncated photon-number basis of a single mode.
//
// A Ket holds the amplitudes ⟨n|ψ⟩ for n = 0..cutoff−1. Kets built here are the
// exact leading amplitudes of the infinite-dimensional state, so nothing is
// renormalized after truncation: the missing probability is 1 − ‖ψ‖² and is
// reported by TailProbability.
//
// Operators are dense cutoff×cutoff complex matrices whose entries are the
// exact matrix elements ⟨m|U|n⟩. Applying a truncated operator to a truncated
// ket drops the contribution of the discarded basis vectors and nothing else.
//
// State builders:
//   - Vacuum, Number (|n⟩), Coherent (|α⟩), SqueezedVacuum (S(r, φ)|0⟩),
//     DisplacedSqueezed (D(α)S(r, φ)|0⟩).
//
// Operators:
//   - Displacement D(α), by the recurrence on ⟨m|D|n⟩.
//   - Rotation R(θ) = exp(iθn̂), diagonal.
//
// Measures:
//   - Norm, Inner, Fidelity, MeanPhotonNumber, Annihilation (⟨a⟩), TailProbability.
//
// Conventions: S(r, φ) = exp((ξ*a² − ξa†²)/2) with ξ = r·e^{iφ}, so that φ = 0
// squeezes the x quadrature. This matches the phase-space squeezer of package
// gaussian.
package fock
