// SPDX-License-Identifier: MIT

// Package fock - single-mode kets and their builders.
package fock

import (
	"math"
	"math/cmplx"
)

// Ket is a truncated single-mode state vector: Ket[n] = ⟨n|ψ⟩.
type Ket []complex128

// Cutoff returns the number of basis states kept.
func (k Ket) Cutoff() int { return len(k) }

// Clone returns an independent copy of k.
func (k Ket) Clone() Ket {
	if k == nil {
		return nil
	}
	out := make(Ket, len(k))
	copy(out, k)

	return out
}

// validate rejects empty kets and non-finite amplitudes.
func (k Ket) validate() error {
	if len(k) == 0 {
		return ErrEmptyKet
	}
	for _, c := range k {
		if cmplx.IsNaN(c) || cmplx.IsInf(c) {
			return ErrNonFinite
		}
	}

	return nil
}

func validateCutoff(cutoff int) error {
	if cutoff <= 0 {
		return ErrCutoff
	}

	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// Vacuum returns |0⟩ truncated to cutoff.
func Vacuum(cutoff int) (Ket, error) {
	return Number(0, cutoff)
}

// Number returns the photon-number state |n⟩.
// Errors: ErrCutoff, ErrNumberOutOfRange.
func Number(n, cutoff int) (Ket, error) {
	if err := validateCutoff(cutoff); err != nil {
		return nil, fockErrorf("Number", err)
	}
	if n < 0 || n >= cutoff {
		return nil, fockErrorf("Number", ErrNumberOutOfRange)
	}
	k := make(Ket, cutoff)
	k[n] = 1

	return k, nil
}

// Coherent returns |α⟩ with c0 = e^{−|α|²/2} and c(n) = c(n−1)·α/√n.
// Errors: ErrCutoff, ErrNonFinite.
func Coherent(alpha complex128, cutoff int) (Ket, error) {
	return DisplacedSqueezed(alpha, 0, 0, cutoff)
}

// SqueezedVacuum returns S(r, φ)|0⟩. Only even photon numbers are populated:
//
//	c(2m) = (1/√cosh r)·(−e^{iφ}·tanh r)^m·√((2m)!)/(2^m·m!)
//
// Errors: ErrCutoff, ErrNonFinite.
func SqueezedVacuum(r, phi float64, cutoff int) (Ket, error) {
	return DisplacedSqueezed(0, r, phi, cutoff)
}

// DisplacedSqueezed returns D(α)S(r, φ)|0⟩.
//
// Implementation:
//   - The ket is annihilated by b = (a−α)·cosh r + (a†−α*)·e^{iφ}·sinh r, which
//     in the number basis gives the three-term recurrence
//     c(n+1) = (γ·c(n) − e^{iφ}·sinh r·√n·c(n−1)) / (cosh r·√(n+1)),
//     with γ = α·cosh r + α*·e^{iφ}·sinh r.
//   - c0 = exp(−|α|²/2 − α*²·e^{iφ}·tanh r/2)/√cosh r.
//
// For r = 0 this reduces to the coherent recurrence, for α = 0 to the
// squeezed vacuum.
//
// Errors: ErrCutoff, ErrNonFinite.
// Complexity: O(cutoff).
func DisplacedSqueezed(alpha complex128, r, phi float64, cutoff int) (Ket, error) {
	if err := validateCutoff(cutoff); err != nil {
		return nil, fockErrorf("DisplacedSqueezed", err)
	}
	if !finite(real(alpha), imag(alpha), r, phi) {
		return nil, fockErrorf("DisplacedSqueezed", ErrNonFinite)
	}
	ch, sh, th := math.Cosh(r), math.Sinh(r), math.Tanh(r)
	eip := cmplx.Exp(complex(0, phi))
	conjAlpha := cmplx.Conj(alpha)
	absAlpha := cmplx.Abs(alpha)

	k := make(Ket, cutoff)
	k[0] = cmplx.Exp(complex(-absAlpha*absAlpha/2, 0)-conjAlpha*conjAlpha*eip*complex(th/2, 0)) /
		complex(math.Sqrt(ch), 0)

	gamma := alpha*complex(ch, 0) + conjAlpha*eip*complex(sh, 0)
	var prev complex128
	for n := 0; n+1 < cutoff; n++ {
		next := gamma*k[n] - eip*complex(sh*math.Sqrt(float64(n)), 0)*prev
		prev = k[n]
		k[n+1] = next / complex(ch*math.Sqrt(float64(n+1)), 0)
	}

	return k, nil
}
