// SPDX-License-Identifier: MIT

// Package fock - inner products, fidelity and photon-number moments.
package fock

import (
	"math"
	"math/cmplx"
)

// normSq returns Σ|c(n)|².
func normSq(k Ket) float64 {
	var s float64
	for _, c := range k {
		s += real(c)*real(c) + imag(c)*imag(c)
	}

	return s
}

// Norm returns ‖ψ‖.
func Norm(k Ket) float64 { return math.Sqrt(normSq(k)) }

// Normalize returns ψ/‖ψ‖.
// Errors: ErrEmptyKet, ErrNonFinite, ErrZeroNorm.
func Normalize(k Ket) (Ket, error) {
	if err := k.validate(); err != nil {
		return nil, fockErrorf("Normalize", err)
	}
	n := Norm(k)
	if n == 0 {
		return nil, fockErrorf("Normalize", ErrZeroNorm)
	}
	out := make(Ket, len(k))
	inv := complex(1/n, 0)
	for i, c := range k {
		out[i] = c * inv
	}

	return out, nil
}

// Inner returns ⟨a|b⟩ = Σ conj(a(n))·b(n).
// Errors: ErrEmptyKet, ErrNonFinite, ErrDimension.
func Inner(a, b Ket) (complex128, error) {
	if err := a.validate(); err != nil {
		return 0, fockErrorf("Inner", err)
	}
	if err := b.validate(); err != nil {
		return 0, fockErrorf("Inner", err)
	}
	if len(a) != len(b) {
		return 0, fockErrorf("Inner", ErrDimension)
	}
	var acc complex128
	for i := range a {
		acc += cmplx.Conj(a[i]) * b[i]
	}

	return acc, nil
}

// Fidelity returns |⟨a|b⟩|²/(‖a‖²·‖b‖²). Global phases do not matter and the
// result lies in [0, 1].
// Errors: ErrEmptyKet, ErrNonFinite, ErrDimension, ErrZeroNorm.
func Fidelity(a, b Ket) (float64, error) {
	ip, err := Inner(a, b)
	if err != nil {
		return 0, fockErrorf("Fidelity", err)
	}
	na, nb := normSq(a), normSq(b)
	if na == 0 || nb == 0 {
		return 0, fockErrorf("Fidelity", ErrZeroNorm)
	}
	abs := cmplx.Abs(ip)
	f := abs * abs / (na * nb)

	return math.Min(1, f), nil
}

// MeanPhotonNumber returns ⟨n̂⟩ = Σ n·|c(n)|² / ‖ψ‖².
// Errors: ErrEmptyKet, ErrNonFinite, ErrZeroNorm.
func MeanPhotonNumber(k Ket) (float64, error) {
	if err := k.validate(); err != nil {
		return 0, fockErrorf("MeanPhotonNumber", err)
	}
	ns := normSq(k)
	if ns == 0 {
		return 0, fockErrorf("MeanPhotonNumber", ErrZeroNorm)
	}
	var s float64
	for n, c := range k {
		s += float64(n) * (real(c)*real(c) + imag(c)*imag(c))
	}

	return s / ns, nil
}

// Annihilation returns ⟨a⟩ = Σ √n·conj(c(n−1))·c(n) / ‖ψ‖².
// Errors: ErrEmptyKet, ErrNonFinite, ErrZeroNorm.
func Annihilation(k Ket) (complex128, error) {
	if err := k.validate(); err != nil {
		return 0, fockErrorf("Annihilation", err)
	}
	ns := normSq(k)
	if ns == 0 {
		return 0, fockErrorf("Annihilation", ErrZeroNorm)
	}
	var acc complex128
	for n := 1; n < len(k); n++ {
		acc += complex(math.Sqrt(float64(n)), 0) * cmplx.Conj(k[n-1]) * k[n]
	}

	return acc / complex(ns, 0), nil
}

// TailProbability returns 1 − ‖ψ‖², the probability the truncation dropped
// for a ket holding the leading amplitudes of a normalized state. Rounding
// can push the raw value below zero; it is clamped.
func TailProbability(k Ket) float64 {
	return math.Max(0, 1-normSq(k))
}
