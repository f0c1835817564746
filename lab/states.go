// SPDX-License-Identifier: MIT

// Package lab - named state constructors.
package lab

import (
	"errors"

	"github.com/katalvlaran/mustard/fock"
	"github.com/katalvlaran/mustard/gaussian"
	"github.com/katalvlaran/mustard/matrix"
)

// paramErrorf marks parameter-validation failures of lower layers with
// ErrBadParameters and passes everything else through.
func paramErrorf(tag string, err error) error {
	if errors.Is(err, gaussian.ErrParamLength) ||
		errors.Is(err, gaussian.ErrNonFiniteParam) ||
		errors.Is(err, gaussian.ErrNegativeOccupation) ||
		errors.Is(err, fock.ErrNonFinite) {
		return labKindErrorf(tag, ErrBadParameters, err)
	}

	return labErrorf(tag, err)
}

// Vacuum returns the n-mode vacuum: Σ = (ħ/2)·I, μ = 0.
// Errors: ErrBadParameters for n <= 0.
func Vacuum(n int, opts ...Option) (State, error) {
	if n <= 0 {
		return State{}, labErrorf("Vacuum", ErrBadParameters)
	}
	o := gatherOptions(opts...)
	cov, err := gaussian.VacuumCov(n, o.hbar)
	if err != nil {
		return State{}, labErrorf("Vacuum", err)
	}

	return State{modes: n, cov: cov, means: gaussian.VacuumMeans(n), opts: o}, nil
}

// Coherent returns ⊗k |αk⟩ with αk = x[k] + i·y[k]. The mode count is len(x).
// Errors: ErrBadParameters.
func Coherent(x, y []float64, opts ...Option) (State, error) {
	o := gatherOptions(opts...)
	means, err := gaussian.CoherentMeans(x, y, o.hbar)
	if err != nil {
		return State{}, paramErrorf("Coherent", err)
	}
	cov, err := gaussian.VacuumCov(len(x), o.hbar)
	if err != nil {
		return State{}, labErrorf("Coherent", err)
	}

	return State{modes: len(x), cov: cov, means: means, opts: o}, nil
}

// SqueezedVacuum returns ⊗k S(r[k], φ[k])|0⟩.
// Errors: ErrBadParameters.
func SqueezedVacuum(r, phi []float64, opts ...Option) (State, error) {
	o := gatherOptions(opts...)
	cov, err := gaussian.SqueezedVacuumCov(r, phi, o.hbar)
	if err != nil {
		return State{}, paramErrorf("SqueezedVacuum", err)
	}

	return State{modes: len(r), cov: cov, means: gaussian.VacuumMeans(len(r)), opts: o}, nil
}

// DisplacedSqueezed returns ⊗k D(x[k] + i·y[k])·S(r[k], φ[k])|0⟩.
// All four slices must have the same length.
// Errors: ErrBadParameters.
func DisplacedSqueezed(r, phi, x, y []float64, opts ...Option) (State, error) {
	if len(x) != len(r) {
		return State{}, labErrorf("DisplacedSqueezed", ErrBadParameters)
	}
	sq, err := SqueezedVacuum(r, phi, opts...)
	if err != nil {
		return State{}, labErrorf("DisplacedSqueezed", err)
	}
	d, err := gaussian.DisplacementVector(x, y, sq.opts.hbar)
	if err != nil {
		return State{}, paramErrorf("DisplacedSqueezed", err)
	}
	sq.means = d

	return sq, nil
}

// Thermal returns ⊗k ρ_th(n̄k), a mixed state with Σk = (ħ/2)(2n̄k + 1)·I.
// Errors: ErrBadParameters (including n̄ < 0).
func Thermal(nbar []float64, opts ...Option) (State, error) {
	o := gatherOptions(opts...)
	cov, err := gaussian.ThermalCov(nbar, o.hbar)
	if err != nil {
		return State{}, paramErrorf("Thermal", err)
	}

	return State{modes: len(nbar), cov: cov, means: gaussian.VacuumMeans(len(nbar)), opts: o}, nil
}

// NewGaussianState builds a state from an explicit covariance and mean vector.
// Both are copied and validated for physicality with the state's tolerance.
// Errors: ErrUnphysical, ErrModeMismatch (shape), matrix sentinels.
func NewGaussianState(cov matrix.Matrix, means []float64, opts ...Option) (State, error) {
	o := gatherOptions(opts...)
	if err := gaussian.ValidateState(cov, means, o.hbar, o.tol); err != nil {
		switch {
		case errors.Is(err, gaussian.ErrUnphysical), errors.Is(err, matrix.ErrAsymmetry):
			return State{}, labKindErrorf("NewGaussianState", ErrUnphysical, err)
		case errors.Is(err, gaussian.ErrShape):
			return State{}, labKindErrorf("NewGaussianState", ErrModeMismatch, err)
		default:
			return State{}, labErrorf("NewGaussianState", err)
		}
	}
	c, err := matrix.NewFromRows(rowsOf(cov))
	if err != nil {
		return State{}, labErrorf("NewGaussianState", err)
	}
	mu := make([]float64, len(means))
	copy(mu, means)

	return State{modes: cov.Rows() / 2, cov: c, means: mu, opts: o}, nil
}

// rowsOf copies m into [][]float64. m is assumed validated.
func rowsOf(m matrix.Matrix) [][]float64 {
	rows := make([][]float64, m.Rows())
	for i := range rows {
		rows[i] = make([]float64, m.Cols())
		for j := range rows[i] {
			rows[i][j], _ = m.At(i, j)
		}
	}

	return rows
}

// NewFockState wraps a single-mode ket. The ket is copied, not renormalized.
// Errors: ErrBadParameters (empty or non-finite ket), fock.ErrZeroNorm.
func NewFockState(ket fock.Ket, opts ...Option) (State, error) {
	o := gatherOptions(opts...)
	if len(ket) == 0 {
		return State{}, labKindErrorf("NewFockState", ErrBadParameters, fock.ErrEmptyKet)
	}
	if _, err := fock.Normalize(ket); err != nil {
		return State{}, paramErrorf("NewFockState", err)
	}
	o.cutoff = len(ket)

	return State{modes: 1, ket: ket.Clone(), opts: o}, nil
}
