// SPDX-License-Identifier: MIT

// Package fock - truncated single-mode operators.
package fock

import (
	"math"
	"math/cmplx"
)

// Operator is a dense dim×dim complex matrix in row-major order,
// data[m*dim+n] = ⟨m|U|n⟩.
type Operator struct {
	dim  int
	data []complex128
}

// newOperator allocates a zero operator of the given dimension.
func newOperator(dim int) *Operator {
	return &Operator{dim: dim, data: make([]complex128, dim*dim)}
}

// Dim returns the cutoff the operator was built for.
func (o *Operator) Dim() int { return o.dim }

// At returns ⟨m|U|n⟩.
// Errors: ErrNumberOutOfRange.
func (o *Operator) At(m, n int) (complex128, error) {
	if m < 0 || n < 0 || m >= o.dim || n >= o.dim {
		return 0, fockErrorf("Operator.At", ErrNumberOutOfRange)
	}

	return o.data[m*o.dim+n], nil
}

// Dagger returns the conjugate transpose.
func (o *Operator) Dagger() *Operator {
	out := newOperator(o.dim)
	for m := 0; m < o.dim; m++ {
		for n := 0; n < o.dim; n++ {
			out.data[n*o.dim+m] = cmplx.Conj(o.data[m*o.dim+n])
		}
	}

	return out
}

// Displacement returns the truncated matrix of D(α).
//
// Implementation:
//   - D[0,0] = e^{−|α|²/2}
//   - D[m,0] = α/√m · D[m−1,0]
//   - D[m,n] = (√m·D[m−1,n−1] − α*·D[m,n−1]) / √n
//
// The recurrence follows from D·a† = (a† − α*)·D and only references smaller
// indices, so every stored entry is exact.
//
// Errors: ErrCutoff, ErrNonFinite.
// Complexity: O(cutoff²).
func Displacement(alpha complex128, cutoff int) (*Operator, error) {
	if err := validateCutoff(cutoff); err != nil {
		return nil, fockErrorf("Displacement", err)
	}
	if !finite(real(alpha), imag(alpha)) {
		return nil, fockErrorf("Displacement", ErrNonFinite)
	}
	op := newOperator(cutoff)
	d := cutoff
	abs := cmplx.Abs(alpha)
	conjAlpha := cmplx.Conj(alpha)
	sqrt := make([]float64, cutoff)
	for i := range sqrt {
		sqrt[i] = math.Sqrt(float64(i))
	}

	op.data[0] = complex(math.Exp(-abs*abs/2), 0)
	for m := 1; m < d; m++ {
		op.data[m*d] = alpha / complex(sqrt[m], 0) * op.data[(m-1)*d]
	}
	for m := 0; m < d; m++ {
		for n := 1; n < d; n++ {
			v := -conjAlpha * op.data[m*d+n-1]
			if m > 0 {
				v += complex(sqrt[m], 0) * op.data[(m-1)*d+n-1]
			}
			op.data[m*d+n] = v / complex(sqrt[n], 0)
		}
	}

	return op, nil
}

// Rotation returns R(θ) = exp(iθn̂), the diagonal matrix e^{iθn}.
// Errors: ErrCutoff, ErrNonFinite.
func Rotation(theta float64, cutoff int) (*Operator, error) {
	if err := validateCutoff(cutoff); err != nil {
		return nil, fockErrorf("Rotation", err)
	}
	if !finite(theta) {
		return nil, fockErrorf("Rotation", ErrNonFinite)
	}
	op := newOperator(cutoff)
	for n := 0; n < cutoff; n++ {
		op.data[n*cutoff+n] = cmplx.Exp(complex(0, theta*float64(n)))
	}

	return op, nil
}

// Apply returns U|ψ⟩.
// Errors: ErrNilOperator, ErrEmptyKet, ErrNonFinite, ErrDimension.
// Complexity: O(dim²).
func Apply(op *Operator, k Ket) (Ket, error) {
	if op == nil {
		return nil, fockErrorf("Apply", ErrNilOperator)
	}
	if err := k.validate(); err != nil {
		return nil, fockErrorf("Apply", err)
	}
	if len(k) != op.dim {
		return nil, fockErrorf("Apply", ErrDimension)
	}
	out := make(Ket, op.dim)
	var acc complex128
	for m := 0; m < op.dim; m++ {
		acc = 0
		row := op.data[m*op.dim : (m+1)*op.dim]
		for n, c := range k {
			acc += row[n] * c
		}
		out[m] = acc
	}

	return out, nil
}

// Compose returns the product a·b (apply b first).
// Errors: ErrNilOperator, ErrDimension.
func Compose(a, b *Operator) (*Operator, error) {
	if a == nil || b == nil {
		return nil, fockErrorf("Compose", ErrNilOperator)
	}
	if a.dim != b.dim {
		return nil, fockErrorf("Compose", ErrDimension)
	}
	d := a.dim
	out := newOperator(d)
	for i := 0; i < d; i++ {
		for k := 0; k < d; k++ {
			aik := a.data[i*d+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < d; j++ {
				out.data[i*d+j] += aik * b.data[k*d+j]
			}
		}
	}

	return out, nil
}
