// SPDX-License-Identifier: MIT

// Package mustard simulates continuous-variable states of light, held either
// as Gaussian (covariance, means) pairs in phase space or as truncated
// single-mode kets in the Fock basis.
//
// 🚀 What is inside?
//
//	matrix/   - dense real matrices, LU, Jacobi eigen, symplectic form, mode embedding
//	gaussian/ - vacuum, coherent, squeezed and thermal moments, gate symplectics
//	fock/     - kets, displacement and rotation operators, fidelity, moments
//	lab/      - immutable State, Dgate/Sgate/Rgate/BSgate/S2gate/Ggate, Circuit, Equal
//	random/   - seeded samplers and gopter generators for states and gates
//	cmd/mustard - roundtrip and compare from the command line
//
// Conventions: modes are ordered xxpp, ħ = 2 unless lab.WithHbar says
// otherwise, and the vacuum covariance is (ħ/2)·I.
//
// Quick example:
//
//	vac, _ := lab.Vacuum(1)
//	d := lab.Dgate([]float64{1.5}, []float64{-0.7})
//	out, _ := d.Apply(vac)
//	back, _ := d.Inverse().Apply(out)
//	fmt.Println(lab.Equal(vac, back)) // true
package mustard
