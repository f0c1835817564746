// Package gaussian implements phase-space calculus for Gaussian states of
// continuous-variable systems.
//
// 🚀 What is a Gaussian state?
//
//	A state fully described by its first two moments: a mean vector μ (2N)
//	and a covariance matrix Σ (2N×2N). Gaussian unitaries act on them as
//	an affine symplectic map:
//	  Σ ↦ S Σ Sᵀ,   μ ↦ S μ + d
//	where S preserves the symplectic form (S Ω Sᵀ = Ω) and d is a
//	displacement.
//
// ✨ Key features:
//   - Standard states: vacuum, coherent, squeezed vacuum, thermal.
//   - Symplectic generators: rotation, squeezing, beam splitter, two-mode squeezing.
//   - Moments: purity, mean photon numbers, field expectations ⟨a⟩.
//   - Physicality check: Σ + i(ħ/2)Ω ⪰ 0, evaluated on its real 4N×4N form.
//   - Single-mode decomposition into (α, r, φ) for Fock conversion.
//
// ⚙️ Conventions:
//
//	Ordering is xxpp: (x1..xN, p1..pN). Every function takes ħ explicitly;
//	the vacuum covariance is (ħ/2)·I and a displacement (x, y) shifts the
//	means by sqrt(2ħ)·(x, y).
//
// The package is pure: no function mutates its inputs and nothing here logs.
package gaussian
