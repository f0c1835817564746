// Package matrix provides the real-valued dense linear algebra used by the
// phase-space simulation packages.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe At/Set accessors that
//     return sentinel errors instead of panicking.
//   - Kernels: Add, Sub, Mul, Transpose, Scale, MatVec, Trace, LU, Det
//     (through the LU pivots) and a Jacobi Eigen solver for symmetric matrices.
//   - Phase-space helpers: SymplecticForm (Ω in xxpp ordering), DirectSum,
//     EmbedModes and SubmatrixModes for lifting k-mode blocks into an
//     N-mode space.
//   - Tolerant comparisons (AllClose, VecAllClose) and validators
//     (ValidateSymmetric, ValidateSymplectic, ...).
//
// Ordering convention:
//
//	Phase-space vectors of N modes are laid out as (x1..xN, p1..pN).
//	A 2N×2N matrix therefore has four N×N blocks [[xx, xp], [px, pp]].
//
// Every kernel allocates its result and never mutates its operands.
//
//	import "github.com/katalvlaran/mustard/matrix"
package matrix
