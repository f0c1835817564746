// SPDX-License-Identifier: MIT

// Package random produces deterministic random fixtures for mustard: parameter
// vectors, symplectic matrices and pure Gaussian states, plus gopter generators
// that turn them into property-test strategies.
//
// Determinism: every sampler takes an explicit *rand.Rand. New(0) uses a fixed
// default seed, so the same seed always yields the same fixtures.
//
// Concurrency: *rand.Rand is not goroutine-safe. Give each goroutine its own
// stream, for example with Derive.
package random
