// SPDX-License-Identifier: MIT

// Package random - gopter generators.
package random

import (
	"math"

	"github.com/katalvlaran/mustard/lab"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

// GenVector generates []float64 of length n with entries in [−m, m]
// (WithMagnitude). Entries shrink towards zero.
func GenVector(n int, opts ...Option) gopter.Gen {
	o := gatherOptions(opts...)

	return gen.SliceOfN(n, gen.Float64Range(-o.magnitude, o.magnitude))
}

// GenPureState generates random n-mode pure lab.State values. The symplectic
// part is drawn from a generated seed, the displacement from two GenVector
// draws, so counterexamples shrink towards the default seed and a zero
// displacement. n must be positive.
func GenPureState(n int, opts ...Option) gopter.Gen {
	o := gatherOptions(opts...)

	return gopter.CombineGens(
		gen.Int64(),
		GenVector(n, opts...),
		GenVector(n, opts...),
	).Map(func(v []interface{}) lab.State {
		s, err := Symplectic(New(v[0].(int64)), n, opts...)
		if err != nil {
			panic(err)
		}
		st, err := pureState(s, v[1].([]float64), v[2].([]float64), o)
		if err != nil {
			panic(err)
		}

		return st
	})
}

// GenGate generates a random lab.Gate with no target-mode option, acting on
// every mode of an n-mode state: Dgate, Sgate or Rgate, plus BSgate and S2gate
// when n ≥ 2.
func GenGate(n int, opts ...Option) gopter.Gen {
	o := gatherOptions(opts...)
	phase := gen.Float64Range(-math.Pi, math.Pi)

	gens := []gopter.Gen{
		gopter.CombineGens(GenVector(n, opts...), GenVector(n, opts...)).
			Map(func(v []interface{}) lab.Gate {
				return lab.Dgate(v[0].([]float64), v[1].([]float64))
			}),
		gopter.CombineGens(gen.SliceOfN(n, gen.Float64Range(0, o.maxSqueezing)), gen.SliceOfN(n, phase)).
			Map(func(v []interface{}) lab.Gate {
				return lab.Sgate(v[0].([]float64), v[1].([]float64))
			}),
		gen.SliceOfN(n, phase).
			Map(func(theta []float64) lab.Gate {
				return lab.Rgate(theta)
			}),
	}
	if n >= 2 {
		gens = append(gens,
			gopter.CombineGens(phase, phase).
				Map(func(v []interface{}) lab.Gate {
					return lab.BSgate(v[0].(float64), v[1].(float64))
				}),
			gopter.CombineGens(gen.Float64Range(0, o.maxSqueezing), phase).
				Map(func(v []interface{}) lab.Gate {
					return lab.S2gate(v[0].(float64), v[1].(float64))
				}),
		)
	}

	return gen.OneGenOf(gens...)
}
