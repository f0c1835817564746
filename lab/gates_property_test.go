package lab_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mustard/lab"
	"github.com/katalvlaran/mustard/random"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
)

func propertyParams() *gopter.TestParameters {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200

	return params
}

// roundTrip applies Dgate(x, y) then Dgate(−x, −y) and compares with s.
func roundTrip(s lab.State, x, y []float64) bool {
	mid, err := lab.Dgate(x, y).Apply(s)
	if err != nil {
		return false
	}
	neg := func(v []float64) []float64 {
		out := make([]float64, len(v))
		for i := range v {
			out[i] = -v[i]
		}
		return out
	}
	out, err := lab.Dgate(neg(x), neg(y)).Apply(mid)
	if err != nil {
		return false
	}

	return lab.Equal(s, out)
}

func TestDgate_InverseLaw(t *testing.T) {
	properties := gopter.NewProperties(propertyParams())
	wide := random.WithMagnitude(10)

	properties.Property("single mode: Dgate(-x,-y)∘Dgate(x,y) is the identity", prop.ForAll(
		roundTrip,
		random.GenPureState(1),
		random.GenVector(1, wide),
		random.GenVector(1, wide),
	))

	properties.Property("two modes: Dgate(-x,-y)∘Dgate(x,y) is the identity", prop.ForAll(
		roundTrip,
		random.GenPureState(2),
		random.GenVector(2, wide),
		random.GenVector(2, wide),
	))

	properties.Property("Inverse() is the negated displacement", prop.ForAll(
		func(s lab.State, x, y []float64) bool {
			g := lab.Dgate(x, y)
			mid, err := g.Apply(s)
			if err != nil {
				return false
			}
			out, err := g.Inverse().Apply(mid)
			return err == nil && lab.Equal(s, out)
		},
		random.GenPureState(2),
		random.GenVector(2, wide),
		random.GenVector(2, wide),
	))

	properties.TestingRun(t)
}

func TestGates_InverseLaw(t *testing.T) {
	properties := gopter.NewProperties(propertyParams())

	for _, n := range []int{1, 2} {
		properties.Property(fmt.Sprintf("%d modes: every gate is undone by its inverse", n), prop.ForAll(
			func(s lab.State, g lab.Gate) bool {
				mid, err := g.Apply(s)
				if err != nil {
					return false
				}
				out, err := g.Inverse().Apply(mid)
				return err == nil && lab.Equal(s, out)
			},
			random.GenPureState(n),
			random.GenGate(n),
		))
	}

	properties.TestingRun(t)
}
