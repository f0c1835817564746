package random_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mustard/lab"
	"github.com/katalvlaran/mustard/random"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
)

func TestGenerators(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 50
	properties := gopter.NewProperties(params)

	properties.Property("GenVector respects length and magnitude", prop.ForAll(
		func(v []float64) bool {
			if len(v) != 3 {
				return false
			}
			for _, x := range v {
				if math.Abs(x) > 2 {
					return false
				}
			}
			return true
		},
		random.GenVector(3, random.WithMagnitude(2)),
	))

	properties.Property("GenPureState yields physical pure states", prop.ForAll(
		func(s lab.State) bool {
			if s.Modes() != 2 {
				return false
			}
			p, err := s.Purity()
			if err != nil || math.Abs(p-1) > 1e-9 {
				return false
			}
			_, err = lab.NewGaussianState(s.Cov(), s.Means())
			return err == nil
		},
		random.GenPureState(2),
	))

	properties.Property("GenGate keeps pure states pure", prop.ForAll(
		func(s lab.State, g lab.Gate) bool {
			out, err := g.Apply(s)
			if err != nil {
				return false
			}
			p, err := out.Purity()
			return err == nil && math.Abs(p-1) < 1e-8
		},
		random.GenPureState(2),
		random.GenGate(2),
	))

	properties.TestingRun(t)
}
