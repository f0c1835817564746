// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mustard/lab"
	"github.com/katalvlaran/mustard/random"
)

// roundtripConfig holds the roundtrip subcommand settings.
type roundtripConfig struct {
	Modes  int       `koanf:"modes"`
	Seed   int64     `koanf:"seed"`
	Vacuum bool      `koanf:"vacuum"`
	X      []float64 `koanf:"x"`
	Y      []float64 `koanf:"y"`
}

// NewRoundtripCmd creates the roundtrip subcommand.
func NewRoundtripCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "Displace a state, undo the displacement and compare",
		Long: `Builds a state (the vacuum with --vacuum, a seeded random pure state
otherwise), applies Dgate(x, y) followed by its inverse and checks that the
result equals the input. Missing --x/--y are drawn from the seed.`,
		RunE: runRoundtrip,
	}

	f := cmd.Flags()
	f.Int("modes", 1, "number of modes")
	f.Int64("seed", 1, "seed of the random state and displacement")
	f.Bool("vacuum", false, "start from the vacuum instead of a random pure state")
	f.Float64Slice("x", nil, "real parts of the displacement (one value or one per mode)")
	f.Float64Slice("y", nil, "imaginary parts of the displacement (one value or one per mode)")

	return cmd
}

func runRoundtrip(cmd *cobra.Command, _ []string) error {
	var rc roundtripConfig
	g, err := loadConfig(cmd, &rc)
	if err != nil {
		return err
	}
	logger, err := setupLogging(cmd.ErrOrStderr(), g.LogFormat, cmd.Name())
	if err != nil {
		return oops.Code("CONFIG_INVALID").Wrap(err)
	}

	if err := roundtrip(cmd.OutOrStdout(), g, &rc); err != nil {
		logError(logger, "roundtrip failed", err)
		return err
	}
	logger.Info("roundtrip complete", "modes", rc.Modes, "seed", rc.Seed, "vacuum", rc.Vacuum)

	return nil
}

func roundtrip(w io.Writer, g *globalConfig, rc *roundtripConfig) error {
	if rc.Modes <= 0 {
		return oops.Code("CONFIG_INVALID").With("modes", rc.Modes).Errorf("modes must be > 0")
	}
	x, y := rc.X, rc.Y

	rng := random.New(rc.Seed)
	var (
		in  lab.State
		err error
	)
	if rc.Vacuum {
		in, err = lab.Vacuum(rc.Modes, g.stateOptions()...)
	} else {
		in, err = random.PureState(random.Derive(rng, 0), rc.Modes, random.WithStateOptions(g.stateOptions()...))
	}
	if err != nil {
		return oops.Code("STATE_BUILD_FAILED").With("modes", rc.Modes).Wrap(err)
	}
	if len(x) == 0 {
		x = random.Vector(random.Derive(rng, 1), rc.Modes)
	}
	if len(y) == 0 {
		y = random.Vector(random.Derive(rng, 2), rc.Modes)
	}

	d := lab.Dgate(x, y)
	displaced, err := d.Apply(in)
	if err != nil {
		return oops.Code("GATE_FAILED").With("gate", d.Name()).With("x", x).With("y", y).Wrap(err)
	}
	restored, err := d.Inverse().Apply(displaced)
	if err != nil {
		return oops.Code("GATE_FAILED").With("gate", d.Name()).With("inverse", true).Wrap(err)
	}

	if err := printPhotonNumbers(w, "input", in); err != nil {
		return err
	}
	if err := printPhotonNumbers(w, "displaced", displaced); err != nil {
		return err
	}
	if err := printPhotonNumbers(w, "restored", restored); err != nil {
		return err
	}

	equal := lab.Equal(in, restored)
	fmt.Fprintf(w, "equal: %t\n", equal)
	if !equal {
		return oops.Code("ROUNDTRIP_MISMATCH").With("modes", rc.Modes).With("tolerance", g.Tolerance).
			Errorf("restored state differs from the input")
	}

	return nil
}

func printPhotonNumbers(w io.Writer, label string, s lab.State) error {
	n, err := s.MeanPhotonNumbers()
	if err != nil {
		return oops.Code("MOMENTS_FAILED").With("state", label).Wrap(err)
	}
	for k, v := range n {
		fmt.Fprintf(w, "%s mode %d: <n> = %.6f\n", label, k, v)
	}

	return nil
}
