// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mustard/lab"
)

// compareConfig holds the compare subcommand settings.
type compareConfig struct {
	Cutoff int     `koanf:"cutoff"`
	Gate   string  `koanf:"gate"`
	R      float64 `koanf:"r"`
	Phi    float64 `koanf:"phi"`
	X      float64 `koanf:"x"`
	Y      float64 `koanf:"y"`
	DX     float64 `koanf:"dx"`
	DY     float64 `koanf:"dy"`
	Theta  float64 `koanf:"theta"`
}

// NewCompareCmd creates the compare subcommand.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run a gate in phase space and in the Fock basis",
		Long: `Builds the single-mode state D(x + iy)·S(r, phi)|0>, applies the gate
once on the covariance and means and once on the truncated ket, and reports
the discrepancy next to the probability the cutoff dropped.`,
		RunE: runCompare,
	}

	f := cmd.Flags()
	f.Int("cutoff", lab.DefaultCutoff, "Fock-basis cutoff")
	f.String("gate", "dgate", "gate to compare (dgate or rgate)")
	f.Float64("r", 0.2, "squeezing magnitude of the input state")
	f.Float64("phi", 0, "squeezing phase of the input state")
	f.Float64("x", 0.3, "real part of the input displacement")
	f.Float64("y", 0, "imaginary part of the input displacement")
	f.Float64("dx", 0.4, "real part of the Dgate displacement")
	f.Float64("dy", -0.2, "imaginary part of the Dgate displacement")
	f.Float64("theta", 0.5, "Rgate angle")

	return cmd
}

func runCompare(cmd *cobra.Command, _ []string) error {
	var cc compareConfig
	g, err := loadConfig(cmd, &cc)
	if err != nil {
		return err
	}
	logger, err := setupLogging(cmd.ErrOrStderr(), g.LogFormat, cmd.Name())
	if err != nil {
		return oops.Code("CONFIG_INVALID").Wrap(err)
	}

	res, err := compare(cmd.OutOrStdout(), g, &cc)
	if err != nil {
		logError(logger, "compare failed", err)
		return err
	}
	logger.Info("compare complete",
		"gate", res.Gate,
		"cutoff", res.Cutoff,
		"discrepancy", res.Discrepancy,
		"truncation", res.Truncation,
	)

	return nil
}

func (cc *compareConfig) gate() (lab.Gate, error) {
	switch cc.Gate {
	case "dgate":
		return lab.Dgate([]float64{cc.DX}, []float64{cc.DY}), nil
	case "rgate":
		return lab.Rgate([]float64{cc.Theta}), nil
	default:
		return nil, oops.Code("CONFIG_INVALID").With("gate", cc.Gate).
			Errorf("gate must be 'dgate' or 'rgate', got %q", cc.Gate)
	}
}

func compare(w io.Writer, g *globalConfig, cc *compareConfig) (lab.Comparison, error) {
	if cc.Cutoff <= 0 {
		return lab.Comparison{}, oops.Code("CONFIG_INVALID").With("cutoff", cc.Cutoff).Errorf("cutoff must be > 0")
	}
	gate, err := cc.gate()
	if err != nil {
		return lab.Comparison{}, err
	}
	opts := append(g.stateOptions(), lab.WithCutoff(cc.Cutoff))
	in, err := lab.DisplacedSqueezed(
		[]float64{cc.R}, []float64{cc.Phi}, []float64{cc.X}, []float64{cc.Y}, opts...,
	)
	if err != nil {
		return lab.Comparison{}, oops.Code("STATE_BUILD_FAILED").
			With("r", cc.R).With("phi", cc.Phi).With("x", cc.X).With("y", cc.Y).Wrap(err)
	}

	res, err := lab.CompareRepresentations(gate, in, cc.Cutoff)
	if err != nil {
		return lab.Comparison{}, oops.Code("COMPARE_FAILED").With("gate", gate.Name()).With("cutoff", cc.Cutoff).Wrap(err)
	}

	fmt.Fprintf(w, "gate: %s\n", res.Gate)
	fmt.Fprintf(w, "cutoff: %d\n", res.Cutoff)
	fmt.Fprintf(w, "discrepancy: %.3e\n", res.Discrepancy)
	fmt.Fprintf(w, "truncation: %.3e\n", res.Truncation)
	fmt.Fprintf(w, "agree: %t\n", res.Agree())
	if !res.Agree() {
		return res, oops.Code("REPRESENTATION_MISMATCH").
			With("gate", res.Gate).
			With("discrepancy", res.Discrepancy).
			With("truncation", res.Truncation).
			Errorf("phase-space and Fock results disagree")
	}

	return res, nil
}
