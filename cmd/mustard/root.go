// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mustard/lab"
)

const defaultLogFormat = "text"

// NewRootCmd creates the root command of the mustard CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mustard",
		Short: "mustard - continuous-variable state simulation",
		Long: `mustard simulates Gaussian states of light in phase space and in a
truncated Fock basis. Its subcommands check that a displacement is undone by
its inverse and that both representations agree on a gate.`,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "YAML config file; explicit flags override its values")
	pf.String("log-format", defaultLogFormat, "log format (json or text)")
	pf.Float64("hbar", lab.DefaultHbar, "hbar convention (vacuum covariance is hbar/2)")
	pf.Float64("tolerance", lab.DefaultTolerance, "tolerance of the state equality check")

	cmd.AddCommand(NewRoundtripCmd())
	cmd.AddCommand(NewCompareCmd())

	return cmd
}
