// SPDX-License-Identifier: MIT

package main

import (
	"math"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/mustard/lab"
)

// globalConfig holds the settings shared by every subcommand.
type globalConfig struct {
	LogFormat string  `koanf:"log-format"`
	Hbar      float64 `koanf:"hbar"`
	Tolerance float64 `koanf:"tolerance"`
}

// Validate checks that the configuration is usable.
func (cfg *globalConfig) Validate() error {
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return oops.Code("CONFIG_INVALID").With("log-format", cfg.LogFormat).
			Errorf("log-format must be 'json' or 'text', got %q", cfg.LogFormat)
	}
	if math.IsNaN(cfg.Hbar) || math.IsInf(cfg.Hbar, 0) || cfg.Hbar <= 0 {
		return oops.Code("CONFIG_INVALID").With("hbar", cfg.Hbar).Errorf("hbar must be finite and > 0")
	}
	if math.IsNaN(cfg.Tolerance) || math.IsInf(cfg.Tolerance, 0) || cfg.Tolerance < 0 {
		return oops.Code("CONFIG_INVALID").With("tolerance", cfg.Tolerance).Errorf("tolerance must be finite and >= 0")
	}

	return nil
}

// stateOptions converts the shared settings into lab options.
func (cfg *globalConfig) stateOptions() []lab.Option {
	return []lab.Option{lab.WithHbar(cfg.Hbar), lab.WithTolerance(cfg.Tolerance)}
}

// loadKoanf layers the --config YAML file (if any) under the command's flags.
// Flags the user set explicitly win; untouched flags only fill keys the file
// did not provide.
func loadKoanf(flags *pflag.FlagSet) (*koanf.Koanf, error) {
	k := koanf.New(".")

	path, err := flags.GetString("config")
	if err != nil {
		return nil, oops.Code("CONFIG_INVALID").With("flag", "config").Wrap(err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, oops.Code("CONFIG_LOAD_FAILED").With("path", path).Wrap(err)
		}
	}
	if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
		return nil, oops.Code("CONFIG_LOAD_FAILED").With("operation", "load flags").Wrap(err)
	}

	return k, nil
}

// loadConfig fills the shared settings and the command-specific struct out.
func loadConfig(cmd *cobra.Command, out any) (*globalConfig, error) {
	k, err := loadKoanf(cmd.Flags())
	if err != nil {
		return nil, err
	}
	g := &globalConfig{}
	if err := k.Unmarshal("", g); err != nil {
		return nil, oops.Code("CONFIG_INVALID").With("operation", "decode global settings").Wrap(err)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if out != nil {
		if err := k.Unmarshal("", out); err != nil {
			return nil, oops.Code("CONFIG_INVALID").With("command", cmd.Name()).Wrap(err)
		}
	}

	return g, nil
}
