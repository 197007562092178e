// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stiefel/stiefel"
)

// ErrConfig reports an invalid configuration value.
var ErrConfig = errors.New("stiefelcheck: invalid config")

// Config drives one diagnostics run. It is read from YAML and then
// overridden by any flag the user set explicitly.
type Config struct {
	Rows        int      `yaml:"rows"`
	Cols        int      `yaml:"cols"`
	Field       string   `yaml:"field"` // real | complex
	Seed        uint64   `yaml:"seed"`
	Sigma       float64  `yaml:"sigma"`
	Step        float64  `yaml:"step"` // norm of the tangent vectors retracted
	Trials      int      `yaml:"trials"`
	RelTol      float64  `yaml:"rel_tol"`
	AbsTol      float64  `yaml:"abs_tol"`
	Retractions []string `yaml:"retractions"` // polar, qr, cayley, pade:<m>
	LogLevel    string   `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Rows:        5,
		Cols:        2,
		Field:       "real",
		Seed:        1,
		Sigma:       1,
		Step:        0.1,
		Trials:      10,
		RelTol:      stiefel.DefaultRelTol,
		AbsTol:      1e-12,
		Retractions: []string{"polar", "qr", "cayley"},
		LogLevel:    "info",
	}
}

// LoadConfig reads a YAML file over DefaultConfig; keys absent from the
// file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// bindFlags registers one flag per Config field on fs, defaulting to def.
func bindFlags(fs *pflag.FlagSet, cfg *Config, def Config) {
	fs.IntVar(&cfg.Rows, "rows", def.Rows, "rows n of the manifold")
	fs.IntVar(&cfg.Cols, "cols", def.Cols, "columns k of the manifold")
	fs.StringVar(&cfg.Field, "field", def.Field, "scalar field: real or complex")
	fs.Uint64Var(&cfg.Seed, "seed", def.Seed, "PCG seed")
	fs.Float64Var(&cfg.Sigma, "sigma", def.Sigma, "standard deviation of the Gaussian draws")
	fs.Float64Var(&cfg.Step, "step", def.Step, "norm of the retracted tangent vectors")
	fs.IntVar(&cfg.Trials, "trials", def.Trials, "number of random trials")
	fs.Float64Var(&cfg.RelTol, "rel-tol", def.RelTol, "relative tolerance of the validators")
	fs.Float64Var(&cfg.AbsTol, "abs-tol", def.AbsTol, "absolute tolerance of the validators")
	fs.StringSliceVar(&cfg.Retractions, "retractions", def.Retractions, "retractions: polar, qr, cayley, pade:<m>")
	fs.StringVar(&cfg.LogLevel, "log-level", def.LogLevel, "zerolog level")
}

// mergeFlags copies every explicitly set flag from flags into cfg.
func mergeFlags(fs *pflag.FlagSet, cfg *Config, flags Config) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = flags.Rows
		case "cols":
			cfg.Cols = flags.Cols
		case "field":
			cfg.Field = flags.Field
		case "seed":
			cfg.Seed = flags.Seed
		case "sigma":
			cfg.Sigma = flags.Sigma
		case "step":
			cfg.Step = flags.Step
		case "trials":
			cfg.Trials = flags.Trials
		case "rel-tol":
			cfg.RelTol = flags.RelTol
		case "abs-tol":
			cfg.AbsTol = flags.AbsTol
		case "retractions":
			cfg.Retractions = flags.Retractions
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		}
	})
}

// Manifold validates the shape and field and builds the descriptor.
func (c Config) Manifold() (stiefel.Manifold, error) {
	f, err := parseField(c.Field)
	if err != nil {
		return stiefel.Manifold{}, err
	}

	return stiefel.New(c.Rows, c.Cols, f)
}

// Validate checks the numeric settings and the retraction names.
func (c Config) Validate() error {
	if _, err := c.Manifold(); err != nil {
		return err
	}
	if c.Trials < 1 {
		return fmt.Errorf("trials=%d: %w", c.Trials, ErrConfig)
	}
	if !(c.Sigma > 0) || !(c.Step > 0) {
		return fmt.Errorf("sigma=%g, step=%g must be positive: %w", c.Sigma, c.Step, ErrConfig)
	}
	if !validTol(c.RelTol) || !validTol(c.AbsTol) {
		return fmt.Errorf("rel_tol=%g, abs_tol=%g must be finite and non-negative: %w", c.RelTol, c.AbsTol, ErrConfig)
	}
	_, err := c.Methods()

	return err
}

// Methods parses Retractions.
func (c Config) Methods() ([]stiefel.RetractionMethod, error) {
	out := make([]stiefel.RetractionMethod, 0, len(c.Retractions))
	for _, name := range c.Retractions {
		m, err := parseRetraction(name)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, nil
}

func validTol(x float64) bool { return x >= 0 && !math.IsInf(x, 1) }

func parseField(s string) (stiefel.Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "real", "r":
		return stiefel.Real, nil
	case "complex", "c":
		return stiefel.Complex, nil
	}

	return 0, fmt.Errorf("field %q: %w", s, ErrConfig)
}

func parseRetraction(s string) (stiefel.RetractionMethod, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "polar":
		return stiefel.PolarRetraction, nil
	case "qr":
		return stiefel.QRRetraction, nil
	case "cayley":
		return stiefel.CayleyRetraction, nil
	}
	if order, ok := strings.CutPrefix(name, "pade:"); ok {
		m, err := strconv.Atoi(order)
		if err == nil && m >= 1 {
			return stiefel.PadeRetraction(m), nil
		}
	}

	return stiefel.RetractionMethod{}, fmt.Errorf("retraction %q: %w", s, ErrConfig)
}
