// SPDX-License-Identifier: MIT
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stiefel/stiefel"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	M, err := cfg.Manifold()
	require.NoError(t, err)
	assert.Equal(t, "Stiefel(5, 2, ℝ)", M.String())
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, "rows: 7\nfield: complex\nretractions: [qr, \"pade:2\"]\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Rows)
	assert.Equal(t, 2, cfg.Cols) // default kept
	assert.Equal(t, "complex", cfg.Field)
	methods, err := cfg.Methods()
	require.NoError(t, err)
	assert.Equal(t, []stiefel.RetractionMethod{stiefel.QRRetraction, stiefel.PadeRetraction(2)}, methods)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "rows: [1, 2\n"))
	require.Error(t, err)
}

func TestMergeFlags_OnlyExplicit(t *testing.T) {
	def := DefaultConfig()
	var flags Config
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	bindFlags(fs, &flags, def)
	require.NoError(t, fs.Parse([]string{"--cols", "3", "--retractions", "polar,cayley"}))

	cfg := def
	cfg.Rows = 9 // as if read from a file
	mergeFlags(fs, &cfg, flags)

	assert.Equal(t, 9, cfg.Rows)
	assert.Equal(t, 3, cfg.Cols)
	assert.Equal(t, []string{"polar", "cayley"}, cfg.Retractions)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"cols > rows", func(c *Config) { c.Cols = 9 }},
		{"bad field", func(c *Config) { c.Field = "quaternion" }},
		{"no trials", func(c *Config) { c.Trials = 0 }},
		{"zero step", func(c *Config) { c.Step = 0 }},
		{"negative sigma", func(c *Config) { c.Sigma = -1 }},
		{"negative tol", func(c *Config) { c.AbsTol = -1 }},
		{"unknown retraction", func(c *Config) { c.Retractions = []string{"householder"} }},
		{"pade order zero", func(c *Config) { c.Retractions = []string{"pade:0"} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestParseField(t *testing.T) {
	f, err := parseField(" Complex ")
	require.NoError(t, err)
	assert.Equal(t, stiefel.Complex, f)

	f, err = parseField("r")
	require.NoError(t, err)
	assert.Equal(t, stiefel.Real, f)

	_, err = parseField("ℍ")
	require.ErrorIs(t, err, ErrConfig)
}
