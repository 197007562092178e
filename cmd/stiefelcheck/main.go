// SPDX-License-Identifier: MIT

// Command stiefelcheck samples random points and tangent vectors on a Stiefel
// manifold and checks the numerical properties of its retractions, inverse
// retractions and vector transports.
//
// Example usage:
//
//	stiefelcheck --rows 6 --cols 3 --field complex
//	stiefelcheck --config run.yaml --retractions polar,pade:3
//	stiefelcheck dims --rows 5 --cols 2
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree writing results to out and logs to logOut.
func newRootCmd(out, logOut io.Writer) *cobra.Command {
	var (
		configPath string
		flags      Config
	)
	def := DefaultConfig()

	// resolve loads the config file, if any, and applies explicit flags.
	resolve := func(cmd *cobra.Command) (Config, error) {
		cfg := def
		if configPath != "" {
			loaded, err := LoadConfig(configPath)
			if err != nil {
				return cfg, err
			}
			cfg = loaded
		}
		mergeFlags(cmd.Flags(), &cfg, flags)

		return cfg, nil
	}

	root := &cobra.Command{
		Use:   "stiefelcheck",
		Short: "Numerical property checks for Stiefel manifold operations",
		Long: `stiefelcheck draws seeded random points and tangent vectors on St(n, k)
and verifies that retractions land on the manifold, that inverse retractions
recover the tangent vector and that transported vectors are tangent.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(cmd)
			if err != nil {
				return err
			}
			log, err := newLogger(logOut, cfg.LogLevel)
			if err != nil {
				return err
			}
			rep, err := run(cfg, log)
			fmt.Fprintf(out, "checks=%d failures=%d max_round_trip=%.3g\n", rep.Checks, rep.Failures, rep.MaxRoundTrip)

			return err
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	bindFlags(root.PersistentFlags(), &flags, def)

	dims := &cobra.Command{
		Use:   "dims",
		Short: "Print the dimension and representation size of the manifold",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(cmd)
			if err != nil {
				return err
			}
			M, err := cfg.Manifold()
			if err != nil {
				return err
			}
			r, c := M.RepresentationSize()
			fmt.Fprintf(out, "%s dimension=%d representation=%dx%d flat=%t\n", M, M.Dimension(), r, c, M.IsFlat())

			return nil
		},
	}
	root.AddCommand(dims)

	return root
}

// newLogger returns a console zerolog logger at the named level.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", level, ErrConfig)
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().Timestamp().Logger(), nil
}
