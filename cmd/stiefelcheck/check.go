// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/stiefel/euclidean"
	"github.com/katalvlaran/stiefel/matrix"
	"github.com/katalvlaran/stiefel/stiefel"
)

// Report summarizes a run.
type Report struct {
	Checks   int
	Failures int
	// MaxRoundTrip is the largest ‖X − R⁻¹(R(X))‖ seen across trials.
	MaxRoundTrip float64
}

// ErrChecksFailed is returned by run when at least one check failed.
var ErrChecksFailed = errors.New("stiefelcheck: checks failed")

// inverseOf pairs retractions with their inverse, when there is one.
func inverseOf(r stiefel.RetractionMethod) (stiefel.InverseRetractionMethod, bool) {
	switch r {
	case stiefel.PolarRetraction:
		return stiefel.PolarInverseRetraction, true
	case stiefel.QRRetraction:
		return stiefel.QRInverseRetraction, true
	}

	return 0, false
}

// hasTransport reports whether r has a differentiated-retraction transport.
func hasTransport(r stiefel.RetractionMethod) bool {
	return r == stiefel.PolarRetraction || r == stiefel.QRRetraction || r == stiefel.CayleyRetraction
}

// run validates cfg and runs the checks in the configured field.
func run(cfg Config, log zerolog.Logger) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	M, _ := cfg.Manifold()
	if M.Field() == stiefel.Complex {
		return runChecks[complex128](cfg, M, log)
	}

	return runChecks[float64](cfg, M, log)
}

// checker carries the state shared by the checks of one run.
type checker[T matrix.Scalar] struct {
	M     stiefel.Manifold
	space euclidean.Space // ambient n×k matrices, for round-trip distances
	opts  []stiefel.Option
	log   zerolog.Logger
	rep   Report
}

// record logs one check and counts it; err == nil means it passed.
func (c *checker[T]) record(name string, err error, fields map[string]any) {
	c.rep.Checks++
	ev := c.log.Debug()
	if err != nil {
		c.rep.Failures++
		ev = c.log.Error().Err(err)
		var de *stiefel.DomainError
		if errors.As(err, &de) {
			ev = ev.Float64("residual", de.Residual).Float64("tol", de.Tol)
		}
	}
	ev.Fields(fields).Str("check", name).Msg("check")
}

func runChecks[T matrix.Scalar](cfg Config, M stiefel.Manifold, log zerolog.Logger) (Report, error) {
	methods, err := cfg.Methods()
	if err != nil {
		return Report{}, err
	}
	space, err := euclidean.New(M.RepresentationSize())
	if err != nil {
		return Report{}, err
	}
	c := &checker[T]{
		M:     M,
		space: space,
		opts:  []stiefel.Option{stiefel.WithRelTol(cfg.RelTol), stiefel.WithAbsTol(cfg.AbsTol)},
		log:   log.With().Stringer("manifold", M).Logger(),
	}
	src := rand.NewPCG(cfg.Seed, cfg.Seed)

	c.log.Info().
		Int("dimension", M.Dimension()).
		Bool("flat", M.IsFlat()).
		Int("trials", cfg.Trials).
		Msg("start")

	for trial := 0; trial < cfg.Trials; trial++ {
		if err := c.trial(trial, src, cfg, methods); err != nil {
			return c.rep, err
		}
	}

	c.log.Info().
		Int("checks", c.rep.Checks).
		Int("failures", c.rep.Failures).
		Float64("max_round_trip", c.rep.MaxRoundTrip).
		Msg("done")
	if c.rep.Failures > 0 {
		return c.rep, fmt.Errorf("%d of %d: %w", c.rep.Failures, c.rep.Checks, ErrChecksFailed)
	}

	return c.rep, nil
}

// trial draws p, X, Z and exercises every configured retraction. Sampling
// errors abort the run; property violations are only recorded.
func (c *checker[T]) trial(trial int, src rand.Source, cfg Config, methods []stiefel.RetractionMethod) error {
	M := c.M
	at := map[string]any{"trial": trial}

	p, err := stiefel.RandomPoint[T](M, src, cfg.Sigma)
	if err != nil {
		return err
	}
	X, err := stiefel.RandomTangent(M, src, p, cfg.Sigma)
	if err != nil {
		return err
	}
	if X, err = matrix.Scale(X, matrix.FromReal[T](cfg.Step)); err != nil {
		return err
	}
	Z, err := stiefel.RandomTangent(M, src, p, cfg.Sigma)
	if err != nil {
		return err
	}
	c.record("point", stiefel.CheckPoint(M, p, c.opts...), at)
	c.record("tangent", stiefel.CheckVector(M, p, X, c.opts...), at)

	for _, method := range methods {
		fields := map[string]any{"trial": trial, "method": method.String()}
		q, err := stiefel.Retract(M, p, X, 1, method)
		if err != nil {
			c.record("retract", err, fields)
			continue
		}
		c.record("retract", stiefel.CheckPoint(M, q, c.opts...), fields)

		if inv, ok := inverseOf(method); ok {
			c.recordRoundTrip(p, q, X, inv, fields)
		}
		if hasTransport(method) {
			Y, err := stiefel.VectorTransportDirection(M, p, Z, X, stiefel.DifferentiatedRetraction(method))
			if err == nil {
				err = stiefel.CheckVector(M, q, Y, c.opts...)
			}
			c.record("transport", err, fields)
		}
	}

	return nil
}

// recordRoundTrip checks ‖X − R⁻¹_p(q)‖ ≤ ‖X‖³ up to a fixed 1e-12 slack.
func (c *checker[T]) recordRoundTrip(p, q, X *matrix.Dense[T], inv stiefel.InverseRetractionMethod, fields map[string]any) {
	Y, err := stiefel.InverseRetract(c.M, p, q, inv)
	if err != nil {
		c.record("round_trip", err, fields)
		return
	}
	e, err := euclidean.Distance(c.space, X, Y)
	if err != nil {
		c.record("round_trip", err, fields)
		return
	}
	if e > c.rep.MaxRoundTrip {
		c.rep.MaxRoundTrip = e
	}
	nx := matrix.FrobeniusNorm(X)
	if bound := nx*nx*nx + 1e-12; e > bound {
		err = &stiefel.DomainError{Op: "RoundTrip", Err: errRoundTrip, Residual: e, Tol: bound}
	}
	c.record("round_trip", err, withField(fields, "error", e))
}

var errRoundTrip = errors.New("inverse retraction does not recover the tangent vector")

// withField returns a copy of fields with key set to v.
func withField(fields map[string]any, key string, v any) map[string]any {
	out := make(map[string]any, len(fields)+1)
	for k, x := range fields {
		out[k] = x
	}
	out[key] = v

	return out
}
