// Package laplace evaluates one-sided Laplace transforms
//
//	F(s) = int_0^inf f(t) exp(-s*t) dt
//
// for real s by fixed-point Gauss-Legendre quadrature. The infinite upper
// bound is mapped onto [0, 1) with t = u/(1-u).
package laplace

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

const defaultPoints = 200

// Config holds quadrature parameters.
type Config struct {
	// Points is the number of quadrature nodes per evaluation.
	Points int
	// Concurrent bounds parallel integrand evaluations. <= 0 is serial.
	Concurrent int
}

// Transformer evaluates Laplace transforms with a fixed configuration.
type Transformer struct {
	cfg Config
}

// NewTransformer returns a Transformer. Non-positive Points selects the
// default.
func NewTransformer(cfg Config) *Transformer {
	if cfg.Points <= 0 {
		cfg.Points = defaultPoints
	}
	return &Transformer{cfg: cfg}
}

// Points returns the number of quadrature nodes.
func (tr *Transformer) Points() int { return tr.cfg.Points }

// Transform returns F(s). A non-finite result means the integral does not
// converge for this s and is reported as an error.
func (tr *Transformer) Transform(f func(t float64) float64, s float64) (float64, error) {
	if f == nil {
		return 0, fmt.Errorf("laplace integrand must not be nil")
	}
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return 0, fmt.Errorf("laplace s must be finite: %f", s)
	}
	integrand := func(t float64) float64 {
		if math.IsInf(t, 1) {
			return 0
		}
		v := f(t) * math.Exp(-s*t)
		if math.IsNaN(v) {
			return 0
		}
		return v
	}
	v := quad.Fixed(integrand, 0, math.Inf(1), tr.cfg.Points, nil, tr.cfg.Concurrent)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("laplace transform diverges at s=%f", s)
	}
	return v, nil
}

// Curve evaluates F at every s.
func (tr *Transformer) Curve(f func(t float64) float64, sValues []float64) ([]float64, error) {
	out := make([]float64, len(sValues))
	for i, s := range sValues {
		v, err := tr.Transform(f, s)
		if err != nil {
			return nil, fmt.Errorf("laplace curve point %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// Transform is a one-shot evaluation with the given number of points.
func Transform(f func(t float64) float64, s float64, points int) (float64, error) {
	return NewTransformer(Config{Points: points}).Transform(f, s)
}

// Curve is a one-shot Curve with the given number of points.
func Curve(f func(t float64) float64, sValues []float64, points int) ([]float64, error) {
	return NewTransformer(Config{Points: points}).Curve(f, sValues)
}

// ExpDecay is exp(-t) for t >= 0 and 0 before.
func ExpDecay(t float64) float64 {
	if t < 0 {
		return 0
	}
	return math.Exp(-t)
}

// ExpDecayTransform is the closed form 1/(s+1) of ExpDecay, valid for s > -1.
func ExpDecayTransform(s float64) float64 {
	return 1 / (s + 1)
}
