package main

import (
	"math"

	"github.com/sigworks/sigscope/analysis"
	"github.com/sigworks/sigscope/dsp/signal"
	"github.com/sigworks/sigscope/dsp/spectrum"
	"github.com/sigworks/sigscope/internal/config"
	"github.com/sigworks/sigscope/internal/render"
	"github.com/sigworks/sigscope/measure/laplace"
)

// fourier samples e^(-t) on the scenario's time vector and transforms it.
// Bin frequencies use the actual spacing of the vector, duration/(N-1).
func fourier(cfg *config.Scenario) (spectrum.Result, error) {
	t := analysis.GenerateTimeVector(cfg.SampleRate, cfg.Duration)
	x := make([]float64, len(t))
	for i, ti := range t {
		x[i] = laplace.ExpDecay(ti)
	}
	return analysis.ComputeSpectrum(x, 1/signal.Spacing(t))
}

// laplaceResult is the numerical transform with its closed-form reference.
type laplaceResult struct {
	S        []float64
	Numeric  []float64
	Analytic []float64
}

// MaxError returns the largest absolute gap between Numeric and Analytic.
func (r laplaceResult) MaxError() float64 {
	worst := 0.0
	for i := range r.Numeric {
		worst = math.Max(worst, math.Abs(r.Numeric[i]-r.Analytic[i]))
	}
	return worst
}

func laplaceCurve(cfg *config.Laplace) (laplaceResult, error) {
	s := signal.Linspace(cfg.SMin, cfg.SMax, cfg.SPoints)
	tr := laplace.NewTransformer(laplace.Config{Points: cfg.QuadPoints})
	numeric, err := tr.Curve(laplace.ExpDecay, s)
	if err != nil {
		return laplaceResult{}, err
	}
	analytic := make([]float64, len(s))
	for i, v := range s {
		analytic[i] = laplace.ExpDecayTransform(v)
	}
	return laplaceResult{S: s, Numeric: numeric, Analytic: analytic}, nil
}

func fourierFigure(cfg *config.Scenario, ft spectrum.Result) (*render.Figure, error) {
	fig, err := render.NewFigure(cfg.Title, 1, 1, render.WithRowHeight(600))
	if err != nil {
		return nil, err
	}
	p, err := fig.Panel(0, 0)
	if err != nil {
		return nil, err
	}
	p.Title, p.XLabel, p.YLabel = cfg.Title, "Frequency", "Magnitude"

	shifted := ft.Shifted()
	if err := fig.Add(0, 0, render.Series{Name: "Fourier Transform", X: shifted.Freqs, Y: shifted.Magnitude()}); err != nil {
		return nil, err
	}
	return fig, nil
}

func laplaceFigure(lt laplaceResult) (*render.Figure, error) {
	const title = "Laplace Transform"
	fig, err := render.NewFigure(title, 1, 1, render.WithRowHeight(600))
	if err != nil {
		return nil, err
	}
	p, err := fig.Panel(0, 0)
	if err != nil {
		return nil, err
	}
	p.Title, p.XLabel, p.YLabel = title, "Real Part of s", "Magnitude"

	if err := fig.Add(0, 0, render.Series{Name: title, X: lt.S, Y: lt.Numeric}); err != nil {
		return nil, err
	}
	if err := fig.Add(0, 0, render.Series{Name: "1/(s+1)", X: lt.S, Y: lt.Analytic, Dash: render.Dashed, Width: 1}); err != nil {
		return nil, err
	}
	return fig, nil
}
