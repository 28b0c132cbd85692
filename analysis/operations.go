package analysis

import (
	"fmt"
	"math/rand/v2"

	"github.com/sigworks/sigscope/dsp/core"
	"github.com/sigworks/sigscope/dsp/filter/biquad"
	"github.com/sigworks/sigscope/dsp/filter/design/bandpass"
	"github.com/sigworks/sigscope/dsp/signal"
	"github.com/sigworks/sigscope/dsp/spectrum"
)

// GenerateTimeVector returns floor(sampleRate*duration) evenly spaced
// instants covering [0, duration] inclusive.
func GenerateTimeVector(sampleRate, duration float64) []float64 {
	return signal.TimeVector(sampleRate, duration)
}

// GenerateSignal evaluates exp(rate*t)*sin(2*pi*f*t) at every instant of t.
func GenerateSignal(t []float64, d signal.Descriptor) []float64 {
	return signal.Generate(t, d)
}

// AddNoise returns x plus one N(0, stdDev^2) draw from src per sample.
func AddNoise(x []float64, stdDev float64, src rand.Source) ([]float64, error) {
	return signal.AddNoise(x, stdDev, src)
}

// DesignBandpass designs an order-N Butterworth band-pass. Invalid cutoffs
// or order yield an error wrapping bandpass.ErrInvalidParams.
func DesignBandpass(order int, lowHz, highHz, sampleRate float64) ([]biquad.Coefficients, error) {
	sections, err := bandpass.Butterworth(order, lowHz, highHz, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("design bandpass: %w", err)
	}
	return sections, nil
}

// ApplyFilter runs x through the cascade from zero initial state. The whole
// record is filtered causally, so the output carries the filter's phase
// delay.
func ApplyFilter(sections []biquad.Coefficients, x []float64) []float64 {
	return biquad.NewChain(sections).Filter(x)
}

// ComputeSpectrum returns the unnormalized DFT of x with its bin
// frequencies.
func ComputeSpectrum(x []float64, sampleRate float64) (spectrum.Result, error) {
	res, err := spectrum.Compute(x, sampleRate)
	if err != nil {
		return spectrum.Result{}, fmt.Errorf("compute spectrum: %w", err)
	}
	return res, nil
}

// DecibelAmplitude returns 20*log10(m): -Inf for zero, NaN for negative m.
func DecibelAmplitude(m float64) float64 {
	return core.LinearToDB(m)
}
