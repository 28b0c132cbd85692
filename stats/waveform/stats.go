package waveform

import (
	"errors"
	"fmt"
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/sigworks/sigscope/dsp/core"
)

// ErrEmpty is returned for signals without samples.
var ErrEmpty = errors.New("waveform: empty signal")

// Stats holds time-domain level statistics of one signal.
type Stats struct {
	Length        int
	Mean          float64
	Variance      float64 // population variance
	RMS           float64
	RMSdB         float64
	Peak          float64 // max |x|
	PeakdB        float64
	CrestFactor   float64 // Peak / RMS, 0 for silence
	Energy        float64 // sum of squares
	ZeroCrossings int
	Skewness      float64
	Kurtosis      float64 // excess kurtosis
}

// Calculate returns the statistics of x. Empty input yields a zero Stats
// with -Inf levels.
func Calculate(x []float64) Stats {
	if len(x) == 0 {
		return Stats{RMSdB: math.Inf(-1), PeakdB: math.Inf(-1)}
	}

	mean, variance := stat.PopMeanVariance(x, nil)
	energy := floats.Dot(x, x)
	rms := math.Sqrt(energy / float64(len(x)))
	peak := vecmath.MaxAbs(x)

	s := Stats{
		Length:        len(x),
		Mean:          mean,
		Variance:      variance,
		RMS:           rms,
		RMSdB:         core.LinearToDB(rms),
		Peak:          peak,
		PeakdB:        core.LinearToDB(peak),
		Energy:        energy,
		ZeroCrossings: ZeroCrossings(x),
	}
	if rms > 0 {
		s.CrestFactor = peak / rms
	}
	if variance > 0 && len(x) > 3 {
		s.Skewness = stat.Skew(x, nil)
		s.Kurtosis = stat.ExKurtosis(x, nil)
	}
	return s
}

// RMS returns the root-mean-square of x, 0 for empty input.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return math.Sqrt(floats.Dot(x, x) / float64(len(x)))
}

// ZeroCrossings counts sign changes between consecutive samples. Samples
// that are exactly zero do not count as a change.
func ZeroCrossings(x []float64) int {
	n := 0
	for i := 1; i < len(x); i++ {
		if x[i-1]*x[i] < 0 {
			n++
		}
	}
	return n
}

// DominantFrequency estimates the frequency of a zero-mean oscillation from
// its zero-crossing count over duration seconds.
func DominantFrequency(x []float64, duration float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmpty
	}
	if !(duration > 0) {
		return 0, fmt.Errorf("duration must be > 0: %f", duration)
	}
	return float64(ZeroCrossings(x)) / (2 * duration), nil
}

// SNR returns 10*log10(sum(clean^2) / sum((observed-clean)^2)) in dB. An
// exact copy yields +Inf.
func SNR(clean, observed []float64) (float64, error) {
	if len(clean) == 0 {
		return 0, ErrEmpty
	}
	if len(clean) != len(observed) {
		return 0, fmt.Errorf("snr length mismatch: %d vs %d", len(clean), len(observed))
	}

	residual := make([]float64, len(clean))
	floats.SubTo(residual, observed, clean)
	noise := floats.Dot(residual, residual)
	signal := floats.Dot(clean, clean)
	if noise == 0 {
		return math.Inf(1), nil
	}
	if signal == 0 {
		return math.Inf(-1), nil
	}
	return 10 * math.Log10(signal/noise), nil
}
