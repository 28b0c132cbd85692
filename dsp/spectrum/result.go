package spectrum

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/sigworks/sigscope/dsp/core"
)

// Result is a DFT with its bin frequencies. N is the length of the record
// that produced it and survives Positive.
type Result struct {
	Bins       []complex128
	Freqs      []float64
	SampleRate float64
	N          int
}

// Compute transforms x sampled at sampleRate.
func Compute(x []float64, sampleRate float64) (Result, error) {
	if !(sampleRate > 0) {
		return Result{}, fmt.Errorf("spectrum sample rate must be > 0: %f", sampleRate)
	}
	bins, err := FFT(x)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Bins:       bins,
		Freqs:      FFTFreq(len(x), 1/sampleRate),
		SampleRate: sampleRate,
		N:          len(x),
	}, nil
}

// Resolution returns the bin spacing fs/N.
func (r Result) Resolution() float64 {
	if r.N == 0 {
		return 0
	}
	return r.SampleRate / float64(r.N)
}

// Positive returns the subset of bins whose frequency is strictly positive,
// keeping N so that amplitudes stay normalised to the full record.
func (r Result) Positive() Result {
	out := Result{SampleRate: r.SampleRate, N: r.N}
	for i, f := range r.Freqs {
		if f > 0 {
			out.Bins = append(out.Bins, r.Bins[i])
			out.Freqs = append(out.Freqs, f)
		}
	}
	return out
}

// Magnitude returns |X[k]|.
func (r Result) Magnitude() []float64 {
	return Magnitude(r.Bins)
}

// Amplitude returns the single-sided amplitude 2|X[k]|/N.
func (r Result) Amplitude() []float64 {
	mag := Magnitude(r.Bins)
	if r.N <= 0 || len(mag) == 0 {
		return mag
	}
	vecmath.ScaleBlockInPlace(mag, 2/float64(r.N))
	return mag
}

// AmplitudeDB returns 20*log10 of Amplitude.
func (r Result) AmplitudeDB() []float64 {
	return ToDB(r.Amplitude())
}

// PhaseDegrees returns arg X[k] in degrees.
func (r Result) PhaseDegrees() []float64 {
	return PhaseDegrees(r.Bins)
}

// PeakFrequency returns the frequency of the largest-magnitude bin with
// minHz <= f <= maxHz. maxHz <= 0 means no upper limit.
func (r Result) PeakFrequency(minHz, maxHz float64) (float64, error) {
	mag := Magnitude(r.Bins)
	best := -1
	for i, f := range r.Freqs {
		if f < minHz || (maxHz > 0 && f > maxHz) {
			continue
		}
		if best < 0 || mag[i] > mag[best] {
			best = i
		}
	}
	if best < 0 {
		return 0, fmt.Errorf("no bins in [%f, %f] Hz", minHz, maxHz)
	}
	return r.Freqs[best], nil
}

// PeakIndex returns the index of the largest value, or -1 for empty input.
func PeakIndex(values []float64) int {
	if len(values) == 0 {
		return -1
	}
	return floats.MaxIdx(values)
}

// ToDB returns 20*log10(v) for each value. Zero maps to -Inf.
func ToDB(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = core.LinearToDB(v)
	}
	return out
}

// Shifted returns the bins reordered by ascending frequency, negative
// frequencies first.
func (r Result) Shifted() Result {
	n := len(r.Bins)
	out := Result{
		Bins:       make([]complex128, n),
		Freqs:      make([]float64, n),
		SampleRate: r.SampleRate,
		N:          r.N,
	}
	half := n / 2
	for i := range n {
		j := (i + n - half) % n
		out.Bins[i] = r.Bins[j]
		out.Freqs[i] = r.Freqs[j]
	}
	return out
}
