package bandpass

import (
	"math"
	"math/cmplx"

	"github.com/sigworks/sigscope/dsp/filter/biquad"
)

// DefaultWorN is the default number of response points.
const DefaultWorN = 8000

// Response is a cascade frequency response sampled at worN points spaced
// evenly over [0, sampleRate/2).
type Response struct {
	FreqHz      []float64
	H           []complex128
	MagnitudeDB []float64
	PhaseRad    []float64
}

// Evaluate samples the response of sections. worN <= 0 uses DefaultWorN.
func Evaluate(sections []biquad.Coefficients, worN int, sampleRate float64) Response {
	if worN <= 0 {
		worN = DefaultWorN
	}
	r := Response{
		FreqHz:      make([]float64, worN),
		H:           make([]complex128, worN),
		MagnitudeDB: make([]float64, worN),
		PhaseRad:    make([]float64, worN),
	}
	for k := range worN {
		w := math.Pi * float64(k) / float64(worN)
		h := biquad.CascadeResponseAt(sections, w)
		r.FreqHz[k] = w * sampleRate / (2 * math.Pi)
		r.H[k] = h
		r.MagnitudeDB[k] = 20 * math.Log10(cmplx.Abs(h))
		r.PhaseRad[k] = cmplx.Phase(h)
	}
	return r
}

// PeakFrequency returns the grid frequency with the largest magnitude.
func (r Response) PeakFrequency() float64 {
	best, bestDB := 0, math.Inf(-1)
	for i, db := range r.MagnitudeDB {
		if db > bestDB {
			best, bestDB = i, db
		}
	}
	if len(r.FreqHz) == 0 {
		return 0
	}
	return r.FreqHz[best]
}

// MagnitudeAt returns |H| in dB at an arbitrary frequency.
func MagnitudeAt(sections []biquad.Coefficients, freqHz, sampleRate float64) float64 {
	h := biquad.CascadeResponseAt(sections, 2*math.Pi*freqHz/sampleRate)
	return 20 * math.Log10(cmplx.Abs(h))
}
