// Package testutil provides deterministic test signals and tolerance
// assertions shared by the package tests.
package testutil

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// DeterministicSine generates amplitude*sin(2*pi*f*n/fs) for n in [0, length).
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	return EnvelopedSine(freqHz, 0, sampleRate, amplitude, length)
}

// EnvelopedSine generates amplitude*exp(rate*t)*sin(2*pi*f*t) at t = n/fs.
func EnvelopedSine(freqHz, rate, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		t := float64(i) / sampleRate
		out[i] = amplitude * math.Exp(rate*t) * math.Sin(2*math.Pi*freqHz*t)
	}
	return out
}

// DeterministicNoise generates zero-mean Gaussian noise with standard
// deviation sigma from a fixed seed.
func DeterministicNoise(seed uint64, sigma float64, length int) []float64 {
	out := make([]float64, length)
	if sigma == 0 {
		return out
	}
	n := distuv.Normal{Mu: 0, Sigma: sigma, Src: rand.NewPCG(seed, ^seed)}
	for i := range out {
		out[i] = n.Rand()
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
