package spectrum

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Centroid returns the magnitude-weighted mean frequency of the bins,
// sum(f*|X|)/sum(|X|). Use it on Positive() for a one-sided centroid.
// Silence yields 0.
func (r Result) Centroid() float64 {
	mag := r.Magnitude()
	total := floats.Sum(mag)
	if total == 0 {
		return 0
	}
	return floats.Dot(r.Freqs, mag) / total
}

// Flatness returns the geometric over the arithmetic mean of the bin
// magnitudes, in [0, 1]. White noise scores near 1, a pure tone near 0.
// A zero bin or empty input yields 0.
func (r Result) Flatness() float64 {
	mag := r.Magnitude()
	if len(mag) == 0 {
		return 0
	}
	logSum := 0.0
	for _, v := range mag {
		if v <= 0 {
			return 0
		}
		logSum += math.Log(v)
	}
	n := float64(len(mag))
	return math.Exp(logSum/n) / (floats.Sum(mag) / n)
}
