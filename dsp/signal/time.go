package signal

import "github.com/sigworks/sigscope/dsp/core"

// Linspace returns n evenly spaced values over the closed interval
// [start, stop]. n == 1 yields [start]; n <= 0 yields an empty slice.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	out[0] = start
	if n == 1 {
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := 1; i < n-1; i++ {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// TimeVector returns floor(sampleRate*duration) samples spanning
// [0, duration] inclusive, so the spacing is duration/(N-1) rather than
// 1/sampleRate. Degenerate inputs produce a single-point or empty vector.
func TimeVector(sampleRate, duration float64) []float64 {
	return Linspace(0, duration, core.SampleCount(sampleRate, duration))
}

// Spacing returns the constant step of a time vector, or 0 when it has fewer
// than two samples.
func Spacing(t []float64) float64 {
	if len(t) < 2 {
		return 0
	}
	return t[1] - t[0]
}
