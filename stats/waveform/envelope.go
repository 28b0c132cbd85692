package waveform

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrTooShort is returned when fewer than two full periods are available.
var ErrTooShort = errors.New("waveform: fewer than two full periods")

// EnvelopeRate estimates r in exp(r*t)*sin(2*pi*f*t) from samples x taken
// at instants t. It takes the largest |x| in every full period of 1/f and
// fits log(peak) against the peak instant by least squares.
func EnvelopeRate(t, x []float64, freqHz float64) (float64, error) {
	if len(t) != len(x) {
		return 0, fmt.Errorf("envelope length mismatch: %d vs %d", len(t), len(x))
	}
	if len(x) == 0 {
		return 0, ErrEmpty
	}
	if !(freqHz > 0) || math.IsInf(freqHz, 0) {
		return 0, fmt.Errorf("frequency must be > 0: %f", freqHz)
	}

	period := 1 / freqHz
	var times, logs []float64
	group, peak, at := 0, -1.0, 0.0
	flush := func() error {
		if peak <= 0 {
			return fmt.Errorf("period %d has no non-zero sample", group)
		}
		times = append(times, at)
		logs = append(logs, math.Log(peak))
		return nil
	}

	for i, ti := range t {
		g := int(math.Floor((ti - t[0]) / period))
		if g != group {
			if err := flush(); err != nil {
				return 0, err
			}
			group, peak = g, -1
		}
		if a := math.Abs(x[i]); a > peak {
			peak, at = a, ti
		}
	}
	// The last period is dropped: it may be cut short.

	if len(times) < 2 {
		return 0, ErrTooShort
	}
	_, slope := stat.LinearRegression(times, logs, nil, false)
	return slope, nil
}
