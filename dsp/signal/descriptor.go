package signal

import (
	"fmt"
	"math"
)

// Descriptor describes one component signal
//
//	y(t) = exp(EnvelopeRate*t) * sin(2*pi*FrequencyHz*t)
//
// A zero rate gives a pure sinusoid, a positive rate exponential growth and a
// negative rate exponential decay.
type Descriptor struct {
	FrequencyHz  float64
	EnvelopeRate float64
}

// NewDescriptor returns a validated descriptor.
func NewDescriptor(frequencyHz, envelopeRate float64) (Descriptor, error) {
	d := Descriptor{FrequencyHz: frequencyHz, EnvelopeRate: envelopeRate}
	if err := d.Validate(); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}

// Validate checks that the frequency is positive and the rate finite.
func (d Descriptor) Validate() error {
	if !(d.FrequencyHz > 0) || math.IsInf(d.FrequencyHz, 0) {
		return fmt.Errorf("descriptor frequency must be > 0: %f", d.FrequencyHz)
	}
	if math.IsNaN(d.EnvelopeRate) || math.IsInf(d.EnvelopeRate, 0) {
		return fmt.Errorf("descriptor envelope rate must be finite: %f", d.EnvelopeRate)
	}
	return nil
}

// Envelope returns exp(EnvelopeRate*t).
func (d Descriptor) Envelope(t float64) float64 {
	if d.EnvelopeRate == 0 {
		return 1
	}
	return math.Exp(d.EnvelopeRate * t)
}

// At evaluates the signal at time t.
func (d Descriptor) At(t float64) float64 {
	return d.Envelope(t) * math.Sin(2*math.Pi*d.FrequencyHz*t)
}

// Period returns 1/FrequencyHz.
func (d Descriptor) Period() float64 {
	return 1 / d.FrequencyHz
}

// Growth reports +1, -1 or 0 for growing, decaying or constant envelopes.
func (d Descriptor) Growth() int {
	switch {
	case d.EnvelopeRate > 0:
		return 1
	case d.EnvelopeRate < 0:
		return -1
	default:
		return 0
	}
}

// Descriptors builds one descriptor per frequency. rates may be nil (all
// zero) or the same length as freqs.
func Descriptors(freqs, rates []float64) ([]Descriptor, error) {
	if rates != nil && len(rates) != len(freqs) {
		return nil, fmt.Errorf("descriptor rates length mismatch: %d != %d", len(rates), len(freqs))
	}
	out := make([]Descriptor, len(freqs))
	for i, f := range freqs {
		rate := 0.0
		if rates != nil {
			rate = rates[i]
		}
		d, err := NewDescriptor(f, rate)
		if err != nil {
			return nil, fmt.Errorf("descriptor %d: %w", i, err)
		}
		out[i] = d
	}
	return out, nil
}
