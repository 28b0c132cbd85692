package biquad

import (
	"math"
	"math/cmplx"
)

// ResponseAt returns H(e^jw) at the normalised angular frequency w in
// radians per sample.
func (c Coefficients) ResponseAt(w float64) complex128 {
	z1 := cmplx.Exp(complex(0, -w))
	z2 := z1 * z1
	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := 1 + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2
	return num / den
}

// Response returns H(e^jw) at freqHz for the given sample rate.
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	return c.ResponseAt(2 * math.Pi * freqHz / sampleRate)
}

// MagnitudeSquared returns |H(f)|^2 without complex arithmetic.
func (c Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	cw := 2 * math.Cos(2*math.Pi*freqHz/sampleRate)
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	num := (b0-b2)*(b0-b2) + b1*b1 + (b1*(b0+b2)+b0*b2*cw)*cw
	den := (1-a2)*(1-a2) + a1*a1 + (a1*(a2+1)+cw*a2)*cw
	return num / den
}

// MagnitudeDB returns 10*log10(|H(f)|^2).
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// Phase returns arg H(f) in radians, in [-pi, pi].
func (c Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// CascadeResponseAt returns the product of every section's response at w.
func CascadeResponseAt(coeffs []Coefficients, w float64) complex128 {
	h := complex(1, 0)
	for i := range coeffs {
		h *= coeffs[i].ResponseAt(w)
	}
	return h
}

// Response returns the cascade response at freqHz including the input gain.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	h := complex(c.gain, 0)
	for i := range c.sections {
		h *= c.sections[i].Response(freqHz, sampleRate)
	}
	return h
}

// MagnitudeDB returns 20*log10|H(f)| of the cascade.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// Phase returns the cascade phase in radians, wrapped to [-pi, pi].
func (c *Chain) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// ImpulseResponse returns n samples of the section impulse response without
// disturbing its state.
func (s *Section) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}
	saved := s.State()
	s.Reset()
	ir := make([]float64, n)
	ir[0] = s.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = s.ProcessSample(0)
	}
	s.SetState(saved)
	return ir
}

// ImpulseResponse returns n samples of the cascade impulse response.
func (c *Chain) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}
	impulse := make([]float64, n)
	impulse[0] = 1
	return c.Filter(impulse)
}
