package biquad

import "math/cmplx"

// Coefficients holds one second-order section normalised so that a0 == 1:
//
//	H(z) = (B0 + B1 z^-1 + B2 z^-2) / (1 + A1 z^-1 + A2 z^-2)
//
// Direct Form II Transposed runs it as
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64 // numerator
	A1, A2     float64 // denominator
}

// Numerator returns [B0, B1, B2].
func (c Coefficients) Numerator() [3]float64 {
	return [3]float64{c.B0, c.B1, c.B2}
}

// Denominator returns [1, A1, A2].
func (c Coefficients) Denominator() [3]float64 {
	return [3]float64{1, c.A1, c.A2}
}

// Scale multiplies the numerator by g.
func (c Coefficients) Scale(g float64) Coefficients {
	c.B0 *= g
	c.B1 *= g
	c.B2 *= g
	return c
}

// Stable reports whether both poles lie strictly inside the unit circle.
func (c Coefficients) Stable() bool {
	for _, p := range c.Poles() {
		if cmplx.Abs(p) >= 1 {
			return false
		}
	}
	return true
}

// Section is one biquad with its delay-line state.
type Section struct {
	Coefficients

	d0, d1 float64
}

// NewSection returns a Section with zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one input sample.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y
	return y
}

// ProcessBlock filters buf in place.
func (s *Section) ProcessBlock(buf []float64) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	d0, d1 := s.d0, s.d1
	for i, x := range buf {
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}
	s.d0, s.d1 = d0, d1
}

// Reset clears the delay line.
func (s *Section) Reset() {
	s.d0, s.d1 = 0, 0
}

// State returns the delay line [d0, d1].
func (s *Section) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState restores a saved delay line.
func (s *Section) SetState(state [2]float64) {
	s.d0, s.d1 = state[0], state[1]
}
