package biquad

import "math/cmplx"

// PoleZeroPair holds the two poles and two zeros of one section. A
// first-order section reports 0 for the missing root.
type PoleZeroPair struct {
	Poles [2]complex128
	Zeros [2]complex128
}

// Poles returns the roots of 1 + A1 z^-1 + A2 z^-2.
func (c Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the roots of B0 + B1 z^-1 + B2 z^-2.
func (c Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// PoleZeroPair returns the section's poles and zeros.
func (c Coefficients) PoleZeroPair() PoleZeroPair {
	return PoleZeroPair{Poles: c.Poles(), Zeros: c.Zeros()}
}

// PoleZeroPairs returns one entry per section.
func PoleZeroPairs(coeffs []Coefficients) []PoleZeroPair {
	out := make([]PoleZeroPair, len(coeffs))
	for i := range coeffs {
		out[i] = coeffs[i].PoleZeroPair()
	}
	return out
}

// MaxPoleRadius returns the largest pole magnitude over all sections.
func MaxPoleRadius(coeffs []Coefficients) float64 {
	r := 0.0
	for i := range coeffs {
		for _, p := range coeffs[i].Poles() {
			r = max(r, cmplx.Abs(p))
		}
	}
	return r
}

func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}
		return [2]complex128{complex(-c/b, 0), 0}
	}
	sq := cmplx.Sqrt(complex(b*b-4*a*c, 0))
	den := complex(2*a, 0)
	return [2]complex128{
		(complex(-b, 0) + sq) / den,
		(complex(-b, 0) - sq) / den,
	}
}
