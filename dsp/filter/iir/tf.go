package iir

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/sigworks/sigscope/dsp/filter/biquad"
)

// ErrLeadingZero is returned when a[0] is zero.
var ErrLeadingZero = errors.New("iir: leading denominator coefficient is zero")

// TransferFunction is a rational filter in powers of z^-1.
type TransferFunction struct {
	B []float64
	A []float64
}

// New validates and copies b and a.
func New(b, a []float64) (TransferFunction, error) {
	if len(b) == 0 {
		return TransferFunction{}, fmt.Errorf("numerator must not be empty")
	}
	if len(a) == 0 {
		return TransferFunction{}, fmt.Errorf("denominator must not be empty")
	}
	if a[0] == 0 {
		return TransferFunction{}, ErrLeadingZero
	}
	return TransferFunction{
		B: append([]float64(nil), b...),
		A: append([]float64(nil), a...),
	}, nil
}

// FromSections multiplies out a cascade of sections into one transfer
// function. An empty cascade is the identity.
func FromSections(sections []biquad.Coefficients) TransferFunction {
	b := []float64{1}
	a := []float64{1}
	for _, s := range sections {
		num := s.Numerator()
		den := s.Denominator()
		b = polyMul(b, num[:])
		a = polyMul(a, den[:])
	}
	return TransferFunction{B: b, A: a}
}

func polyMul(p, q []float64) []float64 {
	out := make([]float64, len(p)+len(q)-1)
	for i, pi := range p {
		for j, qj := range q {
			out[i+j] += pi * qj
		}
	}
	return out
}

// Order returns max(len(B), len(A)) - 1.
func (tf TransferFunction) Order() int {
	return max(len(tf.B), len(tf.A)) - 1
}

// normalized returns b and a padded to the same length and divided by a[0].
func (tf TransferFunction) normalized() ([]float64, []float64, error) {
	if len(tf.A) == 0 || tf.A[0] == 0 {
		return nil, nil, ErrLeadingZero
	}
	n := max(len(tf.B), len(tf.A))
	b := make([]float64, n)
	a := make([]float64, n)
	a0 := tf.A[0]
	for i, v := range tf.B {
		b[i] = v / a0
	}
	for i, v := range tf.A {
		a[i] = v / a0
	}
	return b, a, nil
}

// Filter returns tf applied to x from zero initial state.
func (tf TransferFunction) Filter(x []float64) ([]float64, error) {
	b, a, err := tf.normalized()
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	n := len(b)
	if n == 1 {
		for i, v := range x {
			out[i] = b[0] * v
		}
		return out, nil
	}
	z := make([]float64, n-1)
	for i, v := range x {
		y := b[0]*v + z[0]
		for j := 0; j < n-2; j++ {
			z[j] = b[j+1]*v + z[j+1] - a[j+1]*y
		}
		z[n-2] = b[n-1]*v - a[n-1]*y
		out[i] = y
	}
	return out, nil
}

// ResponseAt evaluates H(e^jw) at w radians per sample.
func (tf TransferFunction) ResponseAt(w float64) complex128 {
	z1 := cmplx.Exp(complex(0, -w))
	return polyVal(tf.B, z1) / polyVal(tf.A, z1)
}

// polyVal evaluates sum c[k] z1^k by Horner's rule.
func polyVal(c []float64, z1 complex128) complex128 {
	var acc complex128
	for k := len(c) - 1; k >= 0; k-- {
		acc = acc*z1 + complex(c[k], 0)
	}
	return acc
}

// Freqz returns worN frequencies w = pi*k/worN in rad/sample and the
// response at each.
func (tf TransferFunction) Freqz(worN int) ([]float64, []complex128, error) {
	if worN <= 0 {
		return nil, nil, fmt.Errorf("freqz points must be > 0: %d", worN)
	}
	if len(tf.A) == 0 || tf.A[0] == 0 {
		return nil, nil, ErrLeadingZero
	}
	w := make([]float64, worN)
	h := make([]complex128, worN)
	for k := range worN {
		w[k] = math.Pi * float64(k) / float64(worN)
		h[k] = tf.ResponseAt(w[k])
	}
	return w, h, nil
}

// ImpulseResponse returns the first n samples of the impulse response.
func (tf TransferFunction) ImpulseResponse(n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("impulse response length must be > 0: %d", n)
	}
	x := make([]float64, n)
	x[0] = 1
	return tf.Filter(x)
}
