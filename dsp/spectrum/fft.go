package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// ErrEmptyInput is returned when a transform is requested for no samples.
var ErrEmptyInput = errors.New("spectrum: empty input")

// FFT returns the unnormalised DFT of x with len(x) bins:
//
//	X[k] = sum_n x[n] exp(-2*pi*j*k*n/N)
func FFT(x []float64) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)

	if isPowerOfTwo(n) {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("fft plan for %d points: %w", n, err)
		}
		if err := plan.Forward(out, in); err != nil {
			return nil, fmt.Errorf("fft forward: %w", err)
		}
		return out, nil
	}

	return fourier.NewCmplxFFT(n).Coefficients(out, in), nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// FFTFreq returns the frequency of every bin of an n-point DFT for sample
// spacing d: [0, 1, ..., ceil(n/2)-1, -floor(n/2), ..., -1] / (d*n).
func FFTFreq(n int, d float64) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	scale := 1 / (d * float64(n))
	half := (n-1)/2 + 1
	for i := range half {
		out[i] = float64(i) * scale
	}
	for i := half; i < n; i++ {
		out[i] = float64(i-n) * scale
	}
	return out
}
