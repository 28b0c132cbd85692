package bandpass

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	"github.com/sigworks/sigscope/dsp/filter/biquad"
)

// ErrInvalidParams is returned for orders below one or cutoffs that do not
// satisfy 0 < low < high < sampleRate/2.
var ErrInvalidParams = errors.New("bandpass: invalid parameters")

// realPoleTol separates real poles from complex ones after the bilinear map.
const realPoleTol = 1e-10

// Spec names a band-pass design.
type Spec struct {
	Order  int     `yaml:"order" validate:"gte=1"`
	LowHz  float64 `yaml:"low_hz" validate:"gt=0"`
	HighHz float64 `yaml:"high_hz" validate:"gtfield=LowHz"`
}

// Validate checks s against sampleRate.
func (s Spec) Validate(sampleRate float64) error {
	return validate(s.Order, s.LowHz, s.HighHz, sampleRate)
}

// Design returns the Butterworth sections for s.
func (s Spec) Design(sampleRate float64) ([]biquad.Coefficients, error) {
	return Butterworth(s.Order, s.LowHz, s.HighHz, sampleRate)
}

func validate(order int, lowHz, highHz, sampleRate float64) error {
	switch {
	case order < 1:
		return fmt.Errorf("%w: order must be >= 1: %d", ErrInvalidParams, order)
	case !(sampleRate > 0) || math.IsInf(sampleRate, 0):
		return fmt.Errorf("%w: sample rate must be > 0: %f", ErrInvalidParams, sampleRate)
	case !(lowHz > 0):
		return fmt.Errorf("%w: low cutoff must be > 0: %f", ErrInvalidParams, lowHz)
	case !(highHz > lowHz):
		return fmt.Errorf("%w: high cutoff must be > low cutoff: %f <= %f", ErrInvalidParams, highHz, lowHz)
	case !(highHz < sampleRate/2):
		return fmt.Errorf("%w: high cutoff must be < nyquist %f: %f", ErrInvalidParams, sampleRate/2, highHz)
	}
	return nil
}

// Butterworth designs an order-N band-pass between lowHz and highHz.
//
// The low-pass prototype poles exp(j*pi*(2k+N-1)/(2N)) are mapped to the
// band-pass s-plane with pre-warped edges and then to the z-plane with the
// bilinear transform.
func Butterworth(order int, lowHz, highHz, sampleRate float64) ([]biquad.Coefficients, error) {
	if err := validate(order, lowHz, highHz, sampleRate); err != nil {
		return nil, err
	}

	fs2 := 2 * sampleRate
	w1 := fs2 * math.Tan(math.Pi*lowHz/sampleRate)
	w2 := fs2 * math.Tan(math.Pi*highHz/sampleRate)
	bw := w2 - w1
	w0 := math.Sqrt(w1 * w2)

	n := float64(order)
	zp := make([]complex128, 0, 2*order)
	for k := 1; k <= order; k++ {
		p := cmplx.Exp(complex(0, math.Pi*(2*float64(k)+n-1)/(2*n)))
		a := p * complex(bw/2, 0)
		d := cmplx.Sqrt(a*a - complex(w0*w0, 0))
		for _, s := range [2]complex128{a + d, a - d} {
			zp = append(zp, (complex(fs2, 0)+s)/(complex(fs2, 0)-s))
		}
	}

	sections, err := pairPoles(zp)
	if err != nil {
		return nil, err
	}
	if len(sections) != order {
		return nil, fmt.Errorf("%w: pole pairing produced %d sections for order %d", ErrInvalidParams, len(sections), order)
	}

	centre := CentreFrequency(lowHz, highHz, sampleRate)
	h := cmplx.Abs(biquad.CascadeResponseAt(sections, 2*math.Pi*centre/sampleRate))
	if h == 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return nil, fmt.Errorf("%w: degenerate centre gain %f", ErrInvalidParams, h)
	}
	sections[0] = sections[0].Scale(1 / h)
	return sections, nil
}

// CentreFrequency returns the digital frequency that the bilinear transform
// maps from the geometric centre of the pre-warped analog band.
func CentreFrequency(lowHz, highHz, sampleRate float64) float64 {
	fs2 := 2 * sampleRate
	w1 := fs2 * math.Tan(math.Pi*lowHz/sampleRate)
	w2 := fs2 * math.Tan(math.Pi*highHz/sampleRate)
	return sampleRate / math.Pi * math.Atan(math.Sqrt(w1*w2)/fs2)
}

// pairPoles groups z-plane poles into sections with numerator 1 - z^-2.
// Each upper-half-plane pole forms a section with its conjugate. Real poles
// are sorted and paired with their neighbour.
func pairPoles(zp []complex128) ([]biquad.Coefficients, error) {
	var (
		sections []biquad.Coefficients
		reals    []float64
	)
	for _, z := range zp {
		switch {
		case math.Abs(imag(z)) <= realPoleTol:
			reals = append(reals, real(z))
		case imag(z) > 0:
			sections = append(sections, biquad.Coefficients{
				B0: 1, B2: -1,
				A1: -2 * real(z),
				A2: real(z)*real(z) + imag(z)*imag(z),
			})
		}
	}
	if len(reals)%2 != 0 {
		return nil, fmt.Errorf("%w: unpaired real pole", ErrInvalidParams)
	}
	slices.Sort(reals)
	for i := 0; i < len(reals); i += 2 {
		p, q := reals[i], reals[i+1]
		sections = append(sections, biquad.Coefficients{
			B0: 1, B2: -1,
			A1: -(p + q),
			A2: p * q,
		})
	}
	return sections, nil
}
