package spectrum

import (
	"math"
	"math/cmplx"
	"sync"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// split unpacks in into pooled re/im slices and runs fn over them.
func split(in []complex128, fn func(out, re, im []float64)) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	fn(out, re, im)
	putScratch(buf)
	return out
}

// Magnitude returns |X[k]| for each bin. Scratch buffers are pooled, so in
// steady state only the output slice is allocated.
func Magnitude(in []complex128) []float64 {
	return split(in, vecmath.Magnitude)
}

// Power returns |X[k]|^2 for each bin.
func Power(in []complex128) []float64 {
	return split(in, vecmath.Power)
}

// Phase returns arg X[k] in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// PhaseDegrees returns arg X[k] in degrees.
func PhaseDegrees(in []complex128) []float64 {
	out := Phase(in)
	if len(out) > 0 {
		vecmath.ScaleBlockInPlace(out, 180/math.Pi)
	}
	return out
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}
