package waveform

import (
	"errors"
	"math"
	"testing"

	"github.com/sigworks/sigscope/dsp/signal"
	"github.com/sigworks/sigscope/internal/testutil"
)

const tolerance = 1e-10

func TestCalculateSine(t *testing.T) {
	// 10 full cycles of 10 Hz at 1 kHz.
	x := testutil.DeterministicSine(10, 1000, 2, 1000)
	s := Calculate(x)

	if s.Length != 1000 {
		t.Fatalf("Length = %d, want 1000", s.Length)
	}
	if math.Abs(s.Mean) > tolerance {
		t.Fatalf("Mean = %v, want 0", s.Mean)
	}
	if math.Abs(s.RMS-math.Sqrt2) > 1e-9 {
		t.Fatalf("RMS = %v, want sqrt(2)", s.RMS)
	}
	if math.Abs(s.Peak-2) > 1e-9 {
		t.Fatalf("Peak = %v, want 2", s.Peak)
	}
	if math.Abs(s.CrestFactor-math.Sqrt2) > 1e-9 {
		t.Fatalf("CrestFactor = %v, want sqrt(2)", s.CrestFactor)
	}
	if math.Abs(s.Variance-2) > 1e-9 {
		t.Fatalf("Variance = %v, want 2", s.Variance)
	}
	if math.Abs(s.PeakdB-20*math.Log10(2)) > 1e-9 {
		t.Fatalf("PeakdB = %v", s.PeakdB)
	}
	// Nineteen interior crossings, give or take rounding at the half cycles.
	if s.ZeroCrossings < 18 || s.ZeroCrossings > 20 {
		t.Fatalf("ZeroCrossings = %d, want <= 20", s.ZeroCrossings)
	}
}

func TestCalculateEmptyAndSilence(t *testing.T) {
	e := Calculate(nil)
	if e.Length != 0 || !math.IsInf(e.RMSdB, -1) || !math.IsInf(e.PeakdB, -1) {
		t.Fatalf("empty stats = %+v", e)
	}

	z := Calculate(testutil.DC(0, 16))
	if z.CrestFactor != 0 || z.RMS != 0 || z.Skewness != 0 {
		t.Fatalf("silence stats = %+v", z)
	}
}

func TestCalculateSquare(t *testing.T) {
	x := []float64{1, -1, 1, -1}
	s := Calculate(x)
	if s.RMS != 1 || s.ZeroCrossings != 3 || s.CrestFactor != 1 {
		t.Fatalf("square stats = %+v", s)
	}
	if RMS(x) != 1 || RMS(nil) != 0 {
		t.Fatal("RMS helper mismatch")
	}
}

func TestDominantFrequency(t *testing.T) {
	tv := signal.TimeVector(1000, 2)
	x := signal.Generate(tv, signal.Descriptor{FrequencyHz: 30})
	f, err := DominantFrequency(x, 2)
	if err != nil {
		t.Fatalf("DominantFrequency() error = %v", err)
	}
	if math.Abs(f-30) > 0.5 {
		t.Fatalf("f = %v, want ~30", f)
	}

	if _, err := DominantFrequency(nil, 1); !errors.Is(err, ErrEmpty) {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}
	if _, err := DominantFrequency(x, 0); err == nil {
		t.Fatal("expected error for zero duration")
	}
}

func TestSNR(t *testing.T) {
	clean := testutil.DeterministicSine(30, 1000, 1, 1000)
	noise := testutil.DeterministicNoise(5, 0.5, 1000)
	noisy := make([]float64, len(clean))
	for i := range clean {
		noisy[i] = clean[i] + noise[i]
	}

	got, err := SNR(clean, noisy)
	if err != nil {
		t.Fatalf("SNR() error = %v", err)
	}
	// Signal power 0.5, noise power 0.25: about 3 dB.
	if math.Abs(got-3.01) > 0.6 {
		t.Fatalf("SNR = %v dB, want ~3 dB", got)
	}

	same, err := SNR(clean, clean)
	if err != nil || !math.IsInf(same, 1) {
		t.Fatalf("SNR(clean, clean) = %v, %v", same, err)
	}
	if _, err := SNR(clean, noisy[:10]); err == nil {
		t.Fatal("expected length mismatch error")
	}
	if _, err := SNR(nil, nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}
}
