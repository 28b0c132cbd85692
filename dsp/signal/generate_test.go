package signal

import (
	"math"
	"testing"

	"github.com/sigworks/sigscope/dsp/core"
	"github.com/sigworks/sigscope/internal/testutil"
)

func TestGeneratorTimeMatchesTimeVector(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1000), core.WithDuration(6))
	tv := g.Time()
	if len(tv) != 6000 {
		t.Fatalf("len = %d, want 6000", len(tv))
	}
	testutil.RequireSliceNearlyEqual(t, tv, TimeVector(1000, 6), 0)
	if tv[len(tv)-1] != 6 {
		t.Fatalf("last instant = %v, want 6", tv[len(tv)-1])
	}
	if got := g.Config().SampleRate; got != 1000 {
		t.Fatalf("SampleRate = %v, want 1000", got)
	}
}

func TestGenerateLengthAndBounds(t *testing.T) {
	tv := TimeVector(1000, 1)
	for _, d := range []Descriptor{
		{FrequencyHz: 30},
		{FrequencyHz: 3, EnvelopeRate: 0.5},
		{FrequencyHz: 3, EnvelopeRate: -0.5},
	} {
		y := Generate(tv, d)
		if len(y) != len(tv) {
			t.Fatalf("%+v: len = %d, want %d", d, len(y), len(tv))
		}
		testutil.RequireFinite(t, y)
		for i, v := range y {
			if bound := d.Envelope(tv[i]) + 1e-12; math.Abs(v) > bound {
				t.Fatalf("%+v: |y[%d]| = %v exceeds envelope %v", d, i, math.Abs(v), bound)
			}
		}
	}
}

func TestGenerateZeroRateIsPureSine(t *testing.T) {
	tv := TimeVector(1000, 1)
	y := Generate(tv, Descriptor{FrequencyHz: 30})
	want := make([]float64, len(tv))
	for i, ti := range tv {
		want[i] = math.Sin(2 * math.Pi * 30 * ti)
	}
	testutil.RequireSliceNearlyEqual(t, y, want, 1e-12)
}

// periodPeaks returns max|y| over each complete period of d.
func periodPeaks(tv, y []float64, d Descriptor) []float64 {
	period := d.Period()
	var peaks []float64
	for k := 0; float64(k+1)*period <= tv[len(tv)-1]; k++ {
		lo, hi := float64(k)*period, float64(k+1)*period
		peak := 0.0
		for i, ti := range tv {
			if ti >= lo && ti < hi && math.Abs(y[i]) > peak {
				peak = math.Abs(y[i])
			}
		}
		peaks = append(peaks, peak)
	}
	return peaks
}

func TestGenerateEnvelopeMonotonic(t *testing.T) {
	tv := TimeVector(1000, 6)
	tests := []struct {
		name string
		d    Descriptor
	}{
		{"growing", Descriptor{FrequencyHz: 3, EnvelopeRate: 0.5}},
		{"decaying", Descriptor{FrequencyHz: 3, EnvelopeRate: -0.5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			peaks := periodPeaks(tv, Generate(tv, tc.d), tc.d)
			if len(peaks) < 10 {
				t.Fatalf("only %d periods", len(peaks))
			}
			for k := 1; k < len(peaks); k++ {
				if tc.d.Growth() > 0 && peaks[k] < peaks[k-1] {
					t.Fatalf("period %d peak %v < previous %v", k, peaks[k], peaks[k-1])
				}
				if tc.d.Growth() < 0 && peaks[k] > peaks[k-1] {
					t.Fatalf("period %d peak %v > previous %v", k, peaks[k], peaks[k-1])
				}
			}
		})
	}
}

func TestSumAddsComponents(t *testing.T) {
	tv := TimeVector(1000, 1)
	ds := []Descriptor{{FrequencyHz: 30}, {FrequencyHz: 60}, {FrequencyHz: 120}}
	got := Sum(tv, ds...)
	for i, ti := range tv {
		want := ds[0].At(ti) + ds[1].At(ti) + ds[2].At(ti)
		if math.Abs(got[i]-want) > 1e-12 {
			t.Fatalf("Sum[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestAddNoiseDeterministic(t *testing.T) {
	x := make([]float64, 64)
	a, err := AddNoise(x, 0.5, NewSource(42))
	if err != nil {
		t.Fatalf("AddNoise() error = %v", err)
	}
	b, err := AddNoise(x, 0.5, NewSource(42))
	if err != nil {
		t.Fatalf("AddNoise() error = %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, a[i], b[i])
		}
	}

	c, err := AddNoise(x, 0.5, NewSource(43))
	if err != nil {
		t.Fatalf("AddNoise() error = %v", err)
	}
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to produce different noise")
	}
}

func TestAddNoiseZeroStdDevCopies(t *testing.T) {
	x := []float64{1, -2, 3}
	out, err := AddNoise(x, 0, nil)
	if err != nil {
		t.Fatalf("AddNoise() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, x, 0)
	out[0] = 99
	if x[0] != 1 {
		t.Fatal("AddNoise modified its input")
	}
}

func TestAddNoiseStatistics(t *testing.T) {
	const n = 20000
	g := NewGeneratorWithOptions(nil, WithSeed(7))
	noise, err := AddNoise(make([]float64, n), 0.5, g.Source())
	if err != nil {
		t.Fatalf("AddNoise() error = %v", err)
	}
	mean, sq := 0.0, 0.0
	for _, v := range noise {
		mean += v
	}
	mean /= n
	for _, v := range noise {
		sq += (v - mean) * (v - mean)
	}
	std := math.Sqrt(sq / (n - 1))
	if math.Abs(mean) > 0.02 {
		t.Fatalf("mean = %v, want ~0", mean)
	}
	if math.Abs(std-0.5) > 0.02 {
		t.Fatalf("std = %v, want ~0.5", std)
	}
}

func TestAddNoiseRejectsNegativeStdDev(t *testing.T) {
	if _, err := AddNoise([]float64{0}, -1, NewSource(1)); err == nil {
		t.Fatal("expected error for negative standard deviation")
	}
}

func TestGeneratorSourceReplays(t *testing.T) {
	g := NewGeneratorWithOptions(nil, WithSeed(99))
	x := make([]float64, 8)
	a, err := AddNoise(x, 1, g.Source())
	if err != nil {
		t.Fatalf("AddNoise() error = %v", err)
	}
	b, err := AddNoise(x, 1, g.Source())
	if err != nil {
		t.Fatalf("AddNoise() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, a, b, 0)

	c, err := AddNoise(x, 1, NewSource(99))
	if err != nil {
		t.Fatalf("AddNoise() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, a, c, 0)
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{-0.5, 1.0, -0.25}, 0.5)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out[1] != 0.5 {
		t.Fatalf("peak = %v, want 0.5", out[1])
	}
	if _, err := Normalize(nil, 1); err == nil {
		t.Fatal("expected error for empty input")
	}
}
