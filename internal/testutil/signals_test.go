package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
	// Quarter period of 1 kHz at 48 kHz is sample 12.
	if math.Abs(s[12]-1) > 1e-12 {
		t.Fatalf("s[12] = %v, want 1", s[12])
	}
}

func TestEnvelopedSine(t *testing.T) {
	const fs = 1000
	grow := EnvelopedSine(1, 0.5, fs, 1, 3*fs)
	decay := EnvelopedSine(1, -0.5, fs, 1, 3*fs)

	// Peaks of a 1 Hz sine sit at t = 0.25 + k.
	for k := 1; k < 3; k++ {
		i := 250 + k*fs
		want := math.Exp(0.5 * (0.25 + float64(k)))
		if math.Abs(grow[i]-want) > 1e-9 {
			t.Fatalf("grow[%d] = %v, want %v", i, grow[i], want)
		}
		if math.Abs(decay[i]-1/want) > 1e-9 {
			t.Fatalf("decay[%d] = %v, want %v", i, decay[i], 1/want)
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestDeterministicNoiseStatistics(t *testing.T) {
	const n = 20000
	x := DeterministicNoise(7, 0.5, n)
	var sum, sumSq float64
	for _, v := range x {
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	std := math.Sqrt(sumSq/n - mean*mean)
	if math.Abs(mean) > 0.02 {
		t.Fatalf("mean = %v, want ~0", mean)
	}
	if math.Abs(std-0.5) > 0.02 {
		t.Fatalf("std = %v, want ~0.5", std)
	}
}

func TestDeterministicNoiseZeroSigma(t *testing.T) {
	for i, v := range DeterministicNoise(3, 0, 8) {
		if v != 0 {
			t.Fatalf("x[%d] = %v, want 0", i, v)
		}
	}
}

func TestImpulse(t *testing.T) {
	imp := Impulse(8, 3)
	if len(imp) != 8 {
		t.Fatalf("len = %d, want 8", len(imp))
	}
	for i, v := range imp {
		want := 0.0
		if i == 3 {
			want = 1
		}
		if v != want {
			t.Fatalf("imp[%d] = %v, want %v", i, v, want)
		}
	}

	for i, v := range Impulse(4, 10) {
		if v != 0 {
			t.Fatalf("imp[%d] = %v, want all zeros for out-of-bounds pos", i, v)
		}
	}
}

func TestDC(t *testing.T) {
	d := DC(0.5, 4)
	for i, v := range d {
		if v != 0.5 {
			t.Fatalf("DC[%d] = %v, want 0.5", i, v)
		}
	}
}
