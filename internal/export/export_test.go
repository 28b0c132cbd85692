package export

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigworks/sigscope/internal/testutil"
)

func TestWAVRoundTrip(t *testing.T) {
	const fs = 1000
	x := testutil.DeterministicSine(30, fs, 3.5, fs)

	path := filepath.Join(t.TempDir(), "out", "signal_30hz.wav")
	require.NoError(t, WriteWAVFile(path, Track{Name: "30 Hz", Values: x}, fs))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	got, rate, err := ReadWAV(f)
	require.NoError(t, err)
	assert.Equal(t, fs, rate)
	require.Len(t, got, len(x))

	// Peak-normalized: the loudest sample sits just below full scale and the
	// shape matches the input within one quantization step.
	peak, inPeak := 0.0, 0.0
	for i, v := range got {
		peak = math.Max(peak, math.Abs(v))
		inPeak = math.Max(inPeak, math.Abs(x[i]))
	}
	assert.InDelta(t, 1.0, peak, 2.0/32768)
	for i := range x {
		assert.InDelta(t, x[i]/inPeak, got[i], 2.0/32768, "sample %d", i)
	}
}

func TestWAVRejectsBadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.wav")
	require.ErrorIs(t, WriteWAVFile(path, Track{Name: "empty"}, 1000), ErrEmptyTrack)

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.Error(t, WriteWAV(f, []float64{1}, 0))
}

func TestWAVSilence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "silence.wav")
	require.NoError(t, WriteWAVFile(path, Track{Name: "zero", Values: make([]float64, 64)}, 8000))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	got, _, err := ReadWAV(f)
	require.NoError(t, err)
	require.Len(t, got, 64)
	for _, v := range got {
		assert.Zero(t, v)
	}
}

func TestRows(t *testing.T) {
	rows, err := Rows([]Track{
		{Name: "a", Time: []float64{0, 0.5}, Values: []float64{1, 2}},
		{Name: "b", Values: []float64{3}},
	})
	require.NoError(t, err)
	assert.Equal(t, []Row{
		{Series: "a", Index: 0, Time: 0, Value: 1},
		{Series: "a", Index: 1, Time: 0.5, Value: 2},
		{Series: "b", Index: 0, Time: 0, Value: 3},
	}, rows)

	_, err = Rows([]Track{{Name: "bad", Time: []float64{0}, Values: []float64{1, 2}}})
	require.Error(t, err)

	_, err = Rows([]Track{{Name: "none"}})
	require.ErrorIs(t, err, ErrEmptyTrack)
}

func TestParquetRoundTrip(t *testing.T) {
	time := []float64{0, 0.25, 0.5, 0.75, 1}
	tracks := []Track{
		{Name: "clean", Time: time, Values: []float64{0, 1, 0, -1, 0}},
		{Name: "noisy", Time: time, Values: []float64{0.1, 0.9, -0.2, -1.1, 0.05}},
	}

	var buf bytes.Buffer
	n, err := WriteParquet(&buf, tracks)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	rows, err := ReadParquet(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, rows, 10)

	want, err := Rows(tracks)
	require.NoError(t, err)
	assert.Equal(t, want, rows)
}

func TestWriteParquetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "signals.parquet")
	n, err := WriteParquetFile(path, []Track{{Name: "s", Values: []float64{1, 2, 3}}})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// Parquet files start and end with the PAR1 magic.
	assert.Equal(t, []byte("PAR1"), data[:4])
	assert.Equal(t, []byte("PAR1"), data[len(data)-4:])
}
