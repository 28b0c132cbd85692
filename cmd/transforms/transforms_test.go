package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sigworks/sigscope/internal/cli"
	"github.com/sigworks/sigscope/internal/config"
)

func TestFourier(t *testing.T) {
	cfg := config.Transforms()
	ft, err := fourier(&cfg)
	require.NoError(t, err)

	require.Equal(t, 1000, ft.N)
	// dt = 10/999, so the bins are 0.0999 Hz apart.
	assert.InDelta(t, 0.0999, ft.Resolution(), 1e-12)

	// The DC bin is the sum of the samples, close to the integral / dt.
	mag := ft.Magnitude()
	peak := 0
	for i := range mag {
		if mag[i] > mag[peak] {
			peak = i
		}
	}
	assert.Equal(t, 0, peak)
	assert.InDelta(t, 100.4, mag[0], 0.5)
}

func TestLaplaceCurve(t *testing.T) {
	cfg := config.Transforms()
	lt, err := laplaceCurve(cfg.Laplace)
	require.NoError(t, err)

	require.Len(t, lt.S, 100)
	assert.Equal(t, 0.0, lt.S[0])
	assert.Equal(t, 10.0, lt.S[99])
	assert.InDelta(t, 1.0, lt.Numeric[0], 1e-6)
	assert.Less(t, lt.MaxError(), 1e-6)
}

func TestRunWritesBothPages(t *testing.T) {
	out := t.TempDir()
	require.NoError(t, run(context.Background(), cli.Options{OutDir: out}, zap.NewNop()))

	fourierHTML, err := os.ReadFile(filepath.Join(out, "fourier_transform_plot.html"))
	require.NoError(t, err)
	assert.Contains(t, string(fourierHTML), "Fourier Transform")

	laplaceHTML, err := os.ReadFile(filepath.Join(out, "laplace_transform_plot.html"))
	require.NoError(t, err)
	assert.Contains(t, string(laplaceHTML), "Real Part of s")
}

func TestRunRequiresLaplace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-laplace.yaml")
	require.NoError(t, os.WriteFile(path, []byte("laplace: null\n"), 0o600))

	err := run(context.Background(), cli.Options{ConfigPath: path, OutDir: t.TempDir()}, zap.NewNop())
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
