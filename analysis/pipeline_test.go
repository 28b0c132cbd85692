package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sigworks/sigscope/dsp/filter/design/bandpass"
	"github.com/sigworks/sigscope/dsp/signal"
	"github.com/sigworks/sigscope/internal/config"
	"github.com/sigworks/sigscope/internal/testutil"
)

func TestGenerateTimeVector(t *testing.T) {
	tv := GenerateTimeVector(1000, 1)
	require.Len(t, tv, 1000)
	assert.Equal(t, 0.0, tv[0])
	assert.InDelta(t, 1.0, tv[len(tv)-1], 1e-12)
	for i := 1; i < len(tv); i++ {
		require.Greater(t, tv[i], tv[i-1])
	}

	assert.Empty(t, GenerateTimeVector(1000, 0))
}

func TestGenerateSignalConstantEnvelopeBounded(t *testing.T) {
	tv := GenerateTimeVector(1000, 2)
	x := GenerateSignal(tv, signal.Descriptor{FrequencyHz: 12})
	require.Len(t, x, len(tv))
	for _, v := range x {
		require.LessOrEqual(t, math.Abs(v), 1.0)
	}
}

func TestDesignBandpassInvalid(t *testing.T) {
	cases := []struct {
		name      string
		order     int
		low, high float64
	}{
		{"reversed", 4, 150, 20},
		{"equal", 4, 100, 100},
		{"above nyquist", 4, 20, 500},
		{"zero order", 0, 20, 150},
		{"zero low", 4, 0, 150},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DesignBandpass(tc.order, tc.low, tc.high, 1000)
			require.Error(t, err)
			assert.True(t, errors.Is(err, bandpass.ErrInvalidParams))
		})
	}
}

func TestApplyFilterPassesBandAndRejectsDC(t *testing.T) {
	sections, err := DesignBandpass(4, 20, 150, 1000)
	require.NoError(t, err)

	dc := testutil.DC(1, 2000)
	y := ApplyFilter(sections, dc)
	require.Len(t, y, len(dc))
	assert.Less(t, math.Abs(y[len(y)-1]), 1e-3)

	// The input must not be modified.
	assert.Equal(t, 1.0, dc[0])
}

func TestDecibelAmplitude(t *testing.T) {
	assert.True(t, math.IsInf(DecibelAmplitude(0), -1))
	assert.True(t, math.IsNaN(DecibelAmplitude(-1)))
	assert.InDelta(t, 0.0, DecibelAmplitude(1), 1e-12)
	assert.InDelta(t, 20.0, DecibelAmplitude(10), 1e-12)
	assert.InDelta(t, -6.0206, DecibelAmplitude(0.5), 1e-4)
}

func TestRunBandpassDemo(t *testing.T) {
	cfg := config.BandpassDemo()
	res, err := NewPipeline().Run(&cfg)
	require.NoError(t, err)

	require.Len(t, res.Time, 1000)
	require.Len(t, res.Channels, 3)
	require.NotNil(t, res.Filter)
	assert.Len(t, res.Filter.Sections, 4)
	assert.Len(t, res.Filter.Response.FreqHz, bandpass.DefaultWorN)
	assert.Equal(t, 8, res.Filter.Transfer.Order())

	peakHz := res.Filter.Response.PeakFrequency()
	assert.Greater(t, peakHz, 20.0)
	assert.Less(t, peakHz, 150.0)

	for i, want := range []float64{30, 60, 120} {
		ch := res.Channels[i]
		require.Len(t, ch.Clean, 1000)
		require.Len(t, ch.Noisy, 1000)
		require.Len(t, ch.Filtered, 1000)

		got, err := ch.Spectrum.PeakFrequency(0, 0)
		require.NoError(t, err)
		assert.InDelta(t, want, math.Abs(got), ch.Spectrum.Resolution(), "channel %d", i)

		assert.Len(t, ch.Bode.FreqHz, 499)

		sum := ch.Summary
		assert.InDelta(t, want, sum.PeakHz, ch.Spectrum.Resolution(), "channel %d", i)
		assert.InDelta(t, 10*math.Log10(2), sum.SNR, 0.6, "channel %d", i)
		assert.InDelta(t, 0, sum.EnvelopeRate, 0.05, "channel %d", i)
		assert.Equal(t, 1000, sum.Stats.Length)
		assert.Greater(t, sum.CentroidHz, 0.0)
		assert.Less(t, sum.CentroidHz, 500.0)
		assert.Len(t, ch.Bode.AmplitudeDB, 499)
		assert.Len(t, ch.Bode.PhaseDeg, 499)
	}
}

func TestRunNoiseIsReproducible(t *testing.T) {
	cfg := config.BandpassDemo()
	a, err := NewPipeline().Run(&cfg)
	require.NoError(t, err)
	b, err := NewPipeline().Run(&cfg)
	require.NoError(t, err)

	for i := range a.Channels {
		assert.Equal(t, a.Channels[i].Noisy, b.Channels[i].Noisy)
	}
	// One source feeds every channel, so the draws differ between channels.
	assert.NotEqual(t,
		a.Channels[0].Noisy[0]-a.Channels[0].Clean[0],
		a.Channels[1].Noisy[0]-a.Channels[1].Clean[0])

	want, err := signal.AddNoise(a.Channels[0].Clean, cfg.Noise.StdDev, signal.NewSource(cfg.Noise.Seed))
	require.NoError(t, err)
	assert.Equal(t, want, a.Channels[0].Noisy)
	assert.Equal(t, signal.TimeVector(cfg.SampleRate, cfg.Duration), a.Time)

	cfg.Noise.Seed = 2
	c, err := NewPipeline().Run(&cfg)
	require.NoError(t, err)
	assert.NotEqual(t, a.Channels[0].Noisy, c.Channels[0].Noisy)
}

func TestRunEnvelopeDemo(t *testing.T) {
	cfg := config.EnvelopeDemo()
	res, err := NewPipeline().Run(&cfg)
	require.NoError(t, err)

	assert.Nil(t, res.Filter)
	require.Len(t, res.Channels, 3)
	for _, ch := range res.Channels {
		require.Len(t, ch.Clean, 6000)
		assert.Nil(t, ch.Noisy)
		assert.Nil(t, ch.Filtered)
		assert.Equal(t, ch.Clean, ch.Analyzed())
		require.Len(t, ch.Bode.FreqHz, 2999)
		assert.InDelta(t, 1000.0/6000, ch.Bode.FreqHz[0], 1e-12)
	}

	for i, want := range []float64{0.5, -0.5, 0} {
		sum := res.Channels[i].Summary
		assert.InDelta(t, want, sum.EnvelopeRate, 0.01, "channel %d", i)
		assert.True(t, math.IsNaN(sum.SNR), "channel %d", i)
		assert.Less(t, sum.Flatness, 0.5, "channel %d", i)
	}
	assert.InDelta(t, 1/math.Sqrt2, res.Channels[2].Summary.Stats.RMS, 0.01)

	// The constant channel stays within the unit envelope.
	for _, v := range res.Channels[2].Clean {
		require.LessOrEqual(t, math.Abs(v), 1.0)
	}
	assert.Equal(t, "blue", res.Channels[0].Color)
}

func TestRunRejectsInvalidScenario(t *testing.T) {
	_, err := NewPipeline().Run(nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	cfg := config.BandpassDemo()
	cfg.Filter.HighHz = 600
	_, err = NewPipeline().Run(&cfg)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	cfg = config.BandpassDemo()
	cfg.Signals = append(cfg.Signals, config.Signal{FrequencyHz: -1})
	_, err = NewPipeline().Run(&cfg)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRunLogsSteps(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cfg := config.BandpassDemo()

	_, err := NewPipeline(WithLogger(zap.New(core))).Run(&cfg)
	require.NoError(t, err)

	designed := logs.FilterMessage("filter designed").All()
	require.Len(t, designed, 1)
	assert.Equal(t, true, designed[0].ContextMap()["stable"])
	assert.Equal(t, 3, logs.FilterMessage("signal analyzed").Len())
	done := logs.FilterMessage("scenario complete").All()
	require.Len(t, done, 1)
	assert.Equal(t, "bandpass-demo", done[0].ContextMap()["scenario"])
}

func TestChannelName(t *testing.T) {
	assert.Equal(t, "30Hz", Channel{Label: "30Hz"}.Name())
	assert.Equal(t, "12.5Hz", Channel{Descriptor: signal.Descriptor{FrequencyHz: 12.5}}.Name())
}
