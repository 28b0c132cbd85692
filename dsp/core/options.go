package core

import "math"

// ProcessorConfig defines the shared sampling settings of an offline run.
type ProcessorConfig struct {
	SampleRate float64
	Duration   float64 // seconds
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns one second at 1 kHz.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 1000,
		Duration:   1,
	}
}

// WithSampleRate sets the sampling rate in Hz.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithDuration sets the signal duration in seconds.
func WithDuration(seconds float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if seconds > 0 {
			cfg.Duration = seconds
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// SampleCount returns floor(SampleRate*Duration), never negative.
func (c ProcessorConfig) SampleCount() int {
	return SampleCount(c.SampleRate, c.Duration)
}

// Nyquist returns half the sampling rate.
func (c ProcessorConfig) Nyquist() float64 {
	return c.SampleRate / 2
}

// SampleCount returns floor(sampleRate*duration). Non-positive or non-finite
// products yield 0.
func SampleCount(sampleRate, duration float64) int {
	n := math.Floor(sampleRate * duration)
	if n <= 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return int(n)
}
