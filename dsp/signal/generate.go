package signal

import (
	"fmt"
	"math"
	"math/rand/v2"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sigworks/sigscope/dsp/core"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed uint64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Source returns a fresh random source for the generator seed. Every call
// restarts the same stream.
func (g *Generator) Source() rand.Source {
	return NewSource(g.seed)
}

// NewSource returns the PCG source used for seeded noise.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// Time returns the configured time vector: SampleCount evenly spaced
// instants over [0, Duration].
func (g *Generator) Time() []float64 {
	return TimeVector(g.cfg.SampleRate, g.cfg.Duration)
}

// Generate evaluates exp(rate*t)*sin(2*pi*f*t) at every instant of t.
func Generate(t []float64, d Descriptor) []float64 {
	out := make([]float64, len(t))
	w := 2 * math.Pi * d.FrequencyHz
	for i, ti := range t {
		out[i] = math.Sin(w * ti)
	}
	if d.EnvelopeRate == 0 {
		return out
	}
	env := make([]float64, len(t))
	for i, ti := range t {
		env[i] = math.Exp(d.EnvelopeRate * ti)
	}
	vecmath.MulBlockInPlace(out, env)
	return out
}

// Sum evaluates every descriptor over t and adds the results.
func Sum(t []float64, ds ...Descriptor) []float64 {
	out := make([]float64, len(t))
	for _, d := range ds {
		vecmath.AddBlockInPlace(out, Generate(t, d))
	}
	return out
}

// GaussianNoise fills dst with N(0, stdDev^2) samples drawn from src.
func GaussianNoise(dst []float64, stdDev float64, src rand.Source) ([]float64, error) {
	if stdDev < 0 || math.IsNaN(stdDev) || math.IsInf(stdDev, 0) {
		return nil, fmt.Errorf("noise standard deviation must be >= 0: %f", stdDev)
	}
	if stdDev == 0 {
		clear(dst)
		return dst, nil
	}
	if src == nil {
		return nil, fmt.Errorf("noise source must not be nil")
	}
	dist := distuv.Normal{Mu: 0, Sigma: stdDev, Src: src}
	for i := range dst {
		dst[i] = dist.Rand()
	}
	return dst, nil
}

// AddNoise returns x plus independent N(0, stdDev^2) samples drawn from src.
// x is not modified. A zero standard deviation returns a copy of x.
func AddNoise(x []float64, stdDev float64, src rand.Source) ([]float64, error) {
	noise, err := GaussianNoise(make([]float64, len(x)), stdDev, src)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	vecmath.AddBlock(out, x, noise)
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	out := make([]float64, len(data))
	maxAbs := vecmath.MaxAbs(data)
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}
	vecmath.ScaleBlock(out, data, targetPeak/maxAbs)
	return out, nil
}
