package analysis

import (
	"fmt"
	"math"
	"strconv"

	"go.uber.org/zap"

	"github.com/sigworks/sigscope/dsp/core"
	"github.com/sigworks/sigscope/dsp/filter/biquad"
	"github.com/sigworks/sigscope/dsp/filter/design/bandpass"
	"github.com/sigworks/sigscope/dsp/filter/iir"
	"github.com/sigworks/sigscope/dsp/signal"
	"github.com/sigworks/sigscope/dsp/spectrum"
	"github.com/sigworks/sigscope/internal/config"
	"github.com/sigworks/sigscope/stats/waveform"
)

// Bode holds the positive-frequency display quantities of one spectrum.
type Bode struct {
	FreqHz      []float64
	AmplitudeDB []float64
	PhaseDeg    []float64
}

// NewBode derives amplitude 2|X|/N in dB and phase in degrees for the
// strictly positive bins of r.
func NewBode(r spectrum.Result) Bode {
	pos := r.Positive()
	return Bode{
		FreqHz:      pos.Freqs,
		AmplitudeDB: spectrum.ToDB(pos.Amplitude()),
		PhaseDeg:    pos.PhaseDegrees(),
	}
}

// Channel carries one component through the pipeline. Noisy and Filtered
// are nil when the scenario has no noise or no filter.
type Channel struct {
	Label      string
	Color      string
	Descriptor signal.Descriptor
	Clean      []float64
	Noisy      []float64
	Filtered   []float64
	Spectrum   spectrum.Result
	Bode       Bode
	Summary    Summary
}

// Summary condenses one channel into a handful of numbers for logs and
// reports.
type Summary struct {
	// Stats describes the analyzed series.
	Stats waveform.Stats
	// SNR is the noisy-versus-clean ratio in dB, NaN without noise.
	SNR float64
	// EnvelopeRate is the rate estimated back from the clean series.
	EnvelopeRate float64
	PeakHz       float64
	CentroidHz   float64
	Flatness     float64
}

// Name returns Label, or the frequency as "<f>Hz" when no label is set.
func (c Channel) Name() string {
	if c.Label != "" {
		return c.Label
	}
	return strconv.FormatFloat(c.Descriptor.FrequencyHz, 'f', -1, 64) + "Hz"
}

// Analyzed returns the series the spectrum was computed from.
func (c Channel) Analyzed() []float64 {
	if c.Noisy != nil {
		return c.Noisy
	}
	return c.Clean
}

// FilterResult is the designed band-pass in both cascade and transfer
// function form, with its frequency response.
type FilterResult struct {
	Spec     bandpass.Spec
	Sections []biquad.Coefficients
	Transfer iir.TransferFunction
	Response bandpass.Response
}

// Result is everything one run produced.
type Result struct {
	Scenario   string
	SampleRate float64
	Time       []float64
	Channels   []Channel
	Filter     *FilterResult
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used for step tracing.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// Pipeline executes scenarios.
type Pipeline struct {
	logger *zap.Logger
}

// NewPipeline returns a pipeline that logs nowhere unless WithLogger is
// given.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{logger: zap.NewNop()}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Run executes cfg. Noise is drawn from one source seeded with
// cfg.Noise.Seed, consumed channel by channel in order.
func (p *Pipeline) Run(cfg *config.Scenario) (*Result, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil scenario", config.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := p.logger.With(zap.String("scenario", cfg.Name))

	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(cfg.SampleRate), core.WithDuration(cfg.Duration)},
		signal.WithSeed(cfg.Noise.Seed),
	)
	t := gen.Time()
	log.Debug("time vector",
		zap.Int("samples", len(t)),
		zap.Float64("sampling_rate", cfg.SampleRate),
		zap.Float64("duration", cfg.Duration))

	res := &Result{
		Scenario:   cfg.Name,
		SampleRate: cfg.SampleRate,
		Time:       t,
		Channels:   make([]Channel, len(cfg.Signals)),
	}

	if cfg.Filter != nil {
		fr, err := p.designFilter(cfg)
		if err != nil {
			return nil, err
		}
		res.Filter = fr
		log.Debug("filter designed",
			zap.Int("order", fr.Spec.Order),
			zap.Float64("low_hz", fr.Spec.LowHz),
			zap.Float64("high_hz", fr.Spec.HighHz),
			zap.Int("sections", len(fr.Sections)),
			zap.Bool("stable", biquad.NewChain(fr.Sections).Stable()),
			zap.Float64("peak_hz", fr.Response.PeakFrequency()))
	}

	src := gen.Source()
	for i, sig := range cfg.Signals {
		ch := Channel{
			Label:      sig.Label,
			Color:      sig.Color,
			Descriptor: sig.Descriptor(),
		}
		ch.Clean = GenerateSignal(t, ch.Descriptor)

		if cfg.Noise.StdDev > 0 {
			noisy, err := AddNoise(ch.Clean, cfg.Noise.StdDev, src)
			if err != nil {
				return nil, fmt.Errorf("signal %d: %w", i, err)
			}
			ch.Noisy = noisy
		}

		if res.Filter != nil {
			ch.Filtered = ApplyFilter(res.Filter.Sections, ch.Analyzed())
		}

		spec, err := ComputeSpectrum(ch.Analyzed(), cfg.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("signal %d: %w", i, err)
		}
		ch.Spectrum = spec
		ch.Bode = NewBode(spec)

		sum, err := summarize(t, ch)
		if err != nil {
			return nil, fmt.Errorf("signal %d: %w", i, err)
		}
		ch.Summary = sum
		log.Debug("signal analyzed",
			zap.Int("index", i),
			zap.Float64("frequency_hz", ch.Descriptor.FrequencyHz),
			zap.Float64("envelope_rate", ch.Descriptor.EnvelopeRate),
			zap.Bool("noisy", ch.Noisy != nil),
			zap.Bool("filtered", ch.Filtered != nil),
			zap.Float64("peak_hz", sum.PeakHz),
			zap.Float64("centroid_hz", sum.CentroidHz),
			zap.Float64("rms", sum.Stats.RMS),
			zap.Float64("crest_factor", sum.Stats.CrestFactor),
			zap.Float64("snr_db", sum.SNR),
			zap.Float64("estimated_rate", sum.EnvelopeRate))

		res.Channels[i] = ch
	}

	log.Info("scenario complete", zap.Int("signals", len(res.Channels)))
	return res, nil
}

func summarize(t []float64, ch Channel) (Summary, error) {
	sum := Summary{
		Stats:        waveform.Calculate(ch.Analyzed()),
		SNR:          math.NaN(),
		EnvelopeRate: math.NaN(),
	}

	pos := ch.Spectrum.Positive()
	if len(pos.Freqs) > 0 {
		peak, err := pos.PeakFrequency(0, 0)
		if err != nil {
			return Summary{}, err
		}
		sum.PeakHz = peak
	}
	sum.CentroidHz = pos.Centroid()
	sum.Flatness = pos.Flatness()

	if ch.Noisy != nil {
		snr, err := waveform.SNR(ch.Clean, ch.Noisy)
		if err != nil {
			return Summary{}, err
		}
		sum.SNR = snr
	}

	// Short or degenerate records leave the estimate at NaN.
	if rate, err := waveform.EnvelopeRate(t, ch.Clean, ch.Descriptor.FrequencyHz); err == nil {
		sum.EnvelopeRate = rate
	}
	return sum, nil
}

func (p *Pipeline) designFilter(cfg *config.Scenario) (*FilterResult, error) {
	sections, err := DesignBandpass(cfg.Filter.Order, cfg.Filter.LowHz, cfg.Filter.HighHz, cfg.SampleRate)
	if err != nil {
		return nil, err
	}
	return &FilterResult{
		Spec:     cfg.Filter.Spec,
		Sections: sections,
		Transfer: iir.FromSections(sections),
		Response: bandpass.Evaluate(sections, cfg.Filter.WorN, cfg.SampleRate),
	}, nil
}
