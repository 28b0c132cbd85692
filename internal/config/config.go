// Package config holds the scenario parameters of every command. Presets
// carry the built-in values; Load overlays a YAML file on a preset and
// validates the result.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/sigworks/sigscope/dsp/filter/design/bandpass"
	"github.com/sigworks/sigscope/dsp/signal"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Signal is one enveloped sine component.
type Signal struct {
	FrequencyHz  float64 `yaml:"frequency_hz" validate:"gt=0"`
	EnvelopeRate float64 `yaml:"envelope_rate"`
	Label        string  `yaml:"label"`
	Color        string  `yaml:"color"`
}

// Descriptor converts s to a signal descriptor.
func (s Signal) Descriptor() signal.Descriptor {
	return signal.Descriptor{FrequencyHz: s.FrequencyHz, EnvelopeRate: s.EnvelopeRate}
}

// Noise configures additive Gaussian noise. StdDev 0 disables it.
type Noise struct {
	StdDev float64 `yaml:"std_dev" validate:"gte=0"`
	Seed   uint64  `yaml:"seed"`
}

// Filter configures the band-pass stage.
type Filter struct {
	bandpass.Spec `yaml:",inline"`
	WorN          int `yaml:"wor_n" validate:"gte=0"`
}

// Laplace configures the Laplace curve of the transforms scenario.
type Laplace struct {
	SMin       float64 `yaml:"s_min" validate:"gt=-1"`
	SMax       float64 `yaml:"s_max" validate:"gtfield=SMin"`
	SPoints    int     `yaml:"s_points" validate:"gte=2"`
	QuadPoints int     `yaml:"quad_points" validate:"gte=0"`
	HTML       string  `yaml:"html" validate:"required"`
}

// Output names the files a scenario writes.
type Output struct {
	Dir     string `yaml:"dir"`
	HTML    string `yaml:"html" validate:"required"`
	WAV     bool   `yaml:"wav"`
	Parquet string `yaml:"parquet"`
}

// Scenario is the parameter set of one signal command.
type Scenario struct {
	Name       string   `yaml:"name" validate:"required"`
	Title      string   `yaml:"title"`
	SampleRate float64  `yaml:"sampling_rate" validate:"gt=0"`
	Duration   float64  `yaml:"duration" validate:"gt=0"`
	Signals    []Signal `yaml:"signals" validate:"dive"`
	Noise      Noise    `yaml:"noise"`
	Filter     *Filter  `yaml:"filter"`
	Laplace    *Laplace `yaml:"laplace"`
	Output     Output   `yaml:"output"`
}

// Descriptors returns one descriptor per configured signal.
func (s *Scenario) Descriptors() []signal.Descriptor {
	out := make([]signal.Descriptor, len(s.Signals))
	for i, sig := range s.Signals {
		out[i] = sig.Descriptor()
	}
	return out
}

// Validate checks struct tags and cross-field rules.
func (s *Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, formatValidationError(err))
	}
	if s.Filter != nil {
		if err := s.Filter.Validate(s.SampleRate); err != nil {
			return fmt.Errorf("%w: filter: %w", ErrInvalidConfig, err)
		}
	}
	if n := len(signal.TimeVector(s.SampleRate, s.Duration)); n < 2 {
		return fmt.Errorf("%w: sampling_rate*duration must give at least 2 samples: %d", ErrInvalidConfig, n)
	}
	return nil
}

// Load reads path, overlays it on a copy of base and validates the result.
// An empty path validates and returns the copy.
func Load(path string, base Scenario) (*Scenario, error) {
	cfg := base.clone()
	if err := decodeFile(path, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s Scenario) clone() *Scenario {
	c := s
	c.Signals = append([]Signal(nil), s.Signals...)
	if s.Filter != nil {
		f := *s.Filter
		c.Filter = &f
	}
	if s.Laplace != nil {
		l := *s.Laplace
		c.Laplace = &l
	}
	return &c
}

func decodeFile(path string, dst any) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: decode %s: %w", ErrInvalidConfig, path, err)
	}
	return nil
}

func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return strings.Join(msgs, "; ")
}

func formatFieldError(e validator.FieldError) string {
	field := e.Namespace()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be > %s: %v", field, e.Param(), e.Value())
	case "gte":
		return fmt.Sprintf("%s must be >= %s: %v", field, e.Param(), e.Value())
	case "gtfield":
		return fmt.Sprintf("%s must be > %s: %v", field, e.Param(), e.Value())
	case "datetime":
		return fmt.Sprintf("%s must match %s: %v", field, e.Param(), e.Value())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
