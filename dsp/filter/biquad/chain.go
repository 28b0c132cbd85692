package biquad

// Chain is an ordered cascade of sections. The output of section i is the
// input of section i+1.
type Chain struct {
	sections []Section
	gain     float64
}

type chainConfig struct {
	gain float64
}

// ChainOption configures a Chain.
type ChainOption func(*chainConfig)

// WithGain scales the input before the first section. Default 1.
func WithGain(g float64) ChainOption {
	return func(cfg *chainConfig) { cfg.gain = g }
}

// NewChain creates a cascade with one Section per coefficient set.
func NewChain(coeffs []Coefficients, opts ...ChainOption) *Chain {
	cfg := chainConfig{gain: 1}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	c := &Chain{gain: cfg.gain, sections: make([]Section, len(coeffs))}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}
	return c
}

// ProcessSample runs x through every section.
func (c *Chain) ProcessSample(x float64) float64 {
	x *= c.gain
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}
	return x
}

// ProcessBlock filters buf in place.
func (c *Chain) ProcessBlock(buf []float64) {
	if c.gain != 1 {
		for i := range buf {
			buf[i] *= c.gain
		}
	}
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Filter returns a filtered copy of x, starting from zero state. The chain
// state is left untouched.
func (c *Chain) Filter(x []float64) []float64 {
	saved := c.State()
	c.Reset()
	out := make([]float64, len(x))
	copy(out, x)
	c.ProcessBlock(out)
	c.SetState(saved)
	return out
}

// Reset clears every section's delay line.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Order returns 2 per section.
func (c *Chain) Order() int {
	return 2 * len(c.sections)
}

// NumSections returns the number of sections.
func (c *Chain) NumSections() int {
	return len(c.sections)
}

// Gain returns the input gain.
func (c *Chain) Gain() float64 { return c.gain }

// Coefficients returns a copy of every section's coefficients.
func (c *Chain) Coefficients() []Coefficients {
	out := make([]Coefficients, len(c.sections))
	for i := range c.sections {
		out[i] = c.sections[i].Coefficients
	}
	return out
}

// Stable reports whether every section is stable.
func (c *Chain) Stable() bool {
	for i := range c.sections {
		if !c.sections[i].Stable() {
			return false
		}
	}
	return true
}

// State snapshots every section's delay line.
func (c *Chain) State() [][2]float64 {
	states := make([][2]float64, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}
	return states
}

// SetState restores states saved by State. len(states) must equal
// NumSections.
func (c *Chain) SetState(states [][2]float64) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}
