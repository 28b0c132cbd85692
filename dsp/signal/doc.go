// Package signal builds the time-domain inputs of an analysis run: evenly
// spaced time vectors, exponentially enveloped sine waves and additive
// Gaussian noise.
//
// Noise is always drawn from an explicit random source so that runs are
// reproducible under test:
//
//	g := signal.NewGeneratorWithOptions(
//	    []core.ProcessorOption{core.WithSampleRate(1000), core.WithDuration(1)},
//	    signal.WithSeed(7),
//	)
//	t := g.Time()
//	x := signal.Generate(t, signal.Descriptor{FrequencyHz: 30})
//	noisy, _ := signal.AddNoise(x, 0.5, g.Source())
package signal
