package main

import (
	"fmt"

	"github.com/sigworks/sigscope/analysis"
	"github.com/sigworks/sigscope/internal/config"
	"github.com/sigworks/sigscope/internal/render"
	"github.com/sigworks/sigscope/measure/transfer"
)

var defaultColors = []string{"blue", "green", "red"}

// buildFigure gives every component its own panel with its transfer note,
// followed by an overlay of all components and the two Bode panels.
func buildFigure(cfg *config.Scenario, res *analysis.Result) (*render.Figure, error) {
	n := len(res.Channels)
	combined, amplitude, phase := n, n+1, n+2

	fig, err := render.NewFigure(cfg.Title, n+3, 1, render.WithPageWidth(1100), render.WithRowHeight(320))
	if err != nil {
		return nil, err
	}

	descs := make([]transfer.Description, n)
	for i, ch := range res.Channels {
		descs[i] = transfer.Describe(ch.Descriptor)
	}

	for i, ch := range res.Channels {
		p, err := fig.Panel(i, 0)
		if err != nil {
			return nil, err
		}
		title := fmt.Sprintf("Signal %d", i+1)
		p.Title = title
		if ch.Label != "" {
			p.Title = fmt.Sprintf("%s: %s", title, ch.Label)
		}
		p.XLabel, p.YLabel = "Time (s)", "Amplitude"
		p.Annotation = descs[i].Annotation(title)
	}

	decorate := []struct {
		row    int
		title  string
		xLabel string
		yLabel string
		logX   bool
	}{
		{combined, "All Signals", "Time (s)", "Amplitude", false},
		{amplitude, "Bode Plot: Amplitude (dB)", "Frequency (Hz)", "Amplitude (dB)", true},
		{phase, "Bode Plot: Phase (Degrees)", "Frequency (Hz)", "Phase (Degrees)", true},
	}
	for _, d := range decorate {
		p, err := fig.Panel(d.row, 0)
		if err != nil {
			return nil, err
		}
		p.Title, p.XLabel, p.YLabel, p.LogX = d.title, d.xLabel, d.yLabel, d.logX
	}

	for i, ch := range res.Channels {
		color := ch.Color
		if color == "" {
			color = defaultColors[i%len(defaultColors)]
		}
		label := fmt.Sprintf("Signal %d", i+1)

		placed := []struct {
			row    int
			series render.Series
		}{
			{i, render.Series{Name: label, X: res.Time, Y: ch.Clean, Color: color}},
			{combined, render.Series{Name: label, X: res.Time, Y: ch.Clean, Color: color}},
			{amplitude, render.Series{Name: "Amplitude (dB) " + label, X: ch.Bode.FreqHz, Y: ch.Bode.AmplitudeDB, Color: color}},
			{phase, render.Series{Name: "Phase (Degrees) " + label, X: ch.Bode.FreqHz, Y: ch.Bode.PhaseDeg, Color: color}},
		}
		for _, pl := range placed {
			if err := fig.Add(pl.row, 0, pl.series); err != nil {
				return nil, err
			}
		}
	}
	return fig, nil
}
