package main

import (
	"github.com/sigworks/sigscope/analysis"
	"github.com/sigworks/sigscope/internal/config"
	"github.com/sigworks/sigscope/internal/render"
)

const (
	panelClean = iota
	panelNoisy
	panelMagnitude
	panelPhase
	panelSpectrum
	panelFiltered
	numPanels
)

var panelTitles = [numPanels]string{
	"Original Sine Waves",
	"Noisy Signals",
	"Bode Plot (Magnitude)",
	"Bode Plot (Phase)",
	"FFT Spectrum",
	"Filtered Signals",
}

type placement struct {
	panel  int
	series render.Series
}

// buildFigure lays the run out as one column of six panels.
func buildFigure(cfg *config.Scenario, res *analysis.Result) (*render.Figure, error) {
	fig, err := render.NewFigure(cfg.Title, numPanels, 1, render.WithPageWidth(1000), render.WithRowHeight(330))
	if err != nil {
		return nil, err
	}

	for i, title := range panelTitles {
		p, err := fig.Panel(i, 0)
		if err != nil {
			return nil, err
		}
		p.Title = title
		switch i {
		case panelClean, panelNoisy, panelFiltered:
			p.XLabel, p.YLabel = "Time (s)", "Amplitude"
		case panelMagnitude:
			p.XLabel, p.YLabel = "Frequency (Hz)", "Magnitude (dB)"
		case panelPhase:
			p.XLabel, p.YLabel = "Frequency (Hz)", "Phase (rad)"
		case panelSpectrum:
			p.XLabel, p.YLabel = "Frequency (Hz)", "|X(f)|"
		}
	}

	for _, ch := range res.Channels {
		name := ch.Name()
		spec := ch.Spectrum.Shifted()
		placed := []placement{
			{panelClean, render.Series{Name: name + " (Clean)", X: res.Time, Y: ch.Clean}},
			{panelSpectrum, render.Series{Name: name + " FFT", X: spec.Freqs, Y: spec.Magnitude()}},
		}
		if ch.Noisy != nil {
			placed = append(placed,
				placement{panelNoisy, render.Series{Name: name + " (Noisy)", X: res.Time, Y: ch.Noisy, Color: "red", Width: 1, Dash: render.Dotted}},
				placement{panelNoisy, render.Series{Name: name + " (Original)", X: res.Time, Y: ch.Clean, Color: "blue", Width: 2}},
			)
		}
		if ch.Filtered != nil {
			placed = append(placed,
				placement{panelFiltered, render.Series{Name: name + " (Filtered)", X: res.Time, Y: ch.Filtered, Color: "green", Width: 2}})
		}

		for _, pl := range placed {
			if err := fig.Add(pl.panel, 0, pl.series); err != nil {
				return nil, err
			}
		}
	}

	if res.Filter != nil {
		r := res.Filter.Response
		if err := fig.Add(panelMagnitude, 0, render.Series{Name: "Magnitude Response", X: r.FreqHz, Y: r.MagnitudeDB}); err != nil {
			return nil, err
		}
		if err := fig.Add(panelPhase, 0, render.Series{Name: "Phase Response", X: r.FreqHz, Y: r.PhaseRad}); err != nil {
			return nil, err
		}
	}
	return fig, nil
}
