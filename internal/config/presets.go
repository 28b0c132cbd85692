package config

import "github.com/sigworks/sigscope/dsp/filter/design/bandpass"

// BandpassDemo is the noisy three-tone scenario with a 20-150 Hz band-pass.
func BandpassDemo() Scenario {
	return Scenario{
		Name:       "bandpass-demo",
		Title:      "Sine Waves, Noise, and Filtering Example",
		SampleRate: 1000,
		Duration:   1,
		Signals: []Signal{
			{FrequencyHz: 30, Label: "30Hz"},
			{FrequencyHz: 60, Label: "60Hz"},
			{FrequencyHz: 120, Label: "120Hz"},
		},
		Noise: Noise{StdDev: 0.5, Seed: 1},
		Filter: &Filter{
			Spec: bandpass.Spec{Order: 4, LowHz: 20, HighHz: 150},
			WorN: bandpass.DefaultWorN,
		},
		Output: Output{HTML: "basic_plot.html"},
	}
}

// EnvelopeDemo is the growing, decaying and constant envelope scenario.
func EnvelopeDemo() Scenario {
	return Scenario{
		Name:       "envelope-demo",
		Title:      "Complex Wave Generation with Transfer Functions",
		SampleRate: 1000,
		Duration:   6,
		Signals: []Signal{
			{FrequencyHz: 3, EnvelopeRate: 0.5, Label: "Exponentially Increasing", Color: "blue"},
			{FrequencyHz: 6, EnvelopeRate: -0.5, Label: "Exponentially Decreasing", Color: "green"},
			{FrequencyHz: 12, EnvelopeRate: 0, Label: "Constant", Color: "red"},
		},
		Output: Output{HTML: "simple_waves.html"},
	}
}

// Transforms compares the FFT and the Laplace transform of exp(-t) over
// 1000 samples of [0, 10] s.
func Transforms() Scenario {
	return Scenario{
		Name:       "transforms",
		Title:      "Fourier Transform",
		SampleRate: 100,
		Duration:   10,
		Laplace: &Laplace{
			SMin:       0,
			SMax:       10,
			SPoints:    100,
			QuadPoints: 200,
			HTML:       "laplace_transform_plot.html",
		},
		Output: Output{HTML: "fourier_transform_plot.html"},
	}
}

// LectureCalendar is the 12-week, three-lectures-a-week schedule.
func LectureCalendar() Calendar {
	return Calendar{
		Name:            "Signals and Systems",
		Start:           "2025-01-13",
		Weeks:           12,
		LecturesPerWeek: 3,
		LectureMinutes:  60,
		SpacingDays:     2,
		FileName:        "Signals_and_Systems_Lecture_Schedule.ics",
	}
}
