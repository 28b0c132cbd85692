// Package lectures generates the lecture schedule records written by the
// calendar sink.
package lectures

import (
	"fmt"
	"time"
)

// Topics holds one course topic per week.
var Topics = []string{
	"Introduction to Signals and Systems",
	"Time-Domain Analysis of Signals",
	"Fourier Series and Fourier Transform",
	"Laplace Transform and Applications",
	"State-Space Representation",
	"Sampling Theorem and Discrete-Time Signals",
	"Z-Transform and Discrete-Time Systems",
	"Frequency Response and Bode Plots",
	"Stability Analysis in Frequency Domain",
	"Mechanical Systems Modeling in Frequency Domain",
	"Advanced Topics: Nonlinear Systems & Signal Modulation",
	"Review and Case Studies",
}

// Objectives holds one learning objective per week.
var Objectives = []string{
	"Understand the basic concepts of signals and systems, types of signals, and system classifications.",
	"Analyze signals in the time domain, including impulse and step responses.",
	"Learn Fourier series and Fourier transform for continuous-time signal analysis.",
	"Apply Laplace transform to solve differential equations and analyze systems.",
	"Introduce state-space representation and its applications in mechanical systems.",
	"Understand the sampling theorem and how to represent discrete-time signals.",
	"Learn Z-transform for discrete-time system analysis and solve difference equations.",
	"Analyze the frequency response of systems and understand Bode plots.",
	"Study stability in the frequency domain using Nyquist and Bode criteria.",
	"Model mechanical systems in the frequency domain and understand resonance.",
	"Explore advanced topics, including nonlinear systems and signal modulation techniques.",
	"Consolidate learning through review sessions and case studies.",
}

// Record is one scheduled lecture.
type Record struct {
	Title       string
	Start       time.Time
	Duration    time.Duration
	Description string
}

// End returns Start + Duration.
func (r Record) End() time.Time {
	return r.Start.Add(r.Duration)
}

// Schedule describes a lecture series. Nil Topics or Objectives fall back
// to the package defaults.
type Schedule struct {
	Start           time.Time
	Weeks           int
	LecturesPerWeek int
	Duration        time.Duration
	Spacing         time.Duration
	Topics          []string
	Objectives      []string
}

// DefaultSchedule is 12 weeks of three one-hour lectures two days apart,
// starting 2025-01-13 UTC.
func DefaultSchedule() Schedule {
	return Schedule{
		Start:           time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		Weeks:           12,
		LecturesPerWeek: 3,
		Duration:        time.Hour,
		Spacing:         48 * time.Hour,
	}
}

// Records expands s into Weeks*LecturesPerWeek records. Lecture n of week w
// is titled "Lecture <n>: <topic of w>" and each start is Spacing after the
// previous one.
func (s Schedule) Records() ([]Record, error) {
	if s.Weeks <= 0 {
		return nil, fmt.Errorf("schedule weeks must be > 0: %d", s.Weeks)
	}
	if s.LecturesPerWeek <= 0 {
		return nil, fmt.Errorf("schedule lectures per week must be > 0: %d", s.LecturesPerWeek)
	}
	if s.Duration <= 0 {
		return nil, fmt.Errorf("schedule lecture duration must be > 0: %s", s.Duration)
	}
	topics := s.Topics
	if topics == nil {
		topics = Topics
	}
	objectives := s.Objectives
	if objectives == nil {
		objectives = Objectives
	}
	if len(topics) < s.Weeks || len(objectives) < s.Weeks {
		return nil, fmt.Errorf("schedule needs %d topics and objectives: have %d and %d", s.Weeks, len(topics), len(objectives))
	}

	out := make([]Record, 0, s.Weeks*s.LecturesPerWeek)
	start := s.Start
	for week := range s.Weeks {
		for day := range s.LecturesPerWeek {
			out = append(out, Record{
				Title:       fmt.Sprintf("Lecture %d: %s", week*s.LecturesPerWeek+day+1, topics[week]),
				Start:       start,
				Duration:    s.Duration,
				Description: "Learning Objectives: " + objectives[week],
			})
			start = start.Add(s.Spacing)
		}
	}
	return out, nil
}
