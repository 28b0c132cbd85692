// Package calendar serialises lecture records as an iCalendar (.ics) file.
package calendar

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/sigworks/sigscope/internal/lectures"
)

const productID = "sigscope"

// FloatingLayout is the floating (zone-less) format of DTSTART and DTEND.
// Records keep their wall-clock time whatever their location.
const FloatingLayout = "20060102T150405"

// Sink writes records to an .ics stream.
type Sink struct {
	name   string
	now    func() time.Time
	newUID func() string
}

// Option configures a Sink.
type Option func(*Sink)

// WithName sets X-WR-CALNAME.
func WithName(name string) Option {
	return func(s *Sink) { s.name = name }
}

// WithClock sets the DTSTAMP source.
func WithClock(now func() time.Time) Option {
	return func(s *Sink) {
		if now != nil {
			s.now = now
		}
	}
}

// WithUIDs sets the event UID generator.
func WithUIDs(next func() string) Option {
	return func(s *Sink) {
		if next != nil {
			s.newUID = next
		}
	}
}

// New returns a Sink with random v4 UIDs and a wall-clock DTSTAMP.
func New(opts ...Option) *Sink {
	s := &Sink{
		now:    time.Now,
		newUID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Calendar builds the calendar object for records.
func (s *Sink) Calendar(records []lectures.Record) *ics.Calendar {
	cal := ics.NewCalendarFor(productID)
	cal.SetMethod(ics.MethodPublish)
	if s.name != "" {
		cal.SetXWRCalName(s.name)
	}
	stamp := s.now().UTC()
	for _, r := range records {
		ev := cal.AddEvent(s.newUID())
		ev.SetDtStampTime(stamp)
		ev.SetProperty(ics.ComponentPropertyDtStart, r.Start.Format(FloatingLayout))
		ev.SetProperty(ics.ComponentPropertyDtEnd, r.End().Format(FloatingLayout))
		ev.SetSummary(r.Title)
		ev.SetDescription(r.Description)
	}
	return cal
}

// Write serialises records to w.
func (s *Sink) Write(w io.Writer, records []lectures.Record) error {
	if err := s.Calendar(records).SerializeTo(w); err != nil {
		return fmt.Errorf("serialize calendar: %w", err)
	}
	return nil
}

// WriteFile writes records to path, creating parent directories.
func (s *Sink) WriteFile(path string, records []lectures.Record) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create calendar dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create calendar file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close calendar file: %w", cerr)
		}
	}()
	return s.Write(f, records)
}

// Write serialises records with a default Sink.
func Write(w io.Writer, records []lectures.Record) error {
	return New().Write(w, records)
}

// WriteFile writes records to path with a default Sink.
func WriteFile(path string, records []lectures.Record) error {
	return New().WriteFile(path, records)
}
