// Package export writes generated time-domain series to audio and columnar
// files for inspection outside the HTML plots.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrEmptyTrack is returned when a track carries no samples.
var ErrEmptyTrack = errors.New("export: empty track")

// ErrDuplicateTrack is returned when two tracks would share a series name or
// an output file.
var ErrDuplicateTrack = errors.New("export: duplicate track")

// Track is one named series sampled at Time.
type Track struct {
	Name   string
	Time   []float64
	Values []float64
}

func (t Track) validate() error {
	if len(t.Values) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyTrack, t.Name)
	}
	if t.Time != nil && len(t.Time) != len(t.Values) {
		return fmt.Errorf("track %q: time and value lengths differ: %d vs %d", t.Name, len(t.Time), len(t.Values))
	}
	return nil
}

func createFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}
