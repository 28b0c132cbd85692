package export

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/sigworks/sigscope/analysis"
)

// Tracks flattens every time-domain series of res in channel order.
func Tracks(res *analysis.Result) []Track {
	var out []Track
	for _, ch := range res.Channels {
		name := ch.Name()
		out = append(out, Track{Name: name + " clean", Time: res.Time, Values: ch.Clean})
		if ch.Noisy != nil {
			out = append(out, Track{Name: name + " noisy", Time: res.Time, Values: ch.Noisy})
		}
		if ch.Filtered != nil {
			out = append(out, Track{Name: name + " filtered", Time: res.Time, Values: ch.Filtered})
		}
	}
	return out
}

// WriteResult writes one WAV file per track into dir when wav is set, and
// the Parquet table dir/parquetName when parquetName is not empty. It
// returns the paths written. Nothing is written when two tracks collide.
func WriteResult(res *analysis.Result, dir string, wav bool, parquetName string) ([]string, error) {
	tracks := Tracks(res)
	if err := checkUnique(tracks, wav); err != nil {
		return nil, err
	}
	var paths []string

	if wav {
		rate := int(math.Round(res.SampleRate))
		for _, tr := range tracks {
			path := filepath.Join(dir, FileName(tr.Name)+".wav")
			if err := WriteWAVFile(path, tr, rate); err != nil {
				return paths, err
			}
			paths = append(paths, path)
		}
	}

	if parquetName != "" {
		path := filepath.Join(dir, parquetName)
		if _, err := WriteParquetFile(path, tracks); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// checkUnique rejects repeated series names and, when files are named after
// tracks, repeated file names.
func checkUnique(tracks []Track, byFile bool) error {
	names := make(map[string]string, len(tracks))
	files := make(map[string]string, len(tracks))
	for _, tr := range tracks {
		if prev, ok := names[tr.Name]; ok {
			return fmt.Errorf("%w: %q and %q", ErrDuplicateTrack, prev, tr.Name)
		}
		names[tr.Name] = tr.Name
		if !byFile {
			continue
		}
		file := FileName(tr.Name)
		if prev, ok := files[file]; ok {
			return fmt.Errorf("%w: %q and %q both write %s.wav", ErrDuplicateTrack, prev, tr.Name, file)
		}
		files[file] = tr.Name
	}
	return nil
}

// FileName lowercases name and keeps only letters, digits, '-' and '.',
// mapping everything else to '_'.
func FileName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
