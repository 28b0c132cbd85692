package export

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/sigworks/sigscope/dsp/signal"
)

const (
	wavBitDepth = 16
	wavPCM      = 1
	// wavPeak leaves one LSB of headroom below full scale.
	wavPeak = 1 - 1.0/32768
)

// WriteWAV encodes values as 16-bit mono PCM at sampleRate. The series is
// peak-normalized first, so absolute amplitude is not preserved.
func WriteWAV(w io.WriteSeeker, values []float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("sample rate must be > 0: %d", sampleRate)
	}
	if len(values) == 0 {
		return ErrEmptyTrack
	}

	norm, err := signal.Normalize(values, wavPeak)
	if err != nil {
		return fmt.Errorf("normalize: %w", err)
	}

	scale := float64(int(1)<<(wavBitDepth-1) - 1)
	data := make([]int, len(norm))
	for i, v := range norm {
		data[i] = int(math.Round(v * scale))
	}

	enc := wav.NewEncoder(w, sampleRate, wavBitDepth, 1, wavPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: wavBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}
	return nil
}

// WriteWAVFile writes track as a WAV file at path.
func WriteWAVFile(path string, track Track, sampleRate int) (err error) {
	if err := track.validate(); err != nil {
		return err
	}

	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return WriteWAV(f, track.Values, sampleRate)
}

// ReadWAV decodes a mono PCM WAV stream into samples scaled to [-1, 1].
func ReadWAV(r io.ReadSeeker) ([]float64, int, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid wav stream")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decode wav: %w", err)
	}

	if buf.SourceBitDepth <= 0 {
		return nil, 0, fmt.Errorf("wav bit depth must be > 0: %d", buf.SourceBitDepth)
	}
	full := float64(int(1) << (buf.SourceBitDepth - 1))
	out := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		out[i] = float64(v) / full
	}
	return out, int(dec.SampleRate), nil
}
