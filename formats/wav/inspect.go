// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"time"

	gowav "github.com/go-audio/wav"
)

// Info describes a WAV file as seen by a general RIFF parser.
type Info struct {
	AudioFormat uint16
	NumChannels int
	SampleRate  int
	BitDepth    int
	ByteRate    int
	DataSize    int64
	Duration    time.Duration
}

// Inspect reads the headers of any WAV file, canonical or not, using
// github.com/go-audio/wav. It is independent of ParseHeader, so the two can
// be used to cross-check each other.
func Inspect(r io.ReadSeeker) (Info, error) {
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Info{}, ErrNotWavFile
	}

	if err := dec.FwdToPCM(); err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	info := Info{
		AudioFormat: dec.WavAudioFormat,
		NumChannels: int(dec.NumChans),
		SampleRate:  int(dec.SampleRate),
		BitDepth:    int(dec.BitDepth),
		ByteRate:    int(dec.AvgBytesPerSec),
		DataSize:    int64(dec.PCMSize),
	}

	if info.ByteRate > 0 {
		info.Duration = time.Duration(info.DataSize * int64(time.Second) / int64(info.ByteRate))
	}

	return info, nil
}
