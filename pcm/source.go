// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"io"

	"github.com/ik5/speechwav/audio"
)

// Source reads interleaved 16-bit PCM bytes as an audio.Source.
// Only whole frames are returned; a partial frame at the end of the data is
// never read.
type Source struct {
	data       []byte
	pos        int
	sampleRate int
	channels   int
}

var _ audio.Source = (*Source)(nil)

// NewSource wraps data without copying it. data must not be modified while
// the source is in use.
func NewSource(data []byte, sampleRate, channels int) *Source {
	if channels < 1 {
		channels = 1
	}

	return &Source{
		data:       data,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 4096 }
func (s *Source) Close() error    { return nil }

// Remaining is the number of unread samples, counting whole frames only.
func (s *Source) Remaining() int {
	frameBytes := s.channels * BytesPerSample
	return (len(s.data) - s.pos) / frameBytes * s.channels
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	remaining := s.Remaining()
	if remaining == 0 {
		return 0, io.EOF
	}

	n := min(len(dst)/s.channels*s.channels, remaining)
	if n == 0 {
		return 0, audio.ErrInvalidDstSize
	}

	s.pos += ToFloat32(dst[:n], s.data[s.pos:]) * BytesPerSample

	if s.Remaining() == 0 {
		return n, io.EOF
	}

	return n, nil
}
