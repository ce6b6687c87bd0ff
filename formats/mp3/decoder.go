// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/speechwav/audio"
	"github.com/ik5/speechwav/pcm"
)

// go-mp3 always produces interleaved 16-bit stereo.
const outputChannels = 2

// pcmReader is the part of gomp3.Decoder the source needs.
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        pcmReader
	sampleRate int
	buf        []byte
	// pending holds a trailing half sample left by the last Read.
	pending []byte
}

func newSource(dec pcmReader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return outputChannels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / pcm.BytesPerSample }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * pcm.BytesPerSample
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	buf := s.buf[:need]

	held := copy(buf, s.pending)
	s.pending = s.pending[:0]

	n, err := s.dec.Read(buf[held:])
	n += held

	samples := pcm.ToFloat32(dst, buf[:n])
	if odd := n - samples*pcm.BytesPerSample; odd > 0 {
		s.pending = append(s.pending, buf[n-odd:n]...)
	}

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("%w", err)
	}

	if samples == 0 && err == io.EOF {
		return 0, io.EOF
	}

	return samples, err
}

// Decoder opens MP3 streams with github.com/hajimehoshi/go-mp3.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return newSource(dec), nil
}
