// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/speechwav/audio"
	"github.com/ik5/speechwav/pcm"
)

type wavSource struct {
	r          io.Reader
	sampleRate int
	channels   int
	buf        []byte
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) BufSize() int    { return cap(s.buf) / 2 }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	buf := s.buf[:need]

	n, err := io.ReadFull(s.r, buf)
	samples := pcm.ToFloat32(dst, buf[:n])

	switch {
	case err == nil:
		return samples, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		if samples == 0 {
			return 0, io.EOF
		}
		return samples, nil
	default:
		return samples, fmt.Errorf("%w", err)
	}
}

// Decoder reads canonical 16-bit PCM WAV files, such as those written by
// Encode, as an audio.Source. Reading stops at the end of the data chunk.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	header := make([]byte, HeaderSize)

	if _, err := io.ReadFull(r, header); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrShortHeader
		}
		return nil, fmt.Errorf("%w", err)
	}

	h, err := ParseHeader(header)
	if err != nil {
		return nil, err
	}

	if h.Format.BytesPerSample != 2 {
		return nil, ErrOnlyPCM16bitSupported
	}

	return &wavSource{
		r:          io.LimitReader(r, int64(h.DataSize)),
		sampleRate: h.Format.SampleRate,
		channels:   h.Format.NumChannels,
		buf:        make([]byte, 8192),
	}, nil
}
