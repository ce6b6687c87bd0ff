// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/speechwav/audio"
)

// intReader is the part of aiff.Decoder the source needs.
type intReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec    intReader
	format *goaudio.Format
	scale  float32
	intBuf *goaudio.IntBuffer
	done   bool
}

func newSource(dec intReader, format *goaudio.Format, bitDepth int) (*source, error) {
	if format == nil || format.NumChannels < 1 || format.SampleRate < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	return &source{
		dec:    dec,
		format: format,
		scale:  float32(int64(1) << (bitDepth - 1)),
	}, nil
}

func (s *source) SampleRate() int { return s.format.SampleRate }
func (s *source) Channels() int   { return s.format.NumChannels }
func (s *source) Close() error    { return nil }

func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.done {
		return 0, io.EOF
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{Data: make([]int, len(dst)), Format: s.format}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	for i, v := range s.intBuf.Data[:n] {
		dst[i] = float32(v) / s.scale
	}

	switch {
	case err == io.EOF || (err == nil && n < len(dst)):
		// go-audio returns a short buffer at the end of the sound chunk.
		s.done = true
		if n == 0 {
			return 0, io.EOF
		}
		return n, io.EOF
	case err != nil:
		return n, fmt.Errorf("%w", err)
	default:
		return n, nil
	}
}

// Decoder opens AIFF files with github.com/go-audio/aiff. Integer PCM at
// 8, 16, 24 and 32 bits is supported.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio needs to seek between chunks.
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	return newSource(dec, dec.Format(), int(dec.BitDepth))
}
