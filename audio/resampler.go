// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// maxEmptyReads bounds how many (0, nil) reads are tolerated from a source
// before giving up with io.ErrNoProgress.
const maxEmptyReads = 64

// Resampler streams from src to a target sample rate using cubic
// interpolation. It works on interleaved samples and preserves the channel
// count. When downsampling, a one-pole low-pass is applied to the input.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames per output frame
	channels int

	// window holds frames t-1, t, t+1, t+2 around the output position.
	// real marks frames that came from src rather than edge padding.
	window [4][]float32
	real   [4]bool
	pos    float64 // fractional position between window[1] and window[2]
	primed bool

	buf     []float32
	pending []float32
	srcEOF  bool

	filter      bool
	filterAlpha float32
	filterState []float32
	filterWarm  bool
}

// NewResampler converts src to dstRate Hz.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, ErrInvalidRate
	}

	channels := max(src.Channels(), 1)
	step := float64(src.SampleRate()) / float64(dstRate)
	bufSize := max(src.BufSize(), channels)

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		step:        step,
		channels:    channels,
		buf:         make([]float32, bufSize-bufSize%channels),
		filter:      step > 1,
		filterAlpha: 0.5,
		filterState: make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// nextFrame copies the next source frame into dst. It reports false once the
// source is exhausted.
func (r *Resampler) nextFrame(dst []float32) (bool, error) {
	empty := 0
	for len(r.pending) < r.channels {
		if r.srcEOF {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.buf)
		r.pending = r.buf[:n-n%r.channels]

		switch {
		case err == io.EOF:
			r.srcEOF = true
		case err != nil:
			return false, fmt.Errorf("%w", err)
		case n == 0:
			empty++
			if empty >= maxEmptyReads {
				return false, io.ErrNoProgress
			}
		}
	}

	copy(dst, r.pending[:r.channels])
	r.pending = r.pending[r.channels:]

	if r.filter {
		r.lowPass(dst)
	}

	return true, nil
}

func (r *Resampler) lowPass(frame []float32) {
	if !r.filterWarm {
		copy(r.filterState, frame)
		r.filterWarm = true
		return
	}

	for c, x := range frame {
		y := r.filterAlpha*x + (1-r.filterAlpha)*r.filterState[c]
		r.filterState[c] = y
		frame[c] = y
	}
}

// prime fills the interpolation window. t-1 starts as a copy of t.
func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.nextFrame(r.window[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	r.real[1] = true
	copy(r.window[0], r.window[1])

	for i := 2; i < 4; i++ {
		if err := r.fill(i); err != nil {
			return err
		}
	}

	return nil
}

// fill loads window[i] from src, or repeats window[i-1] at the end of stream.
func (r *Resampler) fill(i int) error {
	ok, err := r.nextFrame(r.window[i])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.window[i], r.window[i-1])
	}
	r.real[i] = ok

	return nil
}

func (r *Resampler) shift() error {
	for i := range 3 {
		copy(r.window[i], r.window[i+1])
		r.real[i] = r.real[i+1]
	}

	return r.fill(3)
}

// ReadSamples produces samples at the target rate.
// len(dst) must be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1 {
			r.pos--
			if err := r.shift(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.real[1] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = cubicInterpolate(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
