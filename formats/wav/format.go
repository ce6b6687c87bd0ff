// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"math"
	"time"
)

// Format describes the PCM stream carried by a WAV file.
type Format struct {
	SampleRate     int // samples per second, per channel
	NumChannels    int
	BytesPerSample int // bytes of a single-channel sample
}

// SpeechFormat is 24 kHz mono 16-bit, the layout speech services return.
var SpeechFormat = Format{SampleRate: 24000, NumChannels: 1, BytesPerSample: 2}

// BlockAlign is the size of one frame in bytes.
func (f Format) BlockAlign() int { return f.NumChannels * f.BytesPerSample }

// ByteRate is the number of data bytes per second.
func (f Format) ByteRate() int { return f.SampleRate * f.BlockAlign() }

func (f Format) BitsPerSample() int { return f.BytesPerSample * 8 }

// Duration of dataLen bytes of audio in this format. It is zero for an
// invalid format.
func (f Format) Duration(dataLen int) time.Duration {
	rate := f.ByteRate()
	if rate <= 0 || dataLen <= 0 {
		return 0
	}

	return time.Duration(uint64(dataLen) * uint64(time.Second) / uint64(rate))
}

// Validate checks that f can be written into a canonical header.
func (f Format) Validate() error {
	for _, p := range []struct {
		field string
		value int
	}{
		{"SampleRate", f.SampleRate},
		{"NumChannels", f.NumChannels},
		{"BytesPerSample", f.BytesPerSample},
	} {
		if p.value <= 0 {
			return &InvalidFormatError{Field: p.field, Value: p.value}
		}
	}

	// Each product is bounded by the checks before it, so report the first
	// field that does not fit.
	bits := uint64(f.BytesPerSample) * 8
	if f.BytesPerSample > math.MaxUint16 {
		bits = math.MaxUint64
	}

	for _, l := range []struct {
		field string
		value uint64
		limit uint64
	}{
		{"NumChannels", uint64(f.NumChannels), math.MaxUint16},
		{"BitsPerSample", bits, math.MaxUint16},
		{"BlockAlign", uint64(f.NumChannels) * uint64(f.BytesPerSample), math.MaxUint16},
		{"SampleRate", uint64(f.SampleRate), math.MaxUint32},
		{"ByteRate", uint64(f.SampleRate) * uint64(f.NumChannels) * uint64(f.BytesPerSample), math.MaxUint32},
	} {
		if l.value > l.limit {
			return &OverflowError{Field: l.field, Value: l.value, Limit: l.limit}
		}
	}

	return nil
}
