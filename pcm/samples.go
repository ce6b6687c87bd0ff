// SPDX-License-Identifier: EPL-2.0

package pcm

import "encoding/binary"

// BytesPerSample is the width of one 16-bit PCM sample.
const BytesPerSample = 2

// FromInt16 packs samples as little-endian bytes.
func FromInt16(samples []int16) []byte {
	out := make([]byte, len(samples)*BytesPerSample)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*BytesPerSample:], uint16(s))
	}

	return out
}

// ToInt16 unpacks little-endian samples. A trailing odd byte is ignored.
func ToInt16(data []byte) []int16 {
	out := make([]int16, len(data)/BytesPerSample)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(data[i*BytesPerSample:]))
	}

	return out
}

// Float32ToInt16 converts a normalized sample to 16-bit PCM.
// Values outside [-1, 1] are clamped; -1 maps to math.MinInt16 and 1 to
// math.MaxInt16.
func Float32ToInt16(x float32) int16 {
	switch {
	case x >= 1:
		return 32767
	case x <= -1:
		return -32768
	case x < 0:
		return int16(x * 32768.0)
	default:
		return int16(x * 32767.0)
	}
}

// ToFloat32 converts little-endian samples from data into dst, normalized
// to [-1, 1). It converts min(len(dst), len(data)/2) samples and returns
// that count.
func ToFloat32(dst []float32, data []byte) int {
	n := min(len(dst), len(data)/BytesPerSample)
	for i := range n {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(data[i*BytesPerSample:]))) / 32768.0
	}

	return n
}
