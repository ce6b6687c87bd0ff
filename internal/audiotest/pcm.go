// SPDX-License-Identifier: EPL-2.0

package audiotest

// PCM16 packs samples as little-endian 16-bit PCM bytes.
func PCM16(samples ...int16) []byte {
	out := make([]byte, 0, len(samples)*2)
	for _, s := range samples {
		out = append(out, byte(uint16(s)), byte(uint16(s)>>8))
	}

	return out
}

// RampPCM returns n samples counting up from 0, the value wrapping at 1000.
func RampPCM(n int) []byte {
	samples := make([]int16, n)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	return PCM16(samples...)
}
