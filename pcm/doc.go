// SPDX-License-Identifier: EPL-2.0

// Package pcm handles raw little-endian 16-bit PCM audio as it arrives from a
// speech service.
//
// Speech services usually return audio as a base64 string inside a JSON
// document. Decode turns that text back into the raw sample bytes:
//
//	raw, err := pcm.Decode(payload)
//	if errors.Is(err, pcm.ErrDecode) {
//	    // malformed base64, nothing usable was produced
//	}
//
// The bytes are not interpreted further. Use formats/wav to wrap them into a
// playable file, or NewSource to feed them into an audio pipeline:
//
//	src := pcm.NewSource(raw, 24000, 1)
//	mono8k, _ := audio.NewResampler(src, 8000)
//
// # Sample Conversion
//
// FromInt16 and ToInt16 pack and unpack little-endian samples.
// Float32ToInt16 converts normalized [-1, 1] samples, clamping anything
// outside that range.
//
// All functions in this package are pure and safe for concurrent use.
package pcm
