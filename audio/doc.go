// SPDX-License-Identifier: EPL-2.0

// Package audio is the float32 streaming layer behind the convert command
// and speechwav.Convert. Decoders in formats/* and the raw PCM reader in pcm
// all produce a Source; the Resampler and MonoMixer wrap one Source in
// another.
//
// A Source hands out interleaved samples scaled to [-1, 1]. The final read
// may return samples and io.EOF together, so callers consume buf[:n] before
// looking at the error.
//
// Speech arrives at 24 kHz mono. To bring another recording into that shape:
//
//	mono := audio.NewMonoMixer(src)
//	r, err := audio.NewResampler(mono, 24000)
//
// Downsampling passes the signal through a one-pole low-pass before the
// Catmull-Rom interpolation.
//
// Decoders are found by file extension through a Registry:
//
//	reg := audio.NewRegistry()
//	reg.Register("mp3", mp3.Decoder{})
//	dec, err := reg.Lookup("prompt.MP3")
package audio
