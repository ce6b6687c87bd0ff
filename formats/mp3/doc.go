// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files into an audio.Source.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always produces
// 16-bit stereo at the stream's own sample rate. Samples come out as
// float32 in [-1.0, 1.0):
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if errors.Is(err, mp3.ErrNotMP3File) {
//	    // ...
//	}
//
// Pass the source to speechwav.Convert to get a mono 16-bit WAV at the rate
// the rest of the speech pipeline uses.
package mp3
