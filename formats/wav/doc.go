// SPDX-License-Identifier: EPL-2.0

// Package wav writes and reads canonical PCM WAV files.
//
// The canonical layout is a 44-byte header (RIFF, a 16-byte "fmt " chunk
// and the "data" chunk header) followed by the raw little-endian samples.
// Every multi-byte header field is little-endian.
//
// # Encoding
//
// Encode wraps PCM bytes, for example the decoded payload of a speech
// synthesis response, into a complete file:
//
//	out, err := wav.Encode(pcmBytes, wav.SpeechFormat)
//
// The data is copied verbatim. A length that is not a multiple of the block
// align is accepted and written as is. WritePCM streams the same bytes to an
// io.Writer and WriteWAV16 writes mono []int16 samples.
//
// Format parameters are checked before anything is written. A field that
// is zero or negative gives an *InvalidFormatError and a value that does not
// fit its header field gives an *OverflowError:
//
//	_, err := wav.Encode(pcm, wav.Format{SampleRate: 0, NumChannels: 1, BytesPerSample: 2})
//	if errors.Is(err, wav.ErrInvalidFormat) {
//	    // ...
//	}
//
// # Decoding
//
// ParseHeader is the inverse of the header part of Encode. Decoder reads a
// canonical 16-bit file as an audio.Source with samples in [-1.0, 1.0]:
//
//	source, err := wav.Decoder{}.Decode(file)
//
// Inspect reads the headers of arbitrary WAV files with
// github.com/go-audio/wav, which also understands extra chunks ahead of the
// audio data.
//
// Encode, EncodeHeader and ParseHeader hold no state and are safe for
// concurrent use.
package wav
