// SPDX-License-Identifier: EPL-2.0

// Package speechwav turns synthesized speech into WAV files.
//
// Speech services return raw 16-bit PCM as base64 text. FromBase64 decodes
// that text and wraps the samples in a canonical 44-byte WAV header in one
// call:
//
//	out, err := speechwav.FromBase64(payload, wav.SpeechFormat)
//
// Generator runs the whole request: it validates the text, builds the
// prompt, calls a Synthesizer such as *tts.Client, encodes the answer and
// hands the file to a Sink:
//
//	gen, _ := speechwav.NewGenerator(client, wav.SpeechFormat, store.NewFileStore("."), logger)
//	res, err := gen.Generate(ctx, speechwav.Request{Text: "Hello", Style: "Say cheerfully"})
//
// # Converting Other Audio
//
// Convert and ResampleToMono16 bring any audio.Source, for example an MP3
// decoded by formats/mp3, down to the mono 16-bit PCM the encoder writes:
//
//	src, _ := mp3.Decoder{}.Decode(file)
//	out, err := speechwav.Convert(src, 24000)
//
// The decoding and encoding steps are pure and safe for concurrent use.
// Only Generator logs, and only through the *zap.Logger it is given.
package speechwav
