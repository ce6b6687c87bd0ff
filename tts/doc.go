// SPDX-License-Identifier: EPL-2.0

// Package tts talks to the Gemini text-to-speech REST endpoint.
//
// A Client sends one generateContent request per call and returns the
// base64 audio payload untouched. Decoding and WAV wrapping are left to the
// pcm and formats/wav packages. There is no retry: a failed call is reported
// to the caller as is.
//
//	client, err := tts.NewClient(tts.Config{APIKey: key}, logger)
//	audio, err := client.Synthesize(ctx, tts.BuildPrompt(text, style), tts.VoiceKore)
package tts
