// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files into an audio.Source using
// github.com/jfreymuth/oggvorbis.
//
// Reads are always a whole number of frames, so a destination buffer must
// hold at least one sample per channel.
package vorbis
