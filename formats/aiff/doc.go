// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files into an
// audio.Source.
//
// Parsing is done by github.com/go-audio/aiff. Integer samples are scaled by
// their bit depth into [-1.0, 1.0):
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // ...
//	}
//
// The go-audio decoder seeks between chunks. A reader that is not an
// io.ReadSeeker is read into memory first.
package aiff
