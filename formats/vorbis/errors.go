// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	// ErrNotOggVorbisFile wraps the error oggvorbis reports for a stream it
	// cannot open.
	ErrNotOggVorbisFile = errors.New("not an Ogg Vorbis stream")

	ErrNoChannels = errors.New("no channels in Ogg Vorbis stream")
)
