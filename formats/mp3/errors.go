// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrNotMP3File wraps every error go-mp3 reports while opening a stream.
var ErrNotMP3File = errors.New("not an MP3 stream")
