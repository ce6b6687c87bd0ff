// SPDX-License-Identifier: EPL-2.0

package speechwav

import (
	"github.com/ik5/speechwav/formats/wav"
	"github.com/ik5/speechwav/pcm"
)

// FromBase64 decodes base64 PCM and wraps it into a WAV file in format f.
// Errors are the *pcm.DecodeError, *wav.InvalidFormatError or
// *wav.OverflowError of the failing step, unwrapped.
func FromBase64(encoded string, f wav.Format) ([]byte, error) {
	raw, err := pcm.Decode(encoded)
	if err != nil {
		return nil, err
	}

	return wav.Encode(raw, f)
}
