// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/base64"
	"errors"
	"strings"
)

var (
	paddedEncoding   = base64.StdEncoding.Strict()
	unpaddedEncoding = base64.RawStdEncoding.Strict()
)

// Decode converts standard-alphabet base64 text into the bytes it encodes.
//
// Padding is optional, but when any '=' is present the input must be fully
// and correctly padded. Trailing bits that a canonical encoder would have
// left zero are rejected, so Encode(Decode(s)) == s for every accepted s
// that carries its padding. Line breaks are outside the alphabet and are
// rejected like any other illegal byte.
func Decode(encoded string) ([]byte, error) {
	// encoding/base64 silently skips \r and \n.
	if i := strings.IndexAny(encoded, "\r\n"); i >= 0 {
		return nil, &DecodeError{Offset: int64(i), Err: base64.CorruptInputError(i)}
	}

	enc := unpaddedEncoding
	if strings.IndexRune(encoded, base64.StdPadding) >= 0 {
		enc = paddedEncoding
	}

	out, err := enc.DecodeString(encoded)
	if err != nil {
		var corrupt base64.CorruptInputError
		if errors.As(err, &corrupt) {
			return nil, &DecodeError{Offset: int64(corrupt), Err: err}
		}

		return nil, &DecodeError{Offset: -1, Err: err}
	}

	return out, nil
}

// Encode is the inverse of Decode, producing padded standard base64.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
