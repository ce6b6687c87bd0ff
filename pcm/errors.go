// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"fmt"
)

// ErrDecode is matched by every error returned from Decode.
var ErrDecode = errors.New("malformed base64 audio")

// DecodeError reports where base64 input stopped being valid.
type DecodeError struct {
	// Offset of the first illegal byte, or -1 when the decoder did not
	// report a position.
	Offset int64
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s: %v", ErrDecode, e.Err)
	}

	return fmt.Sprintf("%s at offset %d: %v", ErrDecode, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }
