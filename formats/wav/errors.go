// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
)

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrUnsupportedWavChunks  = errors.New("unsupported WAV chunks")
	ErrNotPCM                = errors.New("audio format is not PCM")
	ErrShortHeader           = errors.New("WAV header shorter than 44 bytes")

	ErrInvalidFormat = errors.New("invalid WAV format")
	ErrOverflow      = errors.New("WAV header field overflow")
)

// InvalidFormatError reports a format parameter that is not a positive
// integer.
type InvalidFormatError struct {
	Field string
	Value int
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("%s: %s must be positive, got %d", ErrInvalidFormat, e.Field, e.Value)
}

func (e *InvalidFormatError) Is(target error) bool { return target == ErrInvalidFormat }

// OverflowError reports a value that does not fit its fixed-width header
// field.
type OverflowError struct {
	Field string
	Value uint64
	Limit uint64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s: %s = %d exceeds %d", ErrOverflow, e.Field, e.Value, e.Limit)
}

func (e *OverflowError) Is(target error) bool { return target == ErrOverflow }
