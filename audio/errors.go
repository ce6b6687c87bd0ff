// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrInvalidRate    = errors.New("sample rate must be positive")
	ErrUnknownFormat  = errors.New("unknown audio format")
)

// FormatError names a format no decoder is registered for.
type FormatError struct {
	Format string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownFormat, e.Format)
}

func (e *FormatError) Is(target error) bool { return target == ErrUnknownFormat }
