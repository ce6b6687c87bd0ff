// SPDX-License-Identifier: EPL-2.0

package tts

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAPIKey = errors.New("missing API key")
	ErrEmptyPrompt   = errors.New("prompt cannot be empty")
	ErrTextTooLong   = errors.New("text is too long")
	ErrUnknownVoice  = errors.New("unknown voice")

	// ErrNoAudio means the response carried no inline audio, usually
	// because the request was blocked.
	ErrNoAudio = errors.New("no audio data received, the response may have been blocked")
)

// APIError is a non-200 answer from the service.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("speech API returned status %d: %s", e.StatusCode, e.Body)
}
