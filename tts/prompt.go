// SPDX-License-Identifier: EPL-2.0

package tts

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxTextLength is the longest text, in characters, accepted for one
// request.
const MaxTextLength = 5000

// ValidateText rejects blank text and text longer than MaxTextLength.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyPrompt
	}

	if n := utf8.RuneCountInString(text); n > MaxTextLength {
		return fmt.Errorf("%w: %d characters, limit %d", ErrTextTooLong, n, MaxTextLength)
	}

	return nil
}

// BuildPrompt prefixes text with a speaking style such as "Say cheerfully".
// A blank style leaves the text unchanged.
func BuildPrompt(text, style string) string {
	style = strings.TrimSpace(style)
	if style == "" {
		return text
	}

	return style + ": " + text
}
