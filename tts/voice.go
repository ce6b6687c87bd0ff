// SPDX-License-Identifier: EPL-2.0

package tts

import (
	"fmt"
	"strings"
)

// Voice is one of the prebuilt speech voices.
type Voice int

const (
	VoiceKore Voice = iota
	VoicePuck
	VoiceCharon
	VoiceFenrir
	VoiceZephyr
	VoiceAoede
	VoiceLeda
	VoiceOrus
)

// DefaultVoice is used when a request does not name one.
const DefaultVoice = VoiceKore

var voiceNames = [...]string{
	VoiceKore:   "Kore",
	VoicePuck:   "Puck",
	VoiceCharon: "Charon",
	VoiceFenrir: "Fenrir",
	VoiceZephyr: "Zephyr",
	VoiceAoede:  "Aoede",
	VoiceLeda:   "Leda",
	VoiceOrus:   "Orus",
}

// String returns the name the service expects in prebuiltVoiceConfig.
func (v Voice) String() string {
	if !v.IsValid() {
		return fmt.Sprintf("Voice(%d)", int(v))
	}
	return voiceNames[v]
}

func (v Voice) IsValid() bool {
	return v >= 0 && int(v) < len(voiceNames)
}

// Voices lists every voice in declaration order.
func Voices() []Voice {
	out := make([]Voice, len(voiceNames))
	for i := range out {
		out[i] = Voice(i)
	}
	return out
}

// ParseVoice matches a voice name case-insensitively.
func ParseVoice(name string) (Voice, error) {
	name = strings.TrimSpace(name)
	for i, n := range voiceNames {
		if strings.EqualFold(n, name) {
			return Voice(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownVoice, name)
}

// UnmarshalText lets a Voice be used directly as a flag or config value.
func (v *Voice) UnmarshalText(text []byte) error {
	parsed, err := ParseVoice(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v Voice) MarshalText() ([]byte, error) {
	if !v.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVoice, int(v))
	}
	return []byte(v.String()), nil
}
