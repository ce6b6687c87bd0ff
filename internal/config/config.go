// SPDX-License-Identifier: EPL-2.0

// Package config loads settings from the environment and an optional .env
// file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ik5/speechwav/formats/wav"
	"github.com/ik5/speechwav/tts"
)

type Config struct {
	Gemini GeminiConfig
	Audio  AudioConfig
	App    AppConfig
}

type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Voice   tts.Voice
}

type AudioConfig struct {
	Dir            string
	SampleRate     int
	Channels       int
	BytesPerSample int
}

type AppConfig struct {
	LogLevel string
}

// Load reads .env (or the given files) and then the environment. A missing
// default .env is ignored; an env file named explicitly must exist.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, fmt.Errorf("loading env files: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	var errs []error
	cfg := &Config{}

	cfg.Gemini.APIKey = getEnvDefault("GEMINI_API_KEY", os.Getenv("API_KEY"))
	cfg.Gemini.BaseURL = getEnvDefault("GEMINI_BASE_URL", tts.DefaultBaseURL)
	cfg.Gemini.Model = getEnvDefault("GEMINI_MODEL", tts.DefaultModel)
	cfg.Gemini.Timeout = getEnvDuration("TTS_TIMEOUT", tts.DefaultTimeout, &errs)

	voice, err := tts.ParseVoice(getEnvDefault("TTS_VOICE", tts.DefaultVoice.String()))
	if err != nil {
		errs = append(errs, fmt.Errorf("TTS_VOICE: %w", err))
	}
	cfg.Gemini.Voice = voice

	cfg.Audio.Dir = getEnvDefault("AUDIO_DIR", ".")
	cfg.Audio.SampleRate = getEnvInt("AUDIO_SAMPLE_RATE", wav.SpeechFormat.SampleRate, &errs)
	cfg.Audio.Channels = getEnvInt("AUDIO_CHANNELS", wav.SpeechFormat.NumChannels, &errs)
	cfg.Audio.BytesPerSample = getEnvInt("AUDIO_BYTES_PER_SAMPLE", wav.SpeechFormat.BytesPerSample, &errs)

	cfg.App.LogLevel = strings.ToLower(getEnvDefault("LOG_LEVEL", "info"))

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnvDefault(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int, errs *[]error) int {
	v := getEnvDefault(key, "")
	if v == "" {
		return def
	}

	i, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: not an integer: %q", key, v))
		return def
	}
	return i
}

func getEnvDuration(key string, def time.Duration, errs *[]error) time.Duration {
	v := getEnvDefault(key, "")
	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}

func validateConfig(cfg *Config) error {
	if cfg.Gemini.Timeout <= 0 {
		return fmt.Errorf("TTS_TIMEOUT must be positive, got %s", cfg.Gemini.Timeout)
	}

	if err := cfg.WavFormat().Validate(); err != nil {
		return fmt.Errorf("audio format: %w", err)
	}

	switch cfg.App.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", cfg.App.LogLevel)
	}

	return nil
}

// TTS returns the client settings. The API key is not checked here;
// tts.NewClient rejects an empty one.
func (c *Config) TTS() tts.Config {
	return tts.Config{
		APIKey:  c.Gemini.APIKey,
		BaseURL: c.Gemini.BaseURL,
		Model:   c.Gemini.Model,
		Timeout: c.Gemini.Timeout,
	}
}

func (c *Config) WavFormat() wav.Format {
	return wav.Format{
		SampleRate:     c.Audio.SampleRate,
		NumChannels:    c.Audio.Channels,
		BytesPerSample: c.Audio.BytesPerSample,
	}
}

// GetLogLevel returns the zap level for LOG_LEVEL.
func (c *AppConfig) GetLogLevel() zap.AtomicLevel {
	switch c.LogLevel {
	case "debug":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
}
