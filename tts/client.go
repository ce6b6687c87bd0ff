// SPDX-License-Identifier: EPL-2.0

package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-2.5-flash-preview-tts"
	DefaultTimeout = 90 * time.Second

	// maxErrorBody caps how much of an error response is kept in APIError.
	maxErrorBody = 4096
)

// Config holds everything the client needs. Zero values other than APIKey
// are replaced by the defaults above.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Audio is the synthesized speech as returned by the service.
type Audio struct {
	// Data is base64 encoded little-endian 16-bit PCM.
	Data     string
	MIMEType string
}

// SampleRate reads the rate parameter of a MIME type such as
// "audio/L16;codec=pcm;rate=24000". It returns 0 when there is none.
func (a *Audio) SampleRate() int {
	_, params, err := mime.ParseMediaType(a.MIMEType)
	if err != nil {
		return 0
	}

	rate, err := strconv.Atoi(params["rate"])
	if err != nil || rate <= 0 {
		return 0
	}

	return rate
}

// Client calls generateContent on a speech capable Gemini model.
type Client struct {
	logger     *zap.Logger
	cfg        Config
	httpClient *http.Client
}

// NewClient fails when cfg carries no API key, so a misconfigured process
// stops before the first request.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		logger: logger,
		cfg:    cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generationConfig struct {
	ResponseModalities []string     `json:"responseModalities"`
	SpeechConfig       speechConfig `json:"speechConfig"`
}

type speechConfig struct {
	VoiceConfig struct {
		PrebuiltVoiceConfig struct {
			VoiceName string `json:"voiceName"`
		} `json:"prebuiltVoiceConfig"`
	} `json:"voiceConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

// Synthesize turns prompt into speech spoken by voice. Every failure is
// wrapped as "failed to generate speech".
func (c *Client) Synthesize(ctx context.Context, prompt string, voice Voice) (*Audio, error) {
	audio, err := c.synthesize(ctx, prompt, voice)
	if err != nil {
		c.logger.Error("speech generation failed",
			zap.String("voice", voice.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to generate speech: %w", err)
	}

	return audio, nil
}

func (c *Client) synthesize(ctx context.Context, prompt string, voice Voice) (*Audio, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	if !voice.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVoice, int(voice))
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseModalities: []string{"AUDIO"},
		},
	}
	reqBody.GenerationConfig.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName = voice.String()

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.cfg.BaseURL, c.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	c.logger.Debug("sending speech request",
		zap.String("model", c.cfg.Model),
		zap.String("voice", voice.String()),
		zap.Int("prompt_length", len(prompt)))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	audio := firstAudio(&parsed)
	if audio == nil {
		if parsed.PromptFeedback != nil && parsed.PromptFeedback.BlockReason != "" {
			return nil, fmt.Errorf("%w (block reason %s)", ErrNoAudio, parsed.PromptFeedback.BlockReason)
		}
		return nil, ErrNoAudio
	}

	c.logger.Info("speech generated",
		zap.String("voice", voice.String()),
		zap.String("mime_type", audio.MIMEType),
		zap.Int("base64_length", len(audio.Data)),
		zap.Duration("elapsed", time.Since(start)))

	return audio, nil
}

// firstAudio returns the inline data of the first part of the first
// candidate.
func firstAudio(resp *generateResponse) *Audio {
	if len(resp.Candidates) == 0 {
		return nil
	}

	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].InlineData == nil || parts[0].InlineData.Data == "" {
		return nil
	}

	return &Audio{
		Data:     parts[0].InlineData.Data,
		MIMEType: parts[0].InlineData.MIMEType,
	}
}
