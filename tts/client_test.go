// SPDX-License-Identifier: EPL-2.0

package tts

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const audioResponse = `{
  "candidates": [{
    "content": {"parts": [{"inlineData": {"mimeType": "audio/L16;codec=pcm;rate=24000", "data": "AAABAP9/AIA="}}]},
    "finishReason": "STOP"
  }]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL + "/"}, zap.NewNop())
	require.NoError(t, err)

	return client
}

func TestNewClient_MissingAPIKey(t *testing.T) {
	for _, key := range []string{"", "   "} {
		client, err := NewClient(Config{APIKey: key}, zap.NewNop())
		assert.Nil(t, client)
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(Config{APIKey: "k"}, nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, client.cfg.BaseURL)
	assert.Equal(t, DefaultModel, client.cfg.Model)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
	assert.NotNil(t, client.logger)
}

func TestSynthesize_Request(t *testing.T) {
	requests := make(chan generateRequest, 1)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/"+DefaultModel+":generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req generateRequest
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(body, &req))
		requests <- req

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, audioResponse)
	})

	audio, err := client.Synthesize(context.Background(), "Say cheerfully: hi", VoicePuck)
	require.NoError(t, err)

	assert.Equal(t, "AAABAP9/AIA=", audio.Data)
	assert.Equal(t, "audio/L16;codec=pcm;rate=24000", audio.MIMEType)
	assert.Equal(t, 24000, audio.SampleRate())

	got := <-requests
	require.Len(t, got.Contents, 1)
	require.Len(t, got.Contents[0].Parts, 1)
	assert.Equal(t, "Say cheerfully: hi", got.Contents[0].Parts[0].Text)
	assert.Equal(t, []string{"AUDIO"}, got.GenerationConfig.ResponseModalities)
	assert.Equal(t, "Puck", got.GenerationConfig.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName)
}

func TestSynthesize_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"no candidates", http.StatusOK, `{"candidates": []}`, ErrNoAudio},
		{"blocked", http.StatusOK, `{"promptFeedback": {"blockReason": "SAFETY"}}`, ErrNoAudio},
		{"text only", http.StatusOK, `{"candidates": [{"content": {"parts": [{"text": "sorry"}]}}]}`, ErrNoAudio},
		{"empty data", http.StatusOK, `{"candidates": [{"content": {"parts": [{"inlineData": {"mimeType": "audio/L16", "data": ""}}]}}]}`, ErrNoAudio},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			audio, err := client.Synthesize(context.Background(), "hello", VoiceKore)
			assert.Nil(t, audio)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "failed to generate speech")
		})
	}
}

func TestSynthesize_BlockReasonInMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"promptFeedback": {"blockReason": "SAFETY"}}`)
	})

	_, err := client.Synthesize(context.Background(), "hello", VoiceKore)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SAFETY")
}

func TestSynthesize_APIError(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error": {"message": "quota exceeded"}}`+"\n")
	})

	_, err := client.Synthesize(context.Background(), "hello", VoiceKore)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, `{"error": {"message": "quota exceeded"}}`, apiErr.Body)
	assert.Equal(t, int32(1), calls.Load(), "failed requests are not retried")
}

func TestSynthesize_MalformedJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"candidates": [`)
	})

	_, err := client.Synthesize(context.Background(), "hello", VoiceKore)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestSynthesize_InvalidInput(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(http.ResponseWriter, *http.Request) {
		calls.Add(1)
	})

	_, err := client.Synthesize(context.Background(), "  ", VoiceKore)
	assert.ErrorIs(t, err, ErrEmptyPrompt)

	_, err = client.Synthesize(context.Background(), "hello", Voice(99))
	assert.ErrorIs(t, err, ErrUnknownVoice)

	assert.Zero(t, calls.Load())
}

func TestSynthesize_ContextCanceled(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Synthesize(ctx, "hello", VoiceKore)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAudio_SampleRate(t *testing.T) {
	tests := []struct {
		mime string
		want int
	}{
		{"audio/L16;codec=pcm;rate=24000", 24000},
		{"audio/L16; rate=16000", 16000},
		{"audio/L16", 0},
		{"audio/L16;rate=fast", 0},
		{"audio/L16;rate=-5", 0},
		{"", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, (&Audio{MIMEType: tt.mime}).SampleRate(), tt.mime)
	}
}
