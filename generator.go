// SPDX-License-Identifier: EPL-2.0

package speechwav

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ik5/speechwav/formats/wav"
	"github.com/ik5/speechwav/tts"
)

var ErrNoSynthesizer = errors.New("speech generator needs a synthesizer")

// Synthesizer produces base64 PCM speech for a prompt. *tts.Client
// implements it.
type Synthesizer interface {
	Synthesize(ctx context.Context, prompt string, voice tts.Voice) (*tts.Audio, error)
}

// Sink stores a finished WAV file and returns where it went.
// *store.FileStore implements it.
type Sink interface {
	Save(data []byte, name string) (string, error)
	// Replace saves data and then releases previous, which the new file
	// supersedes. previous survives a failed save.
	Replace(previous string, data []byte, name string) (string, error)
}

// Request is one piece of text to speak.
type Request struct {
	Text  string
	Style string
	Voice tts.Voice

	// Name is the file name handed to the sink, without extension.
	Name string
	// Previous is an earlier result this one supersedes.
	Previous string
}

type Result struct {
	WAV      []byte
	Location string
	Header   wav.Header
	Duration time.Duration
	MIMEType string
}

// Generator runs a Request from text to a stored WAV file. It keeps no state
// between calls and is safe for concurrent use when its collaborators are.
type Generator struct {
	synth  Synthesizer
	format wav.Format
	sink   Sink
	logger *zap.Logger
}

// NewGenerator checks format up front. sink may be nil, in which case
// results are returned but not stored.
func NewGenerator(synth Synthesizer, format wav.Format, sink Sink, logger *zap.Logger) (*Generator, error) {
	if synth == nil {
		return nil, ErrNoSynthesizer
	}

	if err := format.Validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{
		synth:  synth,
		format: format,
		sink:   sink,
		logger: logger,
	}, nil
}

// Generate validates req, synthesizes it, wraps the audio as WAV and stores
// it. Nothing is stored when validation, synthesis or encoding fails, and a
// superseded file is only released once the new one is saved.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := tts.ValidateText(req.Text); err != nil {
		return nil, err
	}

	prompt := tts.BuildPrompt(req.Text, req.Style)

	g.logger.Info("generating speech",
		zap.String("voice", req.Voice.String()),
		zap.Int("text_length", len([]rune(req.Text))),
		zap.Bool("styled", prompt != req.Text))

	audio, err := g.synth.Synthesize(ctx, prompt, req.Voice)
	if err != nil {
		return nil, err
	}

	if rate := audio.SampleRate(); rate != 0 && rate != g.format.SampleRate {
		g.logger.Warn("service sample rate differs from output format",
			zap.Int("service_rate", rate),
			zap.Int("format_rate", g.format.SampleRate))
	}

	out, err := FromBase64(audio.Data, g.format)
	if err != nil {
		return nil, fmt.Errorf("encoding speech: %w", err)
	}

	header, err := wav.ParseHeader(out)
	if err != nil {
		return nil, fmt.Errorf("encoding speech: %w", err)
	}

	res := &Result{
		WAV:      out,
		Header:   header,
		Duration: header.Format.Duration(int(header.DataSize)),
		MIMEType: audio.MIMEType,
	}

	if g.sink != nil {
		if req.Previous != "" {
			res.Location, err = g.sink.Replace(req.Previous, out, req.Name)
		} else {
			res.Location, err = g.sink.Save(out, req.Name)
		}
		if err != nil {
			return nil, fmt.Errorf("storing speech: %w", err)
		}
	}

	g.logger.Info("speech ready",
		zap.String("location", res.Location),
		zap.Int("bytes", len(out)),
		zap.Duration("duration", res.Duration))

	return res, nil
}
