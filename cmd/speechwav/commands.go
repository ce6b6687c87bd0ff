// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"github.com/ik5/speechwav"
	"github.com/ik5/speechwav/audio"
	"github.com/ik5/speechwav/formats/aiff"
	"github.com/ik5/speechwav/formats/mp3"
	"github.com/ik5/speechwav/formats/vorbis"
	"github.com/ik5/speechwav/formats/wav"
	"github.com/ik5/speechwav/internal/store"
	"github.com/ik5/speechwav/tts"
)

var errNoText = errors.New("give the text as an argument or with --text-file")

type SayCmd struct {
	Text     string `arg:"" optional:"" help:"Text to speak"`
	TextFile string `help:"Read the text from a file, - for stdin" placeholder:"PATH"`
	Style    string `help:"Speaking style prefixed to the text, e.g. \"Say cheerfully\""`
	Voice    string `help:"Voice name (see the voices command); defaults to TTS_VOICE"`
	Out      string `help:"Directory to write to; defaults to AUDIO_DIR" placeholder:"DIR"`
	Name     string `help:"File name without extension" default:"gemini-speech"`
	Replace  string `help:"Earlier file this recording supersedes; it is removed" placeholder:"PATH"`
}

func (c *SayCmd) Run(app *App) error {
	text, err := c.text(app.stdin)
	if err != nil {
		return err
	}

	voice := app.cfg.Gemini.Voice
	if c.Voice != "" {
		if voice, err = tts.ParseVoice(c.Voice); err != nil {
			return err
		}
	}

	client, err := tts.NewClient(app.cfg.TTS(), app.logger.Named("tts"))
	if err != nil {
		return fmt.Errorf("%w: set GEMINI_API_KEY", err)
	}

	dir := app.cfg.Audio.Dir
	if c.Out != "" {
		dir = c.Out
	}

	gen, err := speechwav.NewGenerator(client, app.cfg.WavFormat(), store.NewFileStore(dir), app.logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := gen.Generate(ctx, speechwav.Request{
		Text:     text,
		Style:    c.Style,
		Voice:    voice,
		Name:     c.Name,
		Previous: c.Replace,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(app.stdout, "%s (%s, %s)\n", res.Location, voice, res.Duration)
	return nil
}

func (c *SayCmd) text(stdin io.Reader) (string, error) {
	switch {
	case c.TextFile == "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	case c.TextFile != "":
		b, err := os.ReadFile(c.TextFile)
		if err != nil {
			return "", fmt.Errorf("reading text: %w", err)
		}
		return string(b), nil
	case c.Text != "":
		return c.Text, nil
	default:
		return "", errNoText
	}
}

type EncodeCmd struct {
	Input          string `arg:"" help:"File holding base64 PCM, - for stdin"`
	Output         string `arg:"" help:"WAV file to write"`
	Rate           int    `help:"Sample rate; defaults to AUDIO_SAMPLE_RATE"`
	Channels       int    `help:"Channel count; defaults to AUDIO_CHANNELS"`
	BytesPerSample int    `help:"Bytes per sample; defaults to AUDIO_BYTES_PER_SAMPLE"`
}

func (c *EncodeCmd) Run(app *App) error {
	var payload []byte
	var err error
	if c.Input == "-" {
		payload, err = io.ReadAll(app.stdin)
	} else {
		payload, err = os.ReadFile(c.Input)
	}
	if err != nil {
		return fmt.Errorf("reading payload: %w", err)
	}

	f := app.cfg.WavFormat()
	if c.Rate != 0 {
		f.SampleRate = c.Rate
	}
	if c.Channels != 0 {
		f.NumChannels = c.Channels
	}
	if c.BytesPerSample != 0 {
		f.BytesPerSample = c.BytesPerSample
	}

	// base64(1) wraps its output at 76 columns; pcm.Decode rejects line breaks.
	encoded := strings.NewReplacer("\r", "", "\n", "").Replace(string(payload))

	out, err := speechwav.FromBase64(strings.TrimSpace(encoded), f)
	if err != nil {
		return err
	}

	if err := os.WriteFile(c.Output, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", c.Output, err)
	}

	app.logger.Debug("encoded payload",
		zap.String("output", c.Output),
		zap.Int("bytes", len(out)))
	fmt.Fprintf(app.stdout, "%s: %d bytes, %s\n", c.Output, len(out), f.Duration(len(out)-wav.HeaderSize))

	return nil
}

type InspectCmd struct {
	Files []string `arg:"" help:"WAV files" type:"existingfile"`
}

func (c *InspectCmd) Run(app *App) error {
	var errs []error
	for _, path := range c.Files {
		if err := inspectFile(app.stdout, path); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		}
	}

	return errors.Join(errs...)
}

func inspectFile(w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	info, err := wav.Inspect(bytes.NewReader(data))
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s: format %d, %d Hz, %d channel(s), %d bits, %d byte/s, %d data bytes, %s\n",
		path, info.AudioFormat, info.SampleRate, info.NumChannels, info.BitDepth,
		info.ByteRate, info.DataSize, info.Duration)

	// The canonical parser only understands files laid out like Encode's.
	h, err := wav.ParseHeader(data)
	switch {
	case err != nil:
		fmt.Fprintf(w, "  not canonical: %v\n", err)
	case h.Format.SampleRate != info.SampleRate ||
		h.Format.NumChannels != info.NumChannels ||
		h.Format.BitsPerSample() != info.BitDepth ||
		int64(h.DataSize) != info.DataSize:
		return fmt.Errorf("header %+v disagrees with go-audio %+v", h, info)
	case int(h.ChunkSize) != len(data)-8:
		fmt.Fprintf(w, "  canonical header, RIFF size %d but file has %d bytes\n", h.ChunkSize, len(data))
	default:
		fmt.Fprintln(w, "  canonical 44-byte header")
	}

	return nil
}

type ConvertCmd struct {
	Input  string `arg:"" help:"Input audio file (wav, mp3, ogg, aiff)" type:"existingfile"`
	Output string `arg:"" help:"WAV file to write"`
	Rate   int    `help:"Output sample rate; defaults to AUDIO_SAMPLE_RATE"`
}

func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

func (c *ConvertCmd) Run(app *App) error {
	reg := newRegistry()

	dec, err := reg.Lookup(c.Input)
	if err != nil {
		return fmt.Errorf("%w (supported: %s)", err, strings.Join(reg.Formats(), ", "))
	}

	in, err := os.Open(c.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	src, err := dec.Decode(in)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", c.Input, err)
	}
	defer src.Close()

	rate := app.cfg.Audio.SampleRate
	if c.Rate != 0 {
		rate = c.Rate
	}

	app.logger.Debug("converting",
		zap.String("input", c.Input),
		zap.Int("input_rate", src.SampleRate()),
		zap.Int("input_channels", src.Channels()),
		zap.Int("output_rate", rate))

	out, err := speechwav.Convert(src, rate)
	if err != nil {
		return err
	}

	if err := os.WriteFile(c.Output, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", c.Output, err)
	}

	fmt.Fprintf(app.stdout, "%s: %d Hz mono, %d bytes\n", c.Output, rate, len(out))
	return nil
}

type VoicesCmd struct{}

func (VoicesCmd) Run(app *App) error {
	for _, v := range tts.Voices() {
		marker := ""
		if v == app.cfg.Gemini.Voice {
			marker = " (default)"
		}
		fmt.Fprintf(app.stdout, "%s%s\n", v, marker)
	}

	return nil
}
