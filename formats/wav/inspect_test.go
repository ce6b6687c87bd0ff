// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/ik5/speechwav/internal/audiotest"
)

func TestInspect_EncodedFile(t *testing.T) {
	t.Parallel()

	// Half a second of 24 kHz mono speech.
	pcm := audiotest.RampPCM(12000)
	out, err := Encode(pcm, SpeechFormat)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	info, err := Inspect(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	want := Info{
		AudioFormat: 1,
		NumChannels: 1,
		SampleRate:  24000,
		BitDepth:    16,
		ByteRate:    48000,
		DataSize:    int64(len(pcm)),
		Duration:    500 * time.Millisecond,
	}
	if info != want {
		t.Errorf("Inspect() = %+v, want %+v", info, want)
	}
}

func TestInspect_AgreesWithParseHeader(t *testing.T) {
	t.Parallel()

	for _, f := range []Format{
		{8000, 1, 2},
		{44100, 2, 2},
		{48000, 2, 3},
	} {
		out, err := Encode(make([]byte, f.BlockAlign()*10), f)
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}

		h, err := ParseHeader(out)
		if err != nil {
			t.Fatalf("ParseHeader() error = %v", err)
		}

		info, err := Inspect(bytes.NewReader(out))
		if err != nil {
			t.Fatalf("Inspect() error = %v", err)
		}

		if info.SampleRate != h.Format.SampleRate ||
			info.NumChannels != h.Format.NumChannels ||
			info.BitDepth != h.Format.BitsPerSample() ||
			info.DataSize != int64(h.DataSize) {
			t.Errorf("Inspect() = %+v, ParseHeader() = %+v", info, h)
		}
	}
}

func TestInspect_NotWav(t *testing.T) {
	t.Parallel()

	_, err := Inspect(bytes.NewReader([]byte("this is plainly not a RIFF file at all......")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Inspect() error = %v, want ErrNotWavFile", err)
	}
}
