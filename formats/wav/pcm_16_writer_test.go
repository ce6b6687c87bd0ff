// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestWriteWAV16_CorrectHeader(t *testing.T) {
	t.Parallel()

	samples := []int16{100, 200, 300, 400}
	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 44100, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	h, err := ParseHeader(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}

	want := Format{SampleRate: 44100, NumChannels: 1, BytesPerSample: 2}
	if h.Format != want {
		t.Errorf("format = %+v, want %+v", h.Format, want)
	}

	if h.DataSize != uint32(len(samples)*2) {
		t.Errorf("data size = %d, want %d", h.DataSize, len(samples)*2)
	}

	if h.ChunkSize != uint32(buf.Len()-8) {
		t.Errorf("RIFF size = %d, want %d", h.ChunkSize, buf.Len()-8)
	}
}

func TestWriteWAV16_EmptySamples(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 8000, nil); err != nil {
		t.Fatalf("WriteWAV16() error = %v, want nil", err)
	}

	if buf.Len() != HeaderSize {
		t.Errorf("WAV file size = %d, want 44 (header only)", buf.Len())
	}
}

func TestWriteWAV16_SampleData(t *testing.T) {
	t.Parallel()

	samples := []int16{100, -200, 300, -400, 0x1234}
	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 8000, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()
	for i, expected := range samples {
		offset := HeaderSize + i*2
		actual := int16(binary.LittleEndian.Uint16(data[offset : offset+2]))
		if actual != expected {
			t.Errorf("sample[%d] = %d, want %d", i, actual, expected)
		}
	}

	// little-endian: 0x34, 0x12
	last := data[len(data)-2:]
	if last[0] != 0x34 || last[1] != 0x12 {
		t.Errorf("sample bytes = [%02x %02x], want [34 12]", last[0], last[1])
	}
}

func TestWriteWAV16_MatchesEncode(t *testing.T) {
	t.Parallel()

	// Longer than one conversion chunk.
	samples := make([]int16, 8192*2+17)
	pcm := make([]byte, len(samples)*2)
	for i := range samples {
		samples[i] = int16(i*7 - 30000)
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(samples[i]))
	}

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 24000, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	want, err := Encode(pcm, SpeechFormat)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if !bytes.Equal(buf.Bytes(), want) {
		t.Error("WriteWAV16() output differs from Encode()")
	}
}

func TestWriteWAV16_InvalidRate(t *testing.T) {
	t.Parallel()

	err := WriteWAV16(new(bytes.Buffer), 0, []int16{1})
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("WriteWAV16() error = %v, want ErrInvalidFormat", err)
	}
}

func TestWriteWAV16_WriterError(t *testing.T) {
	t.Parallel()

	boom := errors.New("closed pipe")
	err := WriteWAV16(&failingWriter{after: 1, err: boom}, 8000, []int16{1, 2, 3})
	if !errors.Is(err, boom) {
		t.Errorf("WriteWAV16() error = %v, want %v", err, boom)
	}
}

func BenchmarkWriteWAV16(b *testing.B) {
	samples := make([]int16, 44100)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	b.ReportAllocs()

	for b.Loop() {
		buf := new(bytes.Buffer)
		_ = WriteWAV16(buf, 44100, samples)
	}
}
