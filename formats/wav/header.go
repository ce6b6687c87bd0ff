// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Header is the decoded form of a canonical 44-byte WAV header.
type Header struct {
	Format    Format
	ChunkSize uint32 // RIFF size: file length minus 8
	DataSize  uint32 // length of the data chunk
}

// ParseHeader decodes the canonical header written by Encode: RIFF/WAVE, a
// 16-byte PCM fmt chunk and a data chunk starting at offset 36. It is the
// inverse of Encode for the header part of the file.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, ErrShortHeader
	}

	if !bytes.Equal(b[0:4], []byte("RIFF")) || !bytes.Equal(b[8:12], []byte("WAVE")) {
		return Header{}, ErrNotWavFile
	}

	if !bytes.Equal(b[12:16], []byte("fmt ")) || binary.LittleEndian.Uint32(b[16:20]) != fmtChunkSize {
		return Header{}, ErrUnsupportedWavLayout
	}

	if binary.LittleEndian.Uint16(b[20:22]) != formatPCM {
		return Header{}, ErrNotPCM
	}

	bits := binary.LittleEndian.Uint16(b[34:36])
	if bits == 0 || bits%8 != 0 {
		return Header{}, fmt.Errorf("%w: %d bits per sample", ErrUnsupportedWavLayout, bits)
	}

	if !bytes.Equal(b[36:40], []byte("data")) {
		return Header{}, ErrUnsupportedWavChunks
	}

	h := Header{
		Format: Format{
			SampleRate:     int(binary.LittleEndian.Uint32(b[24:28])),
			NumChannels:    int(binary.LittleEndian.Uint16(b[22:24])),
			BytesPerSample: int(bits / 8),
		},
		ChunkSize: binary.LittleEndian.Uint32(b[4:8]),
		DataSize:  binary.LittleEndian.Uint32(b[40:44]),
	}

	if err := h.Format.Validate(); err != nil {
		return Header{}, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	if got, want := binary.LittleEndian.Uint16(b[32:34]), h.Format.BlockAlign(); int(got) != want {
		return Header{}, fmt.Errorf("%w: block align %d, want %d", ErrUnsupportedWavLayout, got, want)
	}

	if got, want := binary.LittleEndian.Uint32(b[28:32]), h.Format.ByteRate(); int(got) != want {
		return Header{}, fmt.Errorf("%w: byte rate %d, want %d", ErrUnsupportedWavLayout, got, want)
	}

	return h, nil
}
