// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const (
	// HeaderSize is the size of the canonical RIFF/WAVE header.
	HeaderSize = 44

	// riffOverhead is the part of the header counted by ChunkSize.
	riffOverhead = HeaderSize - 8
	fmtChunkSize = 16
	formatPCM    = 1
)

// checkSizes validates f and the data size against the 32-bit size fields.
func checkSizes(f Format, dataLen uint64) error {
	if err := f.Validate(); err != nil {
		return err
	}

	if dataLen > math.MaxUint32 {
		return &OverflowError{Field: "Subchunk2Size", Value: dataLen, Limit: math.MaxUint32}
	}

	if chunk := dataLen + riffOverhead; chunk > math.MaxUint32 {
		return &OverflowError{Field: "ChunkSize", Value: chunk, Limit: math.MaxUint32}
	}

	return nil
}

// putHeader writes the 44-byte header into dst. Sizes must already be
// checked.
func putHeader(dst []byte, f Format, dataLen uint32) {
	// RIFF header (12 bytes)
	copy(dst[0:4], "RIFF")
	binary.LittleEndian.PutUint32(dst[4:8], riffOverhead+dataLen)
	copy(dst[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(dst[12:16], "fmt ")
	binary.LittleEndian.PutUint32(dst[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(dst[20:22], formatPCM)
	binary.LittleEndian.PutUint16(dst[22:24], uint16(f.NumChannels))
	binary.LittleEndian.PutUint32(dst[24:28], uint32(f.SampleRate))
	binary.LittleEndian.PutUint32(dst[28:32], uint32(f.ByteRate()))
	binary.LittleEndian.PutUint16(dst[32:34], uint16(f.BlockAlign()))
	binary.LittleEndian.PutUint16(dst[34:36], uint16(f.BitsPerSample()))

	// data chunk header (8 bytes)
	copy(dst[36:40], "data")
	binary.LittleEndian.PutUint32(dst[40:44], dataLen)
}

// Encode wraps raw little-endian PCM bytes into a complete WAV file.
//
// The data is copied verbatim after the header: its length is not required
// to be a multiple of f.BlockAlign(). The returned slice is newly allocated
// and owned by the caller. Encode is safe for concurrent use.
func Encode(pcm []byte, f Format) ([]byte, error) {
	if err := checkSizes(f, uint64(len(pcm))); err != nil {
		return nil, err
	}

	out := make([]byte, HeaderSize+len(pcm))
	putHeader(out[:HeaderSize], f, uint32(len(pcm)))
	copy(out[HeaderSize:], pcm)

	return out, nil
}

// EncodeHeader returns only the header for dataLen bytes of audio in f.
func EncodeHeader(dataLen int, f Format) ([]byte, error) {
	if dataLen < 0 {
		return nil, fmt.Errorf("%w: negative data length %d", ErrInvalidFormat, dataLen)
	}

	if err := checkSizes(f, uint64(dataLen)); err != nil {
		return nil, err
	}

	header := make([]byte, HeaderSize)
	putHeader(header, f, uint32(dataLen))

	return header, nil
}

// WritePCM writes the same bytes as Encode to w without building the whole
// file in memory.
func WritePCM(w io.Writer, pcm []byte, f Format) (int64, error) {
	header, err := EncodeHeader(len(pcm), f)
	if err != nil {
		return 0, err
	}

	n, err := w.Write(header)
	written := int64(n)
	if err != nil {
		return written, fmt.Errorf("%w", err)
	}

	n, err = w.Write(pcm)
	written += int64(n)
	if err != nil {
		return written, fmt.Errorf("%w", err)
	}

	return written, nil
}
