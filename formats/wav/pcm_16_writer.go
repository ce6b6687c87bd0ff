// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate. samples must be int16 PCM.
// Samples are converted in fixed-size chunks, so memory use does not grow
// with the length of the recording.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	f := Format{SampleRate: sampleRate, NumChannels: 1, BytesPerSample: 2}

	header, err := EncodeHeader(len(samples)*2, f)
	if err != nil {
		return err
	}

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	const chunkSize = 8192
	buf := make([]byte, min(len(samples), chunkSize)*2)

	for start := 0; start < len(samples); start += chunkSize {
		chunk := samples[start:min(start+chunkSize, len(samples))]
		out := buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(out[j*2:], uint16(s))
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
