// SPDX-License-Identifier: EPL-2.0

package speechwav

import (
	"fmt"
	"io"

	"github.com/ik5/speechwav/audio"
	"github.com/ik5/speechwav/formats/wav"
	"github.com/ik5/speechwav/pcm"
)

const defaultBufSize = 4096

// ResampleToMono16 mixes src down to mono, resamples it to targetRate and
// collects the result as 16-bit PCM. It reads src until io.EOF and returns
// the samples together with the output rate.
//
// bufferSize is the read size in samples; zero or less uses 4096.
func ResampleToMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	if bufferSize <= 0 {
		bufferSize = defaultBufSize
	}

	// Mix first: the resampler then works on one channel instead of all.
	resampler, err := audio.NewResampler(audio.NewMonoMixer(src), targetRate)
	if err != nil {
		return nil, targetRate, err
	}

	// Start with about two seconds and let append grow it.
	pcm16 := make([]int16, 0, targetRate*2)
	buf := make([]float32, bufferSize)

	for {
		n, err := resampler.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm16 = append(pcm16, pcm.Float32ToInt16(x))
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}
	}

	return pcm16, targetRate, nil
}

// Convert runs src through ResampleToMono16 and encodes the result as a mono
// 16-bit WAV file at targetRate. src is not closed.
func Convert(src audio.Source, targetRate int) ([]byte, error) {
	samples, rate, err := ResampleToMono16(src, targetRate, src.BufSize())
	if err != nil {
		return nil, err
	}

	return wav.Encode(pcm.FromInt16(samples), wav.Format{
		SampleRate:     rate,
		NumChannels:    1,
		BytesPerSample: pcm.BytesPerSample,
	})
}
