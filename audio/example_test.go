// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"io"

	"github.com/ik5/speechwav/audio"
	"github.com/ik5/speechwav/internal/audiotest"
)

func count(src audio.Source) int {
	buf := make([]float32, 4096)
	total := 0
	for {
		n, err := src.ReadSamples(buf)
		total += n
		if err != nil {
			return total
		}
	}
}

// Example_resampler converts one second of 24 kHz speech to 8 kHz.
func Example_resampler() {
	source := audiotest.NewSineSource(24000, 1, 24000, 440.0)

	resampler, err := audio.NewResampler(source, 8000)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Output sample rate: %d Hz\n", resampler.SampleRate())
	fmt.Printf("Total samples read: %d\n", count(resampler))
	// Output:
	// Output sample rate: 8000 Hz
	// Total samples read: 8000
}

// Example_monoMixer downmixes stereo to mono.
func Example_monoMixer() {
	stereo := audiotest.NewMockSource(16000, 2, 4, func(sample, channel int) float32 {
		if channel == 0 {
			return 0.5
		}
		return -0.25
	})

	mono := audio.NewMonoMixer(stereo)

	buf := make([]float32, 4)
	n, err := mono.ReadSamples(buf)
	if err != nil && err != io.EOF {
		fmt.Println(err)
		return
	}

	fmt.Printf("Channels: %d\n", mono.Channels())
	fmt.Printf("Samples: %v\n", buf[:n])
	// Output:
	// Channels: 1
	// Samples: [0.125 0.125 0.125 0.125]
}

// Example_processingChain chains resampling and mixing.
func Example_processingChain() {
	source := audiotest.NewSilentSource(16000, 2, 16000)

	resampler, _ := audio.NewResampler(source, 8000)
	mono := audio.NewMonoMixer(resampler)

	fmt.Printf("%d Hz, %d channel(s), %d samples\n", mono.SampleRate(), mono.Channels(), count(mono))
	// Output: 8000 Hz, 1 channel(s), 8000 samples
}
