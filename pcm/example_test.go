// SPDX-License-Identifier: EPL-2.0

package pcm_test

import (
	"errors"
	"fmt"

	"github.com/ik5/speechwav/pcm"
)

func ExampleDecode() {
	raw, err := pcm.Decode("AAABAP9/AIA=")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(len(raw), pcm.ToInt16(raw))
	// Output: 8 [0 1 32767 -32768]
}

func ExampleDecode_malformed() {
	_, err := pcm.Decode("AB!D")

	fmt.Println(errors.Is(err, pcm.ErrDecode))
	fmt.Println(err)
	// Output:
	// true
	// malformed base64 audio at offset 2: illegal base64 data at input byte 2
}

func ExampleNewSource() {
	src := pcm.NewSource(pcm.FromInt16([]int16{0, 8192, -8192}), 24000, 1)

	buf := make([]float32, 4)
	n, _ := src.ReadSamples(buf)

	fmt.Println(src.SampleRate(), buf[:n])
	// Output: 24000 [0 0.25 -0.25]
}
