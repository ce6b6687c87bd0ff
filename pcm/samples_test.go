// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"slices"
	"testing"
)

func TestFromInt16(t *testing.T) {
	t.Parallel()

	got := FromInt16([]int16{0, 1, -1, 0x1234, -32768, 32767})
	want := []byte{0x00, 0x00, 0x01, 0x00, 0xff, 0xff, 0x34, 0x12, 0x00, 0x80, 0xff, 0x7f}

	if !bytes.Equal(got, want) {
		t.Errorf("FromInt16() = % x, want % x", got, want)
	}
}

func TestToInt16(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 1, -1, 0x1234, -32768, 32767}
	if got := ToInt16(FromInt16(samples)); !slices.Equal(got, samples) {
		t.Errorf("ToInt16(FromInt16()) = %v, want %v", got, samples)
	}

	// The odd byte is not a sample.
	if got := ToInt16([]byte{0x01, 0x00, 0x7f}); !slices.Equal(got, []int16{1}) {
		t.Errorf("ToInt16(odd) = %v, want [1]", got)
	}

	if got := ToInt16(nil); len(got) != 0 {
		t.Errorf("ToInt16(nil) = %v, want empty", got)
	}
}

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float32
		want int16
	}{
		{"zero", 0, 0},
		{"one", 1, 32767},
		{"minus one", -1, -32768},
		{"half", 0.5, 16383},
		{"minus half", -0.5, -16384},
		{"clip high", 1.5, 32767},
		{"clip low", -2, -32768},
		{"quarter", 0.25, 8191},
		{"small negative", -1.0 / 32768.0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.in); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func BenchmarkFloat32ToInt16(b *testing.B) {
	samples := make([]float32, 4096)
	for i := range samples {
		samples[i] = float32(i%200-100) / 100.0
	}

	for b.Loop() {
		for _, s := range samples {
			_ = Float32ToInt16(s)
		}
	}
}

func TestToFloat32(t *testing.T) {
	t.Parallel()

	data := FromInt16([]int16{0, 16384, -16384, -32768})

	dst := make([]float32, 8)
	if n := ToFloat32(dst, data); n != 4 {
		t.Fatalf("ToFloat32() = %d, want 4", n)
	}
	if want := []float32{0, 0.5, -0.5, -1}; !slices.Equal(dst[:4], want) {
		t.Errorf("ToFloat32() samples = %v, want %v", dst[:4], want)
	}

	short := make([]float32, 2)
	if n := ToFloat32(short, data); n != 2 {
		t.Errorf("ToFloat32() into a short dst = %d, want 2", n)
	}

	if n := ToFloat32(dst, []byte{0x01}); n != 0 {
		t.Errorf("ToFloat32() of a lone byte = %d, want 0", n)
	}
}
