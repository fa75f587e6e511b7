// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestClampUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{name: "in range untouched", input: 0.25, want: 0.25},
		{name: "negative in range untouched", input: -0.8, want: -0.8},
		{name: "upper bound", input: 1.0, want: 1.0},
		{name: "lower bound", input: -1.0, want: -1.0},
		{name: "clipped above", input: 1.7, want: 1.0},
		{name: "clipped below", input: -3.2, want: -1.0},
		{name: "zero", input: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ClampUnit(tt.input); got != tt.want {
				t.Errorf("ClampUnit(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "silence", input: 0.0, want: 0},
		{name: "full scale positive", input: 1.0, want: 32767},
		{name: "full scale negative", input: -1.0, want: -32767},
		{name: "half scale", input: 0.5, want: 16383},
		{name: "clamped hot signal", input: 2.5, want: 32767},
		{name: "clamped cold signal", input: -2.5, want: -32767},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Float32ToInt16(tt.input)
			if diff := math.Abs(float64(got) - float64(tt.want)); diff > 1 {
				t.Errorf("Float32ToInt16(%v) = %v, want ≈%v", tt.input, got, tt.want)
			}
		})
	}
}

// TestFloat32ToInt16_Monotonic sweeps the normalized range and checks
// ordering is preserved, which guards against sign or clamp mistakes.
func TestFloat32ToInt16_Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1.0)
	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToInt16(float32(f))
		if curr < prev {
			t.Fatalf("not monotonic at %v: %v < %v", f, curr, prev)
		}
		prev = curr
	}
}

func TestFloat32ToInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Float32ToInt16(0.5)
	})

	if allocs > 0 {
		t.Errorf("Float32ToInt16 allocated %v times, want 0", allocs)
	}
}

// BenchmarkFloat32ToInt16 simulates converting a mixed buffer for a PCM sink.
func BenchmarkFloat32ToInt16(b *testing.B) {
	in := make([]float32, 4096)
	out := make([]int16, 4096)
	for i := range in {
		in[i] = float32(math.Sin(float64(i) * 0.05))
	}

	b.ReportAllocs()

	for b.Loop() {
		for i := range in {
			out[i] = Float32ToInt16(in[i])
		}
	}
}
