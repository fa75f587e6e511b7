// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     func(sample int, channel int) float32
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		generated:    0,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return value
	})
}

// NewRampSource creates a mock source whose value rises linearly from 0
// toward 1, reaching it on the final frame. Handy for checking
// interpolation and position math.
func NewRampSource(sampleRate, channels, totalSamples int) *MockSource {
	last := totalSamples - 1
	if last < 1 {
		last = 1
	}
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return float32(sample) / float32(last)
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { return nil }

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	// Calculate how many frames we can write
	framesRequested := len(dst) / m.channels
	framesAvailable := m.totalSamples - m.generated
	framesToWrite := framesRequested
	if framesToWrite > framesAvailable {
		framesToWrite = framesAvailable
	}

	// Generate samples
	for frame := 0; frame < framesToWrite; frame++ {
		sampleIndex := m.generated + frame
		for ch := 0; ch < m.channels; ch++ {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}

// Drain reads the source to its end and returns all generated samples.
func Drain(src *MockSource) []float32 {
	var all []float32
	buf := make([]float32, 512)
	for {
		n, err := src.ReadSamples(buf)
		all = append(all, buf[:n]...)
		if err != nil {
			return all
		}
	}
}

// CountingPull returns a pull generator that always fills the whole
// request with a deterministic rising pattern. The function it returns
// is shaped like audio.PullFunc without importing the audio package.
func CountingPull() func(dst []float32) int {
	var counter int
	return func(dst []float32) int {
		for i := range dst {
			dst[i] = float32(counter%100) / 100.0
			counter++
		}
		return len(dst)
	}
}

// SinePull returns a pull generator producing an endless sine wave,
// identical across channels.
func SinePull(sampleRate, channels int, frequency float64) func(dst []float32) int {
	var frame int
	return func(dst []float32) int {
		frames := len(dst) / channels
		for f := 0; f < frames; f++ {
			t := float64(frame+f) / float64(sampleRate)
			v := float32(math.Sin(2 * math.Pi * frequency * t))
			for ch := 0; ch < channels; ch++ {
				dst[f*channels+ch] = v
			}
		}
		frame += frames
		return frames * channels
	}
}

// ShortPull wraps a pull generator so a single call never yields more
// than max values, forcing buffer underruns without starving the stream.
func ShortPull(inner func(dst []float32) int, max int) func(dst []float32) int {
	return func(dst []float32) int {
		if len(dst) > max {
			dst = dst[:max]
		}
		return inner(dst)
	}
}
