// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/kvisli/frametick/formats/wav"
)

// Example_decoding demonstrates decoding a WAV file.
func Example_decoding() {
	// Create a sample WAV file
	samples := []int16{100, 200, 300, 400, 500}
	wavData := new(bytes.Buffer)
	wav.WritePCM16(wavData, 16000, 1, samples)

	// Decode the WAV file
	decoder := wav.Decoder{}
	source, err := decoder.Decode(bytes.NewReader(wavData.Bytes()))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	// Check audio properties
	fmt.Printf("Sample rate: %d Hz\n", source.SampleRate())
	fmt.Printf("Channels: %d\n", source.Channels())

	// Read samples
	buf := make([]float32, 10)
	n, err := source.ReadSamples(buf)
	if err != nil && err != io.EOF {
		fmt.Printf("Read error: %v\n", err)
		return
	}

	fmt.Printf("Read %d samples\n", n)
	// Output:
	// Sample rate: 16000 Hz
	// Channels: 1
	// Read 5 samples
}

// Example_encoding demonstrates writing a WAV file.
func Example_encoding() {
	// Generate audio samples (simple sawtooth-like pattern)
	samples := make([]int16, 1000)
	for i := range samples {
		samples[i] = int16((i % 100) * 100)
	}

	// Write to buffer (in real code, use os.Create)
	output := new(bytes.Buffer)
	err := wav.WritePCM16(output, 8000, 1, samples)
	if err != nil {
		fmt.Printf("Write error: %v\n", err)
		return
	}

	fmt.Printf("Wrote %d bytes\n", output.Len())
	fmt.Printf("Header: 44 bytes\n")
	fmt.Printf("Data: %d bytes (%d samples × 2 bytes)\n", len(samples)*2, len(samples))
	// Output:
	// Wrote 2044 bytes
	// Header: 44 bytes
	// Data: 2000 bytes (1000 samples × 2 bytes)
}

// Example_roundTrip shows encoding and then decoding.
func Example_roundTrip() {
	// Original samples
	original := []int16{-1000, -500, 0, 500, 1000}

	// Encode to WAV
	wavData := new(bytes.Buffer)
	err := wav.WritePCM16(wavData, 8000, 1, original)
	if err != nil {
		fmt.Printf("Encode error: %v\n", err)
		return
	}

	// Decode back
	decoder := wav.Decoder{}
	source, err := decoder.Decode(bytes.NewReader(wavData.Bytes()))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	// Read samples
	buf := make([]float32, len(original))
	n, _ := source.ReadSamples(buf)

	// Convert back to int16 for comparison
	recovered := make([]int16, n)
	for i := range n {
		recovered[i] = int16(buf[i] * 32768.0)
	}

	fmt.Println("Round-trip successful:")
	fmt.Printf("Original:  %v\n", original)
	fmt.Printf("Recovered: %v\n", recovered)
	// Output:
	// Round-trip successful:
	// Original:  [-1000 -500 0 500 1000]
	// Recovered: [-1000 -500 0 500 1000]
}

// Example_stereo shows interleaved stereo encoding and decoding.
func Example_stereo() {
	// Two frames of L,R pairs
	frames := []int16{16384, -16384, 8192, -8192}

	wavData := new(bytes.Buffer)
	wav.WritePCM16(wavData, 44100, 2, frames)

	decoder := wav.Decoder{}
	source, _ := decoder.Decode(bytes.NewReader(wavData.Bytes()))

	buf := make([]float32, 4)
	source.ReadSamples(buf)

	fmt.Printf("Channels: %d\n", source.Channels())
	fmt.Printf("First frame: L=%+.2f R=%+.2f\n", buf[0], buf[1])
	// Output:
	// Channels: 2
	// First frame: L=+0.50 R=-0.50
}

// Example_errorNotWAV shows handling of invalid WAV files.
func Example_errorNotWAV() {
	// Try to decode non-WAV data
	invalidData := bytes.NewReader([]byte("This is not a WAV file"))

	decoder := wav.Decoder{}
	_, err := decoder.Decode(invalidData)

	if errors.Is(err, wav.ErrNotWavFile) {
		fmt.Println("Detected: Not a valid WAV file")
	} else if err != nil {
		fmt.Printf("Other error: %v\n", err)
	}
	// Output: Detected: Not a valid WAV file
}

// Example_streamingRead demonstrates reading a WAV file in chunks.
func Example_streamingRead() {
	// Create a WAV file
	samples := make([]int16, 10000)
	wavData := new(bytes.Buffer)
	wav.WritePCM16(wavData, 8000, 1, samples)

	// Decode
	decoder := wav.Decoder{}
	source, _ := decoder.Decode(bytes.NewReader(wavData.Bytes()))

	// Read in chunks
	buf := make([]float32, 1000)
	chunks := 0
	totalSamples := 0

	for {
		n, err := source.ReadSamples(buf)
		if n > 0 {
			chunks++
			totalSamples += n
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			break
		}
	}

	fmt.Printf("Read %d samples in %d chunks\n", totalSamples, chunks)
	// Output: Read 10000 samples in 10 chunks
}

// Example_sampleConversion shows the int16 to float32 conversion.
func Example_sampleConversion() {
	// Create samples covering the full int16 range
	samples := []int16{
		-32768, // Minimum int16
		-16384, // -50%
		0,      // Zero
		16384,  // +50%
		32767,  // Maximum int16
	}

	wavData := new(bytes.Buffer)
	wav.WritePCM16(wavData, 8000, 1, samples)

	decoder := wav.Decoder{}
	source, _ := decoder.Decode(bytes.NewReader(wavData.Bytes()))

	buf := make([]float32, len(samples))
	n, _ := source.ReadSamples(buf)

	fmt.Println("int16 → float32 conversion:")
	for i := range n {
		fmt.Printf("  %6d → %+.3f\n", samples[i], buf[i])
	}
	// Output:
	// int16 → float32 conversion:
	//   -32768 → -1.000
	//   -16384 → -0.500
	//        0 → +0.000
	//    16384 → +0.500
	//    32767 → +1.000
}
