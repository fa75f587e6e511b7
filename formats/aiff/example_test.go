// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/kvisli/frametick/audio"
	"github.com/kvisli/frametick/formats/aiff"
	"github.com/kvisli/frametick/formats/wav"
	"github.com/kvisli/frametick/utils"
)

// Example demonstrates basic AIFF decoding.
func Example() {
	// Open AIFF file
	f, err := os.Open("sound.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	// Decode AIFF to audio source
	decoder := aiff.Decoder{}
	src, err := decoder.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	// Display audio properties
	fmt.Printf("Sample Rate: %d Hz\n", src.SampleRate())
	fmt.Printf("Channels: %d\n", src.Channels())

	// Read some samples
	buf := make([]float32, 4096)
	n, _ := src.ReadSamples(buf)
	fmt.Printf("Read %d samples\n", n)
}

// ExampleDecoder_Decode_convertToWav demonstrates converting AIFF to a
// 16-bit PCM WAV file.
func ExampleDecoder_Decode_convertToWav() {
	// Decode AIFF
	aiffFile, err := os.Open("sound.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer aiffFile.Close()

	src, err := aiff.Decoder{}.Decode(aiffFile)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	// Read all samples and convert to int16
	buf := make([]float32, 4096)
	var samples []int16
	for {
		n, err := src.ReadSamples(buf)
		for i := range n {
			samples = append(samples, utils.Float32ToInt16(buf[i]))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
	}

	// Write to WAV
	wavFile, err := os.Create("output.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer wavFile.Close()

	if err := wav.WritePCM16(wavFile, src.SampleRate(), src.Channels(), samples); err != nil {
		log.Fatal(err)
	}

	fmt.Println("AIFF converted to WAV")
}

// ExampleDecoder_Decode_registry wires the decoder into a mixing
// registry so file inputs with .aif and .aiff extensions decode
// through it.
func ExampleDecoder_Decode_registry() {
	reg := audio.NewRegistry(
		audio.WithDecoder(".aif", aiff.Decoder{}),
		audio.WithDecoder(".aiff", aiff.Decoder{}),
	)

	slots := map[string]*audio.Descriptor{
		"chime": audio.File("sound.aiff"),
	}

	mixed, err := reg.Advance(slots, time.Second/60)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Mixed %d samples\n", len(mixed))
}

// ExampleDecoder_Decode_bigEndian demonstrates AIFF's big-endian format
// handling.
func ExampleDecoder_Decode_bigEndian() {
	// AIFF uses big-endian byte order (unlike WAV which uses little-endian)
	// The decoder handles byte order conversion transparently
	f, err := os.Open("sound.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	decoder := aiff.Decoder{}
	src, err := decoder.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	// Output is always normalized float32 regardless of source byte order
	buf := make([]float32, 1024)
	n, _ := src.ReadSamples(buf)
	fmt.Printf("Read %d samples (byte order handled transparently)\n", n)
}

// ExampleDecoder_Decode_errorHandling shows the error returned for data
// that is not an AIFF stream.
func ExampleDecoder_Decode_errorHandling() {
	decoder := aiff.Decoder{}

	invalidData := bytes.NewReader([]byte("not an aiff file"))
	_, err := decoder.Decode(invalidData)
	if err != nil {
		fmt.Println("decode failed: input is not an AIFF stream")
		return
	}

	fmt.Println("AIFF decoded successfully")

	// Output:
	// decode failed: input is not an AIFF stream
}
