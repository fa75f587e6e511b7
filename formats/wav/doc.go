// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio decoding and encoding.
//
// Decoding is built on github.com/go-audio/wav, which owns the RIFF chunk
// walking, and is restricted to 16-bit PCM files. Encoding writes 16-bit
// PCM through a plain io.Writer.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides interleaved float32
// samples in the range [-1.0, 1.0]. Unknown RIFF chunks (LIST, INFO,
// bext, ...) are skipped, and the decoder accepts any channel count and
// sample rate the file declares.
//
// # Writing WAV Files
//
// Use WritePCM16 to create WAV files:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WritePCM16(file, 44100, 2, samples)
//
// WritePCM16 writes a fixed 44-byte header followed by the interleaved
// frames, converting to little-endian in bounded chunks. It deliberately
// takes an io.Writer rather than the io.WriteSeeker go-audio's encoder
// wants, so output need not be a file.
//
// # Error Handling
//
// The package defines several error values:
//   - ErrNotWavFile: the input is not a valid RIFF/WAVE stream
//   - ErrOnlyPCM16bitSupported: valid WAV, but not 16-bit PCM
//   - ErrUnsupportedWavLayout: impossible format geometry (also returned
//     by WritePCM16 for bad arguments)
//
// Example:
//
//	source, err := decoder.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
//
// # File Format
//
// WAV files written by this package consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): audio format, sample rate, channels, bit depth
//   - data chunk: interleaved 16-bit little-endian samples
package wav
