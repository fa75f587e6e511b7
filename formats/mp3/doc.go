// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 streams
// into PCM samples. Encoding is not supported.
//
// # Decoding MP3 Files
//
// Use the Decoder to read MP3 files:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides interleaved float32
// samples normalized to the range [-1.0, 1.0].
//
// # Output Format
//
// MP3 decoder output:
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: always 2 (go-mp3 upmixes mono files to stereo)
//   - Sample rate: depends on the file (typically 44.1kHz or 48kHz)
//
// # Stream Length
//
// When the underlying reader is seekable, go-mp3 can report the decoded
// size up front. The source exposes this as a frame count:
//
//	if src, ok := source.(interface{ Length() int64 }); ok {
//	    frames := src.Length() // 0 when unknown
//	}
//
// # Registry Wiring
//
// To let the audio registry decode .mp3 paths:
//
//	reg := audio.NewRegistry(
//	    audio.WithDecoder(".mp3", mp3.Decoder{}),
//	)
package mp3
