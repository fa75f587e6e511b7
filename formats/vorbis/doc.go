// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// streams. Vorbis is a free, open-source lossy audio compression format.
// Encoding is not supported.
//
// # Decoding Vorbis Files
//
// Use the Decoder to read Ogg Vorbis files:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Vorbis decodes natively to float32, so samples pass through without a
// conversion step.
//
// # Output Format
//
// Vorbis decoder output:
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: depends on the file (mono, stereo, or surround)
//   - Sample rate: depends on the file (commonly 44.1kHz or 48kHz)
//
// # Channel Layout
//
// Samples are interleaved. For stereo files:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// ReadSamples only delivers whole frames: the returned count is always a
// multiple of the channel count.
//
// # Stream Length
//
// When the underlying reader is seekable, oggvorbis reads the stream's
// final granule position up front. The source exposes this as a frame
// count:
//
//	if src, ok := source.(interface{ Length() int64 }); ok {
//	    frames := src.Length() // 0 when unknown
//	}
//
// # Registry Wiring
//
// To let the audio registry decode .ogg paths:
//
//	reg := audio.NewRegistry(
//	    audio.WithDecoder(".ogg", vorbis.Decoder{}),
//	)
package vorbis
