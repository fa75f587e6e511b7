// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/kvisli/frametick/audio"
)

// mp3Reader is the subset of gomp3.Decoder used by source, split out so
// tests can substitute a fake reader.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
	Length() int64
}

// source adapts go-mp3's byte-stream decoder to audio.Source.
type source struct {
	dec        mp3Reader
	sampleRate int
	channels   int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

// Length returns the decoded stream length in frames without draining the
// source, or 0 when the underlying input is not seekable. go-mp3 reports
// the decoded size in bytes, 4 bytes per stereo frame.
func (s *source) Length() int64 {
	b := s.dec.Length()
	if b <= 0 {
		return 0
	}
	return b / 4
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	// go-mp3 emits 16-bit little-endian PCM bytes, stereo interleaved,
	// so len(dst) samples need len(dst)*2 bytes.
	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := s.dec.Read(s.buf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	samples := n / 2
	for i := 0; i < samples; i++ {
		low := uint16(s.buf[2*i])
		high := uint16(s.buf[2*i+1])
		val := int16(low | (high << 8))
		dst[i] = float32(val) / 32768.0
	}

	return samples, err
}

// Decoder decodes MP3 streams into an audio.Source.
type Decoder struct{}

// Decode parses the MP3 headers of r and returns a streaming source over
// the decoded PCM. go-mp3 always emits stereo output.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   2,
		buf:        make([]byte, 8192),
	}, nil
}
