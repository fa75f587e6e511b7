package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
	"github.com/kvisli/frametick/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

// Length reports the decoded stream length in frames without draining
// the source. oggvorbis knows the length only for seekable input; 0
// means unknown.
func (s *source) Length() int64 {
	n := s.dec.Length()
	if n < 0 {
		return 0
	}
	return n
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// oggvorbis decodes straight to interleaved float32, so samples land
	// in dst without conversion. The returned count covers whole frames:
	// it is always a multiple of the channel count.
	n, err := s.dec.Read(dst)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
