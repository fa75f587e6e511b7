// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"strings"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// DecoderRegistry maps path extensions (".wav", ".mp3", ".ogg") to decoders.
// Extensions are matched case-insensitively, with or without the leading dot.
type DecoderRegistry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewDecoderRegistry() *DecoderRegistry {
	return &DecoderRegistry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *DecoderRegistry) Register(ext string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[normalizeExt(ext)] = d
}

func (r *DecoderRegistry) Get(ext string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[normalizeExt(ext)]
	return d, ok
}

func normalizeExt(ext string) string {
	return strings.TrimPrefix(strings.ToLower(ext), ".")
}
