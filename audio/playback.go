package audio

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/kvisli/frametick/utils"
)

// playback is the registry-side state of one slot: its decoded or
// buffered samples and a fractional read position. The descriptor
// pointer identifies the slot generation; a caller that assigns a fresh
// descriptor under the same id gets a fresh playback.
type playback struct {
	desc *Descriptor

	channels int
	rate     int

	// Finite sources hold their full PCM here; pull sources buffer
	// through pull instead.
	pcm    []float32
	frames int
	pull   *pullState

	pos  float64
	loop bool
	done bool
}

func (r *Registry) load(desc *Descriptor) (*playback, error) {
	var (
		st  *playback
		err error
	)

	switch desc.Input.kind {
	case inputFile:
		st, err = r.loadFile(desc)
	case inputSamples:
		st, err = loadSamples(desc)
	case inputPull:
		st, err = loadPull(desc)
	default:
		return nil, ErrNoInput
	}

	if err != nil {
		return nil, err
	}

	st.desc = desc

	return st, nil
}

// loadFile resolves the path's extension against the decoder registry,
// decodes the whole stream into memory and closes it. After this the
// slot owns plain PCM; no file handle stays open.
func (r *Registry) loadFile(desc *Descriptor) (*playback, error) {
	path := desc.Input.path

	dec, ok := r.decoders.Get(filepath.Ext(path))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoDecoder, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer src.Close()

	pcm, err := drainSource(src)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newPCMPlayback(desc, pcm, src.Channels(), src.SampleRate())
}

func loadSamples(desc *Descriptor) (*playback, error) {
	in := desc.Input
	return newPCMPlayback(desc, in.samples, in.channels, in.rate)
}

func loadPull(desc *Descriptor) (*playback, error) {
	in := desc.Input

	if in.pull == nil {
		return nil, ErrNoInput
	}
	if in.channels < 1 || in.channels > 2 || in.rate < 1 {
		return nil, fmt.Errorf("bad generator format: %d channels at %d Hz", in.channels, in.rate)
	}

	return &playback{
		channels: in.channels,
		rate:     in.rate,
		pull:     newPullState(in.pull, in.channels),
	}, nil
}

// newPCMPlayback wraps finite PCM, folding anything beyond stereo down
// to mono, and writes the derived duration back to the descriptor.
func newPCMPlayback(desc *Descriptor, pcm []float32, channels, rate int) (*playback, error) {
	if channels < 1 || rate < 1 {
		return nil, fmt.Errorf("bad stream format: %d channels at %d Hz", channels, rate)
	}
	if len(pcm)%channels != 0 {
		return nil, fmt.Errorf("%d samples do not divide into %d channels", len(pcm), channels)
	}

	if channels > 2 {
		pcm = foldToMono(pcm, channels)
		channels = 1
	}

	frames := len(pcm) / channels
	secs := float64(frames) / float64(rate)
	desc.Length = &secs

	return &playback{
		channels: channels,
		rate:     rate,
		pcm:      pcm,
		frames:   frames,
	}, nil
}

// drainSource reads a decoded stream to completion. A source that knows
// its decoded frame count ahead of time (mp3 and vorbis do for seekable
// input) gets its storage in one allocation; the hint only sets capacity,
// so a wrong count still drains correctly.
func drainSource(src Source) ([]float32, error) {
	var pcm []float32
	if counted, ok := src.(interface{ Length() int64 }); ok {
		if frames := counted.Length(); frames > 0 {
			pcm = make([]float32, 0, frames*int64(src.Channels()))
		}
	}

	buf := make([]float32, 4096)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			pcm = append(pcm, buf[:n]...)
		}

		if err == io.EOF {
			return pcm, nil
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}
}

// foldToMono averages each frame of a multi-channel block down to one
// sample.
func foldToMono(pcm []float32, channels int) []float32 {
	frames := len(pcm) / channels
	out := make([]float32, frames)
	inv := 1 / float32(channels)

	for f := 0; f < frames; f++ {
		sum := float32(0)
		base := f * channels

		for c := 0; c < channels; c++ {
			sum += pcm[base+c]
		}

		out[f] = sum * inv
	}

	return out
}

// frameAt reads one channel of the source frame at idx. The
// interpolation window clamps at the stream edges and wraps when
// looping.
func (st *playback) frameAt(idx int64, ch int) float32 {
	if st.pull != nil {
		return st.pull.frameAt(idx, ch)
	}

	n := int64(st.frames)
	if n == 0 {
		return 0
	}

	if st.loop {
		idx %= n
		if idx < 0 {
			idx += n
		}
	} else {
		if idx < 0 {
			idx = 0
		}
		if idx >= n {
			idx = n - 1
		}
	}

	return st.pcm[idx*int64(st.channels)+int64(ch)]
}

// sample interpolates channel ch at the current fractional position
// from the four surrounding frames.
func (st *playback) sample(ch int) float32 {
	i := int64(st.pos)
	alpha := float32(st.pos - float64(i))

	return utils.CubicInterpolate(
		st.frameAt(i-1, ch),
		st.frameAt(i, ch),
		st.frameAt(i+1, ch),
		st.frameAt(i+2, ch),
		alpha,
	)
}

// advance moves the position by step source frames. It reports false
// once a finite non-looping stream is fully consumed.
func (st *playback) advance(step float64) bool {
	st.pos += step

	if st.pull != nil {
		return true
	}

	n := float64(st.frames)
	if st.loop {
		if st.pos >= n && n > 0 {
			st.pos = math.Mod(st.pos, n)
		}

		return true
	}

	if st.pos >= n {
		st.done = true
		return false
	}

	return true
}

// mixInto renders the slot's next len(out)/outChannels frames
// accumulated into out, honoring the descriptor fields as they are this
// frame. The per-output-frame step is Pitch scaled by the rate ratio,
// so pitched and resampled playback are the same walk over the source.
// The returned error is an underrun fault for pull slots; whether the
// position advanced over the gap (fill) or stood still (stall) follows
// the policy.
func (st *playback) mixInto(out []float32, outChannels, outRate int, desc *Descriptor, policy UnderrunPolicy, minBatch int) error {
	frames := len(out) / outChannels
	if frames == 0 || desc.Paused || st.done {
		return nil
	}

	st.loop = desc.Looping

	step := desc.Pitch * float64(st.rate) / float64(outRate)
	if step < 0 {
		step = 0
	}

	var fault error
	if st.pull != nil {
		last := int64(st.pos + step*float64(frames-1))
		fault = st.pull.ensure(last+2, minBatch, policy == UnderrunSilence)
		if fault != nil && policy == UnderrunStall {
			return fault
		}
	}

	att := desc.Gain * distanceAttenuation(desc.X, desc.Y, desc.Z)

	switch {
	case st.channels == 1 && outChannels == 1:
		w := float32(att)

		for f := 0; f < frames; f++ {
			out[f] += st.sample(0) * w

			if !st.advance(step) {
				break
			}
		}

	case st.channels == 1 && outChannels == 2:
		l, r := panGains(desc.X)
		lw, rw := float32(att*l), float32(att*r)

		for f := 0; f < frames; f++ {
			s := st.sample(0)
			out[2*f] += s * lw
			out[2*f+1] += s * rw

			if !st.advance(step) {
				break
			}
		}

	case st.channels == 2 && outChannels == 1:
		w := float32(att) * 0.5

		for f := 0; f < frames; f++ {
			out[f] += (st.sample(0) + st.sample(1)) * w

			if !st.advance(step) {
				break
			}
		}

	default: // stereo into stereo
		l, r := balanceGains(desc.X)
		lw, rw := float32(att*l), float32(att*r)

		for f := 0; f < frames; f++ {
			out[2*f] += st.sample(0) * lw
			out[2*f+1] += st.sample(1) * rw

			if !st.advance(step) {
				break
			}
		}
	}

	if st.pull != nil {
		st.pull.compact(int64(st.pos) - 1)
	}

	return fault
}
