// SPDX-License-Identifier: EPL-2.0

package audio

// PullFunc produces procedural samples on demand. It fills dst with
// interleaved float32 samples in [-1,1] and returns the number of values
// written. Returning fewer than len(dst) is a buffer underrun; the
// registry applies its underrun policy rather than failing.
type PullFunc func(dst []float32) int

type inputKind uint8

const (
	inputNone inputKind = iota
	inputFile
	inputSamples
	inputPull
)

// Input selects what a slot plays: a file path resolved through the
// decoder registry, a finite in-memory sample block, or an endless pull
// generator. Construct one through File, Samples or Pull.
type Input struct {
	kind     inputKind
	path     string
	samples  []float32
	pull     PullFunc
	channels int
	rate     int
}

// Descriptor declares how one slot should sound on the current frame.
// Fields are read live on every Advance, so mutating them between frames
// adjusts playback without restarting it.
type Descriptor struct {
	Input Input

	// X, Y, Z position the sound relative to a listener at the origin,
	// each axis in [-1, 1]. X alone drives stereo panning; the full
	// distance drives attenuation.
	X, Y, Z float64

	// Gain scales the slot's contribution, expected in [0, 1].
	Gain float64

	// Pitch multiplies the playback rate. 2 plays twice as fast (and
	// an octave up), 0.5 half speed.
	Pitch float64

	// Paused freezes the playback position. A paused slot contributes
	// silence and never reaches its end.
	Paused bool

	// Looping wraps playback at the natural end instead of finishing.
	// Non-looping slots are removed by Advance once fully played.
	Looping bool

	// Length is the source duration in seconds. It is nil until the
	// first Advance that sees the slot resolves its input, and stays
	// nil for pull generators, which have no end.
	Length *float64
}

// File declares a slot backed by an audio file. The path's extension
// selects the decoder; the file is read fully on the first Advance that
// sees the slot.
func File(path string) *Descriptor {
	return &Descriptor{
		Input: Input{kind: inputFile, path: path},
		Gain:  1,
		Pitch: 1,
	}
}

// Samples declares a slot backed by a finite block of interleaved
// float32 samples. The registry reads the slice but never writes it.
func Samples(data []float32, channels, rate int) *Descriptor {
	return &Descriptor{
		Input: Input{kind: inputSamples, samples: data, channels: channels, rate: rate},
		Gain:  1,
		Pitch: 1,
	}
}

// Pull declares a slot backed by an endless procedural generator. The
// registry requests batches of at least the configured minimum (100ms
// worth by default) as playback consumes them.
func Pull(fn PullFunc, channels, rate int) *Descriptor {
	return &Descriptor{
		Input: Input{kind: inputPull, pull: fn, channels: channels, rate: rate},
		Gain:  1,
		Pitch: 1,
	}
}
