// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/kvisli/frametick/utils"
)

// UnderrunPolicy selects how Advance treats a pull generator that
// returns fewer samples than requested.
type UnderrunPolicy uint8

const (
	// UnderrunSilence zero-fills the shortfall and keeps the slot
	// advancing. The gap is audible as a dropout.
	UnderrunSilence UnderrunPolicy = iota

	// UnderrunStall freezes the slot for the frame and retries on the
	// next Advance. The slot falls behind instead of skipping.
	UnderrunStall
)

// Option configures a Registry.
type Option func(*Registry)

// WithOutputFormat sets the mixed buffer's sample rate and channel
// count. The default is 44100 Hz stereo. Channel counts other than 1
// or 2 are ignored.
func WithOutputFormat(sampleRate, channels int) Option {
	return func(r *Registry) {
		if sampleRate > 0 {
			r.outRate = sampleRate
		}
		if channels == 1 || channels == 2 {
			r.outChannels = channels
		}
	}
}

// WithDecoder registers a decoder for a path extension, e.g.
// WithDecoder(".wav", wav.Decoder{}).
func WithDecoder(ext string, d Decoder) Option {
	return func(r *Registry) {
		r.decoders.Register(ext, d)
	}
}

// WithDecoderRegistry shares a prebuilt decoder table instead of the
// registry's own empty one.
func WithDecoderRegistry(decoders *DecoderRegistry) Option {
	return func(r *Registry) {
		if decoders != nil {
			r.decoders = decoders
		}
	}
}

func WithUnderrunPolicy(p UnderrunPolicy) Option {
	return func(r *Registry) {
		r.policy = p
	}
}

// WithPullBatch sets the minimum span requested from pull generators in
// one batch. The default is 100ms.
func WithPullBatch(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.pullBatch = d
		}
	}
}

// Registry owns the playback state behind a declarative slot table.
// Each Advance diffs the table against the previous frame: new slots
// are loaded, vanished slots are dropped, finished slots are removed
// from the table, and everything audible is mixed into one buffer.
type Registry struct {
	outRate     int
	outChannels int
	policy      UnderrunPolicy
	pullBatch   time.Duration
	decoders    *DecoderRegistry

	states map[string]*playback
	mix    []float32
	ids    []string
	carry  float64
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		outRate:     44100,
		outChannels: 2,
		pullBatch:   100 * time.Millisecond,
		decoders:    NewDecoderRegistry(),
		states:      make(map[string]*playback),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// OutputFormat reports the sample rate and channel count of mixed
// buffers.
func (r *Registry) OutputFormat() (sampleRate, channels int) {
	return r.outRate, r.outChannels
}

// Advance plays the slot table forward by dt and returns the mixed
// interleaved buffer covering that span, clamped to [-1, 1].
//
// The table is the caller's: Advance deletes entries that failed to
// load and non-looping entries that finished, and writes Length back on
// the Advance that first resolves a slot. Fractional output frames are
// carried to the next call, so frame counts add up exactly over time.
//
// The returned buffer is reused: it is valid until the next Advance;
// copy it to retain it. The returned error joins this call's per-slot
// faults as *SlotError values; errors.Is sees ErrLoadFailure and
// ErrBufferUnderrun through it. A fault never aborts the mix.
func (r *Registry) Advance(slots map[string]*Descriptor, dt time.Duration) ([]float32, error) {
	for id := range r.states {
		if _, ok := slots[id]; !ok {
			delete(r.states, id)
		}
	}

	want := r.carry + dt.Seconds()*float64(r.outRate)
	frames := int(want)
	r.carry = want - float64(frames)

	n := frames * r.outChannels
	if cap(r.mix) < n {
		r.mix = make([]float32, n)
	}
	r.mix = r.mix[:n]
	clear(r.mix)

	// Sorted slot order keeps the float accumulation reproducible.
	r.ids = r.ids[:0]
	for id := range slots {
		r.ids = append(r.ids, id)
	}
	sort.Strings(r.ids)

	var faults []error

	for _, id := range r.ids {
		desc := slots[id]
		if desc == nil {
			delete(slots, id)
			faults = append(faults, &SlotError{Slot: id, Err: fmt.Errorf("%w: %w", ErrLoadFailure, ErrNoInput)})

			continue
		}

		st, ok := r.states[id]
		if ok && st.desc != desc {
			// Same id, fresh descriptor: the slot was replaced
			// between frames, so playback restarts.
			delete(r.states, id)
			ok = false
		}

		if !ok {
			var err error

			st, err = r.load(desc)
			if err != nil {
				delete(slots, id)
				faults = append(faults, &SlotError{Slot: id, Err: fmt.Errorf("%w: %w", ErrLoadFailure, err)})

				continue
			}

			r.states[id] = st
		}

		minBatch := int(r.pullBatch.Seconds() * float64(st.rate))
		if err := st.mixInto(r.mix, r.outChannels, r.outRate, desc, r.policy, minBatch); err != nil {
			faults = append(faults, &SlotError{Slot: id, Err: err})
		}

		if st.done {
			delete(slots, id)
			delete(r.states, id)
		}
	}

	for i, v := range r.mix {
		r.mix[i] = utils.ClampUnit(v)
	}

	return r.mix, errors.Join(faults...)
}

// Reset drops all playback state. The next Advance reloads whatever the
// slot table holds, starting every slot from the beginning.
func (r *Registry) Reset() {
	clear(r.states)
	r.carry = 0
}
