package frametick

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/kvisli/frametick/audio"
	"github.com/kvisli/frametick/formats/wav"
	"github.com/kvisli/frametick/utils"
)

// Render is a high-level convenience function that plays a slot table
// forward through a fixed number of frame ticks and collects the mixed
// output, as an offline stand-in for a live game loop.
//
// Each step is one Advance on reg, so the table behaves exactly as it
// would under live ticking:
//  1. New slots load on the step that first sees them
//  2. Finished non-looping slots disappear from the table
//  3. Per-slot faults are recorded without interrupting the mix
//
// Parameters:
//   - reg: The registry owning playback state and the output format
//   - slots: The caller's slot table; Render mutates it the way Advance does
//   - steps: Number of frame ticks to simulate
//   - dt: Wall-clock span of one tick (e.g. time.Second/60)
//
// Returns:
//   - []float32: The concatenated interleaved mix of all steps
//   - error: All per-slot faults joined across steps, nil when none;
//     errors.Is sees audio.ErrLoadFailure and audio.ErrBufferUnderrun
//     through it
//
// Note: the returned samples are owned by the caller; unlike Advance's
// buffer they are not reused.
//
// Example:
//
//	reg := audio.NewRegistry(audio.WithOutputFormat(44100, 2))
//	slots := map[string]*audio.Descriptor{
//	    "music": audio.Samples(pcm, 2, 44100),
//	}
//	mix, err := frametick.Render(reg, slots, 600, time.Second/60)
func Render(reg *audio.Registry, slots map[string]*audio.Descriptor, steps int, dt time.Duration) ([]float32, error) {
	var (
		out    []float32
		faults []error
	)

	for i := 0; i < steps; i++ {
		mix, err := reg.Advance(slots, dt)
		out = append(out, mix...)

		if err != nil {
			faults = append(faults, err)
		}
	}

	return out, errors.Join(faults...)
}

// RenderWAV renders like Render and writes the result to w as a 16-bit
// PCM WAV file in the registry's output format.
//
// Per-slot faults do not abort the bounce: whatever mixed — including
// silence-filled underrun gaps — is written, and the joined faults are
// returned afterwards so the caller can decide whether to keep the
// file. A write failure aborts and is returned instead.
func RenderWAV(w io.Writer, reg *audio.Registry, slots map[string]*audio.Descriptor, steps int, dt time.Duration) error {
	mix, renderErr := Render(reg, slots, steps, dt)

	pcm16 := make([]int16, len(mix))
	for i, v := range mix {
		pcm16[i] = utils.Float32ToInt16(v)
	}

	sampleRate, channels := reg.OutputFormat()
	if err := wav.WritePCM16(w, sampleRate, channels, pcm16); err != nil {
		return fmt.Errorf("writing rendered wav: %w", err)
	}

	return renderErr
}
