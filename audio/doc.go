// SPDX-License-Identifier: EPL-2.0

// Package audio mixes a declarative table of sound slots one frame tick
// at a time.
//
// The caller owns a map of slot id to *Descriptor and mutates it freely
// between frames. Each Advance(slots, dt) compares the table with the
// previous frame and does whatever that implies: load what is new, drop
// what vanished, keep playing the rest, and return one mixed buffer
// covering dt.
//
// # Slot Lifecycle
//
// A slot appears when its key is added to the table. The first Advance
// that sees it resolves the input (decodes the file, wraps the samples,
// or hooks up the generator) and writes the derived duration into
// Length, so the caller observes Length from the following frame on.
//
// A slot disappears three ways:
//   - the caller deletes the key: playback state is dropped immediately
//   - the input cannot be loaded: the key is deleted, a LoadFailure
//     fault is reported, and every other slot plays on
//   - a non-looping slot plays to its natural end: Advance deletes the
//     key once the full duration has elapsed
//
// Re-adding an id after removal, or assigning a fresh descriptor to a
// live id, restarts playback from the beginning. Mutating the fields of
// the descriptor already in the table adjusts playback in place.
//
// # Inputs
//
// Descriptors are built by three constructors:
//
//	audio.File("music/theme.ogg")        // decoded via the registry
//	audio.Samples(pcm, 2, 44100)         // finite in-memory block
//	audio.Pull(gen, 1, 22050)            // endless procedural source
//
// File decoding is delegated to Decoder collaborators registered per
// path extension (see the formats packages). The stream is fully
// decoded and closed during the loading Advance; afterwards the slot
// holds plain PCM.
//
// Pull generators are asked for at least 100ms worth of samples per
// batch (WithPullBatch adjusts this). A generator that comes up short
// raises a BufferUnderrun fault and the configured policy decides
// whether the gap plays as silence or the slot stalls for a frame.
//
// # Spatialization
//
// X, Y and Z place a slot around a listener at the origin, each axis in
// [-1, 1]. Gain is scaled by 1/(1+d^2) with distance, mono sources pan
// by X under an equal-power law, and stereo sources balance by X
// keeping the center at unity.
//
// # Sample Format
//
// All samples are interleaved float32 in [-1.0, 1.0]. Slots may mix at
// any source rate; output frames are produced at the registry's
// configured rate (44100 Hz stereo by default) by stepping each slot's
// fractional position Pitch * srcRate / outRate per output frame and
// interpolating with a Catmull-Rom cubic. The final mix is hard-clamped
// to [-1, 1].
//
// # Error Handling
//
// Faults are per-slot and never abort a frame. Advance returns them
// joined; unwrap with errors.As to attribute one to a slot:
//
//	var slotErr *audio.SlotError
//	if errors.As(err, &slotErr) {
//	    log.Printf("slot %s: %v", slotErr.Slot, slotErr.Err)
//	}
//
// errors.Is(err, audio.ErrLoadFailure) and errors.Is(err,
// audio.ErrBufferUnderrun) classify the fault kinds through the join.
package audio
