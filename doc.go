// SPDX-License-Identifier: EPL-2.0

// Package frametick provides declarative per-frame audio mixing and
// tick-based easing for game loops.
//
// The model is a frame tick: once per frame the caller describes what
// should be audible in a plain slot table and hands it to a registry,
// which diffs the table against the previous frame and produces the
// mixed audio covering the elapsed span. Animation values follow the
// same clock through the easing package.
//
// # Declarative Mixing
//
// A slot table maps ids to descriptors; the registry owns everything
// else:
//
//	reg := audio.NewRegistry(
//	    audio.WithDecoder(".wav", wav.Decoder{}),
//	)
//
//	slots := map[string]*audio.Descriptor{
//	    "music":    audio.File("music.wav"),
//	    "humming":  audio.Pull(generator, 1, 44100),
//	}
//	slots["music"].Looping = true
//
//	// Once per frame:
//	mix, err := reg.Advance(slots, dt)
//
// Adding an entry starts a sound, removing it stops one, and mutating a
// descriptor's Gain, Pitch, position or Paused fields adjusts live
// playback. Finished sounds delete their own entries.
//
// # Easing
//
// The easing package maps tick counts onto animation curves:
//
//	v, err := easing.Ease(startTick, nowTick, durationTicks,
//	    easing.Quad, easing.Flip)
//
// Curves compose left to right, custom curves register by name, and
// spline easing covers hand-authored shapes.
//
// # Format Decoders
//
// Each format has its own decoder under formats/:
//
//	wav.Decoder{}     // WAV (PCM 16-bit), go-audio/wav
//	mp3.Decoder{}     // MP3, hajimehoshi/go-mp3
//	vorbis.Decoder{}  // Ogg Vorbis, jfreymuth/oggvorbis
//	aiff.Decoder{}    // AIFF (PCM 16-bit), go-audio/aiff
//
// Decoders plug into a registry with audio.WithDecoder, keyed by path
// extension.
//
// # Offline Rendering
//
// Render and RenderWAV drive a registry through a fixed number of ticks
// without a live loop, for bounce-to-disk and tests:
//
//	var buf bytes.Buffer
//	err := frametick.RenderWAV(&buf, reg, slots, 600, time.Second/60)
//
// See the individual subpackages for more detailed documentation.
package frametick
