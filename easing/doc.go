// SPDX-License-Identifier: EPL-2.0

// Package easing maps frame-counter progress onto easing curves.
//
// Animations in a frame-ticked game loop are usually described as "between
// tick A and tick A+D, move this value from 0% to 100% along some curve".
// This package computes that percentage. It holds no state between calls:
// the same ticks and definitions always produce the same result, so it is
// safe to call from any goroutine.
//
// # Easing a Value
//
// Ease takes the window's start tick, the current tick, the duration in
// ticks, and one or more curve definitions:
//
//	alpha, err := easing.Ease(startedAt, tick, 60, easing.Quad)
//
// With duration 60 and tick 30 ticks past startedAt, the linear fraction is
// 0.5 and Quad turns it into 0.25.
//
// # Composing Curves
//
// Definitions chain left to right; each curve's output feeds the next one's
// input. The classic "smooth stop" is a flipped power curve:
//
//	// 1-(1-x)^2: fast start, gentle landing
//	v, err := easing.Ease(start, tick, dur, easing.Flip, easing.Quad, easing.Flip)
//
// Order matters: Flip-then-Quad squares the flipped fraction, while
// Quad-then-Flip flips the squared one.
//
// # Built-ins and Custom Curves
//
// identity, flip, quad, cube, quart and quint are always available, through
// the Identity..Quint constants or their string names. A literal function
// can appear anywhere in a chain:
//
//	bounce := easing.Func(func(x float64) float64 {
//	    return math.Abs(math.Sin(x * math.Pi * 2))
//	})
//	v, _ := easing.Ease(start, tick, dur, easing.Quad, bounce)
//
// Register adds a named curve to the process-wide table, typically during
// startup:
//
//	easing.Register("smoothstep", func(x float64) float64 {
//	    return x * x * (3 - 2*x)
//	})
//
// Registration is synchronized with lookups, but treat it as setup, not as
// something to do every frame.
//
// # Resolving Once
//
// Ease looks names up on every call. Loops that evaluate the same chain per
// frame can pay for the lookup once:
//
//	fade, err := easing.Resolve(easing.Flip, easing.Quad, easing.Flip)
//	// per frame:
//	v := fade(linearProgress)
//
// # Errors
//
// A name with no registered curve fails with ErrUnknownName and no partial
// result; that is a programming mistake, not a runtime condition to retry.
// A non-positive duration is not an error: the window is treated as already
// complete once the current tick has reached the start tick.
package easing
