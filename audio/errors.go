// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	// ErrLoadFailure marks a slot whose input could not be opened or
	// decoded. The slot is dropped; other slots are unaffected.
	ErrLoadFailure = errors.New("load failure")

	// ErrBufferUnderrun marks a pull generator that returned fewer
	// samples than requested.
	ErrBufferUnderrun = errors.New("buffer underrun")

	// ErrNoDecoder means no decoder is registered for a file extension.
	ErrNoDecoder = errors.New("no decoder for extension")

	// ErrNoInput means a descriptor was submitted without an input.
	ErrNoInput = errors.New("descriptor has no input")
)

// SlotError attributes a playback fault to the slot that raised it.
type SlotError struct {
	Slot string
	Err  error
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("slot %q: %v", e.Slot, e.Err)
}

func (e *SlotError) Unwrap() error { return e.Err }
