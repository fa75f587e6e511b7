// SPDX-License-Identifier: EPL-2.0

package easing

import (
	"fmt"
	"math"
)

// Func is one easing curve: it maps a progress fraction to an eased
// fraction. Built-ins map [0, 1] onto [0, 1]; custom curves may overshoot.
type Func func(x float64) float64

// Name refers to a curve registered in the process-wide table.
type Name string

// Definition is a single step of an easing chain: either a Name resolved
// against the registry or a literal Func.
type Definition interface {
	definition()
}

func (Name) definition() {}
func (Func) definition() {}

// Built-in curve names, available without registration.
const (
	Identity Name = "identity"
	Flip     Name = "flip"
	Quad     Name = "quad"
	Cube     Name = "cube"
	Quart    Name = "quart"
	Quint    Name = "quint"
)

// Ease computes the eased progress of current through the tick window
// [start, start+duration]. The raw fraction is clamped to [0, 1] and each
// definition is applied left to right, the output of one feeding the next.
// A duration of zero or less yields 1 once current has reached start and 0
// before that.
//
// The result and a nil error are returned, unless a named definition is not
// registered, in which case the error wraps ErrUnknownName and no partial
// value is produced.
func Ease(start, current, duration int, defs ...Definition) (float64, error) {
	fn, err := Resolve(defs...)
	if err != nil {
		return 0, err
	}
	return fn(progress(start, current, duration)), nil
}

// Resolve composes definitions left to right into a single Func, looking up
// names once. Callers evaluating the same chain every frame can resolve it
// ahead of time and skip the per-call table lookups.
//
// Zero definitions resolve to the identity curve. Nil entries are skipped.
func Resolve(defs ...Definition) (Func, error) {
	fns := make([]Func, 0, len(defs))
	for _, def := range defs {
		switch d := def.(type) {
		case Name:
			fn, ok := lookup(d)
			if !ok {
				return nil, fmt.Errorf("easing %q: %w", string(d), ErrUnknownName)
			}
			fns = append(fns, fn)
		case Func:
			if d != nil {
				fns = append(fns, d)
			}
		}
	}

	switch len(fns) {
	case 0:
		return func(x float64) float64 { return x }, nil
	case 1:
		return fns[0], nil
	}
	return func(x float64) float64 {
		for _, fn := range fns {
			x = fn(x)
		}
		return x
	}, nil
}

// SmoothStart returns the power curve x^power: progress that begins slowly
// and accelerates. Powers 2 through 5 match the quad/cube/quart/quint
// built-ins.
func SmoothStart(power int) Func {
	return func(x float64) float64 { return math.Pow(x, float64(power)) }
}

// SmoothStop returns the flipped power curve 1-(1-x)^power: progress that
// begins quickly and decelerates into the endpoint.
func SmoothStop(power int) Func {
	return func(x float64) float64 { return 1 - math.Pow(1-x, float64(power)) }
}

// progress converts tick counters to the clamped linear fraction that seeds
// an easing chain.
func progress(start, current, duration int) float64 {
	if duration <= 0 {
		if current >= start {
			return 1
		}
		return 0
	}

	x := float64(current-start) / float64(duration)
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
