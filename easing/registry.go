// SPDX-License-Identifier: EPL-2.0

package easing

import "sync"

// The named-curve table is process-wide: curves registered once at startup
// are visible to every Ease call. Reads vastly outnumber writes, so lookups
// take the read side of the lock.
var registry = struct {
	mu     sync.RWMutex
	curves map[Name]Func
}{
	curves: map[Name]Func{
		Identity: func(x float64) float64 { return x },
		Flip:     func(x float64) float64 { return 1 - x },
		Quad:     func(x float64) float64 { return x * x },
		Cube:     func(x float64) float64 { return x * x * x },
		Quart:    func(x float64) float64 { return x * x * x * x },
		Quint:    func(x float64) float64 { return x * x * x * x * x },
	},
}

// Register makes fn available to Ease and Resolve under the given name,
// replacing any curve previously registered under it, built-ins included.
// Registration is meant as a one-time setup action; it is safe to call
// concurrently with lookups. A nil fn panics.
func Register(name string, fn Func) {
	if fn == nil {
		panic("easing: Register called with nil Func")
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	registry.curves[Name(name)] = fn
}

func lookup(name Name) (Func, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	fn, ok := registry.curves[name]
	return fn, ok
}
