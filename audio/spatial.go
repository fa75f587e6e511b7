// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// distanceAttenuation maps a position on the unit listener box to a gain
// factor 1/(1+d^2). The origin is unattenuated; the far corner (1,1,1)
// keeps a quarter of its gain.
func distanceAttenuation(x, y, z float64) float64 {
	return 1 / (1 + x*x + y*y + z*z)
}

// panGains returns equal-power left/right weights for a point source at
// pan position x in [-1, 1]. The weights trace a quarter circle, so
// perceived loudness stays constant as a sound sweeps across the field.
func panGains(x float64) (left, right float64) {
	x = clampAxis(x)

	angle := (x + 1) * math.Pi / 4
	return math.Cos(angle), math.Sin(angle)
}

// balanceGains returns per-channel weights for a stereo source at pan
// position x. Unlike panGains it keeps both channels at unity when
// centered and only attenuates the far side, the usual balance law.
func balanceGains(x float64) (left, right float64) {
	x = clampAxis(x)

	if x > 0 {
		return 1 - x, 1
	}

	return 1, 1 + x
}

func clampAxis(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}

	return x
}
