package utils

// ClampUnit limits x to the normalized sample range [-1, 1].
func ClampUnit(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// Float32ToInt16 converts a normalized sample to 16-bit PCM.
// Out-of-range input is clamped first; 32767 is used as the positive
// full-scale value so +1.0 cannot overflow.
func Float32ToInt16(x float32) int16 {
	return int16(ClampUnit(x) * 32767.0)
}
