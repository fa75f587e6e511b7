package easing

// EaseSpline computes progress through the tick window along a piecewise
// curve. Each row of the spline holds the four control values of a cubic
// Bézier segment, and the segments split the duration evenly: with two rows
// the first covers ticks up to the halfway point and the second the rest.
// Rows chain freely, so a value can rise, hold, and fall within one window:
//
//	spline := [][4]float64{
//	    {0.0, 0.66, 1.0, 1.0}, // ramp up, overshooting slightly
//	    {1.0, 1.0, 0.33, 0.0}, // ramp back down
//	}
//	v, err := easing.EaseSpline(start, current, duration, spline)
//
// An empty spline returns ErrEmptySpline. Out-of-window ticks clamp to the
// first row's initial value and the last row's final value.
func EaseSpline(start, current, duration int, spline [][4]float64) (float64, error) {
	if len(spline) == 0 {
		return 0, ErrEmptySpline
	}

	t := progress(start, current, duration)
	scaled := t * float64(len(spline))
	row := int(scaled)
	if row >= len(spline) {
		row = len(spline) - 1
	}

	seg := spline[row]
	return bezier(seg[0], seg[1], seg[2], seg[3], scaled-float64(row)), nil
}

// bezier evaluates a cubic Bézier with scalar control values at t in [0, 1].
func bezier(p0, p1, p2, p3, t float64) float64 {
	inv := 1 - t
	return inv*inv*inv*p0 + 3*inv*inv*t*p1 + 3*inv*t*t*p2 + t*t*t*p3
}
