// SPDX-License-Identifier: EPL-2.0

package easing

import "errors"

var (
	ErrUnknownName = errors.New("unknown easing name")
	ErrEmptySpline = errors.New("spline requires at least one row")
)
