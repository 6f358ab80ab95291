package geod

// Pure Go re-implementation of https://github.com/chrisveness/geodesy

/**
 * Copyright (c) 2020, Xerra Earth Observation Institute
 * All rights reserved. Use is subject to License terms.
 * See LICENSE in the root directory of this source tree.
 */

import (
	"math"
)

// Wrap360 contrains `degrees` to range 0..360 (e.g. for bearings); -1 --> 359, 361 --> 1.
func Wrap360(degrees Degrees) Degrees {
	if 0.0 <= float64(degrees) && float64(degrees) < 360.0 {
		// avoid rounding due to arithmetic ops if within range
		return degrees
	}
	return Degrees(math.Mod(math.Mod(float64(degrees), 360)+360, 360)) // sawtooth wave p:360, a:360
}

// Wrap180 constrains `degrees` to range -180..+180 (e.g. for longitude); -181 --> 179, 181 --> -179.
func Wrap180(degrees Degrees) Degrees {
	if -180.0 < float64(degrees) && float64(degrees) <= 180.0 {
		// avoid rounding due to arithmetic ops if within range
		return degrees
	}
	return Degrees(
		math.Mod(
			float64(degrees)+180.0+360*(math.Floor(math.Abs(float64(degrees)/360.0))+1),
			360.0) - 180.0) // sawtooth wave p:180, a:±180
}

// Wrap90 constrains `degrees` to range -90..+90 (e.g. for latitude); -91 --> -89, 91 --> 89.
func Wrap90(degrees Degrees) Degrees {
	if -90.0 <= float64(degrees) && float64(degrees) <= 90.0 {
		// avoid rounding due to arithmetic ops if within range
		return degrees
	}
	// triangle wave p:360 a:±90 TODO: fix e.g. -315°
	return Degrees(math.Abs(math.Mod(math.Mod(float64(degrees), 360.0)+270.0, 360.0)-180.0) - 90.0)
}
