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

// Degrees angle
// Defining it as a type makes it harder to mix Degrees and Radians in your code, you're welcome :)
type Degrees float64

// Valid returns true if the angle is valid. Invalid angles are returned by
// functions when the result cannot be calculated.
func (d Degrees) Valid() bool {
	return !math.IsNaN(float64(d))
}

// Radians takes an argument in degrees and returns it in radians
func (d Degrees) Radians() float64 {
	return float64(d) * math.Pi / 180.0
}

// RoundTo returns the degrees as a float rounded to `n` decimal points.
func (d Degrees) RoundTo(n int) float64 {
	p10 := math.Pow10(n)
	return math.Round(p10*float64(d)) / p10
}

// DegreesFromRadians takes an argument in radians and returns it in degrees
func DegreesFromRadians(radians float64) Degrees {
	return Degrees(radians * 180.0 / math.Pi)
}

// LatLon represents a point on Earth defined by its Latitude and Longitude
type LatLon struct {
	Latitude  Degrees
	Longitude Degrees
}

// NewLatLon creates a LatLon from plain float64 degrees, wrapping into the
// canonical ranges (latitude -90..90, longitude -180..180].
func NewLatLon(latitude, longitude float64) LatLon {
	return LatLon{
		Latitude:  Wrap90(Degrees(latitude)),
		Longitude: Wrap180(Degrees(longitude)),
	}
}

// Valid returns true if the coordinates are valid. Invalid coordinates are returned by
// functions when the result cannot be calculated.
func (ll LatLon) Valid() bool {
	if math.IsNaN(float64(ll.Latitude)) || math.IsNaN(float64(ll.Longitude)) {
		return false
	}

	return true
}

// Equals returns true if `ll` and `other` have identical Latitude and Longitude values
func (ll LatLon) Equals(other LatLon) bool {
	epsilon := math.Nextafter(1, 2) - 1

	if math.Abs(float64(ll.Latitude)-float64(other.Latitude)) > epsilon {
		return false
	}

	if math.Abs(float64(ll.Longitude)-float64(other.Longitude)) > epsilon {
		return false
	}

	return true
}
