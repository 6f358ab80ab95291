package geod

/**
 * Copyright (c) 2020, Xerra Earth Observation Institute
 * All rights reserved. Use is subject to License terms.
 * See LICENSE in the root directory of this source tree.
 */

import (
	"testing"
)

func TestRotatePointPreservesDistance(t *testing.T) {
	a := LatLon{Latitude: -36.848, Longitude: 174.763}
	b := LatLon{Latitude: -37.812, Longitude: 175.234}
	pole := LatLon{Latitude: 12.5, Longitude: -40.0}

	before, _, _ := Inverse(a, b)

	ra := RotatePoint(a, pole, 37)
	rb := RotatePoint(b, pole, 37)
	after, _, _ := Inverse(ra, rb)

	δ := before.Metres() - after.Metres()
	if δ < 0 {
		δ = -δ
	}
	// RotatePoint is an exact rigid rotation in ECEF space, but the WGS84 ellipsoid is only
	// rotationally symmetric about the true polar axis: rotating about an arbitrary pole
	// and re-projecting onto the ellipsoid surface distorts geodesic distances by an amount
	// tied to the ellipsoid's flattening (~1/298.257), not the "1m per 1000km" figure a
	// purely spherical model would allow.
	tolerance := before.Metres()*0.005 + 0.5
	if δ > tolerance {
		t.Errorf("rotation changed pairwise distance by %.3fm (tolerance %.3fm): before=%v after=%v", δ, tolerance, before, after)
	}
}

func TestRotateTaskAboutPolePointCount(t *testing.T) {
	points := []LatLon{
		{Latitude: 0, Longitude: 0},
		{Latitude: 10, Longitude: 10},
		{Latitude: -5, Longitude: 20},
	}
	rotated := RotateTaskAboutPole(points, LatLon{Latitude: 45, Longitude: 45}, 90)
	if len(rotated) != len(points) {
		t.Fatalf("expected %d points, got %d", len(points), len(rotated))
	}
}
