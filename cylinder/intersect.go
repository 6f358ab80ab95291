package cylinder

/**
 * Copyright (c) 2020, Xerra Earth Observation Institute
 * All rights reserved. Use is subject to License terms.
 * See LICENSE in the root directory of this source tree.
 */

import (
	"math"

	"github.com/starboard-nz/orb"

	"github.com/xctrack/routeopt/geod"
)

// EpsilonGeom is the geometric tolerance ε_geom of §3/§4.2: the boundary search converges
// once the bracket straddles a distance no larger than this.
const EpsilonGeom = 0.05 // metres

const maxBisectDepth = 60

// BoundaryIntersect returns the earliest parameter t ∈ [0,1] along the geodesic a→b at
// which the cylinder's signed distance crosses zero, and the corresponding point. ok is
// false if the segment never crosses the boundary (both endpoints strictly inside, or
// both strictly outside without a sign change).
//
// The geodesic a→b is parametrized by continuing from a along its initial azimuth to b,
// γ(t) = direct(a, az_ab, t·s); this is exact, not an approximation, since a geodesic is
// fully determined by a starting point, an azimuth and a distance.
//
// A cheap Mercator-projected pre-check (mirroring the teacher's intersection.go) rejects
// segments that plainly cannot cross the boundary before paying for the geodesic sampling
// and bisection, the same bracket-then-bisect shape as the teacher's densify.go.
func BoundaryIntersect(a, b geod.LatLon, k Cylinder) (t float64, point geod.LatLon, ok bool) {
	if mercatorPreReject(a, b, k) {
		return 0, geod.LatLon{}, false
	}

	s, azAB, _ := geod.Inverse(a, b)
	if math.IsNaN(float64(s)) {
		return 0, geod.LatLon{}, false
	}
	dist := s.Metres()
	if dist == 0 {
		d, err := k.SignedDistance(a)
		if err == nil && math.Abs(d) <= EpsilonGeom {
			return 0, a, true
		}
		return 0, geod.LatLon{}, false
	}

	gamma := func(frac float64) geod.LatLon {
		p, _ := geod.Direct(a, azAB, frac*dist)
		return p
	}
	signedAt := func(frac float64) (float64, bool) {
		d, err := k.SignedDistance(gamma(frac))
		return d, err == nil
	}

	const samples = 32
	prevT := 0.0
	prevD, ok0 := signedAt(0)
	if !ok0 {
		return 0, geod.LatLon{}, false
	}
	if math.Abs(prevD) <= EpsilonGeom {
		return 0, gamma(0), true
	}

	for i := 1; i <= samples; i++ {
		curT := float64(i) / samples
		curD, ok1 := signedAt(curT)
		if !ok1 {
			return 0, geod.LatLon{}, false
		}
		if math.Abs(curD) <= EpsilonGeom {
			return curT, gamma(curT), true
		}
		if (prevD < 0) != (curD < 0) {
			tt, pt := bisect(gamma, signedAt, prevT, curT, prevD, 0)
			return tt, pt, true
		}
		prevT, prevD = curT, curD
	}

	return 0, geod.LatLon{}, false
}

// bisect recursively halves [lo,hi] until the midpoint's signed distance is within
// EpsilonGeom of zero, or recursion depth is exhausted. Grounded on the teacher's
// utils/densify.go:densifySegment recursive bisect-to-tolerance structure.
func bisect(gamma func(float64) geod.LatLon, signedAt func(float64) (float64, bool), lo, hi, loD float64, depth int) (float64, geod.LatLon) {
	mid := (lo + hi) / 2
	d, ok := signedAt(mid)
	if !ok || math.Abs(d) <= EpsilonGeom || depth >= maxBisectDepth {
		return mid, gamma(mid)
	}

	if (loD < 0) != (d < 0) {
		return bisect(gamma, signedAt, lo, mid, loD, depth+1)
	}
	return bisect(gamma, signedAt, mid, hi, d, depth+1)
}

// mercatorPreReject rules out segments that plainly cannot reach the cylinder boundary,
// before any geodesic sampling. It runs two checks in increasing cost: an orb.Bound
// containment test (mirroring the teacher's utils/contains.go:RingContains, which rejects
// a point via r.Bound().Contains(point) before the exact ray-intersect test), then - only
// if the bound doesn't already rule it out - a Mercator-projected point-to-segment
// distance. Mercator distorts distances by a secant scale factor of roughly
// 1/cos(latitude); both checks are deliberately conservative (a generous margin) since
// they are only ever used to skip work, never to confirm an intersection.
func mercatorPreReject(a, b geod.LatLon, k Cylinder) bool {
	if math.Abs(float64(a.Longitude-b.Longitude)) > 180 ||
		math.Abs(float64(a.Longitude-k.Center.Longitude)) > 180 ||
		math.Abs(float64(b.Longitude-k.Center.Longitude)) > 180 {
		return false // segment or center likely spans the antimeridian; Mercator X wraps there, skip the pre-check
	}

	ma := a.MercatorPoint()
	mb := b.MercatorPoint()
	mc := k.Center.MercatorPoint()
	if math.IsNaN(ma.X) || math.IsNaN(mb.X) || math.IsNaN(mc.X) {
		return false
	}

	meanLat := (float64(a.Latitude) + float64(b.Latitude) + float64(k.Center.Latitude)) / 3
	scale := math.Cos(meanLat * math.Pi / 180)
	if scale < 0.05 {
		return false // too close to the pole for the secant approximation to be trustworthy
	}

	const margin = 2.0
	marginMetres := k.RadiusM*margin + 1000
	marginProjected := marginMetres / (earthCircumferenceMetres * scale)

	bound := orb.Bound{
		Min: orb.Point{math.Min(ma.X, mb.X) - marginProjected, math.Min(ma.Y, mb.Y) - marginProjected},
		Max: orb.Point{math.Max(ma.X, mb.X) + marginProjected, math.Max(ma.Y, mb.Y) + marginProjected},
	}
	if !bound.Contains(orb.Point{mc.X, mc.Y}) {
		return true
	}

	planarDist := pointToSegmentDistance(mc, ma, mb)
	groundDist := planarDist * earthCircumferenceMetres * scale
	return groundDist > marginMetres
}

const earthCircumferenceMetres = 40075016.686

func pointToSegmentDistance(p, a, b geod.MercatorPoint) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	projX := a.X + t*dx
	projY := a.Y + t*dy
	return math.Hypot(p.X-projX, p.Y-projY)
}
