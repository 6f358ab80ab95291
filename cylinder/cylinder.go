// Package cylinder implements the geometry of a turnpoint cylinder on the WGS84
// ellipsoid: signed distance to the boundary, projection onto the boundary, and
// intersection of a geodesic segment with the boundary (§4.2).
package cylinder

/**
 * Copyright (c) 2020, Xerra Earth Observation Institute
 * All rights reserved. Use is subject to License terms.
 * See LICENSE in the root directory of this source tree.
 */

import (
	"math"

	"github.com/xctrack/routeopt/geod"
	"github.com/xctrack/routeopt/route"
)

// Cylinder pairs a route.Cylinder with the geometry operations of §4.2.
type Cylinder struct {
	route.Cylinder
}

// Of wraps a route.Cylinder for geometric queries.
func Of(k route.Cylinder) Cylinder {
	return Cylinder{k}
}

// SignedDistance returns inverse(center, q).s - radius: negative inside the cylinder,
// positive outside, zero on the boundary.
func (k Cylinder) SignedDistance(q geod.LatLon) (float64, error) {
	d, _, _ := geod.Inverse(k.Center, q)
	if math.IsNaN(float64(d)) {
		return 0, ErrNonConvergence
	}
	return d.Metres() - k.RadiusM, nil
}

// ProjectOnBoundary returns the point on K's boundary nearest q along the bearing from
// the center to q. If q equals the center, the azimuth is undefined and the center is
// returned unchanged; the caller must disambiguate the azimuth in that case (§4.2).
func (k Cylinder) ProjectOnBoundary(q geod.LatLon) geod.LatLon {
	if k.Center.Equals(q) {
		return k.Center
	}
	_, azAB, _ := geod.Inverse(k.Center, q)
	b, _ := geod.Direct(k.Center, azAB, k.RadiusM)
	return b
}

// PointAtAzimuth returns the boundary point reached by travelling the cylinder's radius
// from its center along azimuth az.
func (k Cylinder) PointAtAzimuth(az geod.Degrees) geod.LatLon {
	b, _ := geod.Direct(k.Center, az, k.RadiusM)
	return b
}
