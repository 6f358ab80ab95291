package cylinder

/**
 * Copyright (c) 2020, Xerra Earth Observation Institute
 * All rights reserved. Use is subject to License terms.
 * See LICENSE in the root directory of this source tree.
 */

import (
	"github.com/xctrack/routeopt/geod"
)

// Side is the side of a goal line a point falls on, relative to the line's orientation.
type Side int

const (
	// SideOn means the point is coincident with the line within tolerance.
	SideOn Side = iota
	// SideNear is the side nearest the previous turnpoint - the semicircle the virtual
	// goal cylinder treats as the goal region (§4.2).
	SideNear
	// SideFar is the side away from the previous turnpoint.
	SideFar
)

// LineSide classifies which side of the goal line (centered at lineCenter, oriented
// perpendicular to the bearing from prevCenter) the point q falls on. Adapted from the
// teacher's utils/contains.go rayIntersect cross-product/relative-bearing half-plane
// test: here the "ray" is the bearing from the previous turnpoint to the line center, and
// the half-plane boundary is the line itself.
func LineSide(prevCenter, lineCenter, q geod.LatLon) Side {
	_, azApproach, _ := geod.Inverse(prevCenter, lineCenter)
	_, azToQ, _ := geod.Inverse(lineCenter, q)

	relBearing := float64(geod.Wrap180(geod.Degrees(float64(azToQ) - float64(azApproach))))

	const onTolerance = 0.01 // degrees, well within boundary-crossing noise
	switch {
	case relBearing > 90-onTolerance && relBearing < 90+onTolerance,
		relBearing < -90+onTolerance && relBearing > -90-onTolerance:
		return SideOn
	case relBearing > -90 && relBearing < 90:
		return SideFar
	default:
		return SideNear
	}
}
