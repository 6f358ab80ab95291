package geod

/**
 * Copyright (c) 2020, Xerra Earth Observation Institute
 * All rights reserved. Use is subject to License terms.
 * See LICENSE in the root directory of this source tree.
 */

// RotatePoint rigidly rotates ll about the axis running through pole and the centre of the
// earth, by angle degrees. The rotation is rigid in ECEF cartesian space, but the result is
// re-projected onto the WGS84 ellipsoid, which is only symmetric about its polar axis: geodesic
// distances between rotated points match the originals only approximately (to within an error
// on the order of the flattening), and bearings relative to north are not preserved.
func RotatePoint(ll LatLon, pole LatLon, angle Degrees) LatLon {
	ellipsoid := WGS84()

	v := Vector3D(NewLatLonEllipsodial(ll.Latitude, ll.Longitude, 0).Cartesian())
	axis := Vector3D(NewLatLonEllipsodial(pole.Latitude, pole.Longitude, 0).Cartesian())

	// RotateAround works in unit-vector space (it normalizes v before rotating), so its
	// output must be rescaled back to v's original ECEF magnitude before converting back
	// to geodetic coordinates - otherwise every rotated point round-trips to a radius of 1.
	rotated := v.RotateAround(axis, angle).Times(v.Length())

	return Cartesian(rotated).LatLonEllipsoidal(ellipsoid).LatLon
}

// RotateTaskAboutPole rotates every point in points about pole by angle degrees with
// RotatePoint, so pairwise geodesic distances are preserved only approximately. Used to test
// rotational invariance of a route optimization: optimizing a task and a rotated copy of it
// must yield approximately the same optimized distance.
func RotateTaskAboutPole(points []LatLon, pole LatLon, angle Degrees) []LatLon {
	rotated := make([]LatLon, len(points))
	for i, p := range points {
		rotated[i] = RotatePoint(p, pole, angle)
	}
	return rotated
}
