// Package routeio builds read-only orb geometry views of engine inputs and outputs, for
// callers that want to feed a contact polyline or a cylinder's candidate ring into
// orb-based tooling (rendering, spatial indexing). It performs no parsing or export:
// task file formats and GeoJSON/KML export remain out of scope (§1).
package routeio

/**
 * Copyright (c) 2020, Xerra Earth Observation Institute
 * All rights reserved. Use is subject to License terms.
 * See LICENSE in the root directory of this source tree.
 */

import (
	"github.com/starboard-nz/orb"

	"github.com/xctrack/routeopt/geod"
	"github.com/xctrack/routeopt/route"
)

// ContactsLineString returns an orb.LineString view of a contact polyline, in
// (longitude, latitude) point order as orb expects.
func ContactsLineString(contacts []geod.LatLon) orb.LineString {
	ls := make(orb.LineString, len(contacts))
	for i, c := range contacts {
		ls[i] = orb.Point{float64(c.Longitude), float64(c.Latitude)}
	}
	return ls
}

// CandidateRing returns an orb.Ring tracing a cylinder's boundary at m uniformly-spaced
// azimuths, closed by repeating the first point. Useful for visualising the discrete
// candidate set the global search (§4.6) draws from.
func CandidateRing(k route.Cylinder, m int) orb.Ring {
	if m < 3 {
		m = 3
	}
	ring := make(orb.Ring, 0, m+1)
	for j := 0; j < m; j++ {
		az := geod.Degrees(360.0 * float64(j) / float64(m))
		p, _ := geod.Direct(k.Center, az, k.RadiusM)
		ring = append(ring, orb.Point{float64(p.Longitude), float64(p.Latitude)})
	}
	ring = append(ring, ring[0])
	return ring
}
