// Package optimize implements the contact-point search of §4.4-4.6: initial seeding,
// fixed-point odd-even refinement, and a discrete-candidate global search used to escape
// local minima.
package optimize

/**
 * Copyright (c) 2020, Xerra Earth Observation Institute
 * All rights reserved. Use is subject to License terms.
 * See LICENSE in the root directory of this source tree.
 */

import (
	"github.com/xctrack/routeopt/cylinder"
	"github.com/xctrack/routeopt/geod"
	"github.com/xctrack/routeopt/route"
)

// DefaultTakeoffSnapM is the default takeoff_snap_m option of §4.4: a takeoff cylinder
// with radius at or below this is snapped to its center rather than projected.
const DefaultTakeoffSnapM = 1000.0

// InitialContacts seeds one contact point per cylinder per §4.4: intermediate contacts
// aim at the midpoint between the neighbouring centers; endpoints use the takeoff-snap
// and goal-center conventions.
func InitialContacts(task route.Task, takeoffSnapM float64) ([]geod.LatLon, error) {
	n := task.N()
	contacts := make([]geod.LatLon, n)

	for i := 1; i <= n-2; i++ {
		ci := task.Cylinders[i].Center
		ri := task.Cylinders[i].RadiusM
		if ri == 0 {
			contacts[i] = ci
			continue
		}

		cPrev := task.Cylinders[i-1].Center
		cNext := task.Cylinders[i+1].Center

		target := cNext
		if !cPrev.Equals(cNext) {
			target = geodesicMidpoint(cPrev, cNext)
		}

		if ci.Equals(target) {
			contacts[i] = ci
			continue
		}
		_, az, _ := geod.Inverse(ci, target)
		if !az.Valid() {
			return nil, ErrNonConvergence
		}
		p, _ := geod.Direct(ci, az, ri)
		contacts[i] = p
	}

	// p_0: takeoff convention.
	c0 := task.Cylinders[0]
	if c0.Role == route.Takeoff && c0.RadiusM <= takeoffSnapM {
		contacts[0] = c0.Center
	} else if c0.RadiusM == 0 {
		contacts[0] = c0.Center
	} else {
		contacts[0] = cylinder.Of(c0).ProjectOnBoundary(task.Cylinders[1].Center)
	}

	// p_{N-1}: seeded at the goal center; refineGoal (in refine.go) projects it onto the
	// goal boundary, toward p_{N-2}, once odd-even sweeping starts.
	contacts[n-1] = task.Cylinders[n-1].Center

	return contacts, nil
}

// geodesicMidpoint returns the spherical (great-circle) midpoint of a and b, a cheap
// stand-in for the point halfway along the WGS84 geodesic - the refinement loop
// (§4.5) subsequently polishes any seed to sub-millimetre accuracy, so only the direction
// toward "roughly between the neighbours" matters here.
func geodesicMidpoint(a, b geod.LatLon) geod.LatLon {
	sa := geod.NewLatLonSpherical(float64(a.Latitude), float64(a.Longitude))
	return sa.MidPointTo(b)
}
