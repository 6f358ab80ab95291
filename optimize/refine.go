package optimize

/**
 * Copyright (c) 2020, Xerra Earth Observation Institute
 * All rights reserved. Use is subject to License terms.
 * See LICENSE in the root directory of this source tree.
 */

import (
	"math"

	"github.com/xctrack/routeopt/cylinder"
	"github.com/xctrack/routeopt/geod"
	"github.com/xctrack/routeopt/route"
)

// DefaultMaxIter and DefaultTolM are the default odd-even refinement stopping criteria
// of §4.5.
const (
	DefaultMaxIter = 100
	DefaultTolM    = 0.001 // 1mm
)

// RefineOddEven runs the fixed-point odd/even sweep of §4.5 to convergence: each full
// sweep updates odd-indexed contacts holding the evens fixed, then evens holding odds
// fixed. Returns the refined contacts, the number of sweeps performed, and whether the
// loop converged within maxIter sweeps (total length change below tolM).
func RefineOddEven(task route.Task, contacts []geod.LatLon, maxIter int, tolM float64) ([]geod.LatLon, int, bool, error) {
	current := append([]geod.LatLon(nil), contacts...)

	prevLength, err := RouteLength(current)
	if err != nil {
		return nil, 0, false, err
	}

	for iter := 1; iter <= maxIter; iter++ {
		if err := sweep(task, current, 1); err != nil {
			return nil, iter, false, err
		}
		if err := sweep(task, current, 2); err != nil {
			return nil, iter, false, err
		}
		refineGoal(task, current)

		length, err := RouteLength(current)
		if err != nil {
			return nil, iter, false, err
		}
		if math.Abs(length-prevLength) < tolM {
			return current, iter, true, nil
		}
		prevLength = length
	}

	return current, maxIter, false, nil
}

// sweep updates every contact at index i with i%2 == parity (for i ∈ [1, N-2]) using the
// current neighbours. Indices of one parity are never neighbours of each other, so every
// update in a sweep sees the other parity's contacts as the previous sweep left them.
func sweep(task route.Task, contacts []geod.LatLon, parity int) error {
	n := task.N()
	for i := 1; i <= n-2; i++ {
		if i%2 != parity%2 {
			continue
		}
		p, err := pcp(task.Cylinders[i], contacts[i-1], contacts[i+1])
		if err != nil {
			return err
		}
		contacts[i] = p
	}
	return nil
}

// refineGoal updates the goal contact p_{N-1} per §4.4's endpoint convention ("refined by
// the optimizer"): unlike an interior contact it has only one fixed neighbour, p_{N-2}, so
// there is no PCP balance to strike - the optimal boundary point is simply the nearest
// point on the goal cylinder to that neighbour, the same one-sided projection InitialContacts
// uses to seed the takeoff contact p_0 toward c_1.
func refineGoal(task route.Task, contacts []geod.LatLon) {
	n := task.N()
	k := task.Cylinders[n-1]
	if k.RadiusM == 0 {
		contacts[n-1] = k.Center
		return
	}
	contacts[n-1] = cylinder.Of(k).ProjectOnBoundary(contacts[n-2])
}

// pcp solves the geodesic Point-Circle-Point subproblem for cylinder k with fixed
// neighbours prev and next, per §4.5.
func pcp(k route.Cylinder, prev, next geod.LatLon) (geod.LatLon, error) {
	if k.RadiusM == 0 {
		return k.Center, nil
	}
	if prev.Equals(next) {
		_, az, _ := geod.Inverse(k.Center, prev)
		if !az.Valid() {
			return geod.LatLon{}, ErrNonConvergence
		}
		p, _ := geod.Direct(k.Center, az, k.RadiusM)
		return p, nil
	}

	c := cylinder.Of(k)
	if _, point, ok := cylinder.BoundaryIntersect(prev, next, c); ok {
		return point, nil
	}

	return bisectorContact(k, prev, next)
}

// bisectorContact implements §4.5 step 3: the angular bisector of the bearings from the
// cylinder center to the two fixed neighbours, choosing the half-plane that faces both
// neighbours. §9's design note: when the two bearings are nearly antipodal the bisector
// formula is ill-conditioned, so both candidate bisectors (α* and α*+180) are evaluated
// and the shorter total kept.
func bisectorContact(k route.Cylinder, prev, next geod.LatLon) (geod.LatLon, error) {
	_, a1, _ := geod.Inverse(k.Center, prev)
	_, a2, _ := geod.Inverse(k.Center, next)
	if !a1.Valid() || !a2.Valid() {
		return geod.LatLon{}, ErrNonConvergence
	}

	bisector := bisectAngle(a1, a2)
	candidate1, _ := geod.Direct(k.Center, bisector, k.RadiusM)
	candidate2, _ := geod.Direct(k.Center, bisector+180, k.RadiusM)

	d1, err := totalDistance(prev, candidate1, next)
	if err != nil {
		return geod.LatLon{}, err
	}
	d2, err := totalDistance(prev, candidate2, next)
	if err != nil {
		return geod.LatLon{}, err
	}
	if d2 < d1 {
		return candidate2, nil
	}
	return candidate1, nil
}

// bisectAngle returns a bearing bisecting a1 and a2: the direction of the sum of the two
// unit bearing vectors, i.e. the bisector of the smaller angle between them, which faces
// both neighbours (§4.5 step 3).
func bisectAngle(a1, a2 geod.Degrees) geod.Degrees {
	r1 := a1.Radians()
	r2 := a2.Radians()
	x := math.Cos(r1) + math.Cos(r2)
	y := math.Sin(r1) + math.Sin(r2)
	if x == 0 && y == 0 {
		// exactly antipodal bearings: either perpendicular works as a starting candidate,
		// the caller tries both halves of it via +180 already.
		return geod.Wrap360(a1 + 90)
	}
	return geod.Wrap360(geod.DegreesFromRadians(math.Atan2(y, x)))
}

func totalDistance(a, mid, b geod.LatLon) (float64, error) {
	d1, _, _ := geod.Inverse(a, mid)
	d2, _, _ := geod.Inverse(mid, b)
	if math.IsNaN(float64(d1)) || math.IsNaN(float64(d2)) {
		return 0, ErrNonConvergence
	}
	return d1.Metres() + d2.Metres(), nil
}

// RouteLength sums the geodesic length of consecutive contacts; shared by this package's
// own convergence sweeps and by engine.Optimize's candidate-comparison step.
func RouteLength(contacts []geod.LatLon) (float64, error) {
	total := 0.0
	for i := 0; i+1 < len(contacts); i++ {
		d, _, _ := geod.Inverse(contacts[i], contacts[i+1])
		if math.IsNaN(float64(d)) {
			return 0, ErrNonConvergence
		}
		total += d.Metres()
	}
	return total, nil
}
