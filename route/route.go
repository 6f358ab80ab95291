// Package route models a validated competition task: an ordered sequence of turnpoint
// cylinders, their role classification, and the center-distance convention of §4.3.
package route

/**
 * Copyright (c) 2020, Xerra Earth Observation Institute
 * All rights reserved. Use is subject to License terms.
 * See LICENSE in the root directory of this source tree.
 */

import (
	"fmt"
	"math"

	"github.com/starboard-nz/units"

	"github.com/xctrack/routeopt/geod"
)

// Role classifies a turnpoint cylinder's function within a task. Modelled as a closed
// tagged variant rather than an inheritance tree: the branches (SSS direction, goal type)
// are small and closed, so a switch over Role is all any component needs.
type Role int

const (
	// Regular is an ordinary intermediate turnpoint.
	Regular Role = iota
	// Takeoff is the launch cylinder, optionally snapped to its center (§4.4).
	Takeoff
	// SssEnter marks the start-of-speed-section cylinder, entered conventionally.
	SssEnter
	// SssExit marks the start-of-speed-section cylinder, exited conventionally.
	SssExit
	// Ess marks the end-of-speed-section cylinder.
	Ess
	// Goal marks a cylindrical goal.
	Goal
	// GoalLine marks a linear goal, topologically the semicircle behind the line (§4.2).
	GoalLine
)

func (r Role) String() string {
	switch r {
	case Regular:
		return "Regular"
	case Takeoff:
		return "Takeoff"
	case SssEnter:
		return "SssEnter"
	case SssExit:
		return "SssExit"
	case Ess:
		return "Ess"
	case Goal:
		return "Goal"
	case GoalLine:
		return "GoalLine"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// IsSSS reports whether the role is one of the two SSS variants.
func (r Role) IsSSS() bool {
	return r == SssEnter || r == SssExit
}

// Cylinder is a disk on the WGS84 ellipsoid: a center and a geodesic radius in metres,
// tagged with its role in the task.
type Cylinder struct {
	Center  geod.LatLon
	RadiusM float64
	Role    Role
}

// Task is an ordered sequence of turnpoint cylinders, N ≥ 2, with at most one SSS role
// and one ESS role, the last cylinder always the goal.
type Task struct {
	Cylinders []Cylinder
}

// NewTask constructs a Task from an ordered cylinder list. It does not validate; call
// Validate before handing the task to the optimizer.
func NewTask(cylinders []Cylinder) Task {
	return Task{Cylinders: append([]Cylinder(nil), cylinders...)}
}

// N returns the number of turnpoints.
func (t Task) N() int {
	return len(t.Cylinders)
}

// Validate checks the structural invariants of §3 and returns the first InvalidTask
// violation found, wrapped with context; nil if the task is well formed.
func (t Task) Validate() error {
	n := len(t.Cylinders)
	if n < 2 {
		return fmt.Errorf("%w: task has %d turnpoints, need at least 2", ErrInvalidTask, n)
	}

	sssCount := 0
	essCount := 0
	for i, k := range t.Cylinders {
		if k.RadiusM < 0 {
			return fmt.Errorf("%w: turnpoint %d has negative radius %g", ErrInvalidTask, i, k.RadiusM)
		}
		if !k.Center.Valid() || k.Center.Latitude < -90 || k.Center.Latitude > 90 ||
			k.Center.Longitude <= -180 || k.Center.Longitude > 180 {
			return fmt.Errorf("%w: turnpoint %d center %v out of range", ErrInvalidTask, i, k.Center)
		}
		if k.Role.IsSSS() {
			sssCount++
		}
		if k.Role == Ess {
			essCount++
		}
	}
	if sssCount > 1 {
		return fmt.Errorf("%w: task has %d SSS cylinders, at most 1 allowed", ErrInvalidTask, sssCount)
	}
	if essCount > 1 {
		return fmt.Errorf("%w: task has %d ESS cylinders, at most 1 allowed", ErrInvalidTask, essCount)
	}

	return nil
}

// CenterDistance computes the sum of geodesic legs through turnpoint centers, per the
// conventions of §4.3: the route starts at the SSS center if the task opens with
// Takeoff, SssExit, ...; otherwise it starts at the takeoff center. Consecutive cylinders
// sharing the same center contribute a zero-length leg, so the center route deduplicates
// consecutive identical centers before summing.
func (t Task) CenterDistance() (units.Distance, error) {
	centers := t.centerRouteCenters()
	deduped := dedupeCenters(centers)

	var total units.Distance
	for i := 0; i+1 < len(deduped); i++ {
		d, _, _ := geod.Inverse(deduped[i], deduped[i+1])
		if math.IsNaN(float64(d)) {
			return units.Distance(0), fmt.Errorf("%w: centers %v and %v", ErrGeodesicNonConvergence, deduped[i], deduped[i+1])
		}
		total += d
	}
	return total, nil
}

// RouteStartIndex returns the index of the first turnpoint counted toward a route's
// reported length, honouring §4.3's start convention: Takeoff,SssExit,... starts at the
// SSS center (index 1), since the takeoff-to-SSS leg precedes the timed section and isn't
// part of the scored distance; Takeoff,SssEnter,... (or any other opening) starts at index
// 0. §8 Property 4 requires center_distance_m and optimized_distance_m to both be computed
// by this same convention, so callers computing either figure from a contact/center
// polyline should sum from this index, not from 0 unconditionally.
func (t Task) RouteStartIndex() int {
	if len(t.Cylinders) >= 2 && t.Cylinders[0].Role == Takeoff && t.Cylinders[1].Role == SssExit {
		return 1
	}
	return 0
}

// centerRouteCenters returns the centers participating in the center-distance sum, honouring
// the start convention of RouteStartIndex.
func (t Task) centerRouteCenters() []geod.LatLon {
	start := t.RouteStartIndex()
	centers := make([]geod.LatLon, 0, len(t.Cylinders)-start)
	for _, k := range t.Cylinders[start:] {
		centers = append(centers, k.Center)
	}
	return centers
}

// dedupeCenters collapses consecutive identical centers, preserving order.
func dedupeCenters(centers []geod.LatLon) []geod.LatLon {
	if len(centers) == 0 {
		return centers
	}
	deduped := make([]geod.LatLon, 0, len(centers))
	deduped = append(deduped, centers[0])
	for _, c := range centers[1:] {
		if c.Equals(deduped[len(deduped)-1]) {
			continue
		}
		deduped = append(deduped, c)
	}
	return deduped
}

// IsDegenerate reports whether every cylinder has radius 0, or the task is otherwise
// degenerate per §7 (two consecutive cylinders with identical centers and radii).
func (t Task) IsDegenerate() bool {
	allZero := true
	for _, k := range t.Cylinders {
		if k.RadiusM != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return true
	}

	for i := 0; i+1 < len(t.Cylinders); i++ {
		a, b := t.Cylinders[i], t.Cylinders[i+1]
		if a.Center.Equals(b.Center) && a.RadiusM == b.RadiusM {
			return true
		}
	}
	return false
}

// RotateAboutPole returns a copy of the task with every cylinder center rotated about pole
// by angle degrees (geod.RotateTaskAboutPole), which preserves pairwise geodesic distances
// only approximately. Used by rotational-invariance tests (§8 property 6).
func (t Task) RotateAboutPole(pole geod.LatLon, angle geod.Degrees) Task {
	centers := make([]geod.LatLon, len(t.Cylinders))
	for i, k := range t.Cylinders {
		centers[i] = k.Center
	}
	rotated := geod.RotateTaskAboutPole(centers, pole, angle)

	out := Task{Cylinders: make([]Cylinder, len(t.Cylinders))}
	for i, k := range t.Cylinders {
		out.Cylinders[i] = Cylinder{Center: rotated[i], RadiusM: k.RadiusM, Role: k.Role}
	}
	return out
}
