package optimize

/**
 * Copyright (c) 2020, Xerra Earth Observation Institute
 * All rights reserved. Use is subject to License terms.
 * See LICENSE in the root directory of this source tree.
 */

import (
	"math"
	"sort"

	"github.com/xctrack/routeopt/cylinder"
	"github.com/xctrack/routeopt/geod"
	"github.com/xctrack/routeopt/route"
)

// Degenerate cylinders below this radius are not worth spanning with candidates; a single
// center candidate is used instead (§4.6).
const MinCandidateRadiusM = 50.0

// DefaultCandidatesM and DefaultCandidatesMDense are the M values of §4.6: 36 candidates
// per cylinder by default, 72 when the task has 10 or fewer turnpoints.
const (
	DefaultCandidatesM      = 36
	DefaultCandidatesMDense = 72
)

// DefaultBeamWidth is the default beam width B of the beam-search variant (§4.6 step 4).
const DefaultBeamWidth = 8

// CandidatesM picks 72 or 36 candidates per cylinder depending on task size, per §4.6.
func CandidatesM(n int) int {
	if n <= 10 {
		return DefaultCandidatesMDense
	}
	return DefaultCandidatesM
}

// CandidatePoints constructs m candidate boundary points for cylinder k, uniformly spaced
// by azimuth. A zero-radius or sub-r_min cylinder yields a single candidate, its center.
func CandidatePoints(k route.Cylinder, m int) []geod.LatLon {
	if k.RadiusM < MinCandidateRadiusM {
		return []geod.LatLon{k.Center}
	}

	c := cylinder.Of(k)
	points := make([]geod.LatLon, m)
	for j := 0; j < m; j++ {
		az := geod.Degrees(360.0 * float64(j) / float64(m))
		points[j] = c.PointAtAzimuth(az)
	}
	return points
}

// candidateSets builds the per-cylinder candidate lists used by DP/BeamSearch, honouring
// the endpoint conventions of §4.6: the takeoff and goal cylinders get a single candidate
// when snapped to their centers (takeoffSnapped / single-candidate goal), otherwise the
// usual M-point spread. SSS-exit and SSS-enter cylinders are not treated specially: §9's
// open question adopts the source's convention of leaving crossing-side enforcement to a
// check outside the engine, so their candidates span the full boundary like any other
// intermediate turnpoint.
func candidateSets(task route.Task, m int, takeoffSnapM float64) [][]geod.LatLon {
	n := task.N()
	sets := make([][]geod.LatLon, n)

	for i, k := range task.Cylinders {
		switch {
		case i == 0 && k.Role == route.Takeoff && k.RadiusM <= takeoffSnapM:
			sets[i] = []geod.LatLon{k.Center}
		case i == n-1 && k.Role != route.GoalLine:
			sets[i] = []geod.LatLon{k.Center}
		default:
			sets[i] = CandidatePoints(k, m)
		}
	}
	return sets
}

// DP runs the dynamic program of §4.6 step 2 over the discrete candidate sets: each
// cylinder is a stage, candidates are states, transition cost is the geodesic distance
// between consecutive stage choices. Returns the chosen path and its total length.
func DP(task route.Task, m int, takeoffSnapM float64) ([]geod.LatLon, float64, error) {
	sets := candidateSets(task, m, takeoffSnapM)
	return dpOverSets(sets)
}

// haversineLowerBound returns a safe lower bound on the geodesic distance between a and
// b, using the teacher's spherical haversine model with a 1% safety margin. The tightest
// the WGS84 ellipsoid's surface ever curves is at the equator, meridional direction, with
// radius of curvature ~6335439m against the mean sphere's 6371000m - a ratio of ~0.9944 -
// so a short equatorial north-south geodesic can be up to ~0.56% shorter than the
// equal-radius haversine distance. 0.990 stays under that worst case with margin to spare.
func haversineLowerBound(a, b geod.LatLon) float64 {
	return geod.Distance(a, b, geod.SphericalModel).Metres() * 0.990
}

func dpOverSets(sets [][]geod.LatLon) ([]geod.LatLon, float64, error) {
	n := len(sets)
	if n == 0 {
		return nil, 0, nil
	}

	// cost[i][s] = best total length reaching candidate s of stage i.
	cost := make([][]float64, n)
	back := make([][]int, n)
	cost[0] = make([]float64, len(sets[0]))
	back[0] = make([]int, len(sets[0]))

	for stage := 1; stage < n; stage++ {
		prev := sets[stage-1]
		cur := sets[stage]
		cost[stage] = make([]float64, len(cur))
		back[stage] = make([]int, len(cur))

		for s, candidate := range cur {
			best := math.Inf(1)
			bestPrev := 0
			for ps, prevCandidate := range prev {
				// Haversine pre-filter: skip the expensive Vincenty inverse solve whenever
				// the cheap spherical lower bound already rules this transition out. The
				// geodesic distance on the WGS84 ellipsoid never falls short of ~99% of
				// the haversine distance on a sphere of equal radius, so this can only
				// discard transitions that were never going to win - the selected path is
				// unaffected.
				if cost[stage-1][ps]+haversineLowerBound(prevCandidate, candidate) >= best {
					continue
				}

				d, _, _ := geod.Inverse(prevCandidate, candidate)
				if math.IsNaN(float64(d)) {
					continue
				}
				total := cost[stage-1][ps] + d.Metres()
				if total < best {
					best = total
					bestPrev = ps
				}
			}
			cost[stage][s] = best
			back[stage][s] = bestPrev
		}
	}

	lastStage := n - 1
	bestEnd := 0
	bestCost := math.Inf(1)
	for s, c := range cost[lastStage] {
		if c < bestCost {
			bestCost = c
			bestEnd = s
		}
	}
	if math.IsInf(bestCost, 1) {
		return nil, 0, ErrNonConvergence
	}

	path := make([]geod.LatLon, n)
	idx := bestEnd
	for stage := n - 1; stage >= 0; stage-- {
		path[stage] = sets[stage][idx]
		if stage > 0 {
			idx = back[stage][idx]
		}
	}

	return path, bestCost, nil
}

// beamState is one partial path retained during beam search.
type beamState struct {
	path   []int
	length float64
}

// BeamSearch runs the beam-search variant of §4.6 step 4, keeping the top beamWidth
// partial routes at each stage. Returns the chosen path and its total length.
func BeamSearch(task route.Task, m int, takeoffSnapM float64, beamWidth int) ([]geod.LatLon, float64, error) {
	sets := candidateSets(task, m, takeoffSnapM)
	return beamOverSets(sets, beamWidth)
}

func beamOverSets(sets [][]geod.LatLon, beamWidth int) ([]geod.LatLon, float64, error) {
	n := len(sets)
	if n == 0 {
		return nil, 0, nil
	}

	beam := make([]beamState, 0, len(sets[0]))
	for s := range sets[0] {
		beam = append(beam, beamState{path: []int{s}, length: 0})
	}

	for stage := 1; stage < n; stage++ {
		candidates := make([]beamState, 0, len(beam)*len(sets[stage]))
		for _, b := range beam {
			prevPoint := sets[stage-1][b.path[stage-1]]
			for s, candidate := range sets[stage] {
				d, _, _ := geod.Inverse(prevPoint, candidate)
				if math.IsNaN(float64(d)) {
					continue
				}
				path := append(append([]int(nil), b.path...), s)
				candidates = append(candidates, beamState{path: path, length: b.length + d.Metres()})
			}
		}
		if len(candidates) == 0 {
			return nil, 0, ErrNonConvergence
		}

		sort.Slice(candidates, func(a, b int) bool { return candidates[a].length < candidates[b].length })
		if len(candidates) > beamWidth {
			candidates = candidates[:beamWidth]
		}
		beam = candidates
	}

	best := beam[0]
	for _, b := range beam[1:] {
		if b.length < best.length {
			best = b
		}
	}

	path := make([]geod.LatLon, n)
	for stage, idx := range best.path {
		path[stage] = sets[stage][idx]
	}
	return path, best.length, nil
}
