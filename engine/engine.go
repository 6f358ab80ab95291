// Package engine is the façade of the route-optimization library: it orchestrates the
// route model, initial seeding, odd-even refinement and discrete-candidate global search
// into a single pure function, Optimize, per §4.7.
package engine

/**
 * Copyright (c) 2020, Xerra Earth Observation Institute
 * All rights reserved. Use is subject to License terms.
 * See LICENSE in the root directory of this source tree.
 */

import (
	"fmt"
	"log/slog"

	"github.com/xctrack/routeopt/geod"
	"github.com/xctrack/routeopt/optimize"
	"github.com/xctrack/routeopt/route"
)

// EarthModel names the earth model requested by the input task (§6). The engine only
// supports WGS84; FaiSphere is accepted as a recognised value so the engine can reject it
// with ErrUnsupportedEarthModel rather than InvalidTask.
type EarthModel int

const (
	WGS84 EarthModel = iota
	FaiSphere
)

// Options controls the optimizer's iteration and candidate-generation budgets. The zero
// value is not valid; use DefaultOptions.
//
// CandidatesM of zero means "pick per §4.6's own task-size rule"
// (optimize.CandidatesM(task.N())): 72 candidates per cylinder for tasks of 10 or fewer
// turnpoints, 36 otherwise. Set it explicitly to override that rule with a fixed M.
//
// Logger receives Optimize's diagnostic logging (currently just the DegenerateGeometry
// debug line, §7); nil routes it through slog.Default() instead, so most callers can leave
// it unset.
type Options struct {
	MaxIter      int
	TolM         float64
	CandidatesM  int
	BeamB        int
	TakeoffSnapM float64
	Logger       *slog.Logger
}

// DefaultOptions returns the default option set named in §4.4-§4.6. CandidatesM is left at
// zero so Optimize sizes it to the task via optimize.CandidatesM. Logger is left nil so
// Optimize falls back to slog.Default().
func DefaultOptions() Options {
	return Options{
		MaxIter:      optimize.DefaultMaxIter,
		TolM:         optimize.DefaultTolM,
		CandidatesM:  0,
		BeamB:        optimize.DefaultBeamWidth,
		TakeoffSnapM: optimize.DefaultTakeoffSnapM,
	}
}

// Result is the engine's output per §6: the contact polyline and both distances, plus
// refinement diagnostics.
type Result struct {
	Contacts           []geod.LatLon
	CenterDistanceM    float64
	OptimizedDistanceM float64
	Iterations         int
	Converged          bool
}

// Optimize runs the full R → I → O → D → O (polish) pipeline of §2 on task, under the
// given earth model and options, and returns the contact polyline plus both distances.
//
// The engine is single-threaded and synchronous (§5): it performs no I/O and holds no
// shared mutable state of its own, so callers may invoke it concurrently from multiple
// goroutines, each with its own task - provided no goroutine calls geod.SetEarthRadius
// concurrently with an in-flight Optimize (see that function's doc comment).
func Optimize(task route.Task, model EarthModel, opts Options) (Result, error) {
	if model != WGS84 {
		return Result{}, fmt.Errorf("%w: only WGS84 is supported", ErrUnsupportedEarthModel)
	}

	if err := task.Validate(); err != nil {
		return Result{}, err
	}

	centerDistance, err := task.CenterDistance()
	if err != nil {
		return Result{}, err
	}

	if task.IsDegenerate() {
		logger := opts.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Debug("degenerate task geometry, contacts pinned to centers",
			"turnpoints", task.N())
		contacts := make([]geod.LatLon, task.N())
		for i, k := range task.Cylinders {
			contacts[i] = k.Center
		}
		// IsDegenerate holds when every radius is 0 or when any two consecutive cylinders
		// share center and radius. Either way no search is run: contacts are exactly the
		// centers, and the reported length is centerDistance - not necessarily 0, since
		// distinct zero-radius turnpoints (e.g. re-running Optimize on its own output per
		// §8's idempotence property) still have a nonzero distance between them.
		return Result{
			Contacts:           contacts,
			CenterDistanceM:    centerDistance.Metres(),
			OptimizedDistanceM: centerDistance.Metres(),
			Iterations:         0,
			Converged:          true,
		}, nil
	}

	candidatesM := opts.CandidatesM
	if candidatesM == 0 {
		candidatesM = optimize.CandidatesM(task.N())
	}

	// routeLength sums only the leg of contacts counted toward the reported distance, per
	// §4.3's start convention: a task opening Takeoff,SssExit,... counts from the SSS
	// center, so the takeoff-to-SSS leg must be excluded from both the candidate
	// comparisons below and the final OptimizedDistanceM - not just the latter, since that
	// leg can vary between candidates (the SSS contact itself is searched) and including
	// it would let a worse SSS contact choice look better than a true winner.
	startIdx := task.RouteStartIndex()
	routeLength := func(contacts []geod.LatLon) (float64, error) {
		return optimize.RouteLength(contacts[startIdx:])
	}

	initial, err := optimize.InitialContacts(task, opts.TakeoffSnapM)
	if err != nil {
		return Result{}, err
	}

	refined, iterations, converged, err := optimize.RefineOddEven(task, initial, opts.MaxIter, opts.TolM)
	if err != nil {
		return Result{}, err
	}
	refinedLength, err := routeLength(refined)
	if err != nil {
		return Result{}, err
	}

	best := refined
	bestLength := refinedLength

	dpPath, _, err := optimize.DP(task, candidatesM, opts.TakeoffSnapM)
	if err == nil {
		dpPolished, dpIter, dpConverged, err := optimize.RefineOddEven(task, dpPath, opts.MaxIter, opts.TolM)
		if err == nil {
			dpPolishedLength, err := routeLength(dpPolished)
			if err == nil && dpPolishedLength < bestLength {
				best = dpPolished
				bestLength = dpPolishedLength
				iterations = dpIter
				converged = dpConverged
			}
		}
	}

	beamPath, _, err := optimize.BeamSearch(task, candidatesM, opts.TakeoffSnapM, opts.BeamB)
	if err == nil {
		beamPolished, beamIter, beamConverged, err := optimize.RefineOddEven(task, beamPath, opts.MaxIter, opts.TolM)
		if err == nil {
			beamPolishedLength, err := routeLength(beamPolished)
			if err == nil && beamPolishedLength < bestLength {
				best = beamPolished
				bestLength = beamPolishedLength
				iterations = beamIter
				converged = beamConverged
			}
		}
	}

	return Result{
		Contacts:           best,
		CenterDistanceM:    centerDistance.Metres(),
		OptimizedDistanceM: bestLength,
		Iterations:         iterations,
		Converged:          converged,
	}, nil
}
