package route

import "errors"

// Sentinel errors for three of §7's four error kinds. Defined here (rather than in engine)
// because route.Task.Validate and route.Task.CenterDistance are the first call sites able
// to detect InvalidTask and GeodesicNonConvergence; engine re-surfaces the same sentinels
// for UnsupportedEarthModel, which only it can detect. §7's fourth kind, DegenerateGeometry,
// is not an error return at all - it's a recognised condition the engine recovers from by
// returning a route with contacts pinned to the centers and the center distance as its
// length (see engine.Optimize's IsDegenerate branch), logged at debug level rather than
// surfaced to the caller as a failure.
var (
	// ErrInvalidTask is returned when a task fails the structural checks of §3: fewer
	// than 2 turnpoints, duplicate SSS/ESS roles, a negative radius, or an out-of-range
	// lat/lon.
	ErrInvalidTask = errors.New("invalid task")

	// ErrUnsupportedEarthModel is returned when the task requests an earth model other
	// than WGS84.
	ErrUnsupportedEarthModel = errors.New("unsupported earth model")

	// ErrGeodesicNonConvergence is returned when the Vincenty inverse solve fails to
	// converge, the expected failure mode for nearly-antipodal points.
	ErrGeodesicNonConvergence = errors.New("geodesic solve did not converge")
)
