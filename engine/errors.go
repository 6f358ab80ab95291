package engine

import "github.com/xctrack/routeopt/route"

// Three of §7's four error kinds are the route package's sentinels, re-exported here since
// engine is the package callers actually import. route.Task.Validate and
// route.Task.CenterDistance are the first call sites able to detect InvalidTask and
// GeodesicNonConvergence; UnsupportedEarthModel is detected only by the engine.
// DegenerateGeometry has no sentinel: it's handled by returning a route with contacts
// pinned to the centers rather than an error (see Optimize's IsDegenerate branch).
var (
	ErrInvalidTask            = route.ErrInvalidTask
	ErrUnsupportedEarthModel  = route.ErrUnsupportedEarthModel
	ErrGeodesicNonConvergence = route.ErrGeodesicNonConvergence
)
