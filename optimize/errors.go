package optimize

import "github.com/xctrack/routeopt/route"

// ErrNonConvergence signals a geodesic inverse/direct solve within the optimizer failed to
// converge. It is route.ErrGeodesicNonConvergence itself, not a distinct sentinel, so
// engine callers can match it with errors.Is(err, engine.ErrGeodesicNonConvergence)
// regardless of which stage of the pipeline hit the non-convergent solve.
var ErrNonConvergence = route.ErrGeodesicNonConvergence
