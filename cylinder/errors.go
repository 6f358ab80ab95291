package cylinder

import "github.com/xctrack/routeopt/route"

// ErrNonConvergence signals that a geodesic inverse/direct solve involved in a cylinder
// query failed to converge (nearly-antipodal points). It is route.ErrGeodesicNonConvergence
// itself, not a distinct sentinel, so callers up the stack can keep matching against the
// one error value with errors.Is regardless of which package's solve actually failed.
var ErrNonConvergence = route.ErrGeodesicNonConvergence
