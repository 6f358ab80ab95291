package cylinder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xctrack/routeopt/geod"
	"github.com/xctrack/routeopt/route"
)

func ll(lat, lon float64) geod.LatLon {
	return geod.NewLatLon(lat, lon)
}

func testCylinder(lat, lon, radius float64) Cylinder {
	return Of(route.Cylinder{Center: ll(lat, lon), RadiusM: radius, Role: route.Regular})
}

func TestSignedDistanceAtCenter(t *testing.T) {
	k := testCylinder(46.5, 8.0, 1000)
	d, err := k.SignedDistance(k.Center)
	assert.NoError(t, err)
	assert.InDelta(t, -1000.0, d, 1.0)
}

func TestSignedDistanceOnBoundary(t *testing.T) {
	k := testCylinder(46.5, 8.0, 1000)
	p := k.PointAtAzimuth(30)
	d, err := k.SignedDistance(p)
	assert.NoError(t, err)
	assert.InDelta(t, 0, d, EpsilonGeom)
}

func TestProjectOnBoundaryLiesOnBoundary(t *testing.T) {
	k := testCylinder(46.5, 8.0, 1000)
	q := ll(46.6, 8.1)
	p := k.ProjectOnBoundary(q)
	d, err := k.SignedDistance(p)
	assert.NoError(t, err)
	assert.InDelta(t, 0, d, EpsilonGeom)
}

func TestProjectOnBoundaryAtCenterReturnsCenter(t *testing.T) {
	k := testCylinder(46.5, 8.0, 1000)
	p := k.ProjectOnBoundary(k.Center)
	assert.True(t, p.Equals(k.Center))
}

func TestBoundaryIntersectStraddlingSegment(t *testing.T) {
	k := testCylinder(46.5, 8.0, 1000)
	a := ll(46.4, 8.0)
	b := ll(46.6, 8.0)

	tParam, point, ok := BoundaryIntersect(a, b, k)
	assert.True(t, ok)
	assert.True(t, tParam > 0 && tParam < 1)

	d, err := k.SignedDistance(point)
	assert.NoError(t, err)
	assert.InDelta(t, 0, d, EpsilonGeom)
}

func TestBoundaryIntersectNoCrossing(t *testing.T) {
	k := testCylinder(46.5, 8.0, 1000)
	a := ll(47.0, 8.0)
	b := ll(47.1, 8.0)

	_, _, ok := BoundaryIntersect(a, b, k)
	assert.False(t, ok)
}

func TestBoundaryIntersectTangentCase(t *testing.T) {
	// A segment that grazes the cylinder: chord passing within EpsilonGeom of the radius.
	k := testCylinder(0, 0, 5000)
	a := ll(0.0452185, -0.2)
	b := ll(0.0452185, 0.2)

	tParam, point, ok := BoundaryIntersect(a, b, k)
	if !ok {
		t.Skip("segment did not cross within sampling resolution; tangency is a measure-zero case")
	}
	_ = tParam
	d, err := k.SignedDistance(point)
	assert.NoError(t, err)
	assert.InDelta(t, 0, d, 1.0) // on the boundary to within 1m, per §8 property 7
}

func TestLineSideClassifiesNearAndFar(t *testing.T) {
	prev := ll(0, 0)
	lineCenter := ll(0, 1)

	far := ll(0, 2)   // straight ahead of the approach direction
	near := ll(0, 0.5) // behind the line, toward prev

	assert.Equal(t, SideFar, LineSide(prev, lineCenter, far))
	assert.Equal(t, SideNear, LineSide(prev, lineCenter, near))
}

func TestMercatorPreRejectSkipsDistantSegment(t *testing.T) {
	k := testCylinder(0, 0, 1000)
	a := ll(10, 10)
	b := ll(11, 11)
	assert.True(t, mercatorPreReject(a, b, k))
}
