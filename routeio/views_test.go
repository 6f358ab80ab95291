package routeio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xctrack/routeopt/geod"
	"github.com/xctrack/routeopt/route"
)

func TestContactsLineStringPreservesOrderAndCount(t *testing.T) {
	contacts := []geod.LatLon{
		geod.NewLatLon(46.5, 8.0),
		geod.NewLatLon(46.6, 8.1),
	}
	ls := ContactsLineString(contacts)
	assert.Len(t, ls, 2)
	assert.InDelta(t, 8.0, ls[0][0], 1e-9)
	assert.InDelta(t, 46.5, ls[0][1], 1e-9)
}

func TestCandidateRingIsClosed(t *testing.T) {
	k := route.Cylinder{Center: geod.NewLatLon(0, 0), RadiusM: 1000, Role: route.Regular}
	ring := CandidateRing(k, 12)
	assert.Len(t, ring, 13)
	assert.Equal(t, ring[0], ring[len(ring)-1])
}

func TestCandidateRingClampsLowM(t *testing.T) {
	k := route.Cylinder{Center: geod.NewLatLon(0, 0), RadiusM: 1000, Role: route.Regular}
	ring := CandidateRing(k, 1)
	assert.Len(t, ring, 4) // clamped to m=3, plus closing point
}
