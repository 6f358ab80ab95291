package geod

/**
 * Copyright (c) 2020, Xerra Earth Observation Institute
 * All rights reserved. Use is subject to License terms.
 * See LICENSE in the root directory of this source tree.
 */

import (
	"fmt"
	"testing"
)

func TestModel(t *testing.T) {
	p1 := LatLon{10, 20}
	p2 := LatLon{20, 40}
	mp := MidPoint(p1, p2, SphericalModel)
	fmt.Printf("Midpoint: (spherical) %v\n", mp)
	fmt.Printf("Distance: (spherical) %vkm\n", Distance(p1, p2, SphericalModel).Kilometres())
	fmt.Printf("Initial bearing: (spherical) %v\n", InitialBearing(p1, p2, SphericalModel))
	fmt.Printf("Final bearing: (spherical) %v\n", FinalBearing(p1, p2, SphericalModel))
	fmt.Printf("Destination: (spherical) %v\n", DestinationPoint(p1, 50000, 45, SphericalModel))
	fmt.Printf("Intermediate: (spherical) %v\n", IntermediatePoint(p1, p2, 0.5, SphericalModel))
}
