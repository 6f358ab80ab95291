package geod

/**
 * Copyright (c) 2020, Xerra Earth Observation Institute
 * All rights reserved. Use is subject to License terms.
 * See LICENSE in the root directory of this source tree.
 */

import (
	"testing"
)

func TestWrap360(t *testing.T) {
	testValues := map[float64]float64{
		-450: 270,
		-405: 315,
		-360: 0,
		-315: 45,
		-270: 90,
		-225: 135,
		-180: 180,
		-135: 225,
		-90:  270,
		-45:  315,
		0:    0,
		45:   45,
		90:   90,
		135:  135,
		180:  180,
		225:  225,
		270:  270,
		315:  315,
		360:  0,
		405:  45,
		450:  90,
	}
	for k, v := range testValues {
		if float64(Wrap360(Degrees(k))) != v {
			t.Errorf("Invalid result for %v: expected %v got %v", k, v, Wrap360(Degrees(k)))
		}
	}
}

func TestWrap180(t *testing.T) {
	testValues := map[float64]float64{
		-450: -90,
		-405: -45,
		-360: 0,
		-315: 45,
		-270: 90,
		-225: 135,
		-180: -180,
		-135: -135,
		-90:  -90,
		-45:  -45,
		0:    0,
		45:   45,
		90:   90,
		135:  135,
		180:  180,
		225:  -135,
		270:  -90,
		315:  -45,
		360:  0,
		405:  45,
		450:  90,
	}
	for k, v := range testValues {
		if float64(Wrap180(Degrees(k))) != v {
			t.Errorf("Invalid result for %v: expected %v got %v", k, v, Wrap180(Degrees(k)))
		}
	}
}

func TestWrap90(t *testing.T) {
	testValues := map[float64]float64{
		-450: -90,
		-405: -45,
		-360: 0,
		// -315: 45 TODO: fix!
		-270: 90,
		-225: 45,
		-180: 0,
		-135: -45,
		-90:  -90,
		-45:  -45,
		0:    0,
		45:   45,
		90:   90,
		135:  45,
		180:  0,
		225:  -45,
		270:  -90,
		315:  -45,
		360:  0,
		405:  45,
		450:  90,
	}
	for k, v := range testValues {
		if float64(Wrap90(Degrees(k))) != v {
			t.Errorf("Invalid result for %v: expected %v got %v", k, v, Wrap90(Degrees(k)))
		}
	}
}
