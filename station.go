// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.15
//

package redshift

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Geodetic position of a ground observer (WGS-84)
type Station struct {
	Lat float64 // [rad]
	Lon float64 // [rad]
	Hei float64 // Ellipsoidal height [m]
}

// Earth-centered Cartesian coordinates [m]
func (st *Station) ToXYZ() (x, y, z float64) {
	e2 := Fe * (2 - Fe)
	n := Rwgs / math.Sqrt(1-e2*SQ(math.Sin(st.Lat))) // Radius of curvature in the prime vertical
	x = (n + st.Hei) * math.Cos(st.Lat) * math.Cos(st.Lon)
	y = (n + st.Hei) * math.Cos(st.Lat) * math.Sin(st.Lon)
	z = (n*(1-e2) + st.Hei) * math.Sin(st.Lat)
	return
}

// Geocentric distance [m], used as the observer radius of a sweep
func (st *Station) Radius() float64 {
	x, y, z := st.ToXYZ()
	return math.Sqrt(x*x + y*y + z*z)
}

// Read from string "lat[deg] lon[deg] hei[m]"
func (st *Station) Set(s string) error {
	f := strings.Fields(s)
	if len(f) != 3 {
		return fmt.Errorf("station must be \"lat lon hei\", got %q", s)
	}
	var v [3]float64
	for i := range f {
		x, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			return err
		}
		v[i] = x
	}
	if math.Abs(v[0]) > 90 {
		return fmt.Errorf("latitude out of range: %g", v[0])
	}
	st.Lat, st.Lon, st.Hei = ToRad(v[0]), ToRad(v[1]), v[2]
	return nil
}

func (st *Station) String() string {
	return fmt.Sprintf("%.8f %.8f %.4f", ToDeg(st.Lat), ToDeg(st.Lon), st.Hei)
}
