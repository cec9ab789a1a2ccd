// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.15
//

package redshift

const (
	PI   = 3.1415926535897932  // Pi
	Km   = 1e3                 // Kilometer [m]
	AU   = 1.496e11            // Astronomical unit [m]
	Msun = 1.989e30            // Solar mass [kg]
	Me   = 5.972e24            // Earth's mass [kg]
	Rwgs = 6378137.0           // WGS-84 equatorial radius [m]
	Fe   = 1.0 / 298.257223563 // WGS-84 flattening

	NumPoints = 1000 // Default number of true anomaly samples per revolution

	IntendedA = 29600 * Km // Nominal Galileo orbit radius, the circular reference
)

// Physical constants used by the weak-field model
type Consts struct {
	G  float64 // Gravitational constant [m^3 kg^-1 s^-2]
	C  float64 // Speed of light [m/s]
	Re float64 // Earth's mean radius [m]. Observer radius of a ground station on the mean sphere
}

func DefaultConsts() Consts {
	return Consts{
		G:  6.67430e-11,
		C:  3.0e8,
		Re: 6.371e6,
	}
}

// Central attracting body
type Body struct {
	Name string
	Mass float64 // [kg]
}

func EarthBody() Body {
	return Body{Name: "Earth", Mass: Me}
}

// Supermassive black hole at the Galactic center
func SgrABody() Body {
	return Body{Name: "Sgr A*", Mass: 4.154e6 * Msun}
}

// Standard gravitational parameter of the body [m^3/s^2]
func GM(c Consts, b Body) float64 {
	return c.G * b.Mass
}
