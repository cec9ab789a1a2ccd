// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.15
//

package redshift

import (
	"math"
)

// Orbital parameters of a satellite
type Orbit struct {
	Name string
	A    float64 // Semi-major axis [m]
	Ecc  float64 // Eccentricity
}

// Galileo FOC satellites GSAT0201/0202, injected into eccentric orbits in 2014
func DefaultOrbits() []Orbit {
	return []Orbit{
		{Name: "GSAT0201", A: 27900 * Km, Ecc: 0.162},
		{Name: "GSAT0202", A: 27977 * Km, Ecc: 0.1617},
	}
}

// Circular orbit of radius r [m]
// - Reference for the eccentric orbits: its shift is flat over theta
func CircularOrbit(name string, r float64) Orbit {
	return Orbit{Name: name, A: r, Ecc: 0}
}

// Radius at true anomaly theta [rad]
// - r = a(1-e^2) / (1+e*cos(theta))
// - No check of a and e. Use Orbit.Validate before sweeping.
func RadiusAt(a, e, theta float64) float64 {
	return a * (1 - e*e) / (1 + e*math.Cos(theta))
}

func (o *Orbit) Radius(theta float64) float64 {
	return RadiusAt(o.A, o.Ecc, theta)
}

// Semi-latus rectum [m]
func (o *Orbit) SemiLatus() float64 {
	return o.A * (1 - o.Ecc*o.Ecc)
}

// Periapsis distance [m]
func (o *Orbit) Perigee() float64 {
	return o.A * (1 - o.Ecc)
}

// Apoapsis distance [m]
func (o *Orbit) Apogee() float64 {
	return o.A * (1 + o.Ecc)
}

// Check that the ellipse is non-degenerate (a > 0, 0 <= e < 1)
func (o *Orbit) Validate() error {
	if !(o.A > 0) || math.IsInf(o.A, 0) {
		return &InvalidParamError{Name: o.Name, Reason: ReasonSemiMajorAxis, Value: o.A}
	}
	if !(o.Ecc >= 0 && o.Ecc < 1) {
		return &InvalidParamError{Name: o.Name, Reason: ReasonEccentricity, Value: o.Ecc}
	}
	return nil
}
