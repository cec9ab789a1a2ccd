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

// Newtonian gravitational potential at radius r [m^2/s^2]
// - U = -GM/r
func Potential(c Consts, b Body, r float64) float64 {
	return -GM(c, b) / r
}

// Fractional frequency shift of a signal emitted at radius r and received at infinity
// - df/f = -GM/(r c^2)
// - r must be positive. r <= 0 is not checked and yields Inf or a sign flip.
func Redshift(c Consts, b Body, r float64) float64 {
	return -GM(c, b) / (r * c.C * c.C)
}

// Fractional frequency shift between an emitter at rEm and an observer at rObs
// - df/f = (U(rEm) - U(rObs)) / c^2
// - rObs = +Inf is the same as Redshift
func RelativeShift(c Consts, b Body, rEm, rObs float64) float64 {
	if math.IsInf(rObs, 1) {
		return Redshift(c, b, rEm)
	}
	return (Potential(c, b, rEm) - Potential(c, b, rObs)) / (c.C * c.C)
}
