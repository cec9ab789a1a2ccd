// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.15
//

package redshift

import (
	"math"
	"testing"
)

func TestRedshiftGalileo(t *testing.T) {
	c := DefaultConsts()

	// GM/(r c^2) with G=6.6743e-11, M=5.972e24, c=3e8
	zp := Redshift(c, EarthBody(), 23380200.0)
	if want := -1.8942390759892748e-10; math.Abs(zp-want) > 1e-20 {
		t.Errorf("Redshift at perigee = %.12e, want %.12e", zp, want)
	}
	za := Redshift(c, EarthBody(), 32419800.0)
	if want := -1.366069144302076e-10; math.Abs(za-want) > 1e-20 {
		t.Errorf("Redshift at apogee = %.12e, want %.12e", za, want)
	}
	if !(math.Abs(zp) > math.Abs(za)) {
		t.Errorf("|z(perigee)| = %g should exceed |z(apogee)| = %g", math.Abs(zp), math.Abs(za))
	}
}

func TestRedshiftSignAndOrdering(t *testing.T) {
	c := DefaultConsts()
	prev := math.Inf(1)
	for r := c.Re; r < 1e12; r *= 1.7 {
		z := Redshift(c, EarthBody(), r)
		if !(z < 0) {
			t.Fatalf("Redshift(%g) = %g, want < 0", r, z)
		}
		if !(math.Abs(z) < prev) {
			t.Fatalf("|Redshift(%g)| = %g not below previous %g", r, math.Abs(z), prev)
		}
		prev = math.Abs(z)
	}
}

func TestRedshiftBlackHole(t *testing.T) {
	c := DefaultConsts()
	rp := 120 * AU * (1 - 0.88)
	z := Redshift(c, SgrABody(), rp)
	want := -c.G * 4.154e6 * Msun / (rp * c.C * c.C)
	if math.Abs(z-want) > 1e-12*math.Abs(want) {
		t.Errorf("Redshift(Sgr A*) = %g, want %g", z, want)
	}
	if !(math.Abs(z) > math.Abs(Redshift(c, EarthBody(), rp))) {
		t.Errorf("black hole shift should dominate Earth's at the same radius")
	}
}

func TestRelativeShift(t *testing.T) {
	c := DefaultConsts()
	r := 23380200.0

	if got, want := RelativeShift(c, EarthBody(), r, math.Inf(1)), Redshift(c, EarthBody(), r); got != want {
		t.Errorf("RelativeShift(rObs=Inf) = %g, want %g", got, want)
	}
	if got := RelativeShift(c, EarthBody(), r, r); got != 0 {
		t.Errorf("RelativeShift(rEm=rObs) = %g, want 0", got)
	}

	// Ground observer sees the satellite clock blue-shifted
	got := RelativeShift(c, EarthBody(), r, c.Re)
	want := Redshift(c, EarthBody(), r) - Redshift(c, EarthBody(), c.Re)
	if !(got > 0) || math.Abs(got-want) > 1e-22 {
		t.Errorf("RelativeShift(rObs=Re) = %g, want %g (> 0)", got, want)
	}
}

func TestPotential(t *testing.T) {
	c := DefaultConsts()
	r := 29600 * Km
	if got, want := Potential(c, EarthBody(), r)/(c.C*c.C), Redshift(c, EarthBody(), r); math.Abs(got-want) > 1e-24 {
		t.Errorf("U/c^2 = %g, want %g", got, want)
	}
}

func TestBodiesAreValues(t *testing.T) {
	b := EarthBody()
	b.Mass *= 2
	if EarthBody().Mass != Me {
		t.Errorf("EarthBody() mass changed to %g", EarthBody().Mass)
	}
	cfg := DefaultConfig()
	cfg.Body.Mass = 0
	if DefaultConfig().Body != EarthBody() || SgrABody().Mass != 4.154e6*Msun {
		t.Errorf("shared body modified through a config")
	}
}
