// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.15
//

package redshift

import (
	"errors"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestAngleGrid(t *testing.T) {
	g := AngleGrid(NumPoints)
	if len(g) != NumPoints {
		t.Fatalf("len = %d, want %d", len(g), NumPoints)
	}
	if g[0] != 0 {
		t.Errorf("first = %g, want 0", g[0])
	}
	if math.Abs(g[len(g)-1]-2*math.Pi) > 1e-12 {
		t.Errorf("last = %.15f, want 2pi", g[len(g)-1])
	}
	step := 2 * math.Pi / float64(NumPoints-1)
	for i := 1; i < len(g); i++ {
		if math.Abs(g[i]-g[i-1]-step) > 1e-12 {
			t.Fatalf("uneven spacing at %d: %g", i, g[i]-g[i-1])
		}
	}
}

func TestSweepDefault(t *testing.T) {
	series, err := Sweep(DefaultConfig())
	if err != nil {
		t.Fatalf("Sweep() error: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("got %d series, want 2", len(series))
	}
	names := []string{"GSAT0201", "GSAT0202"}
	for k, s := range series {
		if s.Orbit.Name != names[k] {
			t.Errorf("series %d is %s, want %s", k, s.Orbit.Name, names[k])
		}
		if s.Len() != NumPoints || len(s.Radius) != NumPoints || len(s.Shift) != NumPoints {
			t.Fatalf("%s: lengths %d/%d/%d, want %d", s.Orbit.Name, s.Len(), len(s.Radius), len(s.Shift), NumPoints)
		}
		for i, z := range s.Shift {
			if !(z < 0) {
				t.Fatalf("%s: shift[%d] = %g, want < 0", s.Orbit.Name, i, z)
			}
		}
		if !scalar.EqualWithinAbsOrRel(s.Shift[0], s.Shift[NumPoints-1], 1e-22, 1e-12) {
			t.Errorf("%s: shift[0] = %.15e, shift[last] = %.15e", s.Orbit.Name, s.Shift[0], s.Shift[NumPoints-1])
		}
	}
}

func TestSweepExtrema(t *testing.T) {
	series, err := Sweep(DefaultConfig())
	if err != nil {
		t.Fatalf("Sweep() error: %v", err)
	}
	for _, s := range series {
		rmin, rmax := floats.Min(s.Radius), floats.Max(s.Radius)
		if !scalar.EqualWithinRel(rmin, s.Orbit.Perigee(), 1e-9) {
			t.Errorf("%s: min radius %.3f, want perigee %.3f", s.Orbit.Name, rmin, s.Orbit.Perigee())
		}
		// pi is not on the grid; the nearest sample is within half a step
		if !scalar.EqualWithinRel(rmax, s.Orbit.Apogee(), 1e-5) {
			t.Errorf("%s: max radius %.3f, want apogee %.3f", s.Orbit.Name, rmax, s.Orbit.Apogee())
		}

		st := s.Stats()
		if st.ThetaAtMin != 0 || st.RadiusAtMin != s.Radius[0] {
			t.Errorf("%s: strongest shift at theta=%g, want perigee", s.Orbit.Name, st.ThetaAtMin)
		}
		if math.Abs(st.ThetaAtMax-math.Pi) > 2*math.Pi/float64(NumPoints-1) {
			t.Errorf("%s: weakest shift at theta=%g, want near pi", s.Orbit.Name, st.ThetaAtMax)
		}
		if !(st.Min < st.Mean && st.Mean < st.Max) || st.PeakToPeak != st.Max-st.Min {
			t.Errorf("%s: inconsistent stats %+v", s.Orbit.Name, st)
		}
	}
}

func TestSweepObserver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ObsRadius = cfg.Consts.Re
	series, err := Sweep(cfg)
	if err != nil {
		t.Fatalf("Sweep() error: %v", err)
	}
	for _, s := range series {
		for i, z := range s.Shift {
			want := RelativeShift(cfg.Consts, cfg.Body, s.Radius[i], cfg.Consts.Re)
			if z != want || !(z > 0) {
				t.Fatalf("%s: shift[%d] = %g, want %g", s.Orbit.Name, i, z, want)
			}
		}
	}
}

func TestSweepInvalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		reason InvalidParamReason
	}{
		{"parabolic", func(c *Config) { c.Orbits[1].Ecc = 1 }, ReasonEccentricity},
		{"negative a", func(c *Config) { c.Orbits[0].A = -27900 * Km }, ReasonSemiMajorAxis},
		{"duplicate", func(c *Config) { c.Orbits[1].Name = c.Orbits[0].Name }, ReasonDuplicateName},
		{"no orbits", func(c *Config) { c.Orbits = nil }, ReasonNoOrbits},
		{"one sample", func(c *Config) { c.NumPoints = 1 }, ReasonNumPoints},
		{"massless", func(c *Config) { c.Body.Mass = 0 }, ReasonBodyMass},
		{"observer", func(c *Config) { c.ObsRadius = -1 }, ReasonObserverRadius},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			series, err := Sweep(cfg)
			if series != nil {
				t.Errorf("Sweep() returned %d series on invalid input", len(series))
			}
			var perr *InvalidParamError
			if !errors.As(err, &perr) {
				t.Fatalf("Sweep() error = %v, want *InvalidParamError", err)
			}
			if perr.Reason != tt.reason {
				t.Errorf("reason = %q, want %q", perr.Reason, tt.reason)
			}
		})
	}
}

func TestSeriesLabel(t *testing.T) {
	s := &Series{Orbit: Orbit{Name: "GSAT0201", A: 27900 * Km, Ecc: 0.162}}
	got := s.Label()
	for _, want := range []string{"GSAT0201", "27900 km", "0.162"} {
		if !strings.Contains(got, want) {
			t.Errorf("Label() = %q, missing %q", got, want)
		}
	}
}
