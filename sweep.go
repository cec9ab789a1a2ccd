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

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sweep configuration. Built once and not modified while sweeping.
type Config struct {
	Consts    Consts
	Body      Body
	Orbits    []Orbit // Swept in declared order
	NumPoints int     // Number of true anomaly samples over [0, 2pi]
	ObsRadius float64 // Observer radius [m]. 0: observer at infinity
}

func DefaultConfig() *Config {
	return &Config{
		Consts:    DefaultConsts(),
		Body:      EarthBody(),
		Orbits:    DefaultOrbits(),
		NumPoints: NumPoints,
	}
}

// Check the whole configuration before anything is computed
func (cfg *Config) Validate() error {
	if cfg.NumPoints < 2 {
		return &InvalidParamError{Name: "NumPoints", Reason: ReasonNumPoints, Value: float64(cfg.NumPoints)}
	}
	if !(cfg.Body.Mass > 0) {
		return &InvalidParamError{Name: cfg.Body.Name, Reason: ReasonBodyMass, Value: cfg.Body.Mass}
	}
	if !(cfg.ObsRadius >= 0) {
		return &InvalidParamError{Name: "ObsRadius", Reason: ReasonObserverRadius, Value: cfg.ObsRadius}
	}
	if len(cfg.Orbits) == 0 {
		return &InvalidParamError{Name: "Orbits", Reason: ReasonNoOrbits}
	}
	for i, o := range cfg.Orbits {
		if err := o.Validate(); err != nil {
			return err
		}
		if slices.IndexFunc(cfg.Orbits[:i], func(p Orbit) bool { return p.Name == o.Name }) >= 0 {
			return &InvalidParamError{Name: o.Name, Reason: ReasonDuplicateName, Value: float64(i)}
		}
	}
	return nil
}

// Observer radius used by the shift function (+Inf when not set)
func (cfg *Config) observer() float64 {
	if cfg.ObsRadius == 0 {
		return math.Inf(1)
	}
	return cfg.ObsRadius
}

// n evenly spaced true anomalies covering [0, 2pi], both ends included
// - Panics when n < 2 (Config.Validate rejects that before sweeping)
func AngleGrid(n int) []float64 {
	return floats.Span(make([]float64, n), 0, 2*math.Pi)
}

// Radius and shift of one orbit over the angle grid
type Series struct {
	Orbit  Orbit
	ObsR   float64   // Observer radius [m] (+Inf: at infinity)
	Theta  []float64 // True anomaly [rad] (shared between series)
	Radius []float64 // [m]
	Shift  []float64 // df/f
}

// Legend label: name, semi-major axis [km] and eccentricity
func (s *Series) Label() string {
	return fmt.Sprintf("%s (a=%.0f km, e=%.4g)", s.Orbit.Name, s.Orbit.A/Km, s.Orbit.Ecc)
}

func (s *Series) Len() int {
	return len(s.Theta)
}

// Compute the redshift series of every configured orbit
func Sweep(cfg *Config) ([]*Series, error) {

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sweep configuration: %w", err)
	}

	theta := AngleGrid(cfg.NumPoints)
	obsR := cfg.observer()
	PrintD(1, "sweep: body=%s, n=%d, orbits=%d, obs=%g\n", cfg.Body.Name, len(theta), len(cfg.Orbits), obsR)

	series := make([]*Series, 0, len(cfg.Orbits))
	for _, o := range cfg.Orbits {
		s := &Series{
			Orbit:  o,
			ObsR:   obsR,
			Theta:  theta,
			Radius: make([]float64, len(theta)),
			Shift:  make([]float64, len(theta)),
		}
		for i, th := range theta {
			s.Radius[i] = o.Radius(th)
			s.Shift[i] = RelativeShift(cfg.Consts, cfg.Body, s.Radius[i], obsR)
		}
		PrintD(2, "\t%s: r[0]=%.3f, z[0]=%.6e\n", o.Name, s.Radius[0], s.Shift[0])
		series = append(series, s)
	}
	return series, nil
}

// Summary of a shift series
type Stats struct {
	Min, Max    float64 // Most negative and least negative shift
	Mean        float64
	PeakToPeak  float64 // Max - Min
	ThetaAtMin  float64 // [rad]
	ThetaAtMax  float64 // [rad]
	RadiusAtMin float64 // [m]
	RadiusAtMax float64 // [m]
}

func (s *Series) Stats() Stats {
	i := floats.MinIdx(s.Shift)
	j := floats.MaxIdx(s.Shift)
	return Stats{
		Min:         s.Shift[i],
		Max:         s.Shift[j],
		Mean:        stat.Mean(s.Shift, nil),
		PeakToPeak:  s.Shift[j] - s.Shift[i],
		ThetaAtMin:  s.Theta[i],
		ThetaAtMax:  s.Theta[j],
		RadiusAtMin: s.Radius[i],
		RadiusAtMax: s.Radius[j],
	}
}
