// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.15
//

package redshift

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ------------------------------------
// Mini functions
// ------------------------------------

func SQ(x float64) float64 {
	return x * x
}

func ToDeg(rad float64) float64 {
	return rad / PI * 180.0
}

func ToRad(deg float64) float64 {
	return deg / 180.0 * PI
}

// ------------------------------------
// Debug print function
// ------------------------------------

func PrintMat(X mat.Matrix) {
	r, c := X.Dims()
	fmt.Fprintf(os.Stderr, "(%d x %d)\n", r, c)
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	fmt.Fprintf(os.Stderr, "%v\n", fa)
}

func PrintVec(v mat.Vector) {
	fmt.Fprintf(os.Stderr, "(%d)\n", v.Len())
	fa := mat.Formatted(v.T(), mat.Prefix(""), mat.Squeeze())
	fmt.Fprintf(os.Stderr, "%v\n", fa)
}

func PrintA(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format, a...)
}

func PrintAIf(cond bool, format string, a ...any) {
	if cond {
		PrintA(format, a...)
	}
}

// Debug display level
var DBG_ int

// Debug display
func PrintD(v int, format string, a ...any) {
	PrintAIf(DBG_ >= v, format, a...)
}

func PrintE(err error) {
	fmt.Fprintf(os.Stderr, "err=%s\n", err.Error())
}

// ------------------------------------
// For command argument parsing
// ------------------------------------

// List of orbits given as "NAME:a[km]:e,NAME:a[km]:e"
type OrbitVar []Orbit

func (p *OrbitVar) Set(s string) error {
	*p = []Orbit{}
	for _, a := range strings.Split(s, ",") {
		f := strings.Split(strings.TrimSpace(a), ":")
		if len(f) != 3 || f[0] == "" {
			return fmt.Errorf("orbit must be NAME:a_km:e, got %q", a)
		}
		sma, err := strconv.ParseFloat(f[1], 64)
		if err != nil {
			return fmt.Errorf("semi-major axis of %s: %w", f[0], err)
		}
		ecc, err := strconv.ParseFloat(f[2], 64)
		if err != nil {
			return fmt.Errorf("eccentricity of %s: %w", f[0], err)
		}
		*p = append(*p, Orbit{Name: f[0], A: sma * Km, Ecc: ecc})
	}
	return nil
}

func (p *OrbitVar) String() string {
	if p == nil {
		return ""
	}
	s := make([]string, len(*p))
	for i, o := range *p {
		s[i] = fmt.Sprintf("%s:%g:%g", o.Name, o.A/Km, o.Ecc)
	}
	return strings.Join(s, ",")
}

// Central body selected by name (earth, sgra)
type BodyVar Body

func (p *BodyVar) Set(s string) error {
	switch strings.ToLower(s) {
	case "earth", "e":
		*p = BodyVar(EarthBody())
	case "sgra", "sgra*", "s":
		*p = BodyVar(SgrABody())
	default:
		return fmt.Errorf("unknown body %q", s)
	}
	return nil
}

func (p *BodyVar) String() string {
	if p == nil || p.Name == "" {
		return EarthBody().Name
	}
	return p.Name
}
