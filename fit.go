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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Orbit recovered from a shift series
type FitSol struct {
	Orbit  Orbit      // Estimated a and e
	P      float64    // Semi-latus rectum [m]
	X      mat.Vector // (z0, z1) of z = z0 + z1*cos(theta)
	Cov    mat.Matrix // (G^t W G)^-1
	ResRMS float64    // RMS of post-fit residuals
}

// Solve the observation equation using weighted least squares
// - dx = (G^t W G)^-1 G^t W dr, W = diag(w)
// - Return the error covariance matrix (G^t W G)^-1 as cov
func SolveWLS(G mat.Matrix, dr mat.Vector, w []float64) (dx *mat.VecDense, cov *mat.Dense, err error) {

	n, m := G.Dims()
	if dr.Len() != n {
		return nil, nil, fmt.Errorf("invalid matrix size. G(%d x %d), dr(%d x 1)", n, m, dr.Len())
	}
	if len(w) != n {
		return nil, nil, fmt.Errorf("invalid weight size. G(%d x %d), w(%d)", n, m, len(w))
	}
	W := mat.NewDiagDense(n, w)

	// A (G^t W G)
	var WG mat.Dense
	WG.Mul(W, G)
	var A mat.Dense
	A.Mul(G.T(), &WG)

	// b (G^t W dr)
	var Wdr mat.VecDense
	Wdr.MulVec(W, dr)
	var b mat.VecDense
	b.MulVec(G.T(), &Wdr)

	dx = new(mat.VecDense)
	if err = dx.SolveVec(&A, &b); err != nil {
		return nil, nil, err
	}
	cov = new(mat.Dense)
	if err = cov.Inverse(&A); err != nil {
		return nil, nil, err
	}
	return
}

// Recover a and e from a shift series by least squares
// - z(theta) - GM/(c^2 rObs) = -GM/(c^2 p) * (1 + e*cos(theta))
// - The model is linear in (1, cos(theta)): z0 = -GM/(c^2 p), z1 = z0*e
func FitOrbit(c Consts, b Body, s *Series) (*FitSol, error) {

	n := s.Len()
	if n < 3 {
		return nil, fmt.Errorf("too few samples to fit (%d)", n)
	}

	// Remove the observer potential so that only the emitter term remains
	// - ObsR <= 0 or +Inf: observer at infinity, nothing to remove
	offset := 0.0
	if s.ObsR > 0 && !math.IsInf(s.ObsR, 1) {
		offset = GM(c, b) / (s.ObsR * c.C * c.C)
	}

	G := mat.NewDense(n, 2, nil)
	dr := mat.NewVecDense(n, nil)
	for i, th := range s.Theta {
		G.Set(i, 0, 1)
		G.Set(i, 1, math.Cos(th))
		dr.SetVec(i, s.Shift[i]-offset)
	}
	w := make([]float64, n)
	floats.AddConst(1, w)

	x, cov, err := SolveWLS(G, dr, w)
	if err != nil {
		return nil, fmt.Errorf("least squares failed for %s: %w", s.Orbit.Name, err)
	}
	if DBG_ >= 3 {
		PrintA("\tfit %s:\n", s.Orbit.Name)
		PrintVec(x)
		PrintMat(cov)
	}

	z0, z1 := x.AtVec(0), x.AtVec(1)
	if !(z0 < 0) {
		return nil, fmt.Errorf("non-physical fit for %s: z0=%g", s.Orbit.Name, z0)
	}
	p := -GM(c, b) / (c.C * c.C * z0)
	e := z1 / z0

	var res mat.VecDense
	res.MulVec(G, x)
	res.SubVec(dr, &res)
	rms := mat.Norm(&res, 2) / math.Sqrt(float64(n))

	return &FitSol{
		Orbit:  Orbit{Name: s.Orbit.Name, A: p / (1 - e*e), Ecc: e},
		P:      p,
		X:      x,
		Cov:    cov,
		ResRMS: rms,
	}, nil
}
