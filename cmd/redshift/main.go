// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.15
//

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	m "github.com/mkhts/redshift"
)

func main() {

	// Parse command line arguments
	args, err := parseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		m.PrintE(err)
		os.Exit(1)
	}

	// Run the main application
	if err := runApplication(args, os.Stdout); err != nil {
		m.PrintE(err)
		os.Exit(1)
	}
}

// Main application processing
func runApplication(args cmdOpt, rep io.Writer) error {

	cfg := newConfig(args)

	// Compute series
	series, err := m.Sweep(cfg)
	if err != nil {
		return fmt.Errorf("failed to compute series: %w", err)
	}

	// Select the renderer before any output is made
	r, err := m.NewRenderer(args.outFn)
	if err != nil {
		return err
	}

	// Print report
	if !args.noHeader {
		printHeader(rep, os.Args[0], cfg, args.outFn)
	}
	for _, s := range series {
		printSeries(rep, cfg, s)
	}

	// Render figure
	return renderOutput(args.outFn, r, series)
}

// Name of the circular reference orbit
const refName = "REF"

// Build the sweep configuration from the arguments
func newConfig(args cmdOpt) *m.Config {
	cfg := m.DefaultConfig()
	if len(args.orbits) > 0 {
		cfg.Orbits = args.orbits
	}
	if args.body.Name != "" {
		cfg.Body = m.Body(args.body)
	}
	if args.ref {
		cfg.Orbits = append(cfg.Orbits, m.CircularOrbit(refName, m.IntendedA))
	}
	cfg.NumPoints = args.numPoints
	cfg.ObsRadius = args.obsKm * m.Km
	if args.ground {
		cfg.ObsRadius = cfg.Consts.Re
	}
	if args.useStation {
		cfg.ObsRadius = args.station.Radius()
	}
	return cfg
}

// Render series to the output file
func renderOutput(fn string, r m.Renderer, series []*m.Series) error {

	f, err := os.Create(fn)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := r.Render(f, series); err != nil {
		return fmt.Errorf("failed to render %s: %w", filepath.Base(fn), err)
	}
	m.PrintD(1, "wrote %s\n", fn)
	return f.Close()
}

// Print report header
func printHeader(rep io.Writer, cmd string, cfg *m.Config, outFn string) {
	fmt.Fprintf(rep, "%% program   : %s\n", filepath.Base(cmd))
	fmt.Fprintf(rep, "%% out file  : %s\n", outFn)
	fmt.Fprintf(rep, "%% body      : %s (GM=%.9e m^3/s^2)\n", cfg.Body.Name, m.GM(cfg.Consts, cfg.Body))
	fmt.Fprintf(rep, "%% samples   : %d\n", cfg.NumPoints)
	if cfg.ObsRadius > 0 {
		fmt.Fprintf(rep, "%% observer  : r=%.3f km\n", cfg.ObsRadius/m.Km)
	} else {
		fmt.Fprintf(rep, "%% observer  : infinity\n")
	}
	fmt.Fprintf(rep, "%%  name           a(km)      e     perigee(km)   apogee(km)     z_perigee      z_apogee      z_mean  p-p(1e-12)  fit_a(km)    fit_e\n")
}

// Print one line per series
// - The fit columns are NaN when the orbit cannot be recovered from the series
func printSeries(rep io.Writer, cfg *m.Config, s *m.Series) {
	st := s.Stats()
	fitA, fitE := math.NaN(), math.NaN()
	fit, err := m.FitOrbit(cfg.Consts, cfg.Body, s)
	if err != nil {
		m.PrintD(1, "\t%s: %s\n", s.Orbit.Name, err.Error())
	} else {
		m.PrintD(1, "\t%s: fit residual rms=%.3e\n", s.Orbit.Name, fit.ResRMS)
		fitA, fitE = fit.Orbit.A, fit.Orbit.Ecc
	}
	o := s.Orbit
	fmt.Fprintf(rep, "%-12s %12.3f %8.5f %13.3f %12.3f %13.6e %13.6e %13.6e %10.4f %10.3f %8.5f\n",
		o.Name, o.A/m.Km, o.Ecc, o.Perigee()/m.Km, o.Apogee()/m.Km,
		st.Min, st.Max, st.Mean, st.PeakToPeak*1e12, fitA/m.Km, fitE)
}

// Structure to hold command line argument information
type cmdOpt struct {
	outFn      string
	numPoints  int
	orbits     m.OrbitVar
	body       m.BodyVar
	obsKm      float64
	station    m.Station
	useStation bool
	ground     bool
	ref        bool
	noHeader   bool
}

// Parse command line arguments
func parseArgs(argv []string) (a cmdOpt, err error) {
	fs := flag.NewFlagSet(filepath.Base(os.Args[0]), flag.ContinueOnError)
	fs.Usage = func() {
		m.PrintA(`
[Usage]
	%s [Options]

[Options]
`, filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}
	fs.StringVar(&a.outFn, "o", "redshift.png", "Output file path. The extension selects the format: png, svg, pdf, jpg, eps, tif or csv.")
	fs.IntVar(&a.numPoints, "n", m.NumPoints, "Number of true anomaly samples over one revolution [0, 2pi]. Both ends are included.")
	fs.Var(&a.orbits, "sat", "Orbits to compute. Comma-separated NAME:a_km:e without spaces like GSAT0201:27900:0.162. Default: GSAT0201 and GSAT0202")
	fs.Var(&a.body, "body", "Central body. earth or sgra (Sagittarius A*)")
	fs.Float64Var(&a.obsKm, "obs", 0, "Observer radius [km]. Set to 0 for an observer at infinity.")
	fs.Var(&a.station, "l", "Observer station latitude/longitude/ellipsoidal height. Enclose in quotes like -l \"35.73101206 139.7396917 80.33\". Overrides -obs.")
	fs.BoolVar(&a.ground, "ground", false, "Observer on the Earth's mean sphere (r = 6371 km). Overrides -obs.")
	fs.BoolVar(&a.ref, "ref", false, fmt.Sprintf("Add the circular reference orbit %s at the nominal radius a = %.0f km.", refName, m.IntendedA/m.Km))
	fs.BoolVar(&a.noHeader, "nh", false, "Do not output header section of the report.")
	var dbg int
	fs.IntVar(&dbg, "x", 0, "Debug information display. Specify level value. 0(OFF), 1(display), 2(detailed display), 3(most detailed)")
	if err = fs.Parse(argv); err != nil {
		return a, err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return a, fmt.Errorf("too many arguments")
	}
	if math.IsNaN(a.obsKm) || a.obsKm < 0 {
		return a, fmt.Errorf("observer radius must not be negative")
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "l" {
			a.useStation = true
		}
	})
	m.DBG_ = dbg
	if m.DBG_ >= 1 && a.useStation {
		m.PrintA("station(llh, r): %s, %.4f\n", a.station.String(), a.station.Radius())
	}
	return
}
