// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.15
//

package redshift

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	DefaultTitle = "Gravitational Redshift of Galileo Satellites"
	XLabel       = "True Anomaly (radians)"
	YLabel       = "Gravitational Redshift (dimensionless)"
)

// Output of computed series. Presentation is independent of the computation.
type Renderer interface {
	Render(w io.Writer, series []*Series) error
}

// Image formats supported by gonum/plot
var plotFormats = []string{"eps", "jpg", "jpeg", "pdf", "png", "svg", "tif", "tiff"}

// Renderer for the output file name. The extension selects the format.
func NewRenderer(fn string) (Renderer, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fn), "."))
	switch {
	case ext == "csv":
		return &CSVRenderer{}, nil
	case slices.Contains(plotFormats, ext):
		return NewPlotRenderer(ext), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", ext)
	}
}

// Line plot of shift vs true anomaly, one curve per series
type PlotRenderer struct {
	Format string
	Title  string
	Width  vg.Length
	Height vg.Length
}

func NewPlotRenderer(format string) *PlotRenderer {
	return &PlotRenderer{
		Format: format,
		Title:  DefaultTitle,
		Width:  10 * vg.Inch,
		Height: 6 * vg.Inch,
	}
}

// Build the figure without writing it
func (r *PlotRenderer) Plot(series []*Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = r.Title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.Y.Tick.Marker = sciTicks{}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, s := range series {
		xys := make(plotter.XYs, s.Len())
		for j := range xys {
			xys[j].X = s.Theta[j]
			xys[j].Y = s.Shift[j]
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("failed to create line for %s: %w", s.Orbit.Name, err)
		}
		l.LineStyle.Color = plotutil.Color(i)
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
		p.Legend.Add(s.Label(), l)
	}
	return p, nil
}

func (r *PlotRenderer) Render(w io.Writer, series []*Series) error {
	p, err := r.Plot(series)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(r.Width, r.Height, r.Format)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", r.Format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s: %w", r.Format, err)
	}
	return nil
}

// Default ticks with labels in %g form (shift values are around 1e-10)
type sciTicks struct{}

func (sciTicks) Ticks(min, max float64) []plot.Tick {
	tks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range tks {
		if tks[i].Label != "" {
			tks[i].Label = fmt.Sprintf("%.3g", tks[i].Value)
		}
	}
	return tks
}
