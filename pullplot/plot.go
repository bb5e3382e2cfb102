/*
 * plot.go, part of gopull
 *
 * Copyright 2026 The gopull Authors
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

//Package pullplot draws the trajectories in a pulling dataset.
package pullplot

import (
	"fmt"

	pull "github.com/rmera/gopull"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot size
var (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

// Trajectories plots each row of ys against x, and saves the plot to filename.
// The format is taken from the file extension (png, svg, pdf, eps...).
func Trajectories(x []float64, ys mat.Matrix, title, xlabel, ylabel, filename string) error {
	if ys == nil {
		return fmt.Errorf("pullplot: nil data")
	}
	r, c := ys.Dims()
	if c != len(x) {
		return fmt.Errorf("pullplot: %d x values for rows of %d", len(x), c)
	}
	p := basicPlot(title, xlabel, ylabel)
	for i := 0; i < r; i++ {
		pts := make(plotter.XYs, c)
		for j := range pts {
			pts[j].X = x[j]
			pts[j].Y = ys.At(i, j)
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("pullplot: row %d: %w", i, err)
		}
		l.LineStyle.Color = plotutil.Color(i)
		l.LineStyle.Width = vg.Points(0.7)
		p.Add(l)
	}
	//here I  intentionally shadow err.
	if err := p.Save(Width, Height, filename); err != nil {
		return err
	}
	return nil
}

// Work plots the accumulated work of every replicate in the direction d against the
// position of the restraint center.
func Work(D *pull.Dataset, d pull.Direction, filename string) error {
	return Trajectories(D.Lambda(d), D.W(d), fmt.Sprintf("Work, %s pulling", d), "lambda (nm)", "W (kT)", filename)
}

// Coordinates plots the restrained coordinate of every replicate in the direction d against
// the position of the restraint center.
func Coordinates(D *pull.Dataset, d pull.Direction, filename string) error {
	return Trajectories(D.Lambda(d), D.Z(d), fmt.Sprintf("Restrained coordinate, %s pulling", d), "lambda (nm)", "z (nm)", filename)
}
