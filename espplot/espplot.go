/*
 * espplot.go, part of repesp.
 *
 * Copyright 2026 The repesp developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package espplot draws diagnostic plots of gridded fields, such as the
//reproduced against the true electrostatic potential.
package espplot

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"repesp"
	"repesp/cube"
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

//ScatterFields plots the values of y against the values of x, point by
//grid point, and saves the result as a png. Both fields must live on
//the same grid. The axis labels are derived from the fields' own
//descriptions.
func ScatterFields(x, y *cube.GridField, title, plotname string) error {
	if x == nil || y == nil {
		panic("ScatterFields: given nil fields")
	}
	if !x.Grid.Equal(y.Grid) {
		return repesp.NewError(repesp.GridErr, "the two fields to plot live on different grids")
	}
	xlabel, err := x.LookupName()
	if err != nil {
		return repesp.ErrDecorate(err, "ScatterFields")
	}
	ylabel, err := y.LookupName()
	if err != nil {
		return repesp.ErrDecorate(err, "ScatterFields")
	}
	p := basicPlot(title, xlabel, ylabel)
	xv := x.Values()
	yv := y.Values()
	pts := make(plotter.XYs, len(xv))
	for i := range xv {
		pts[i].X = xv[i]
		pts[i].Y = yv[i]
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(1)
	s.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
	p.Add(s)
	return p.Save(5*vg.Inch, 5*vg.Inch, plotname+".png")
}
