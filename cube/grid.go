/*
 * grid.go, part of repesp.
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

//Package cube implements the volumetric grid/field model: geometry
//validation of the 3x4 cube header, scalar fields reshaped onto the
//grid, derivation of distance-transform and basin fields, and cube file
//input/output.
package cube

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"repesp"
)

var axisNames = [3]string{"x", "y", "z"}

//GridAxis is one axis of a sampling grid: the number of points along it
//and the interval vector between consecutive points. DirInterval is the
//interval component in the axis' own direction.
type GridAxis struct {
	Label       string
	PointCount  int
	Intervals   r3.Vec
	DirInterval float64
	aligned     bool
}

func component(v r3.Vec, i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

//newGridAxis builds axis number i from a 4-field geometry row
//[point count, dx, dy, dz]. The intervals are converted from bohr once
//here if inBohr is set. A fractional or negative point count is a
//FormatErr. An axis whose off-direction interval components are not all
//zero is constructed anyway but flagged as non-aligned, with a notice.
func newGridAxis(i int, row []float64, inBohr bool) (GridAxis, error) {
	axis := GridAxis{Label: axisNames[i]}
	if len(row) != 4 {
		return axis, repesp.NewError(repesp.FormatErr, "grid axis %s: expected 4 fields, got %d", axis.Label, len(row))
	}
	count := row[0]
	if count != math.Trunc(count) {
		return axis, repesp.NewError(repesp.FormatErr, "number of points in direction %s is not an integer: %v", axis.Label, count)
	}
	if count < 0 {
		return axis, repesp.NewError(repesp.FormatErr, "number of points in direction %s is negative: %v", axis.Label, count)
	}
	axis.PointCount = int(count)
	axis.Intervals = r3.Vec{X: row[1], Y: row[2], Z: row[3]}
	if inBohr {
		axis.Intervals = r3.Scale(repesp.Bohr2A, axis.Intervals)
	}
	axis.aligned = true
	for j := 0; j < 3; j++ {
		interval := component(axis.Intervals, j)
		if j == i {
			axis.DirInterval = interval
		} else if interval != 0 {
			axis.aligned = false
		}
	}
	if !axis.aligned {
		repesp.Log.Infof("cube axis %s is not aligned to its coordinate axis, the intervals are %v", axis.Label, axis.Intervals)
	}
	return axis, nil
}

//Grid is the sampling geometry of a cube: three axes and an origin.
//It is immutable after construction.
type Grid struct {
	Axes    [3]GridAxis
	Origin  r3.Vec
	aligned bool
}

//NewGrid builds a Grid from the three 4-field geometry rows of a cube
//header, in x,y,z order, plus the origin. inBohr requests a one-time
//unit conversion of intervals and origin. A misaligned grid is still
//constructed, so the geometry can be reported, but every operation that
//requires alignment will refuse it.
func NewGrid(rows [][]float64, origin r3.Vec, inBohr bool) (*Grid, error) {
	if len(rows) != 3 {
		return nil, repesp.NewError(repesp.FormatErr, "incorrect grid formatting: expected 3 geometry rows, got %d", len(rows))
	}
	g := &Grid{aligned: true}
	for i, row := range rows {
		axis, err := newGridAxis(i, row, inBohr)
		if err != nil {
			return nil, repesp.ErrDecorate(err, "NewGrid")
		}
		g.Axes[i] = axis
		//all axes must fulfil the condition, hence the logic
		g.aligned = g.aligned && axis.aligned
	}
	g.Origin = origin
	if inBohr {
		g.Origin = r3.Scale(repesp.Bohr2A, origin)
	}
	return g, nil
}

//Aligned reports whether every axis of the grid is aligned with its
//coordinate axis. The value is computed once at construction.
func (g *Grid) Aligned() bool {
	return g.aligned
}

//PointCounts returns the number of points along x, y and z.
func (g *Grid) PointCounts() [3]int {
	return [3]int{g.Axes[0].PointCount, g.Axes[1].PointCount, g.Axes[2].PointCount}
}

//Points returns the total number of grid points.
func (g *Grid) Points() int {
	return g.Axes[0].PointCount * g.Axes[1].PointCount * g.Axes[2].PointCount
}

//DirIntervals returns the per-axis sampling interval of an aligned
//grid. A non-aligned grid refuses with a GridErr instead of silently
//yielding wrong geometry.
func (g *Grid) DirIntervals() ([3]float64, error) {
	if !g.aligned {
		return [3]float64{}, repesp.NewError(repesp.GridErr, "grid is not aligned with the coordinate system")
	}
	return [3]float64{g.Axes[0].DirInterval, g.Axes[1].DirInterval, g.Axes[2].DirInterval}, nil
}

//Equal is full structural equality of all axis and origin data. It is
//used to verify that several fields share an identical sampling grid
//before combining them.
func (g *Grid) Equal(h *Grid) bool {
	if g == nil || h == nil {
		return g == h
	}
	return g.Axes == h.Axes && g.Origin == h.Origin
}

//Index returns the flat offset of point (ix,iy,iz); z varies fastest,
//as in the cube file layout.
func (g *Grid) Index(ix, iy, iz int) int {
	n := g.PointCounts()
	return (ix*n[1]+iy)*n[2] + iz
}
