/*
 * edt.go, part of repesp.
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

package cube

import (
	"math"

	"repesp"
)

//DistanceTransform derives a new field holding, for every grid point,
//the Euclidean distance to the nearest point whose source value is not
//below the isovalue, scaled by the grid's per-axis sampling intervals.
//It is intended for electron-density fields; applying it to another
//field type is allowed but logs a correctness warning. A grid that is
//not axis-aligned refuses with a GridErr.
func (f *GridField) DistanceTransform(isovalue float64) (*GridField, error) {
	if f.Type != ED {
		repesp.Log.Warnf("distance transform should only be applied to electron density fields, attempted on field type '%s'", f.Type)
	}
	sampling, err := f.Grid.DirIntervals()
	if err != nil {
		return nil, repesp.ErrDecorate(err, "DistanceTransform")
	}
	//Points below the isovalue are the foreground; each gets the
	//distance to the nearest point at or above it, i.e. to the
	//isosurface and its interior.
	outside := make([]bool, len(f.values))
	for i, v := range f.values {
		outside[i] = v < isovalue
	}
	dist := edt(outside, f.Grid.PointCounts(), sampling)
	return NewGridField(dist, f.Grid, Dist, DistLabel{From: f.Type, Isovalue: isovalue})
}

//Large finite stand-in for infinity; keeps the parabola-envelope
//arithmetic free of Inf-Inf NaNs.
const edtInf = 1e30

//edt is the exact Euclidean distance transform of Felzenszwalb and
//Huttenlocher (squared distances via lower envelopes of parabolas, one
//separable pass per axis), with anisotropic sampling.
func edt(fg []bool, dims [3]int, sampling [3]float64) []float64 {
	d := make([]float64, len(fg))
	for i, in := range fg {
		if in {
			d[i] = edtInf
		}
	}
	nx, ny, nz := dims[0], dims[1], dims[2]
	max := nx
	if ny > max {
		max = ny
	}
	if nz > max {
		max = nz
	}
	line := make([]float64, max)
	out := make([]float64, max)
	v := make([]int, max)
	z := make([]float64, max+1)

	//z lines (stride 1)
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			base := (x*ny + y) * nz
			copy(line[:nz], d[base:base+nz])
			dt1d(line[:nz], out[:nz], v, z, sampling[2])
			copy(d[base:base+nz], out[:nz])
		}
	}
	//y lines (stride nz)
	for x := 0; x < nx; x++ {
		for zz := 0; zz < nz; zz++ {
			base := x*ny*nz + zz
			for y := 0; y < ny; y++ {
				line[y] = d[base+y*nz]
			}
			dt1d(line[:ny], out[:ny], v, z, sampling[1])
			for y := 0; y < ny; y++ {
				d[base+y*nz] = out[y]
			}
		}
	}
	//x lines (stride ny*nz)
	for y := 0; y < ny; y++ {
		for zz := 0; zz < nz; zz++ {
			base := y*nz + zz
			for x := 0; x < nx; x++ {
				line[x] = d[base+x*ny*nz]
			}
			dt1d(line[:nx], out[:nx], v, z, sampling[0])
			for x := 0; x < nx; x++ {
				d[base+x*ny*nz] = out[x]
			}
		}
	}
	for i := range d {
		d[i] = math.Sqrt(d[i])
	}
	return d
}

//dt1d computes the 1-D squared distance transform of f into d, for
//points spaced w apart. v and z are scratch (the parabola sites and the
//boundaries between their regions of the lower envelope).
func dt1d(f, d []float64, v []int, z []float64, w float64) {
	n := len(f)
	if n == 0 {
		return
	}
	w2 := w * w
	k := 0
	v[0] = 0
	z[0] = math.Inf(-1)
	z[1] = math.Inf(1)
	for q := 1; q < n; q++ {
		var s float64
		for {
			p := v[k]
			s = ((f[q] + w2*float64(q*q)) - (f[p] + w2*float64(p*p))) / (2 * w2 * float64(q-p))
			if s > z[k] {
				break
			}
			k--
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = math.Inf(1)
	}
	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		dq := float64(q - v[k])
		d[q] = w2*dq*dq + f[v[k]]
	}
}
