/*
 * field.go, part of repesp.
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
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"

	"repesp"
)

//FieldType tags the physical meaning of a scalar field.
type FieldType string

const (
	ESP          FieldType = "esp"
	ED           FieldType = "ed"
	Bader        FieldType = "bader"
	RepESP       FieldType = "rep_esp"
	Dist         FieldType = "dist"
	Diff         FieldType = "diff"
	ParentAtom   FieldType = "parent_atom"
	Unrecognized FieldType = "unrecognized"
)

//FieldLabel carries the side information a field kind needs to produce
//its human-readable name. It is a closed set: the implementations below
//are the only ones. The label never takes part in equality or numeric
//semantics.
type FieldLabel interface {
	fieldLabel()
}

//InputLabel marks a field read straight from an input cube file.
type InputLabel struct {
	Of FieldType
}

//RepLabel marks an ESP field reproduced from a set of point charges.
type RepLabel struct {
	From repesp.ChargeType
}

//DistLabel marks a distance-transform field derived from an isosurface
//of another field.
type DistLabel struct {
	From     FieldType
	Isovalue float64
}

//VoronoiDistLabel marks a distance-to-closest-atom field.
type VoronoiDistLabel struct{}

//DiffLabel marks a difference field between two named fields.
type DiffLabel struct {
	Absolute bool
	Relative bool
	Between  [2]string
}

//BasinLabel marks an atomic-basin assignment field; Method is "qtaim"
//or "voronoi".
type BasinLabel struct {
	Method string
}

//UnrecognizedLabel marks a field whose cube title was not recognized.
type UnrecognizedLabel struct{}

func (InputLabel) fieldLabel()        {}
func (RepLabel) fieldLabel()          {}
func (DistLabel) fieldLabel()         {}
func (VoronoiDistLabel) fieldLabel()  {}
func (DiffLabel) fieldLabel()         {}
func (BasinLabel) fieldLabel()        {}
func (UnrecognizedLabel) fieldLabel() {}

//Field is a scalar value per grid point, in flat storage, tagged with a
//FieldType and a FieldLabel. A Field never contains NaN values: the
//check runs on construction and on every wholesale replacement, and a
//violation is a hard FormatErr at assignment time, not deferred to
//consumption.
type Field struct {
	values []float64
	Type   FieldType
	Info   FieldLabel
}

func checkForNaNs(values []float64) error {
	if floats.HasNaN(values) {
		return repesp.NewError(repesp.FormatErr, "field values contain NaNs")
	}
	return nil
}

//NewField wraps values into a Field of the given type.
func NewField(values []float64, ft FieldType, info FieldLabel) (*Field, error) {
	if err := checkForNaNs(values); err != nil {
		return nil, repesp.ErrDecorate(err, "NewField")
	}
	return &Field{values: values, Type: ft, Info: info}, nil
}

//Values returns the flat value buffer. The caller must not introduce
//NaNs through it; replacements go through SetValues.
func (f *Field) Values() []float64 {
	return f.values
}

//SetValues replaces the value buffer wholesale, re-running the NaN
//check.
func (f *Field) SetValues(values []float64) error {
	if err := checkForNaNs(values); err != nil {
		return repesp.ErrDecorate(err, "SetValues")
	}
	f.values = values
	return nil
}

//LookupName returns the free-form name of the field, for labelling plot
//axes and reports. It is total over the enumerated field kinds; a nil
//or mismatched label is a NotImplementedErr.
func (f *Field) LookupName() (string, error) {
	switch info := f.Info.(type) {
	case InputLabel:
		var result string
		switch info.Of {
		case ESP:
			result = "ESP value"
		case ED:
			result = "ED value"
		case Bader:
			result = "Bader charge value"
		default:
			return "", lookupNameErr(f)
		}
		return result + " from input cube file", nil
	case RepLabel:
		result := "Reproduced ESP value"
		if info.From != "" {
			result += fmt.Sprintf(" from %s charges", strings.ToUpper(string(info.From)))
		}
		return result, nil
	case DistLabel:
		return fmt.Sprintf("Distance from %s isosurface %g", strings.ToUpper(string(info.From)), info.Isovalue), nil
	case VoronoiDistLabel:
		return "Distance from closest atom", nil
	case DiffLabel:
		result := "difference"
		if info.Absolute {
			result = "absolute " + result
		}
		if info.Relative {
			result = "relative " + result
		}
		result = strings.ToUpper(result[:1]) + result[1:]
		if info.Between[0] != "" || info.Between[1] != "" {
			result += fmt.Sprintf(" between %s and\n %s", info.Between[0], info.Between[1])
		}
		return result, nil
	case BasinLabel:
		switch info.Method {
		case "qtaim":
			return "Parent atom of QTAIM basin", nil
		case "voronoi":
			return "Parent atom of Voronoi basin", nil
		}
		return "", lookupNameErr(f)
	case UnrecognizedLabel:
		return "Unrecognized", nil
	}
	return "", lookupNameErr(f)
}

func lookupNameErr(f *Field) error {
	return repesp.NewError(repesp.NotImplementedErr, "free-form name not implemented for field of type '%s' and info %#v", f.Type, f.Info)
}

//GridField is a Field sampled on a Grid; the value count always equals
//the product of the grid's point counts.
type GridField struct {
	*Field
	Grid *Grid
}

//NewGridField wraps values into a field on g, rejecting a count that
//does not match the grid.
func NewGridField(values []float64, g *Grid, ft FieldType, info FieldLabel) (*GridField, error) {
	if len(values) != g.Points() {
		return nil, repesp.NewError(repesp.GridErr,
			"the number of values (%d) is not equal to the product of the points in the XYZ directions given in the cube header (%v)",
			len(values), g.PointCounts())
	}
	f, err := NewField(values, ft, info)
	if err != nil {
		return nil, repesp.ErrDecorate(err, "NewGridField")
	}
	return &GridField{Field: f, Grid: g}, nil
}

//At returns the value at grid point (ix,iy,iz).
func (f *GridField) At(ix, iy, iz int) float64 {
	return f.values[f.Grid.Index(ix, iy, iz)]
}

//SetValues replaces the value buffer, re-checking both the grid count
//and the NaN invariant.
func (f *GridField) SetValues(values []float64) error {
	if len(values) != f.Grid.Points() {
		return repesp.NewError(repesp.GridErr, "the number of values (%d) does not match the grid (%v)", len(values), f.Grid.PointCounts())
	}
	return f.Field.SetValues(values)
}
