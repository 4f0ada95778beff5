/*
 * cube.go, part of repesp.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"repesp"
)

//The first 18 characters of a cube title select the field type.
var titleToType = map[string]FieldType{
	" Electrostatic pot": ESP,
	" Electron density ": ED,
	//Cube generated by the bader program from the Henkelman group
	" Bader charge": Bader,
}

//Cube is a parsed Gaussian cube file: a molecule plus one scalar field
//on a regular grid. The molecule back-references its container through
//this struct; the reference is non-owning.
type Cube struct {
	Path     string
	Header   string //line 1: free text
	Title    string //line 2: selects the field type
	Type     FieldType
	Molecule *repesp.Molecule
	Field    *GridField
}

func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimRight(line, "\r\n"), err
}

func parseFloats(fields []string) ([]float64, error) {
	result := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, repesp.NewError(repesp.FormatErr, "expected a number, got '%s'", f)
		}
		result[i] = v
	}
	return result, nil
}

//ReadCube parses the cube file fn, which may be gzip-compressed. All
//numbers in the file are taken to be in bohr and converted once; field
//values are kept as written. The whole value array is held in memory,
//which bounds the feasible grid size to available memory.
func ReadCube(fn string) (*Cube, error) {
	r, err := repesp.OpenRead(fn)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	c, err := readCube(bufio.NewReader(r))
	if err != nil {
		return nil, repesp.ErrDecorate(err, fmt.Sprintf("ReadCube: %s", fn))
	}
	c.Path = fn
	return c, nil
}

func readCube(br *bufio.Reader) (*Cube, error) {
	c := new(Cube)
	var err error
	if c.Header, err = readLine(br); err != nil {
		return nil, repesp.NewError(repesp.FormatErr, "cube file is empty")
	}
	if c.Title, err = readLine(br); err != nil {
		return nil, repesp.NewError(repesp.FormatErr, "cube file ends before its title line")
	}
	c.Type = Unrecognized
	if len(c.Title) >= 18 {
		if t, ok := titleToType[c.Title[:18]]; ok {
			c.Type = t
		}
	} else if t, ok := titleToType[c.Title]; ok {
		c.Type = t
	}

	line, err := readLine(br)
	if err != nil {
		return nil, repesp.NewError(repesp.FormatErr, "cube file ends before its geometry header")
	}
	fields, err := parseFloats(strings.Fields(line))
	if err != nil {
		return nil, err
	}
	nval := 1.0
	switch {
	case len(fields) == 5:
		nval = fields[4]
	case len(fields) == 4 && c.Type == Bader:
		//bader cubes omit NVal
	default:
		return nil, repesp.NewError(repesp.FormatErr,
			"cube file incorrectly formatted: expected five fields (atom count, 3 origin coordinates, NVal) on line 3, found %d", len(fields))
	}
	if nval != 1 {
		return nil, repesp.NewError(repesp.GridErr, "NVal in the cube is %v, only 1 is supported", nval)
	}
	if fields[0] != float64(int(fields[0])) || fields[0] < 0 {
		return nil, repesp.NewError(repesp.FormatErr, "atom count is not a non-negative integer: %v", fields[0])
	}
	atomCount := int(fields[0])
	origin := r3.Vec{X: fields[1], Y: fields[2], Z: fields[3]}

	rows := make([][]float64, 3)
	for i := range rows {
		line, err := readLine(br)
		if err != nil {
			return nil, repesp.NewError(repesp.FormatErr, "cube file ends inside its geometry header")
		}
		if rows[i], err = parseFloats(strings.Fields(line)); err != nil {
			return nil, err
		}
	}
	grid, err := NewGrid(rows, origin, true)
	if err != nil {
		return nil, err
	}

	//The atoms are appended in order of occurrence, which is assumed to
	//correspond to the labels of the generating program.
	c.Molecule = repesp.NewMolecule()
	for label := 1; label <= atomCount; label++ {
		line, err := readLine(br)
		if err != nil {
			return nil, repesp.NewError(repesp.FormatErr, "cube file ends inside its atom block, after %d of %d atoms", label-1, atomCount)
		}
		fields, err := parseFloats(strings.Fields(line))
		if err != nil {
			return nil, err
		}
		if len(fields) != 5 {
			return nil, repesp.NewError(repesp.FormatErr, "atom line of cube file has %d fields, expected 5: '%s'", len(fields), line)
		}
		coords := r3.Vec{X: fields[2], Y: fields[3], Z: fields[4]}
		at := repesp.NewAtom(label, int(fields[0]), &coords, true)
		at.Charges[repesp.CubeCharge] = fields[1]
		c.Molecule.Append(at)
	}

	values, err := readValues(br)
	if err != nil {
		return nil, err
	}
	var info FieldLabel = InputLabel{Of: c.Type}
	if c.Type == Unrecognized {
		info = UnrecognizedLabel{}
	}
	c.Field, err = NewGridField(values, grid, c.Type, info)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func readValues(br *bufio.Reader) ([]float64, error) {
	var values []float64
	sc := bufio.NewScanner(br)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, repesp.NewError(repesp.FormatErr, "bad value in cube field: '%s'", sc.Text())
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

//WriteCube writes the field as a Gaussian cube file. The per-atom
//scalar of the atom block is the atoms' charge of the given type, or
//the bare atomic number when ct is empty. Coordinates and intervals are
//written in bohr. The destination must not exist: there is no silent
//overwrite.
func (f *GridField) WriteCube(fn string, mol *repesp.Molecule, ct repesp.ChargeType) error {
	out, err := os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	defer out.Close()
	return repesp.ErrDecorate(f.writeCube(out, mol, ct), fmt.Sprintf("WriteCube: %s", fn))
}

func (f *GridField) writeCube(w io.Writer, mol *repesp.Molecule, ct repesp.ChargeType) error {
	fmt.Fprintf(w, " Cube file generated by the repesp library.\n")
	fmt.Fprintf(w, " Cube file for field of type %s.\n", f.Type)
	origin := r3.Scale(repesp.A2Bohr, f.Grid.Origin)
	fmt.Fprintf(w, " %4d   % .6f   % .6f   % .6f    1\n", mol.Len(), origin.X, origin.Y, origin.Z)
	for _, axis := range f.Grid.Axes {
		iv := r3.Scale(repesp.A2Bohr, axis.Intervals)
		fmt.Fprintf(w, " %4d   % .6f   % .6f   % .6f\n", axis.PointCount, iv.X, iv.Y, iv.Z)
	}
	for _, at := range mol.Atoms {
		charge := float64(at.AtomicNumber)
		if ct != "" {
			q, ok := at.Charges[ct]
			if !ok {
				return repesp.NewError(repesp.RangeErr, "atom %d carries no '%s' charge", at.Label, ct)
			}
			charge = q
		}
		if at.Coords == nil {
			return repesp.NewError(repesp.ValueErr, "atom %d has no coordinates", at.Label)
		}
		coords := r3.Scale(repesp.A2Bohr, *at.Coords)
		fmt.Fprintf(w, " %4d   % .6f   % .6f   % .6f   % .6f\n", at.AtomicNumber, charge, coords.X, coords.Y, coords.Z)
	}
	//Six values per row, with a forced break at the end of every run of
	//the fastest-varying (z) axis.
	nz := f.Grid.Axes[2].PointCount
	for i, v := range f.values {
		fmt.Fprintf(w, " % .5E", v)
		pos := i%nz + 1
		if pos == nz || pos%6 == 0 {
			fmt.Fprint(w, "\n")
		}
	}
	return nil
}
