/*
 * basins.go, part of repesp.
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
	"os"
	"path/filepath"
	"sort"

	"repesp"
)

//The command expected to have generated the per-atom basin cubes.
//Assigning low-density points to vacuum must be off so the basins
//extend to infinity.
const baderCommand = "bader -p all_atom -vac off density.cube"

//basinFileName returns the fixed zero-padded name the bader program
//gives the cube of atom label (1-based).
func basinFileName(label int) string {
	return fmt.Sprintf("BvAt%04d.cube", label)
}

//ExtractBasins reads the per-atom basin cubes written by the bader
//program into dir (one BvAtNNNN.cube per atom of the molecule) and
//produces a field of atomic labels indicating which basin every grid
//point belongs to. Any missing or extra file relative to the atom count
//is a FormatErr naming the command to regenerate them; every basin cube
//must be sampled on the same grid as this cube.
func (c *Cube) ExtractBasins(dir string) (*GridField, error) {
	expected := make([]string, c.Molecule.Len())
	for i := range expected {
		expected[i] = filepath.Join(dir, basinFileName(i+1))
	}
	found, err := filepath.Glob(filepath.Join(dir, "BvAt*.cube"))
	if err != nil {
		return nil, err
	}
	sort.Strings(found)
	if len(found) == 0 {
		return nil, repesp.NewError(repesp.FormatErr,
			"no bader output cube files found in %s. To generate the files use the command: %s", dir, baderCommand)
	}
	if !equalStrings(found, expected) {
		missing := ""
		for _, e := range expected {
			if _, err := os.Stat(e); err != nil {
				missing = filepath.Base(e)
				break
			}
		}
		if missing != "" {
			return nil, repesp.NewError(repesp.FormatErr,
				"missing expected bader output cube file %s. To generate the files use the command: %s", missing, baderCommand)
		}
		return nil, repesp.NewError(repesp.FormatErr,
			"found %d bader output cube files in %s for a molecule of %d atoms. To generate the files use the command: %s",
			len(found), dir, c.Molecule.Len(), baderCommand)
	}

	fields := make([][]float64, len(expected))
	for i, fn := range expected {
		bc, err := ReadCube(fn)
		if err != nil {
			return nil, repesp.ErrDecorate(err, "ExtractBasins")
		}
		if !bc.Field.Grid.Equal(c.Field.Grid) {
			return nil, repesp.NewError(repesp.GridErr,
				"the grid of bader cube number %d is different from that of the molecule requesting extraction", i+1)
		}
		fields[i] = bc.Field.Values()
	}
	values, err := voteBasins(fields, c.Field.Grid.Points())
	if err != nil {
		return nil, err
	}
	return NewGridField(values, c.Field.Grid, ParentAtom, BasinLabel{Method: "qtaim"})
}

//voteBasins assigns every grid point the 1-based index of the single
//source field that is truthy there. Zero truthy sources means the
//generating program excluded the point as vacuum; more than one signals
//a numerical inconsistency upstream. Both are errors.
func voteBasins(fields [][]float64, points int) ([]float64, error) {
	values := make([]float64, points)
	for p := 0; p < points; p++ {
		winner := 0
		count := 0
		for i, f := range fields {
			if f[p] != 0 {
				winner = i + 1
				count++
			}
		}
		if count == 0 {
			return nil, repesp.NewError(repesp.FormatErr,
				"found a point not assigned to any atom by the bader program. Maybe the -vac off option was not set?")
		}
		if count > 1 {
			return nil, repesp.NewError(repesp.FormatErr,
				"found a point assigned to %d atoms by the bader program. Possible numerical inconsistency in its algorithm.", count)
		}
		values[p] = float64(winner)
	}
	return values, nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
