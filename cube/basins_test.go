/*
 * basins_test.go, part of repesp.
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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"repesp"
)

//basinSetup writes a parent density cube plus one basin cube per atom
//into a fresh directory and reads the parent back, so that all grids
//went through the same one-time unit conversion.
func basinSetup(Te *testing.T, basins [][]float64) (*Cube, string) {
	dir := Te.TempDir()
	g, err := NewGrid([][]float64{{1, 1, 0, 0}, {1, 0, 1, 0}, {2, 0, 0, 1}}, r3.Vec{}, false)
	require.NoError(Te, err)

	mol := repesp.NewMolecule()
	for i := 0; i < len(basins); i++ {
		at := repesp.NewAtom(i+1, 1, &r3.Vec{Z: float64(i)}, false)
		mol.Append(at)
	}
	density, err := NewGridField([]float64{1, 1}, g, ED, InputLabel{Of: ED})
	require.NoError(Te, err)
	densityFn := filepath.Join(dir, "density.cube")
	require.NoError(Te, density.WriteCube(densityFn, mol, ""))
	for i, vals := range basins {
		f, err := NewGridField(vals, g, Bader, InputLabel{Of: Bader})
		require.NoError(Te, err)
		require.NoError(Te, f.WriteCube(filepath.Join(dir, basinFileName(i+1)), mol, ""))
	}
	c, err := ReadCube(densityFn)
	require.NoError(Te, err)
	return c, dir
}

func TestExtractBasins(Te *testing.T) {
	c, dir := basinSetup(Te, [][]float64{{1, 0}, {0, 0.5}})
	basins, err := c.ExtractBasins(dir)
	require.NoError(Te, err)
	assert.Equal(Te, ParentAtom, basins.Type)
	assert.Equal(Te, BasinLabel{Method: "qtaim"}, basins.Info)
	assert.Equal(Te, []float64{1, 2}, basins.Values())
}

func TestExtractBasinsMissingFile(Te *testing.T) {
	c, dir := basinSetup(Te, [][]float64{{1, 0}, {0, 1}})
	require.NoError(Te, os.Remove(filepath.Join(dir, basinFileName(2))))
	_, err := c.ExtractBasins(dir)
	assert.Equal(Te, repesp.FormatErr, repesp.KindOf(err))
	assert.Contains(Te, err.Error(), basinFileName(2))
	assert.Contains(Te, err.Error(), baderCommand)
}

func TestExtractBasinsEmptyDir(Te *testing.T) {
	c, _ := basinSetup(Te, [][]float64{{1, 0}, {0, 1}})
	empty := Te.TempDir()
	_, err := c.ExtractBasins(empty)
	assert.Equal(Te, repesp.FormatErr, repesp.KindOf(err))
	assert.True(Te, strings.Contains(err.Error(), "no bader output"))
}

func TestVoteBasins(Te *testing.T) {
	vals, err := voteBasins([][]float64{{0, 1}, {0.5, 0}, {0, 0}}, 2)
	require.NoError(Te, err)
	assert.Equal(Te, []float64{2, 1}, vals)

	//a vacuum point: assigned to no atom at all
	_, err = voteBasins([][]float64{{1, 0}, {0, 0}}, 2)
	require.Equal(Te, repesp.FormatErr, repesp.KindOf(err))
	assert.Contains(Te, err.Error(), "-vac off")

	//a point claimed by two atoms at once
	_, err = voteBasins([][]float64{{1, 1}, {0, 1}, {0, 0}}, 2)
	require.Equal(Te, repesp.FormatErr, repesp.KindOf(err))
	assert.Contains(Te, err.Error(), "2 atoms")
}
