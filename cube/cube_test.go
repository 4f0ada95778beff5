/*
 * cube_test.go, part of repesp.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repesp"
)

//A 2x2x2 ESP cube of a lone hydrogen, all numbers in bohr.
const testCube = ` Test cube
 Electrostatic potential from Total SCF Density
    1    0.000000    0.000000    0.000000    1
    2    1.000000    0.000000    0.000000
    2    0.000000    1.000000    0.000000
    2    0.000000    0.000000    1.000000
    1    0.100000    1.000000    0.000000    0.000000
  1.0E+00  2.0E+00
  3.0E+00  4.0E+00
  5.0E+00  6.0E+00
  7.0E+00  8.0E+00
`

func writeFile(Te *testing.T, name, content string) string {
	fn := filepath.Join(Te.TempDir(), name)
	require.NoError(Te, os.WriteFile(fn, []byte(content), 0644))
	return fn
}

func TestReadCube(Te *testing.T) {
	c, err := ReadCube(writeFile(Te, "test.cube", testCube))
	require.NoError(Te, err)
	assert.Equal(Te, ESP, c.Type)
	assert.Equal(Te, " Test cube", c.Header)
	require.Equal(Te, 1, c.Molecule.Len())
	at := c.Molecule.Atom(0)
	assert.Equal(Te, 1, at.AtomicNumber)
	assert.InDelta(Te, repesp.Bohr2A, at.Coords.X, 1e-12)
	assert.Equal(Te, 0.1, at.Charges[repesp.CubeCharge])

	assert.Equal(Te, [3]int{2, 2, 2}, c.Field.Grid.PointCounts())
	assert.InDelta(Te, repesp.Bohr2A, c.Field.Grid.Axes[0].DirInterval, 1e-12)
	//z varies fastest in the value stream
	assert.Equal(Te, 1.0, c.Field.At(0, 0, 0))
	assert.Equal(Te, 2.0, c.Field.At(0, 0, 1))
	assert.Equal(Te, 3.0, c.Field.At(0, 1, 0))
	assert.Equal(Te, 5.0, c.Field.At(1, 0, 0))
	assert.Equal(Te, InputLabel{Of: ESP}, c.Field.Info)
}

func TestReadCubeTitles(Te *testing.T) {
	ed := ` header
 Electron density from Total SCF Density
    0    0.0    0.0    0.0    1
    1    1.0    0.0    0.0
    1    0.0    1.0    0.0
    1    0.0    0.0    1.0
  1.0
`
	c, err := ReadCube(writeFile(Te, "ed.cube", ed))
	require.NoError(Te, err)
	assert.Equal(Te, ED, c.Type)

	unknown := ` header
 Something else entirely
    0    0.0    0.0    0.0    1
    1    1.0    0.0    0.0
    1    0.0    1.0    0.0
    1    0.0    0.0    1.0
  1.0
`
	//an unrecognized title degrades the field name, it never errors
	c, err = ReadCube(writeFile(Te, "odd.cube", unknown))
	require.NoError(Te, err)
	assert.Equal(Te, Unrecognized, c.Type)
	assert.Equal(Te, UnrecognizedLabel{}, c.Field.Info)
	name, err := c.Field.LookupName()
	require.NoError(Te, err)
	assert.Equal(Te, "Unrecognized", name)
}

//The cubes written by the bader program omit the NVal column.
func TestReadCubeBader(Te *testing.T) {
	bader := ` header
 Bader charge
    0    0.0    0.0    0.0
    1    1.0    0.0    0.0
    1    0.0    1.0    0.0
    1    0.0    0.0    1.0
  1.0
`
	c, err := ReadCube(writeFile(Te, "BvAt0001.cube", bader))
	require.NoError(Te, err)
	assert.Equal(Te, Bader, c.Type)
}

func TestReadCubeRejects(Te *testing.T) {
	//a 4-field third line is only valid for bader cubes
	fourFields := ` header
 Electron density from Total SCF Density
    0    0.0    0.0    0.0
    1    1.0    0.0    0.0
    1    0.0    1.0    0.0
    1    0.0    0.0    1.0
  1.0
`
	_, err := ReadCube(writeFile(Te, "four.cube", fourFields))
	assert.Equal(Te, repesp.FormatErr, repesp.KindOf(err))

	nval2 := ` header
 Electron density from Total SCF Density
    0    0.0    0.0    0.0    2
    1    1.0    0.0    0.0
    1    0.0    1.0    0.0
    1    0.0    0.0    1.0
  1.0  2.0
`
	_, err = ReadCube(writeFile(Te, "nval.cube", nval2))
	assert.Equal(Te, repesp.GridErr, repesp.KindOf(err))

	short := ` header
 Electron density from Total SCF Density
    0    0.0    0.0    0.0    1
    2    1.0    0.0    0.0
    2    0.0    1.0    0.0
    2    0.0    0.0    1.0
  1.0  2.0  3.0
`
	_, err = ReadCube(writeFile(Te, "short.cube", short))
	assert.Equal(Te, repesp.GridErr, repesp.KindOf(err))
}

func TestWriteCubeRoundTrip(Te *testing.T) {
	c, err := ReadCube(writeFile(Te, "test.cube", testCube))
	require.NoError(Te, err)
	fn := filepath.Join(Te.TempDir(), "out.cube")
	require.NoError(Te, c.Field.WriteCube(fn, c.Molecule, repesp.CubeCharge))
	//no silent overwrite
	err = c.Field.WriteCube(fn, c.Molecule, repesp.CubeCharge)
	assert.True(Te, os.IsExist(err))

	back, err := ReadCube(fn)
	require.NoError(Te, err)
	assert.Equal(Te, c.Field.Values(), back.Field.Values())
	assert.Equal(Te, c.Field.Grid.PointCounts(), back.Field.Grid.PointCounts())
	assert.InDelta(Te, c.Field.Grid.Axes[0].DirInterval, back.Field.Grid.Axes[0].DirInterval, 1e-6)
	assert.Equal(Te, 0.1, back.Molecule.Atom(0).Charges[repesp.CubeCharge])
}

func TestWriteCubeMissingCharge(Te *testing.T) {
	c, err := ReadCube(writeFile(Te, "test.cube", testCube))
	require.NoError(Te, err)
	fn := filepath.Join(Te.TempDir(), "out.cube")
	err = c.Field.WriteCube(fn, c.Molecule, repesp.Mulliken)
	assert.Equal(Te, repesp.RangeErr, repesp.KindOf(err))
}
