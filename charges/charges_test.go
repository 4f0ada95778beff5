/*
 * charges_test.go, part of repesp.
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

package charges

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repesp"
)

//A Gaussian log with a Mulliken section followed by two ESP sections
//fitted with different radii. Gaussian reuses the same " ESP charges:"
//header for all three schemes; only the preceding marker line tells
//them apart.
const testLog = ` Entering Gaussian System
 Some chatter about the calculation
 Mulliken charges:
               1
     1  C   -0.100000
     2  H    0.040000
     3  H    0.060000
 Sum of Mulliken charges =   0.00000
 More chatter
 Merz-Kollman atomic radii used.
 Other lines
 ESP charges:
               1
     1  C   -0.500000
     2  H    0.250000
     3  H    0.250000
 Sum of ESP charges =   0.00000
 Breneman (CHELPG) radii used.
 ESP charges:
               1
     1  C   -0.800000
     2  H    0.400000
     3  H    0.400000
 Sum of ESP charges =   0.00000
 Normal termination
`

func testMolecule() *repesp.Molecule {
	mol := repesp.NewMolecule()
	mol.Append(repesp.NewAtom(1, 6, nil, false))
	mol.Append(repesp.NewAtom(2, 1, nil, false))
	mol.Append(repesp.NewAtom(3, 1, nil, false))
	return mol
}

func writeFile(Te *testing.T, name, content string) string {
	fn := filepath.Join(Te.TempDir(), name)
	require.NoError(Te, os.WriteFile(fn, []byte(content), 0644))
	return fn
}

func TestUpdateWithChargesLog(Te *testing.T) {
	fn := writeFile(Te, "methane.log", testLog)
	mol := testMolecule()
	require.NoError(Te, UpdateWithCharges(repesp.Mulliken, fn, mol))
	require.NoError(Te, UpdateWithCharges(repesp.MK, fn, mol))
	require.NoError(Te, UpdateWithCharges(repesp.ChelpG, fn, mol))
	c := mol.Atom(0)
	assert.Equal(Te, -0.1, c.Charges[repesp.Mulliken])
	assert.Equal(Te, -0.5, c.Charges[repesp.MK])
	assert.Equal(Te, -0.8, c.Charges[repesp.ChelpG])
	assert.Equal(Te, 0.4, mol.Atom(1).Charges[repesp.ChelpG])

	//no CHELP fit in this file
	err := UpdateWithCharges(repesp.Chelp, fn, mol)
	assert.Equal(Te, repesp.RangeErr, repesp.KindOf(err))
}

func TestOccurrenceSelection(Te *testing.T) {
	two := ` Mulliken charges:
               1
     1  C   -0.100000
 Sum of Mulliken charges =  -0.10000
 Mulliken charges:
               1
     1  C   -0.200000
 Sum of Mulliken charges =  -0.20000
`
	fn := writeFile(Te, "opt.log", two)
	mol := repesp.NewMolecule()
	mol.Append(repesp.NewAtom(1, 6, nil, false))

	require.NoError(Te, UpdateWithChargesOccurrence(repesp.Mulliken, fn, mol, 0))
	assert.Equal(Te, -0.1, mol.Atom(0).Charges[repesp.Mulliken])
	//the default is the last occurrence
	require.NoError(Te, UpdateWithCharges(repesp.Mulliken, fn, mol))
	assert.Equal(Te, -0.2, mol.Atom(0).Charges[repesp.Mulliken])
	require.NoError(Te, UpdateWithChargesOccurrence(repesp.Mulliken, fn, mol, -2))
	assert.Equal(Te, -0.1, mol.Atom(0).Charges[repesp.Mulliken])

	err := UpdateWithChargesOccurrence(repesp.Mulliken, fn, mol, 2)
	assert.Equal(Te, repesp.RangeErr, repesp.KindOf(err))
	err = UpdateWithChargesOccurrence(repesp.Mulliken, fn, mol, -3)
	assert.Equal(Te, repesp.RangeErr, repesp.KindOf(err))
}

func TestMarkerHeaderMismatch(Te *testing.T) {
	//one ESP header but no radii marker: the scheme cannot be known
	bad := ` ESP charges:
               1
     1  C   -0.500000
 Sum of ESP charges =  -0.50000
`
	fn := writeFile(Te, "bad.log", bad)
	mol := repesp.NewMolecule()
	mol.Append(repesp.NewAtom(1, 6, nil, false))
	err := UpdateWithCharges(repesp.MK, fn, mol)
	assert.Equal(Te, repesp.FormatErr, repesp.KindOf(err))
}

func TestNBOCharges(Te *testing.T) {
	nbo := ` Summary of Natural Population Analysis:
|
                                       Natural Population
                Natural    -----------------------------------------------
    Atom  No    Charge        Core      Valence    Rydberg      Total
 -----------------------------------------------------------------------
      C   1   -0.50000      1.99911     4.48104    0.01985     6.50000
      H   2    0.25000      0.00000     0.74716    0.00284     0.75000
      H   3    0.25000      0.00000     0.74716    0.00284     0.75000
 =======================================================================
`
	fn := writeFile(Te, "nbo.log", nbo)
	mol := testMolecule()
	require.NoError(Te, UpdateWithCharges(repesp.NBO, fn, mol))
	assert.Equal(Te, -0.5, mol.Atom(0).Charges[repesp.NBO])
	assert.Equal(Te, 0.25, mol.Atom(2).Charges[repesp.NBO])
}

func TestSumvizCharges(Te *testing.T) {
	sumviz := `Preamble of the AIMAll output
Some Atomic Properties:
1
2
3
4
5
6
7
8
9
C1          -0.512345      0.1
H2           0.256172      0.1
H3           0.256173      0.1
--------------------------------
`
	fn := writeFile(Te, "methane.sumviz", sumviz)
	mol := testMolecule()
	require.NoError(Te, UpdateWithCharges(repesp.AIM, fn, mol))
	assert.Equal(Te, -0.512345, mol.Atom(0).Charges[repesp.AIM])
	assert.Equal(Te, 0.256173, mol.Atom(2).Charges[repesp.AIM])

	//sumviz files carry AIM charges only
	err := UpdateWithCharges(repesp.Mulliken, fn, mol)
	assert.Equal(Te, repesp.NotImplementedErr, repesp.KindOf(err))
}

func TestSumvizChargeLine(Te *testing.T) {
	label, symbol, charge, err := sumvizChargeLine("Cl12   -0.75   0.1")
	require.NoError(Te, err)
	assert.Equal(Te, 12, label)
	assert.Equal(Te, "Cl", symbol)
	assert.Equal(Te, -0.75, charge)

	_, _, _, err = sumvizChargeLine("12C  -0.75")
	assert.Equal(Te, repesp.FormatErr, repesp.KindOf(err))
	_, _, _, err = sumvizChargeLine("Cl  -0.75")
	assert.Equal(Te, repesp.FormatErr, repesp.KindOf(err))
}

func TestChargeValidation(Te *testing.T) {
	//rows out of label order
	disorder := ` Mulliken charges:
               1
     2  H    0.040000
     1  C   -0.100000
     3  H    0.060000
 Sum of Mulliken charges =   0.00000
`
	fn := writeFile(Te, "disorder.log", disorder)
	err := UpdateWithCharges(repesp.Mulliken, fn, testMolecule())
	require.Equal(Te, repesp.FormatErr, repesp.KindOf(err))
	assert.Contains(Te, err.Error(), "label order")

	//element mismatch against the molecule
	wrongElement := ` Mulliken charges:
               1
     1  C   -0.100000
     2  O    0.040000
     3  H    0.060000
 Sum of Mulliken charges =   0.00000
`
	fn = writeFile(Te, "wrong.log", wrongElement)
	err = UpdateWithCharges(repesp.Mulliken, fn, testMolecule())
	require.Equal(Te, repesp.FormatErr, repesp.KindOf(err))
	assert.Contains(Te, err.Error(), "given as H")

	//the block must end exactly after one row per atom
	tooLong := ` Mulliken charges:
               1
     1  C   -0.100000
     2  H    0.040000
     3  H    0.060000
     4  H    0.060000
 Sum of Mulliken charges =   0.00000
`
	fn = writeFile(Te, "long.log", tooLong)
	err = UpdateWithCharges(repesp.Mulliken, fn, testMolecule())
	require.Equal(Te, repesp.FormatErr, repesp.KindOf(err))
	assert.Contains(Te, err.Error(), "end of charges")
}

func TestUnsupportedExtensions(Te *testing.T) {
	mol := testMolecule()
	err := UpdateWithCharges(repesp.Mulliken, "x.fchk", mol)
	assert.Equal(Te, repesp.NotImplementedErr, repesp.KindOf(err))
	assert.Contains(Te, err.Error(), "currently not supported")
	err = UpdateWithCharges(repesp.Mulliken, "x.pdf", mol)
	assert.Equal(Te, repesp.NotImplementedErr, repesp.KindOf(err))
	//the dispatch sees through a .gz suffix
	err = UpdateWithCharges(repesp.Mulliken, "x.fchk.gz", mol)
	assert.Equal(Te, repesp.NotImplementedErr, repesp.KindOf(err))
}

func TestQOutRoundTrip(Te *testing.T) {
	mol := testMolecule()
	require.NoError(Te, mol.UpdateCharges(repesp.RESP, []float64{-0.5, 0.25, 0.25}))
	fn := filepath.Join(Te.TempDir(), "charges.qout")
	require.NoError(Te, DumpQOut(mol, repesp.RESP, fn))

	vals, err := ReadQOut(fn)
	require.NoError(Te, err)
	assert.Equal(Te, []float64{-0.5, 0.25, 0.25}, vals)

	back := testMolecule()
	require.NoError(Te, UpdateWithCharges(repesp.RESPInp, fn, back))
	assert.Equal(Te, 0.25, back.Atom(1).Charges[repesp.RESPInp])

	//count mismatch against the molecule
	short := repesp.NewMolecule()
	short.Append(repesp.NewAtom(1, 6, nil, false))
	err = UpdateWithCharges(repesp.RESPInp, fn, short)
	assert.Equal(Te, repesp.FormatErr, repesp.KindOf(err))
}

func TestDumpQOutLineBreaks(Te *testing.T) {
	mol := repesp.NewMolecule()
	vals := make([]float64, 10)
	for i := range vals {
		mol.Append(repesp.NewAtom(i+1, 1, nil, false))
		vals[i] = 0.1
	}
	require.NoError(Te, mol.UpdateCharges(repesp.Temp, vals))
	fn := filepath.Join(Te.TempDir(), "ten.qout")
	require.NoError(Te, DumpQOut(mol, repesp.Temp, fn))
	content, err := os.ReadFile(fn)
	require.NoError(Te, err)
	want := "  0.100000  0.100000  0.100000  0.100000  0.100000  0.100000  0.100000  0.100000\n" +
		"  0.100000  0.100000\n"
	assert.Equal(Te, want, string(content))
}
