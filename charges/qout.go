/*
 * qout.go, part of repesp.
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
	"bufio"
	"fmt"
	"os"
	"strconv"

	"repesp"
)

//qout is the charge interchange format of the resp program: free-format
//floats, eight per line (8F10.6).

//ReadQOut reads all charges from a qout file, in atom order.
func ReadQOut(filename string) ([]float64, error) {
	r, err := repesp.OpenRead(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	var result []float64
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, repesp.NewError(repesp.FormatErr, "bad charge value in qout file %s: '%s'", filename, sc.Text())
		}
		result = append(result, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func updateFromQOut(ct repesp.ChargeType, filename string, mol *repesp.Molecule) error {
	vals, err := ReadQOut(filename)
	if err != nil {
		return err
	}
	if len(vals) != mol.Len() {
		return repesp.NewError(repesp.FormatErr,
			"qout file %s holds %d charges for a molecule of %d atoms", filename, len(vals), mol.Len())
	}
	return mol.UpdateCharges(ct, vals)
}

//DumpQOut writes the molecule's charges of the given type in the format
//the resp program reads its input charges from.
func DumpQOut(mol *repesp.Molecule, ct repesp.ChargeType, filename string) error {
	vals, err := mol.Charges(ct)
	if err != nil {
		return repesp.ErrDecorate(err, "DumpQOut")
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	for i, v := range vals {
		fmt.Fprintf(f, "%10.6f", v)
		if (i+1)%8 == 0 || i == len(vals)-1 {
			fmt.Fprint(f, "\n")
		}
	}
	return nil
}
