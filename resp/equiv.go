/*
 * equiv.go, part of repesp.
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

package resp

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/stat"

	"repesp"
)

//CombineIvary merges the ivary lists of the two fitting stages into the
//full equivalence information of the molecule. For each atom the more
//binding of the two values wins: a positive equivalence reference beats
//a free charge, which beats a frozen one. This relies on the resp
//convention that the stage files only ever refine, never contradict,
//each other.
func CombineIvary(ivary1, ivary2 []int) ([]int, error) {
	if len(ivary1) != len(ivary2) {
		return nil, repesp.NewError(repesp.ValueErr, "ivary lists of different lengths: %d and %d", len(ivary1), len(ivary2))
	}
	combined := make([]int, len(ivary1))
	for i, v := range ivary1 {
		if ivary2[i] > v {
			v = ivary2[i]
		}
		combined[i] = v
	}
	return combined, nil
}

//Equivalence averages the charges of type ct over the equivalence
//groups described by ivary and returns the averaged list. Chains of
//equivalence references more than one link deep are refused rather than
//silently mishandled, as they do not occur in the files the supported
//programs generate.
func Equivalence(mol *repesp.Molecule, ct repesp.ChargeType, ivary []int) ([]float64, error) {
	charges, err := mol.Charges(ct)
	if err != nil {
		return nil, repesp.ErrDecorate(err, "Equivalence")
	}
	if len(ivary) != len(charges) {
		return nil, repesp.NewError(repesp.ValueErr, "ivary list length %d does not match the molecule (%d atoms)", len(ivary), len(charges))
	}
	//reffedBy[i] lists the 0-based atoms whose ivary points at atom i
	reffedBy := make([][]int, len(ivary))
	for i, v := range ivary {
		if v <= 0 {
			continue
		}
		ref := v - 1
		if ref < 0 || ref >= len(ivary) {
			return nil, repesp.NewError(repesp.ValueErr, "atom %d equivalenced to nonexistent atom %d", i+1, v)
		}
		if ivary[ref] > 0 {
			return nil, repesp.NewError(repesp.NotImplementedErr,
				"atom %d is equivalenced to atom %d, which itself refers to atom %d, and such chains are not supported", i+1, v, ivary[ref])
		}
		reffedBy[ref] = append(reffedBy[ref], i)
	}
	result := make([]float64, len(charges))
	//pass 1: atoms with referrers get the mean of their own charge and
	//their referrers'
	for i := range charges {
		if ivary[i] > 0 {
			continue
		}
		if len(reffedBy[i]) == 0 {
			result[i] = charges[i]
			continue
		}
		group := []float64{charges[i]}
		for _, j := range reffedBy[i] {
			group = append(group, charges[j])
		}
		result[i] = stat.Mean(group, nil)
	}
	//pass 2: referring atoms adopt the value just resolved for their
	//target, which is at most one indirection away
	for i, v := range ivary {
		if v > 0 {
			result[i] = result[v-1]
		}
	}
	return result, nil
}

//CheckIvary writes a human-readable report of the equivalence
//information in ivary to w, one line per atom.
func CheckIvary(w io.Writer, mol *repesp.Molecule, ivary []int) error {
	if len(ivary) != mol.Len() {
		return repesp.NewError(repesp.ValueErr, "ivary list length %d does not match the molecule (%d atoms)", len(ivary), mol.Len())
	}
	for i, at := range mol.Atoms {
		fmt.Fprintf(w, "%s", at.String())
		switch v := ivary[i]; {
		case v < 0:
			fmt.Fprint(w, ", frozen at its input charge")
		case v > 0:
			fmt.Fprintf(w, ", equivalenced to atom %2d", v)
		default:
			fmt.Fprint(w, ", free")
		}
		fmt.Fprint(w, "\n")
	}
	return nil
}
