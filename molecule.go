/*
 * molecule.go, part of repesp.
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

package repesp

import (
	"fmt"
	"io"
)

//Molecule is an ordered sequence of atoms. Insertion order is label
//order: the i-th atom carries label i+1.
type Molecule struct {
	Atoms []*Atom
}

//NewMolecule returns an empty molecule.
func NewMolecule() *Molecule {
	return &Molecule{}
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//Atom returns the atom at index i. Panics if out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i < 0 || i >= M.Len() {
		panic("molecule: requested atom out of bounds")
	}
	return M.Atoms[i]
}

//Append adds an atom at the end of the molecule.
func (M *Molecule) Append(at *Atom) {
	M.Atoms = append(M.Atoms, at)
}

//Equal is element-wise atom equality. It is used purely for cross-file
//consistency checks.
func (M *Molecule) Equal(other *Molecule) bool {
	if M == nil || other == nil {
		return M == other
	}
	if M.Len() != other.Len() {
		return false
	}
	for i, at := range M.Atoms {
		if !at.Equal(other.Atoms[i]) {
			return false
		}
	}
	return true
}

//VerboseCompare writes a description of the differences between the two
//molecules to w: the differing atoms and, if the lengths disagree, the
//surplus atoms of the longer one.
func (M *Molecule) VerboseCompare(w io.Writer, other *Molecule) {
	if M.Equal(other) {
		fmt.Fprintln(w, "The molecules are the same.")
		return
	}
	fmt.Fprintln(w, "The molecules differ at the following atoms:")
	short := M.Len()
	if other.Len() < short {
		short = other.Len()
	}
	for i := 0; i < short; i++ {
		if !M.Atoms[i].Equal(other.Atoms[i]) {
			fmt.Fprintf(w, "%v != %v\n", M.Atoms[i], other.Atoms[i])
		}
	}
	if M.Len() != other.Len() {
		longer, which := M, "first"
		if other.Len() > M.Len() {
			longer, which = other, "second"
		}
		fmt.Fprintf(w, "The %s molecule has %d more atoms:\n", which, longer.Len()-short)
		for _, at := range longer.Atoms[short:] {
			fmt.Fprintln(w, at)
		}
	}
}

//Charges collects the charges of the given type for all atoms, in label
//order. A RangeErr is returned naming the first atom lacking one.
func (M *Molecule) Charges(ct ChargeType) ([]float64, error) {
	result := make([]float64, M.Len())
	for i, at := range M.Atoms {
		q, ok := at.Charges[ct]
		if !ok {
			return nil, NewError(RangeErr, "atom %d carries no '%s' charge", at.Label, ct)
		}
		result[i] = q
	}
	return result, nil
}

//UpdateCharges attaches vals to the atoms of the molecule under the
//given charge type. A ValueErr is returned on a length mismatch.
func (M *Molecule) UpdateCharges(ct ChargeType, vals []float64) error {
	if len(vals) != M.Len() {
		return NewError(ValueErr, "got %d charges for a molecule of %d atoms", len(vals), M.Len())
	}
	for i, at := range M.Atoms {
		at.Charges[ct] = vals[i]
	}
	return nil
}
