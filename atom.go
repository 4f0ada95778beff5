/*
 * atom.go, part of repesp.
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

	"gonum.org/v1/gonum/spatial/r3"
)

//Atom is one atom of a molecule. Label is its 1-based position in the
//molecule and is the stable identifier used for cross-file matching.
//Coordinates, when present, are held in angstrom. Charges maps a charge
//scheme to the value extracted for this atom; keys are only ever added,
//never removed.
type Atom struct {
	Label        int
	AtomicNumber int
	Coords       *r3.Vec
	Charges      map[ChargeType]float64
}

//NewAtom returns an Atom with the given label and atomic number. coords
//may be nil; when given with inBohr set, it is converted to angstrom
//once, here.
func NewAtom(label, atomicNumber int, coords *r3.Vec, inBohr bool) *Atom {
	at := &Atom{
		Label:        label,
		AtomicNumber: atomicNumber,
		Charges:      make(map[ChargeType]float64),
	}
	if coords != nil {
		c := *coords
		if inBohr {
			c = r3.Scale(Bohr2A, c)
		}
		at.Coords = &c
	}
	return at
}

//Identity returns the element symbol of the atom. It is a pure function
//of the atomic number.
func (A *Atom) Identity() string {
	return Symbol(A.AtomicNumber)
}

//Copy returns a copy of the Atom, including its charge map.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("attempted to copy a nil atom")
	}
	newat := new(Atom)
	newat.Label = A.Label
	newat.AtomicNumber = A.AtomicNumber
	if A.Coords != nil {
		c := *A.Coords
		newat.Coords = &c
	}
	newat.Charges = make(map[ChargeType]float64, len(A.Charges))
	for k, v := range A.Charges {
		newat.Charges[k] = v
	}
	return newat
}

//Equal compares atomic numbers and, when both atoms carry coordinates,
//the coordinates too. Labels and charges are ignored: equality is used
//for cross-file consistency checks, not identity.
func (A *Atom) Equal(B *Atom) bool {
	if A == nil || B == nil {
		return A == B
	}
	if A.AtomicNumber != B.AtomicNumber {
		return false
	}
	if A.Coords != nil && B.Coords != nil {
		return *A.Coords == *B.Coords
	}
	return true
}

func (A *Atom) String() string {
	return fmt.Sprintf("Atom %2d:  %2s", A.Label, A.Identity())
}

//PrintWithCharge writes the atom and its charge of the given type to w.
//A RangeErr is returned if the atom carries no such charge.
func (A *Atom) PrintWithCharge(w io.Writer, ct ChargeType) error {
	q, ok := A.Charges[ct]
	if !ok {
		return NewError(RangeErr, "atom %d carries no '%s' charge", A.Label, ct)
	}
	fmt.Fprintf(w, "%s, charge: % .4f\n", A, q)
	return nil
}
