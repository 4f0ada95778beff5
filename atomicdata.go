/*
 * atomicdata.go, part of repesp.
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

import "strconv"

//Element symbols indexed by atomic number minus one.
//Note that just the elements up to Kr plus a few common heavier ones
//are present; anything else degrades to the number itself.
var symbols = []string{
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
}

//Inverse look-up
var symbol2Number = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for i, s := range symbols {
		m[s] = i + 1
	}
	return m
}()

//Symbol returns the element symbol for the given atomic number. Atomic
//numbers outside the table are not an error: the number itself is
//returned as a string and a warning is logged, so files carrying exotic
//elements can still be processed.
func Symbol(atomicNumber int) string {
	if atomicNumber < 1 || atomicNumber > len(symbols) {
		Log.Warnf("element of atomic number %d not implemented, using the number as its identity", atomicNumber)
		return strconv.Itoa(atomicNumber)
	}
	return symbols[atomicNumber-1]
}

//AtomicNumber returns the atomic number for the given element symbol,
//or a RangeErr if the symbol is not in the table.
func AtomicNumber(symbol string) (int, error) {
	z, ok := symbol2Number[symbol]
	if !ok {
		return 0, NewError(RangeErr, "unknown element symbol '%s'", symbol)
	}
	return z, nil
}
