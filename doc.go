/*
 * doc.go, part of repesp.
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

//Package repesp provides atom and molecule structures for post-processing
//the output of quantum-chemistry programs: extraction of partial charges
//from text reports, volumetric scalar fields on regular grids, and
//averaging of charges over RESP equivalence groups.
//
//The repesp package itself holds the leaf entities (Atom, Molecule, the
//charge-type tags and the periodic-table lookup) shared by the cube,
//charges and resp subpackages.
package repesp
