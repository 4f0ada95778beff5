/*
 * conversion.go, part of repesp.
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

//This provides conversion factors for the fixed bohr/angstrom policy.
//All coordinates are held internally in angstrom; cube files and the
//resp program speak bohr.

//Conversions
const (
	Bohr2A = 0.5291772086 //value used by Gaussian
	A2Bohr = 1 / 0.5291772086
)
