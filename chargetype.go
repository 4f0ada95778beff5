/*
 * chargetype.go, part of repesp.
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

//ChargeType tags a charge-fitting or population-analysis scheme. It keys
//the per-atom charge maps; using a closed set of tags instead of free
//strings keeps the contract between the extraction engine and its
//consumers visible.
type ChargeType string

const (
	Mulliken   ChargeType = "mulliken"
	MK         ChargeType = "mk"     //Merz-Kollman
	Chelp      ChargeType = "chelp"  //Francl
	ChelpG     ChargeType = "chelpg" //Breneman
	NBO        ChargeType = "nbo"
	AIM        ChargeType = "aim"
	RESP       ChargeType = "resp"
	RESPInp    ChargeType = "resp_inp"
	CubeCharge ChargeType = "cube" //the per-atom scalar of a cube file
	Temp       ChargeType = "temp"
)

//IsESP returns whether the type is one of the electrostatic-potential
//fitting schemes that Gaussian reports under the same generic section
//header.
func (c ChargeType) IsESP() bool {
	return c == MK || c == Chelp || c == ChelpG
}
