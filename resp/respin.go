/*
 * respin.go, part of repesp.
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

//Package resp reads and generates the input files of the resp fitting
//program, merges the atom-equivalence (ivary) information of its two
//fitting stages, resolves equivalence groups into averaged charges, and
//drives the external program through a collaborator interface. The
//least-squares fit itself is always delegated to the external program.
package resp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"repesp"
)

//Respin is the parsed content of one .respin file: one fitting stage's
//ivary specification over a molecule. An ivary value of 0 leaves the
//atom's charge free, a positive value equivalences the atom to the
//1-based atom it names, and a negative value freezes the charge at its
//input value.
type Respin struct {
	Charge   int
	Iuniq    int
	Ivary    []int
	Molecule *repesp.Molecule //atomic numbers only, no coordinates
}

//ReadRespin parses fn. When ref is not nil the molecule declared by the
//file is checked against it and a mismatch is a FormatErr (after
//writing a comparison to stderr).
func ReadRespin(fn string, ref *repesp.Molecule) (*Respin, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := readRespin(bufio.NewReader(f))
	if err != nil {
		return nil, repesp.ErrDecorate(err, "ReadRespin: "+fn)
	}
	if ref != nil && !r.Molecule.Equal(ref) {
		r.Molecule.VerboseCompare(os.Stderr, ref)
		return nil, repesp.NewError(repesp.FormatErr,
			"the molecule in %s differs from the reference molecule as shown above", fn)
	}
	return r, nil
}

func readRespin(br *bufio.Reader) (*Respin, error) {
	//rewind to the end of the cntrl section
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, repesp.NewError(repesp.FormatErr, "respin file ends before the &end marker of its control section")
		}
		if strings.Contains(line, "&end") {
			break
		}
	}
	//skip two lines, the third holds `charge, iuniq`
	var line string
	var err error
	for i := 0; i < 3; i++ {
		line, err = br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if line == "" {
			return nil, repesp.NewError(repesp.FormatErr, "respin file ends before its charge/iuniq record")
		}
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return nil, repesp.NewError(repesp.FormatErr, "expected a 2-field charge/iuniq record, got: '%s'", strings.TrimSpace(line))
	}
	r := &Respin{Molecule: repesp.NewMolecule()}
	if r.Charge, err = strconv.Atoi(fields[0]); err != nil {
		return nil, repesp.NewError(repesp.FormatErr, "bad charge in respin file: '%s'", fields[0])
	}
	if r.Iuniq, err = strconv.Atoi(fields[1]); err != nil {
		return nil, repesp.NewError(repesp.FormatErr, "bad iuniq in respin file: '%s'", fields[1])
	}
	//one (atomic number, ivary) record per atom; the block ends at the
	//first line that is not a 2-field record
	for i := 1; ; i++ {
		line, err = br.ReadString('\n')
		fields = strings.Fields(line)
		if len(fields) != 2 {
			break
		}
		z, err2 := strconv.Atoi(fields[0])
		if err2 != nil {
			return nil, repesp.NewError(repesp.FormatErr, "bad atomic number in respin file: '%s'", fields[0])
		}
		ivary, err2 := strconv.Atoi(fields[1])
		if err2 != nil {
			return nil, repesp.NewError(repesp.FormatErr, "bad ivary value in respin file: '%s'", fields[1])
		}
		r.Molecule.Append(repesp.NewAtom(i, z, nil, false))
		r.Ivary = append(r.Ivary, ivary)
		if err != nil {
			break
		}
	}
	if r.Molecule.Len() != r.Iuniq {
		return nil, repesp.NewError(repesp.FormatErr,
			"the number of atoms (%d) doesn't agree with the iuniq value in the input file (%d)", r.Molecule.Len(), r.Iuniq)
	}
	return r, nil
}

const respinHead = ` &cntrl

 nmol = 1,
 ihfree = 1,
 ioutopt = 1,
`

const respinTail = ` &end
    1.0
Resp charges for organic molecule
`

//respinContent assembles the control section for a respin file of the
//given variant: "1" and "2" are the two stages of regular RESP, "h",
//"u" and "d" request one-stage fits with zero restraint weight.
func respinContent(variant string, readInputCharges bool) (string, error) {
	var qwt string
	switch variant {
	case "1":
		qwt = " qwt = 0.00050,\n"
	case "2":
		qwt = " qwt = 0.00100,\n"
	case "h", "u", "d":
		qwt = " qwt = 0.00000,\n"
	default:
		return "", repesp.NewError(repesp.ValueErr, "respin variant '%s' is not implemented", variant)
	}
	if !readInputCharges && variant == "2" {
		//these are the only incompatible options
		return "", repesp.NewError(repesp.ValueErr, "second stage of RESP requested without reading in charges")
	}
	content := fmt.Sprintf("RESP input of type '%s' generated by the repesp library\n", variant) + respinHead + qwt
	if readInputCharges {
		content += " iqopt = 2,\n"
	}
	return content + respinTail, nil
}

//WriteRespin writes a respin file of the given variant for the
//molecule/ivary of r. The per-atom records use the fixed 2I5 layout the
//resp program expects.
func WriteRespin(w io.Writer, variant string, r *Respin, readInputCharges bool) error {
	content, err := respinContent(variant, readInputCharges)
	if err != nil {
		return repesp.ErrDecorate(err, "WriteRespin")
	}
	if len(r.Ivary) != r.Molecule.Len() {
		return repesp.NewError(repesp.ValueErr, "ivary list length %d does not match the molecule (%d atoms)", len(r.Ivary), r.Molecule.Len())
	}
	fmt.Fprint(w, content)
	fmt.Fprintf(w, "%5d%5d\n", r.Charge, r.Iuniq)
	for i, at := range r.Molecule.Atoms {
		fmt.Fprintf(w, "%5d%5d\n", at.AtomicNumber, r.Ivary[i])
	}
	fmt.Fprint(w, "\n")
	return nil
}

//WriteRespinFile is WriteRespin to a new file.
func WriteRespinFile(fn, variant string, r *Respin, readInputCharges bool) error {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteRespin(f, variant, r, readInputCharges)
}
