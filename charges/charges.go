/*
 * charges.go, part of repesp.
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
	"bytes"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"repesp"
)

//inputKind is the source format of a charge-bearing report.
type inputKind string

const (
	logKind    inputKind = "log"    //Gaussian output
	sumvizKind inputKind = "sumviz" //AIMAll output
)

//First 8 characters of the line that terminates a charge block, per
//source format.
var terminators = map[inputKind][]string{
	logKind:    {" Sum of ", " ======="},
	sumvizKind: {"--------"},
}

//UpdateWithCharges extracts charges of the given type from filename and
//attaches them to the molecule's atoms. When the file reports the same
//charge type in more than one place, only the last occurrence is used;
//earlier ones are implicitly discarded. The atom list of the file must
//be in the molecule's label order.
//
//Extraction is all-or-nothing from the caller's point of view: on a
//format error the molecule's charge maps may be partially updated and
//the molecule should be discarded.
func UpdateWithCharges(ct repesp.ChargeType, filename string, mol *repesp.Molecule) error {
	return UpdateWithChargesOccurrence(ct, filename, mol, -1)
}

//UpdateWithChargesOccurrence is UpdateWithCharges with an explicit
//occurrence index (negative counts from the end of the file).
func UpdateWithChargesOccurrence(ct repesp.ChargeType, filename string, mol *repesp.Molecule, occurrence int) error {
	ext := filepath.Ext(repesp.BaseName(filename))
	var kind inputKind
	switch {
	case ext == ".log" || ext == ".out":
		kind = logKind
	case ext == ".sumviz" && ct == repesp.AIM:
		kind = sumvizKind
	case ext == ".qout":
		return repesp.ErrDecorate(updateFromQOut(ct, filename, mol), "UpdateWithCharges")
	case ext == ".chk" || ext == ".fchk":
		return repesp.NewError(repesp.NotImplementedErr, "file extension %s currently not supported", ext)
	default:
		return repesp.NewError(repesp.NotImplementedErr, "file extension %s is not supported", ext)
	}
	data, err := readWhole(filename)
	if err != nil {
		return err
	}
	rs := bytes.NewReader(data)
	var br *bufio.Reader
	if kind == sumvizKind {
		br, err = gotoSumvizSection(rs)
	} else {
		br, err = gotoLogSection(rs, ct, occurrence)
	}
	if err != nil {
		return repesp.ErrDecorate(err, "UpdateWithCharges: "+filename)
	}
	return repesp.ErrDecorate(readChargeRows(br, ct, kind, mol), "UpdateWithCharges: "+filename)
}

//readWhole slurps the file into memory (decompressing if needed) so the
//locator can seek over it. Reports small enough to post-process are
//small enough to hold.
func readWhole(filename string) ([]byte, error) {
	r, err := repesp.OpenRead(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

//logChargeLine parses one data row of a Gaussian charge section into
//(label, element symbol, charge). NBO rows lead with the symbol, the
//other sections with the label; trailing fields are ignored.
func logChargeLine(line string, ct repesp.ChargeType) (int, string, float64, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, "", 0, repesp.NewError(repesp.FormatErr, "charge line has %d fields, expected at least 3: '%s'", len(fields), line)
	}
	labelField, symbol := fields[0], fields[1]
	if ct == repesp.NBO {
		symbol, labelField = fields[0], fields[1]
	}
	label, err := strconv.Atoi(labelField)
	if err != nil || label < 0 {
		return 0, "", 0, repesp.NewError(repesp.FormatErr, "bad atom label in charge line: '%s'", line)
	}
	charge, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, "", 0, repesp.NewError(repesp.FormatErr, "bad charge value in charge line: '%s'", line)
	}
	return label, symbol, charge, nil
}

//sumvizChargeLine parses one data row of an AIM sumviz atomic-property
//block. The first token combines symbol and label, like C1 or Cl12.
func sumvizChargeLine(line string) (int, string, float64, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, "", 0, repesp.NewError(repesp.FormatErr, "charge line has %d fields, expected at least 2: '%s'", len(fields), line)
	}
	token := fields[0]
	split := len(token)
	for i, r := range token {
		if unicode.IsDigit(r) {
			split = i
			break
		}
	}
	if split == 0 || split == len(token) {
		return 0, "", 0, repesp.NewError(repesp.FormatErr, "expected a symbol+label token like C1, got '%s'", token)
	}
	symbol := token[:split]
	label, err := strconv.Atoi(token[split:])
	if err != nil || label < 0 {
		return 0, "", 0, repesp.NewError(repesp.FormatErr, "bad atom label in token '%s'", token)
	}
	charge, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, "", 0, repesp.NewError(repesp.FormatErr, "bad charge value in charge line: '%s'", line)
	}
	return label, symbol, charge, nil
}

//readChargeRows consumes exactly one data row per atom of the molecule,
//cross-validating labels and element identities, attaches the charges,
//and then checks that the block terminates where expected.
func readChargeRows(br *bufio.Reader, ct repesp.ChargeType, kind inputKind, mol *repesp.Molecule) error {
	for i, atom := range mol.Atoms {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		line = strings.TrimRight(line, "\r\n")
		var label int
		var symbol string
		var charge float64
		if kind == sumvizKind {
			label, symbol, charge, err = sumvizChargeLine(line)
		} else {
			label, symbol, charge, err = logChargeLine(line, ct)
		}
		if err != nil {
			return err
		}
		//the charge section must be in order of the generating
		//program's labels; equivalence-grouped output is unsupported
		if label != i+1 {
			return repesp.NewError(repesp.FormatErr,
				"charge section row %d declares label %d; output not given in label order is not supported", i+1, label)
		}
		if symbol != atom.Identity() {
			return repesp.NewError(repesp.FormatErr,
				"atom %d in atom list is given as %s but the input file has %s", atom.Label, atom.Identity(), symbol)
		}
		atom.Charges[ct] = charge
	}
	//One more line: the block must end exactly after len(mol) rows.
	next, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return err
	}
	next = strings.TrimRight(next, "\r\n")
	prefix := next
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	for _, t := range terminators[kind] {
		if prefix == t {
			return nil
		}
	}
	return repesp.NewError(repesp.FormatErr,
		"expected end of charges (%q), instead got: '%s'", terminators[kind], prefix)
}
