/*
 * fit.go, part of repesp.
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
	"os"
	"path/filepath"

	"repesp"
	"repesp/charges"
)

//The fit kinds accepted by Fit. TwoStageFit is the regular RESP
//procedure; the others are one-stage fits with modified ivary lists.
const (
	TwoStageFit = "two_stage" //the full two-stage RESP fit
	HOnlyFit    = "h_only"    //only hydrogens free, everything else frozen
	UnrestFit   = "unrest"    //unrestrained fit with all equivalences kept
	DictFit     = "dict"      //atoms with a preset charge frozen at it
)

//UnsetCharge marks atoms whose charge is to be fitted in a DictFit. Its
//value is arbitrary but must lie far outside the physical range.
const UnsetCharge = 42.0

//ModifyIvary returns the ivary list for a one-stage fit of the given
//kind. charges may be nil except for DictFit, where it carries the
//preset values with UnsetCharge marking the atoms left free.
func ModifyIvary(kind string, mol *repesp.Molecule, ivary []int, charges []float64) ([]int, error) {
	if len(ivary) != mol.Len() {
		return nil, repesp.NewError(repesp.ValueErr, "ivary list length %d does not match the molecule (%d atoms)", len(ivary), mol.Len())
	}
	out := make([]int, len(ivary))
	copy(out, ivary)
	switch kind {
	case UnrestFit:
		//equivalences stay, only the restraint is dropped, which is a
		//matter for the control section, not the ivary list
	case HOnlyFit:
		for i, at := range mol.Atoms {
			if at.AtomicNumber != 1 {
				out[i] = -1
			}
		}
	case DictFit:
		if charges == nil {
			return nil, repesp.NewError(repesp.ValueErr, "a dict fit requires a list of preset charges")
		}
		if len(charges) != len(ivary) {
			return nil, repesp.NewError(repesp.ValueErr, "preset charge list length %d does not match the molecule (%d atoms)", len(charges), len(ivary))
		}
		for i, q := range charges {
			if q != UnsetCharge {
				out[i] = -1
			}
		}
	default:
		return nil, repesp.NewError(repesp.NotImplementedErr, "fit kind '%s' is not implemented", kind)
	}
	return out, nil
}

//respArgs builds the command line for one resp invocation. All
//filenames are relative to the working directory handed to the Runner.
func respArgs(respinFn, respoutFn, espFn, qoutFn, qinFn string) []string {
	args := []string{"-i", respinFn, "-o", respoutFn, "-e", espFn, "-t", qoutFn}
	if qinFn != "" {
		args = append(args, "-q", qinFn)
	}
	return args
}

//Fit runs a charge fit of the given kind in dir, which must already
//contain the .esp file espFn. The resulting charges are attached to mol
//under ct. inputCharges, if given, are written out and read back by the
//resp program as the starting charges of the fit; for a DictFit they
//are required and also select the frozen atoms, with UnsetCharge
//marking the ones left free.
func Fit(r Runner, kind, dir, espFn string, respin1, respin2 *Respin, mol *repesp.Molecule, ct repesp.ChargeType, inputCharges []float64) error {
	if inputCharges != nil && len(inputCharges) != mol.Len() {
		return repesp.NewError(repesp.ValueErr, "input charge list length %d does not match the molecule (%d atoms)", len(inputCharges), mol.Len())
	}
	if kind == TwoStageFit {
		return twoStage(r, dir, espFn, respin1, respin2, mol, ct, inputCharges)
	}
	ivary, err := CombineIvary(respin1.Ivary, respin2.Ivary)
	if err != nil {
		return repesp.ErrDecorate(err, "Fit")
	}
	variant := map[string]string{HOnlyFit: "h", UnrestFit: "u", DictFit: "d"}[kind]
	ivary, err = ModifyIvary(kind, respin1.Molecule, ivary, inputCharges)
	if err != nil {
		return repesp.ErrDecorate(err, "Fit")
	}
	stage := &Respin{Charge: respin1.Charge, Iuniq: respin1.Iuniq, Ivary: ivary, Molecule: respin1.Molecule}
	qinFn := ""
	if inputCharges != nil {
		if qinFn, err = dumpInputCharges(dir, mol, inputCharges); err != nil {
			return repesp.ErrDecorate(err, "Fit")
		}
	}
	return oneStage(r, dir, espFn, variant, stage, qinFn, mol, ct)
}

//dumpInputCharges writes qs to input.qout in dir, where the resp
//program will read them back as starting charges.
func dumpInputCharges(dir string, mol *repesp.Molecule, qs []float64) (string, error) {
	tmp := repesp.NewMolecule()
	for i, at := range mol.Atoms {
		a := at.Copy()
		a.Charges = map[repesp.ChargeType]float64{repesp.Temp: qs[i]}
		tmp.Append(a)
	}
	if err := charges.DumpQOut(tmp, repesp.Temp, filepath.Join(dir, "input.qout")); err != nil {
		return "", err
	}
	return "input.qout", nil
}

//twoStage performs the regular RESP procedure: a restrained fit over
//the stage-1 ivary list followed by a tighter refit of the stage-2
//atoms starting from the stage-1 charges.
func twoStage(r Runner, dir, espFn string, respin1, respin2 *Respin, mol *repesp.Molecule, ct repesp.ChargeType, inputCharges []float64) error {
	qinFn := ""
	if inputCharges != nil {
		var err error
		if qinFn, err = dumpInputCharges(dir, mol, inputCharges); err != nil {
			return repesp.ErrDecorate(err, "twoStage")
		}
	}
	if err := writeStage(dir, "input1.respin", "1", respin1, qinFn != ""); err != nil {
		return err
	}
	if err := r.Run(dir, "resp", respArgs("input1.respin", "output1.respout", espFn, "charges1.qout", qinFn)...); err != nil {
		return repesp.ErrDecorate(err, "twoStage: first stage")
	}
	if err := writeStage(dir, "input2.respin", "2", respin2, true); err != nil {
		return err
	}
	if err := r.Run(dir, "resp", respArgs("input2.respin", "output2.respout", espFn, "charges2.qout", "charges1.qout")...); err != nil {
		return repesp.ErrDecorate(err, "twoStage: second stage")
	}
	return charges.UpdateWithCharges(ct, filepath.Join(dir, "charges2.qout"), mol)
}

//oneStage runs a single resp invocation of the given variant.
func oneStage(r Runner, dir, espFn, variant string, stage *Respin, qinFn string, mol *repesp.Molecule, ct repesp.ChargeType) error {
	if err := writeStage(dir, "input.respin", variant, stage, qinFn != ""); err != nil {
		return err
	}
	if err := r.Run(dir, "resp", respArgs("input.respin", "output.respout", espFn, "charges.qout", qinFn)...); err != nil {
		return repesp.ErrDecorate(err, "oneStage")
	}
	return charges.UpdateWithCharges(ct, filepath.Join(dir, "charges.qout"), mol)
}

func writeStage(dir, fn, variant string, r *Respin, readInputCharges bool) error {
	f, err := os.Create(filepath.Join(dir, fn))
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteRespin(f, variant, r, readInputCharges)
}
