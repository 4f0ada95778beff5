/*
 * config.go, part of repesp.
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
	"bufio"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"repesp"
)

//Config is a job description for a charge fit, as read from a YAML
//file. It can also be built by hand, in which case Check should be
//called before use.
type Config struct {
	//Dir is the directory holding the input files and receiving the
	//output of the resp program
	Dir string `yaml:"dir"`

	//Kind is one of the fit kinds accepted by Fit (e.g. "two_stage")
	Kind string `yaml:"kind"`

	//Respin1, Respin2 and ESP name the input files inside Dir. Empty
	//values mean "find by extension"
	Respin1 string `yaml:"respin1"`
	Respin2 string `yaml:"respin2"`
	ESP     string `yaml:"esp"`

	//Charges are optional input charges read back by the resp program
	//as the starting point of the fit. A "dict" fit requires them, with
	//the atoms left free marked by the UnsetCharge sentinel
	Charges []float64 `yaml:"charges"`
}

//ReadConfig opens and decodes a YAML fit configuration and checks it.
func ReadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var c Config
	if err := yaml.NewDecoder(bufio.NewReader(f)).Decode(&c); err != nil {
		return nil, repesp.NewError(repesp.FormatErr, "cannot decode %s: %v", path, err)
	}
	if err := c.Check(); err != nil {
		return nil, repesp.ErrDecorate(err, "ReadConfig: "+path)
	}
	return &c, nil
}

//Check returns an error if the configuration cannot describe a fit.
func (c *Config) Check() error {
	switch c.Kind {
	case TwoStageFit, HOnlyFit, UnrestFit, DictFit:
	default:
		return repesp.NewError(repesp.ValueErr, "unknown fit kind '%s'", c.Kind)
	}
	if c.Kind == DictFit && len(c.Charges) == 0 {
		return repesp.NewError(repesp.ValueErr, "a dict fit requires a list of preset charges")
	}
	if c.Dir == "" {
		c.Dir = "."
	}
	return nil
}

//Run performs the fit described by c through r, attaching the result to
//mol under ct.
func (c *Config) Run(r Runner, mol *repesp.Molecule, ct repesp.ChargeType) error {
	if err := c.Check(); err != nil {
		return err
	}
	in, err := FindInputFiles(c.Dir, c.Respin1, c.Respin2, c.ESP)
	if err != nil {
		return err
	}
	respin1, err := ReadRespin(in.Respin1, nil)
	if err != nil {
		return err
	}
	respin2, err := ReadRespin(in.Respin2, respin1.Molecule)
	if err != nil {
		return err
	}
	if mol.Len() != respin1.Molecule.Len() {
		return repesp.NewError(repesp.ValueErr, "the molecule has %d atoms but the respin files describe %d", mol.Len(), respin1.Molecule.Len())
	}
	return Fit(r, c.Kind, c.Dir, filepath.Base(in.ESP), respin1, respin2, mol, ct, c.Charges)
}
