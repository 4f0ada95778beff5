/*
 * inputs.go, part of repesp.
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
)

//InputFiles names the three files a resp invocation needs: the two
//stage inputs and the fitting points.
type InputFiles struct {
	Respin1 string
	Respin2 string
	ESP     string
}

//findOne returns the single file in dir with the given extension. When
//name is not empty the search is skipped, but the file must still
//exist in dir.
func findOne(dir, ext, name string) (string, error) {
	if name != "" {
		fn := filepath.Join(dir, name)
		if _, err := os.Stat(fn); err != nil {
			return "", repesp.NewError(repesp.ValueErr, "input file %s not found: %v", fn, err)
		}
		return fn, nil
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*"+ext))
	if err != nil {
		return "", err
	}
	switch len(matches) {
	case 0:
		return "", repesp.NewError(repesp.ValueErr, "no '%s' file found in %s", ext, dir)
	case 1:
		return matches[0], nil
	default:
		return "", repesp.NewError(repesp.FormatErr, "%d '%s' files found in %s, name the one to use", len(matches), ext, dir)
	}
}

//FindInputFiles locates the resp input files in dir by extension. Any
//of the names may be given to skip the search for that file; an
//ambiguous search is an error.
func FindInputFiles(dir, respin1, respin2, esp string) (*InputFiles, error) {
	var in InputFiles
	var err error
	if in.Respin1, err = findOne(dir, ".respin1", respin1); err != nil {
		return nil, err
	}
	if in.Respin2, err = findOne(dir, ".respin2", respin2); err != nil {
		return nil, err
	}
	if in.ESP, err = findOne(dir, ".esp", esp); err != nil {
		return nil, err
	}
	return &in, nil
}
