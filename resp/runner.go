/*
 * runner.go, part of repesp.
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
	"fmt"
	"os/exec"

	"repesp"
)

//Runner executes an external program in a given directory. It exists so
//that the fit orchestration can be tested without the resp program
//installed.
type Runner interface {
	Run(dir, name string, args ...string) error
}

//ExecRunner runs programs through os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return repesp.NewError(repesp.ValueErr, "%s failed: %v\n%s", name, err, out)
	}
	repesp.Log.Debugf("ran %s in %s: %s", name, dir, fmt.Sprint(args))
	return nil
}
