/*
 * log.go, part of repesp.
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

import "go.uber.org/zap"

//Log is the diagnostics logger used across the library for the non-fatal
//notices: misaligned grid axes, distance transforms requested on fields
//that are not electron densities, atomic numbers outside the periodic
//table. It defaults to a no-op logger; install a real one with SetLogger.
var Log = zap.NewNop().Sugar()

//SetLogger installs l as the library's diagnostics logger.
func SetLogger(l *zap.Logger) {
	Log = l.Sugar()
}
