/*
 * locator.go, part of repesp.
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

//Package charges extracts per-atom partial charges from the text
//reports of quantum-chemistry programs and attaches them to molecules.
package charges

import (
	"bufio"
	"io"
	"strings"

	"repesp"
)

//The marker lines that precede an anonymous " ESP charges:" section and
//identify which fitting scheme produced it.
var espMarkers = map[string]repesp.ChargeType{
	" Merz-Kollman atomic radii used.":   repesp.MK,
	" Francl (CHELP) atomic radii used.": repesp.Chelp,
	" Breneman (CHELPG) radii used.":     repesp.ChelpG,
}

//sectionHeader returns the fixed header line that opens a charge block
//of the given type in a Gaussian log file. All ESP schemes share one
//generic header; they are told apart by the marker lines above.
func sectionHeader(ct repesp.ChargeType) (string, error) {
	switch {
	case ct == repesp.Mulliken:
		return " Mulliken charges:", nil
	case ct.IsESP():
		return " ESP charges:", nil
	case ct == repesp.NBO:
		return " Summary of Natural Population Analysis:", nil
	}
	return "", repesp.NewError(repesp.NotImplementedErr, "charge type '%s' is not implemented", ct)
}

//headerSkipLines is how many lines immediately after the header must be
//skipped before the data rows start.
func headerSkipLines(ct repesp.ChargeType) int {
	if ct == repesp.NBO {
		return 5 //column headers plus commentary
	}
	return 1
}

//scanOffsets records the byte offset after every line whose
//space-trimmed content equals header.
func scanOffsets(rs io.ReadSeeker, header string) ([]int64, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	var result []int64
	var offset int64
	br := bufio.NewReader(rs)
	for {
		line, err := br.ReadString('\n')
		offset += int64(len(line))
		if strings.TrimRight(line, " \r\n") == header {
			result = append(result, offset)
		}
		if err == io.EOF {
			return result, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

//scanESPVariants records, in file order, which ESP scheme each marker
//line declares. Together with scanOffsets this forms the two passes of
//the locator: generic header collection and variant disambiguation.
func scanESPVariants(rs io.ReadSeeker) ([]repesp.ChargeType, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	var result []repesp.ChargeType
	br := bufio.NewReader(rs)
	for {
		line, err := br.ReadString('\n')
		if ct, ok := espMarkers[strings.TrimRight(line, "\r\n")]; ok {
			result = append(result, ct)
		}
		if err == io.EOF {
			return result, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

//findLogSections returns the offsets at which the data of every charge
//block of the requested type begins, in file order. For ESP types the
//generic header offsets are filtered down to those whose preceding
//marker matches the request; a count mismatch between headers and
//markers means the output cannot be disambiguated.
func findLogSections(rs io.ReadSeeker, ct repesp.ChargeType) ([]int64, error) {
	header, err := sectionHeader(ct)
	if err != nil {
		return nil, err
	}
	offsets, err := scanOffsets(rs, header)
	if err != nil {
		return nil, err
	}
	if ct.IsESP() {
		variants, err := scanESPVariants(rs)
		if err != nil {
			return nil, err
		}
		if len(variants) != len(offsets) {
			return nil, repesp.NewError(repesp.FormatErr,
				"information about the type of some ESP charges was not recognized: %d '%s' headers but %d radii markers",
				len(offsets), header, len(variants))
		}
		filtered := offsets[:0]
		for i, off := range offsets {
			if variants[i] == ct {
				filtered = append(filtered, off)
			}
		}
		offsets = filtered
	}
	if len(offsets) == 0 {
		return nil, repesp.NewError(repesp.RangeErr, "output about charge type '%s' not found", ct)
	}
	return offsets, nil
}

//gotoLogSection positions rs at the first data row of the occurrence-th
//charge block of the given type. occurrence indexes the list of all
//blocks of that type, with negative values counting from the end, so -1
//selects the last one.
func gotoLogSection(rs io.ReadSeeker, ct repesp.ChargeType, occurrence int) (*bufio.Reader, error) {
	offsets, err := findLogSections(rs, ct)
	if err != nil {
		return nil, err
	}
	idx := occurrence
	if idx < 0 {
		idx += len(offsets)
	}
	if idx < 0 || idx >= len(offsets) {
		return nil, repesp.NewError(repesp.RangeErr,
			"cannot find occurrence %d in a list of recognized pieces of output about charges, whose length is %d",
			occurrence, len(offsets))
	}
	if _, err := rs.Seek(offsets[idx], io.SeekStart); err != nil {
		return nil, err
	}
	br := bufio.NewReader(rs)
	return br, skipLines(br, headerSkipLines(ct))
}

//The sentinel that opens the single atomic-property block of an AIM
//sumviz file, and the count of lines between it and the data rows.
const (
	sumvizSentinel  = "Some Atomic Properties:"
	sumvizSkipLines = 9
)

//gotoSumvizSection positions rs at the first data row of the atomic
//properties block. Sumviz files carry a single block, so there is no
//occurrence selection.
func gotoSumvizSection(rs io.ReadSeeker) (*bufio.Reader, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	br := bufio.NewReader(rs)
	for {
		line, err := br.ReadString('\n')
		if strings.TrimRight(line, "\r\n") == sumvizSentinel {
			return br, skipLines(br, sumvizSkipLines)
		}
		if err != nil {
			return nil, repesp.NewError(repesp.FormatErr, "sentinel line '%s' not found", sumvizSentinel)
		}
	}
}

func skipLines(br *bufio.Reader, n int) error {
	for i := 0; i < n; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			return repesp.NewError(repesp.FormatErr, "output ends right after a charge section header")
		}
	}
	return nil
}
