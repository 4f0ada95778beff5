/*
 * errors.go, part of repesp.
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

import (
	"errors"
	"fmt"
)

//Kind classifies the errors produced by this library. None of them is
//retried anywhere; they all propagate to the caller.
type Kind int

const (
	//Unclassified is the zero Kind, used only for foreign errors.
	Unclassified Kind = iota
	//FormatErr: malformed or unexpected file content.
	FormatErr
	//NotImplementedErr: a combination (file extension, charge type,
	//field-type pair) the library deliberately does not support.
	NotImplementedErr
	//ValueErr: the caller supplied an internally inconsistent configuration.
	ValueErr
	//RangeErr: a requested occurrence or key does not exist.
	RangeErr
	//GridErr: a grid refuses an operation, e.g. for lack of axis alignment.
	GridErr
)

func (k Kind) String() string {
	switch k {
	case FormatErr:
		return "format"
	case NotImplementedErr:
		return "not implemented"
	case ValueErr:
		return "value"
	case RangeErr:
		return "range"
	case GridErr:
		return "grid"
	}
	return "unclassified"
}

//Error is the error type that all packages in this library return for
//domain failures. The Decorate method allows adding information when the
//error is passed up, without changing its type or wrapping it around
//something else. The decoration slice should contain the functions in the
//calling stack plus, for each, any relevant information, in the format
//"FunctionName: Extra info".
type Error struct {
	kind    Kind
	message string
	deco    []string
}

//NewError returns an Error of the given kind with a formatted message.
func NewError(kind Kind, format string, a ...interface{}) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, a...)}
}

//Error returns the error message.
func (err *Error) Error() string {
	return err.message
}

//Kind returns the classification of the error.
func (err *Error) Kind() Kind {
	return err.kind
}

//Decorate adds dec to the decoration slice of the error and returns the
//resulting slice. An empty dec only returns the current value.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//ErrDecorate asserts that err is a *repesp.Error, decorates it with the
//caller's name and returns it. Foreign errors are returned unchanged.
func ErrDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
		return e
	}
	return err
}

//KindOf returns the Kind of err, or Unclassified if err is not a
//*repesp.Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return Unclassified
}
