/*
 * interfaces.go, part of gopull.
 *
 *
 * Copyright 2026 The gopull Authors
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
 *
 */

package pull

import (
	"errors"
	"fmt"
	"strings"
)

//Errors

// The kinds of error the library produces. Every error returned by this package
// wraps exactly one of them, so they can be checked with errors.Is. The only
// exception is a collection stopped by its context, which wraps the context's error.
var (
	ErrFileNotFound   = errors.New("file not found")
	ErrShapeMismatch  = errors.New("shape mismatch")
	ErrMalformed      = errors.New("malformed input")
	ErrInvalidOptions = errors.New("invalid options")
)

// Decorator is implemented by errors that let the callers add the names of the functions
// the error went through, without changing its type or wrapping it around something else.
type Decorator interface {
	error
	Decorate(string) []string
}

// Error is the general structure for gopull errors. All of them are critical, as the
// whole collection is aborted on the first error.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	kind     error
	cause    error //the error from a lower level, if any.
}

func newError(kind error, filename, message string, caller string) *Error {
	return &Error{message: message, filename: filename, deco: []string{caller}, kind: kind}
}

func (err *Error) Error() string {
	var b strings.Builder
	b.WriteString("gopull: ")
	b.WriteString(err.kind.Error())
	if err.filename != "" {
		fmt.Fprintf(&b, " in %s", err.filename)
	}
	if err.message != "" {
		b.WriteString(": ")
		b.WriteString(err.message)
	}
	if err.cause != nil {
		b.WriteString(": ")
		b.WriteString(err.cause.Error())
	}
	return b.String()
}

// Decorate Adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file associated to the error, or an empty string.
func (err *Error) FileName() string { return err.filename }

// Critical always returns true.
func (err *Error) Critical() bool { return true }

func (err *Error) Unwrap() []error {
	if err.cause == nil {
		return []error{err.kind}
	}
	return []error{err.kind, err.cause}
}

// errDecorate decorates err with the caller's name, if err is a Decorator,
// and returns it.
func errDecorate(err error, caller string) error {
	var d Decorator
	if errors.As(err, &d) {
		d.Decorate(caller)
	}
	return err
}
