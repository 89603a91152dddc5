//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-2023 Bernd Fix  >Y<
//
// Gospel is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Gospel is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package errors

import (
	stderrors "errors"
	"fmt"
)

// Sentinel base errors matching the error kinds of spec.md §7.
// Call sites wrap them with New to attach context, and callers test
// with errors.Is against these values.
var (
	// ErrPrecondition marks a violated input precondition (e.g. calling
	// Pollard's rho on a prime, or msqrt on p == 2).
	ErrPrecondition = stderrors.New("precondition violated")
	// ErrNoSolution marks a search that terminated without a solution
	// (BSGS with h not in <g>, quadratic sieve with no smooth relation
	// combination).
	ErrNoSolution = stderrors.New("no solution")
	// ErrTimeout marks a wall-clock deadline expiring inside an
	// unbounded loop (Pollard's rho, generator search). Baby-step/
	// giant-step takes no deadline and never returns it.
	ErrTimeout = stderrors.New("deadline exceeded")
)

// Is reports whether err wraps target, delegating to the standard
// library so sentinel comparisons work through New's wrapping.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// Error is a wrapper for errors produced by (parts of) the numlab
// implementation where variable error context is required for
// defined errors
type Error struct {
	Err error  // base error (for errors.Is() and errors.As() calls)
	Ctx string // error context
}

// Unwrap error to standard type
func (e *Error) Unwrap() error {
	return e.Err
}

// Error returns a human-readble error description
func (e *Error) Error() string {
	return e.Err.Error() + " [" + e.Ctx + "]"
}

// New creates a new Error instance
func New(err error, format string, args ...interface{}) *Error {
	return &Error{
		Err: err,
		Ctx: fmt.Sprintf(format, args...),
	}
}
