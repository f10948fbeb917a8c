// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"

	"github.com/pkg/errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ParseError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrInvalidAmount         = InvalidError("invalid amount")
	ErrInvalidLoggerChannel  = ProcessError("invalid logger channel")
	ErrInvalidScript         = InvalidError("invalid script format")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidTransaction    = InvalidError("invalid transaction format")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
)

// names returned by Kind for the transaction domain errors
const (
	KindInvalidAmount      = "InvalidAmount"
	KindInvalidScript      = "InvalidScript"
	KindInvalidTransaction = "InvalidTransaction"
	KindParseError         = "ParseError"
)

const parsePrefix = "parse error: "

// NewParseError - create a parse error carrying a descriptive message
func NewParseError(message string) ParseError {
	return ParseError(message)
}

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ParseError) Error() string    { return parsePrefix + string(e) }
func (e ProcessError) Error() string  { return string(e) }

// GoString - structural dump used by %#v
func (e InvalidError) GoString() string  { return fmt.Sprintf("fault.InvalidError(%q)", string(e)) }
func (e NotFoundError) GoString() string { return fmt.Sprintf("fault.NotFoundError(%q)", string(e)) }
func (e ParseError) GoString() string    { return fmt.Sprintf("fault.ParseError(%q)", string(e)) }
func (e ProcessError) GoString() string  { return fmt.Sprintf("fault.ProcessError(%q)", string(e)) }

// Message - the message carried by a parse error, without any prefix
func (e ParseError) Message() string { return string(e) }

// determine the class of an error
// wrapped errors are unwrapped to their cause first
func IsErrInvalid(e error) bool  { _, ok := errors.Cause(e).(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := errors.Cause(e).(NotFoundError); return ok }
func IsErrParse(e error) bool    { _, ok := errors.Cause(e).(ParseError); return ok }
func IsErrProcess(e error) bool  { _, ok := errors.Cause(e).(ProcessError); return ok }

// Kind - name of the transaction domain error kind
//
// returns an empty string for nil and for errors outside the domain set
func Kind(e error) string {
	switch cause := errors.Cause(e).(type) {
	case ParseError:
		return KindParseError
	case InvalidError:
		switch cause {
		case ErrInvalidAmount:
			return KindInvalidAmount
		case ErrInvalidScript:
			return KindInvalidScript
		case ErrInvalidTransaction:
			return KindInvalidTransaction
		}
	}
	return ""
}
