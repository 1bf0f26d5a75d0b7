// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrCorruptData          = InvalidError("corrupt data")
	ErrIncompatibleDatabase = ProcessError("incompatible database version")
	ErrInvalidCommand       = InvalidError("invalid command")
	ErrInvalidConfiguration = InvalidError("configuration must return a table")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStoreType     = InvalidError("invalid store type")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrNotFound             = NotFoundError("key not found")
	ErrRecordTooLong        = InvalidError("record too long")
	ErrSnapshotNotFound     = NotFoundError("snapshot not found")
	ErrTypeMismatch         = InvalidError("key type mismatch")
	ErrUnsupportedType      = InvalidError("unsupported value type")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// KeyError - an error instance annotated with the key that caused it
type KeyError struct {
	Err error
	Key interface{}
}

// NewKeyError - attach a key to one of the error instances
func NewKeyError(err error, key interface{}) error {
	return &KeyError{
		Err: err,
		Key: key,
	}
}

func (e *KeyError) Error() string { return fmt.Sprintf("%s: %v", e.Err, e.Key) }

// Unwrap - the underlying error instance
func (e *KeyError) Unwrap() error { return e.Err }

// determine the class of an error
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
