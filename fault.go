// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// error instances
//
// Provides a single instance of errors to allow easy comparison

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError

// common errors - keep in alphabetic order
var (
	ErrInvalidTraverseOrder = InvalidError("traverse order is invalid")
	ErrInvalidUpdateSource  = InvalidError("update source is not a map or sequence")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string { return string(e) }
