// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type ProcessError GenericError

// tree contract violations - keep in alphabetic order
//
// all of these are programmer errors: a tree operation that returns
// or panics with one of these has not modified the tree
var (
	ErrIteratorOutOfRange   = ProcessError("iterator out of range")
	ErrNilNode              = InvalidError("node is nil")
	ErrNodeAlreadyInTree    = InvalidError("node is already in a tree")
	ErrNodeNotInTree        = InvalidError("node is not in this tree")
	ErrSentinelNode         = InvalidError("node is a sentinel")
	ErrTreeCapacityExceeded = ProcessError("tree capacity exceeded")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string { return string(e) }
func (e ProcessError) Error() string { return string(e) }
