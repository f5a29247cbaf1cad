// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordertree

import (
	"github.com/bitmark-inc/ordertree/fault"
)

// Next - given a node, return the node with the next highest key
// value, or the end marker after the last node
//
// panics with fault.ErrIteratorOutOfRange when called on the end
// marker, and with fault.ErrNodeNotInTree on an unlinked node
func (p *Node[T]) Next() *Node[T] {
	if p.sentinel {
		panic(fault.ErrIteratorOutOfRange)
	}
	if 0 == p.size {
		panic(fault.ErrNodeNotInTree)
	}
	if p.right != nil {
		return p.right.first()
	}
	x := p
	for {
		up := x.up
		if up.sentinel {
			// climbed off the root: p was the last node
			return up
		}
		if x == up.left {
			return up
		}
		x = up
	}
}

// Prev - given a node, return the node with the next lowest key
// value; Prev of the end marker is the last node, so reverse
// iteration can start from End
//
// panics with fault.ErrIteratorOutOfRange when called on the first
// node or on the end marker of an empty tree, and with
// fault.ErrNodeNotInTree on an unlinked node
func (p *Node[T]) Prev() *Node[T] {
	if p.sentinel {
		if nil == p.up { // empty tree: begin == end
			panic(fault.ErrIteratorOutOfRange)
		}
		return p.right // the rightmost cache
	}
	if 0 == p.size {
		panic(fault.ErrNodeNotInTree)
	}
	if p.left != nil {
		return p.left.last()
	}
	x := p
	for {
		up := x.up
		if up.sentinel {
			panic(fault.ErrIteratorOutOfRange)
		}
		if x == up.right {
			return up
		}
		x = up
	}
}
