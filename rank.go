// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordertree

import (
	"github.com/bitmark-inc/ordertree/fault"
)

// Rank - the zero based position of a node in key order
//
// Rank of the end marker is the tree count, one past the last valid
// position.  Everything strictly left of the node locally is counted
// from its left subtree size; the climb to the root then adds, for
// every ancestor entered through its right child, that ancestor and
// its whole left side.  O(log n), no traversal.
//
// panics with fault.ErrNodeNotInTree on an unlinked node
func (p *Node[T]) Rank() int {
	if p.sentinel {
		return int(subtreeSize(p.up))
	}
	if 0 == p.size {
		panic(fault.ErrNodeNotInTree)
	}
	distance := int(subtreeSize(p.left))
	for x := p; !x.up.sentinel; x = x.up {
		if x == x.up.right {
			distance += int(x.up.size - x.size)
		}
	}
	return distance
}

// Distance - number of nodes in key order between two positions
//
// equals Rank(to) - Rank(from); Distance(First(), End()) is the tree
// count.  Negative when to precedes from.
func (tree *Tree[T]) Distance(from, to *Node[T]) int {
	if nil == from || nil == to {
		panic(fault.ErrNilNode)
	}
	return to.Rank() - from.Rank()
}
