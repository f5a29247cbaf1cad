// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordertree

import (
	"math"
)

// MaxCount - the maximum number of nodes a single tree can hold
//
// the subtree size field is a 32 bit unsigned integer; an insert that
// would exceed this returns fault.ErrTreeCapacityExceeded instead of
// wrapping
const MaxCount = math.MaxUint32

// Node - the linkage and augmentation fields of one element
//
// embed or allocate one per element; the zero value is an unlinked
// node ready for Insert.  All linkage fields are managed exclusively
// by the tree, only Item belongs to the caller.
type Node[T any] struct {
	Item T // payload part, ordering must stay fixed while linked

	up       *Node[T] // points to parent node, or the sentinel at the root
	left     *Node[T] // left sub-tree
	right    *Node[T] // right sub-tree
	balance  int8     // height(right) - height(left): -1, 0, +1
	size     uint32   // nodes in the subtree rooted here, including itself
	sentinel bool     // true only for a tree's end marker
}

// Parent - return parent node of a node
func (p *Node[T]) Parent() *Node[T] {
	return p.up
}

// Left - return the left sub-tree of a node
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - return the right sub-tree of a node
func (p *Node[T]) Right() *Node[T] {
	return p.right
}

// Balance - the AVL balance factor of a node
func (p *Node[T]) Balance() int {
	return int(p.balance)
}

// SubtreeSize - number of nodes in the subtree rooted at this node
func (p *Node[T]) SubtreeSize() int {
	return int(p.size)
}

// IsEnd - true for the end marker returned by End and by searches
// that found nothing
func (p *Node[T]) IsEnd() bool {
	return p.sentinel
}

// Depth - get the depth of a node
func (p *Node[T]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil && !parent.sentinel {
		count += 1
		parent = parent.up
	}
	return count
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node[T]) GetChildrenByDepth(depth uint) []*Node[T] {
	nodes := []*Node[T]{}

	if depth == 0 {
		nodes = []*Node[T]{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// internal: subtree size treating nil as empty
func subtreeSize[T any](p *Node[T]) uint32 {
	if nil == p {
		return 0
	}
	return p.size
}

// internal: reset all linkage so the node is unlinked again
func (p *Node[T]) reset() {
	p.up = nil
	p.left = nil
	p.right = nil
	p.balance = 0
	p.size = 0
}

// internal: lowest node in a sub-tree
func (p *Node[T]) first() *Node[T] {
	if nil == p {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *Node[T]) last() *Node[T] {
	if nil == p {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}
