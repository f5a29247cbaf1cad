// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordertree

import (
	"golang.org/x/exp/constraints"
)

// CompareFunc - three way comparison of two payloads
// negative: a < b, zero: a == b, positive: a > b
type CompareFunc[T any] func(a, b T) int

// Tree - type to hold the sentinel anchor of a tree
//
// the sentinel's parent slot caches the root, its left and right
// slots cache the leftmost and rightmost elements; both point back at
// the sentinel while the tree is empty
type Tree[T any] struct {
	header  Node[T]
	compare CompareFunc[T]
}

// New - create an initially empty tree ordered by a comparator
func New[T any](compare CompareFunc[T]) *Tree[T] {
	tree := &Tree[T]{
		compare: compare,
	}
	tree.header.sentinel = true
	tree.header.left = &tree.header
	tree.header.right = &tree.header
	return tree
}

// NewOrdered - create an initially empty tree using the payload's
// intrinsic ordering
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	return New(func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return +1
		default:
			return 0
		}
	})
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.header.up
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return int(subtreeSize(tree.header.up))
}

// Root - return the root node of the tree, nil if empty
func (tree *Tree[T]) Root() *Node[T] {
	return tree.header.up
}

// End - the marker one past the last node
//
// End is the result of Next on the last node and of searches that
// found nothing; Prev of End is the last node
func (tree *Tree[T]) End() *Node[T] {
	return &tree.header
}

// First - return the node with the lowest key value, End if empty
func (tree *Tree[T]) First() *Node[T] {
	return tree.header.left
}

// Last - return the node with the highest key value, End if empty
func (tree *Tree[T]) Last() *Node[T] {
	return tree.header.right
}

// internal: re-attach a rotated subtree root under g, which may be
// the sentinel when the rotation happened at the tree root
func (tree *Tree[T]) relink(g, x, n *Node[T]) {
	n.up = g
	if g.sentinel {
		tree.header.up = n
	} else if x == g.left {
		g.left = n
	} else {
		g.right = n
	}
}

// internal: true if node is linked into this tree
func (tree *Tree[T]) isMember(p *Node[T]) bool {
	for !p.sentinel {
		if nil == p.up {
			return false
		}
		p = p.up
	}
	return p == &tree.header
}
