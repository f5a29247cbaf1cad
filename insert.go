// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordertree

import (
	"github.com/bitmark-inc/ordertree/fault"
)

// Insert - link a caller owned node into the tree
//
// The node must not currently be in any tree.  Equal keys are kept:
// a new node that compares equal to an existing one is placed on that
// node's left, so among equal keys the most recently inserted node
// comes first in key order.
func (tree *Tree[T]) Insert(node *Node[T]) error {
	if nil == node {
		return fault.ErrNilNode
	}
	if node.sentinel {
		return fault.ErrSentinelNode
	}
	if 0 != node.size || nil != node.up {
		return fault.ErrNodeAlreadyInTree
	}
	if nil != tree.header.up && MaxCount == tree.header.up.size {
		return fault.ErrTreeCapacityExceeded
	}

	// descend to the attachment point, counting the new node into
	// every subtree passed through; this must happen before any
	// rotation as the rotations rely on correct sizes
	isLeftmost := true
	isRightmost := true
	parent := &tree.header
	current := &tree.header.up
	for nil != *current {
		parent = *current
		parent.size += 1
		if tree.compare(parent.Item, node.Item) < 0 {
			current = &parent.right
			isLeftmost = false
		} else {
			current = &parent.left
			isRightmost = false
		}
	}
	*current = node

	node.up = parent
	node.left = nil
	node.right = nil
	node.balance = 0
	node.size = 1

	if isLeftmost {
		tree.header.left = node
	}
	if isRightmost {
		tree.header.right = node
	}

	tree.insertRebalance(node)
	return nil
}

// internal: climb from the new node restoring the AVL property
//
// an ancestor that leaned away from the insertion absorbs the new
// height; a balanced ancestor starts leaning and the climb goes on;
// an ancestor already leaning toward the insertion is rebalanced by
// one rotation, single or double, and the climb stops - insertion
// never needs more than one rotation
func (tree *Tree[T]) insertRebalance(z *Node[T]) {
	for x := z.up; !x.sentinel; x = z.up {
		var n *Node[T]
		g := x.up
		if z == x.left {
			if x.balance < 0 {
				if z.balance > 0 {
					n = rotateLeftRight(x, z)
				} else {
					n = rotateRight(x, z)
				}
			} else if x.balance > 0 {
				x.balance = 0
				break
			} else {
				x.balance = -1
				z = x
				continue
			}
		} else {
			if x.balance > 0 {
				if z.balance < 0 {
					n = rotateRightLeft(x, z)
				} else {
					n = rotateLeft(x, z)
				}
			} else if x.balance < 0 {
				x.balance = 0
				break
			} else {
				x.balance = 1
				z = x
				continue
			}
		}

		tree.relink(g, x, n)
		break
	}
}
