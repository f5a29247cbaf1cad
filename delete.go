// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordertree

import (
	"github.com/bitmark-inc/ordertree/fault"
)

// Delete - unlink a node from the tree
//
// The node must currently be a member of this tree.  The node is
// fully reset and may be reinserted, into this or another tree, or
// discarded.  No other node is moved in memory; when the node has two
// children its in-order successor is spliced into its structural
// position and re-stamped with its balance and subtree size.
func (tree *Tree[T]) Delete(node *Node[T]) error {
	if nil == node {
		return fault.ErrNilNode
	}
	if node.sentinel {
		return fault.ErrSentinelNode
	}
	if 0 == node.size || !tree.isMember(node) {
		return fault.ErrNodeNotInTree
	}

	// x is the structural parent of the detached position and the
	// start of the rebalancing climb
	x := node.up
	nIsLeft := !x.sentinel && node == x.left

	wasLeftmost := tree.header.left == node
	wasRightmost := tree.header.right == node

	if nil == node.left {
		tree.shiftNodes(node, node.right)
	} else if nil == node.right {
		tree.shiftNodes(node, node.left)
	} else {
		y := node.right.first()
		if y.up != node {
			x = y.up
			nIsLeft = true
			tree.shiftNodes(y, y.right)
			y.right = node.right
			y.right.up = y
		} else {
			x = y
			nIsLeft = false
		}
		tree.shiftNodes(node, y)
		y.left = node.left
		y.left.up = y
		y.balance = node.balance
		y.size = node.size
	}

	if wasLeftmost {
		if root := tree.header.up; nil == root {
			tree.header.left = &tree.header
		} else {
			tree.header.left = root.first()
		}
	}
	if wasRightmost {
		if root := tree.header.up; nil == root {
			tree.header.right = &tree.header
		} else {
			tree.header.right = root.last()
		}
	}

	tree.eraseRebalance(x, nIsLeft)
	node.reset()
	return nil
}

// internal: replace the subtree rooted at u by v in u's parent
func (tree *Tree[T]) shiftNodes(u, v *Node[T]) {
	if u.up.sentinel {
		tree.header.up = v
	} else if u == u.up.left {
		u.up.left = v
	} else {
		u.up.right = v
	}
	if v != nil {
		v.up = u.up
	}
}

// internal: climb from the shrunk position restoring the AVL property
//
// unlike insertion this may rotate at several levels: a rotation with
// a leaning pivot restores the old height and the climb stops, but a
// rotation with a balanced pivot still leaves the subtree one shorter
// and the climb goes on.  The climb decrements every subtree size it
// passes; the ancestors above the stop point still shrink by one and
// get a separate unconditional climb.
func (tree *Tree[T]) eraseRebalance(x *Node[T], nIsLeft bool) {
	g := x
	for !x.sentinel {
		g = x.up
		x.size -= 1

		var n *Node[T]
		rotated := false
		heightChanged := false
		if nIsLeft {
			if x.balance > 0 {
				z := x.right
				heightChanged = z.balance != 0
				if z.balance < 0 {
					n = rotateRightLeft(x, z)
				} else {
					n = rotateLeft(x, z)
				}
				rotated = true
			} else if x.balance < 0 {
				x.balance = 0
				n = x
			} else {
				x.balance = 1
				break
			}
		} else {
			if x.balance < 0 {
				z := x.left
				heightChanged = z.balance != 0
				if z.balance > 0 {
					n = rotateLeftRight(x, z)
				} else {
					n = rotateRight(x, z)
				}
				rotated = true
			} else if x.balance > 0 {
				x.balance = 0
				n = x
			} else {
				x.balance = -1
				break
			}
		}

		if rotated {
			tree.relink(g, x, n)
			if !heightChanged {
				break
			}
		}
		x = g
		nIsLeft = !x.sentinel && n == x.left
	}

	for x = g; !x.sentinel; x = x.up {
		x.size -= 1
	}
}
