// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordertree

// Get - the node at a zero based position in key order, nil if the
// index is out of range; the inverse of Rank
func (tree *Tree[T]) Get(index int) *Node[T] {
	if index < 0 || index >= tree.Count() {
		return nil
	}
	return get(index, tree.header.up)
}

func get[T any](index int, tree *Node[T]) *Node[T] {
	if nil == tree {
		return nil
	}

	nl := int(subtreeSize(tree.left))

	if index < nl {
		return get(index, tree.left)
	}
	if index > nl {
		// subtract left nodes + 1 (for this node)
		return get(index-nl-1, tree.right)
	}
	return tree
}
