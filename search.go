// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordertree

// LowerBound - the first node whose item is not less than the given
// item, End if there is none
func (tree *Tree[T]) LowerBound(item T) *Node[T] {
	res := &tree.header
	for current := tree.header.up; nil != current; {
		if tree.compare(current.Item, item) < 0 {
			current = current.right
		} else {
			res = current
			current = current.left
		}
	}
	return res
}

// UpperBound - the first node whose item is greater than the given
// item, End if there is none
func (tree *Tree[T]) UpperBound(item T) *Node[T] {
	res := &tree.header
	for current := tree.header.up; nil != current; {
		if tree.compare(item, current.Item) < 0 {
			res = current
			current = current.left
		} else {
			current = current.right
		}
	}
	return res
}

// Find - a node comparing equal to the given item, End if there is
// none; with duplicate keys this is the first of the equal run
func (tree *Tree[T]) Find(item T) *Node[T] {
	lb := tree.LowerBound(item)
	if lb.sentinel || tree.compare(item, lb.Item) < 0 {
		return &tree.header
	}
	return lb
}
