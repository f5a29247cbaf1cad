// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordertree

import (
	"fmt"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree[T]) CheckUp() bool {
	return checkup(tree.header.up, &tree.header)
}

// internal: consistency checker
func checkup[T any](p *Node[T], up *Node[T]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		// report a corrupted nil parent rather than crash on it
		if nil == p.up {
			fmt.Printf("fail at node: %v   actual: nil  expected: %v\n", p.Item, up.Item)
		} else {
			fmt.Printf("fail at node: %v   actual: %v  expected: %v\n", p.Item, p.up.Item, up.Item)
		}
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckCounts - check that every subtree size equals one plus the
// sizes of its child subtrees
func (tree *Tree[T]) CheckCounts() bool {
	_, ok := checkcounts(tree.header.up)
	return ok
}

func checkcounts[T any](p *Node[T]) (uint32, bool) {
	if nil == p {
		return 0, true
	}
	l, okl := checkcounts(p.left)
	r, okr := checkcounts(p.right)
	n := 1 + l + r
	if p.size != n {
		fmt.Printf("fail at node: %v   size: %d  expected: %d\n", p.Item, p.size, n)
		return n, false
	}
	return n, okl && okr
}

// CheckBalance - check that every balance factor is exactly
// height(right) - height(left) and within the AVL bound
func (tree *Tree[T]) CheckBalance() bool {
	_, ok := checkbalance(tree.header.up)
	return ok
}

func checkbalance[T any](p *Node[T]) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, okl := checkbalance(p.left)
	rh, okr := checkbalance(p.right)
	b := rh - lh
	if b < -1 || b > 1 || int(p.balance) != b {
		fmt.Printf("fail at node: %v   balance: %d  expected: %d\n", p.Item, p.balance, b)
		return 0, false
	}
	h := lh
	if rh > lh {
		h = rh
	}
	return h + 1, okl && okr
}
