// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordertree

// The four local re-linking operations.  Each re-links two or three
// nodes, fixes their balance factors from the transition table and
// recomputes their subtree sizes by moving the size of the subtree
// that changed sides; heights are never recomputed anywhere.
//
// A single rotation with a balanced pivot (z.balance == 0) only
// occurs during delete; insert always rotates with a leaning pivot.

// single rotation: z is x's right child and the right side is heavy
func rotateLeft[T any](x, z *Node[T]) *Node[T] {
	t := z.left
	x.right = t
	if t != nil {
		t.up = x
	}
	z.left = x
	x.up = z

	xSize := x.size
	x.size -= z.size - subtreeSize(t)
	z.size = xSize

	if 0 == z.balance {
		x.balance = 1
		z.balance = -1
	} else {
		x.balance = 0
		z.balance = 0
	}
	return z
}

// single rotation: z is x's left child and the left side is heavy
func rotateRight[T any](x, z *Node[T]) *Node[T] {
	t := z.right
	x.left = t
	if t != nil {
		t.up = x
	}
	z.right = x
	x.up = z

	xSize := x.size
	x.size -= z.size - subtreeSize(t)
	z.size = xSize

	if 0 == z.balance {
		x.balance = -1
		z.balance = 1
	} else {
		x.balance = 0
		z.balance = 0
	}
	return z
}

// double rotation: z is x's right child but leans left; y is z's
// left child and becomes the new subtree root
func rotateRightLeft[T any](x, z *Node[T]) *Node[T] {
	y := z.left
	t1 := y.right
	z.left = t1
	if t1 != nil {
		t1.up = z
	}
	y.right = z
	z.up = y

	t2 := y.left
	x.right = t2
	if t2 != nil {
		t2.up = x
	}
	y.left = x
	x.up = y

	xSize := x.size
	x.size -= z.size - subtreeSize(t2)
	z.size -= y.size - subtreeSize(t1)
	y.size = xSize

	if 0 == y.balance {
		x.balance = 0
		z.balance = 0
	} else if y.balance > 0 {
		x.balance = -1
		z.balance = 0
	} else {
		x.balance = 0
		z.balance = 1
	}
	y.balance = 0
	return y
}

// double rotation: z is x's left child but leans right; y is z's
// right child and becomes the new subtree root
func rotateLeftRight[T any](x, z *Node[T]) *Node[T] {
	y := z.right
	t1 := y.left
	z.right = t1
	if t1 != nil {
		t1.up = z
	}
	y.left = z
	z.up = y

	t2 := y.right
	x.left = t2
	if t2 != nil {
		t2.up = x
	}
	y.right = x
	x.up = y

	xSize := x.size
	x.size -= z.size - subtreeSize(t2)
	z.size -= y.size - subtreeSize(t1)
	y.size = xSize

	if 0 == y.balance {
		x.balance = 0
		z.balance = 0
	} else if y.balance < 0 {
		x.balance = 1
		z.balance = 0
	} else {
		x.balance = 0
		z.balance = -1
	}
	y.balance = 0
	return y
}
