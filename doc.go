// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ordertree - an intrusive AVL balanced tree augmented with
// subtree sizes, so that the position of a node in key order and the
// distance between two nodes can be computed in O(log n)
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  Concurrent readers are safe while no writer is
//       active.
//
// The tree never allocates element storage: the caller owns every
// node and the tree only links and unlinks them.  A node must not be
// inserted into two trees, or twice into the same tree, at the same
// time; after Delete it may be reinserted anywhere.  Nodes are never
// moved in memory, only re-linked, so a node pointer stays valid
// until that node is deleted.
//
// Ordering is supplied as a comparator at construction, or taken from
// the payload's intrinsic ordering via NewOrdered.  The comparator
// must be total, consistent and non-mutating, and the payload of a
// linked node must not be changed in a way that alters its ordering.
package ordertree
