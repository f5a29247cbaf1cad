// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordertree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ordertree"
	"github.com/bitmark-inc/ordertree/fault"
)

func TestInsertContract(t *testing.T) {
	tree := ordertree.NewOrdered[int]()

	assert.Equal(t, fault.ErrNilNode, tree.Insert(nil))
	assert.Equal(t, fault.ErrSentinelNode, tree.Insert(tree.End()))

	node := &ordertree.Node[int]{Item: 1}
	require.NoError(t, tree.Insert(node))

	// a linked node cannot be inserted again, into any tree
	assert.Equal(t, fault.ErrNodeAlreadyInTree, tree.Insert(node))
	other := ordertree.NewOrdered[int]()
	assert.Equal(t, fault.ErrNodeAlreadyInTree, other.Insert(node))

	// tree state is untouched by the failed inserts
	assert.Equal(t, 1, tree.Count())
	assert.True(t, tree.CheckCounts())
}

func TestDeleteContract(t *testing.T) {
	tree := ordertree.NewOrdered[int]()

	assert.Equal(t, fault.ErrNilNode, tree.Delete(nil))
	assert.Equal(t, fault.ErrSentinelNode, tree.Delete(tree.End()))

	unlinked := &ordertree.Node[int]{Item: 1}
	assert.Equal(t, fault.ErrNodeNotInTree, tree.Delete(unlinked))

	// a member of another tree is not a member of this one
	other := ordertree.NewOrdered[int]()
	node := &ordertree.Node[int]{Item: 1}
	require.NoError(t, other.Insert(node))
	assert.Equal(t, fault.ErrNodeNotInTree, tree.Delete(node))
	assert.Equal(t, 1, other.Count())
}

func TestReinsertAcrossTrees(t *testing.T) {
	one := ordertree.NewOrdered[int]()
	two := ordertree.NewOrdered[int]()

	node := &ordertree.Node[int]{Item: 7}
	require.NoError(t, one.Insert(node))
	require.NoError(t, one.Delete(node))

	// after delete the node is unlinked and free to move
	require.NoError(t, two.Insert(node))
	assert.Equal(t, 0, one.Count())
	assert.Equal(t, 1, two.Count())
	assert.Equal(t, node, two.First())
}

func TestIteratorContract(t *testing.T) {
	tree := ordertree.NewOrdered[int]()

	// empty tree: begin == end, both directions are out of range
	assert.Panics(t, func() { tree.End().Next() })
	assert.Panics(t, func() { tree.End().Prev() })

	node := &ordertree.Node[int]{Item: 1}
	require.NoError(t, tree.Insert(node))

	assert.Equal(t, tree.End(), node.Next())
	assert.Equal(t, node, tree.End().Prev())
	assert.Panics(t, func() { tree.First().Prev() })
	assert.Panics(t, func() { tree.End().Next() })

	unlinked := &ordertree.Node[int]{Item: 2}
	assert.Panics(t, func() { unlinked.Next() })
	assert.Panics(t, func() { unlinked.Prev() })
	assert.Panics(t, func() { unlinked.Rank() })
}
