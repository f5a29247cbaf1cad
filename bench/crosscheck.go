// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bench - cross check the tree engine against reference
// ordered containers and time the distinctive operations
//
// The engine is compared element-for-element with a left-leaning
// red-black tree holding the same multiset, and spot checked against
// a red-black key→count map for the bound queries.  None of the
// references can answer rank queries without iterating, which is the
// point of the exercise.
package bench

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/bitmark-inc/ordertree"
)

// Result - totals and timings from one cross check run
type Result struct {
	Inserted      int
	Erased        int
	Remaining     int
	InsertElapsed time.Duration
	EraseElapsed  time.Duration
	RankElapsed   time.Duration
	RankQueries   int
}

func (r *Result) String() string {
	return fmt.Sprintf(
		"inserted: %d in %s  erased: %d in %s  remaining: %d  rank queries: %d in %s",
		r.Inserted, r.InsertElapsed,
		r.Erased, r.EraseElapsed,
		r.Remaining,
		r.RankQueries, r.RankElapsed,
	)
}

// CrossCheck - build identical multisets in the engine and the
// references, erase half through LowerBound, then verify the
// surviving in-order sequences match element for element
func CrossCheck(total int, seed int64) (*Result, error) {
	result := &Result{}
	rng := rand.New(rand.NewSource(seed))

	tree := ordertree.NewOrdered[int]()
	reference := llrb.New()
	counts := redblacktree.NewWithIntComparator()

	keys := make([]int, total)
	for i := range keys {
		keys[i] = int(rng.Int31())
	}

	start := time.Now()
	for _, key := range keys {
		if err := tree.Insert(&ordertree.Node[int]{Item: key}); nil != err {
			return nil, err
		}
	}
	result.InsertElapsed = time.Since(start)
	result.Inserted = total

	for _, key := range keys {
		reference.InsertNoReplace(llrb.Int(key))
		n := 0
		if v, ok := counts.Get(key); ok {
			n = v.(int)
		}
		counts.Put(key, n+1)
	}

	if tree.Count() != reference.Len() {
		return nil, fmt.Errorf("count mismatch: tree: %d  reference: %d",
			tree.Count(), reference.Len())
	}

	// erase half of the elements through LowerBound, mirroring each
	// erase on the references
	toErase := total / 2
	start = time.Now()
	for result.Erased < toErase {
		probe := int(rng.Int31())

		p := tree.LowerBound(probe)
		if p.IsEnd() {
			continue
		}
		key := p.Item
		if err := tree.Delete(p); nil != err {
			return nil, err
		}

		if nil == reference.Delete(llrb.Int(key)) {
			return nil, fmt.Errorf("reference missing key: %d", key)
		}
		if v, ok := counts.Get(key); ok {
			if n := v.(int); n > 1 {
				counts.Put(key, n-1)
			} else {
				counts.Remove(key)
			}
		} else {
			return nil, fmt.Errorf("count map missing key: %d", key)
		}

		result.Erased += 1
	}
	result.EraseElapsed = time.Since(start)
	result.Remaining = tree.Count()

	if tree.Count() != reference.Len() {
		return nil, fmt.Errorf("count mismatch after erase: tree: %d  reference: %d",
			tree.Count(), reference.Len())
	}

	// the surviving sequences must match element for element; the
	// pivot must be a comparable key, not the infinity sentinel, as
	// the reference compares its elements against it.  All keys are
	// non-negative so MinInt32 precedes every element.
	var sequenceError error
	p := tree.First()
	index := 0
	reference.AscendGreaterOrEqual(llrb.Int(math.MinInt32), func(i llrb.Item) bool {
		if p.IsEnd() {
			sequenceError = fmt.Errorf("tree sequence short at: %d", index)
			return false
		}
		if p.Item != int(i.(llrb.Int)) {
			sequenceError = fmt.Errorf("sequence mismatch at %d: tree: %d  reference: %d",
				index, p.Item, int(i.(llrb.Int)))
			return false
		}
		p = p.Next()
		index += 1
		return true
	})
	if nil != sequenceError {
		return nil, sequenceError
	}
	if !p.IsEnd() {
		return nil, fmt.Errorf("tree sequence long after: %d", index)
	}

	// bound queries against the key→count map
	for i := 0; i < 1000; i += 1 {
		probe := int(rng.Int31())
		lb := tree.LowerBound(probe)
		ceiling, found := counts.Ceiling(probe)
		if lb.IsEnd() == found {
			return nil, fmt.Errorf("lower bound presence mismatch for: %d", probe)
		}
		if found && lb.Item != ceiling.Key.(int) {
			return nil, fmt.Errorf("lower bound mismatch for %d: tree: %d  reference: %d",
				probe, lb.Item, ceiling.Key.(int))
		}
	}

	// rank and select agree in both directions
	start = time.Now()
	step := tree.Count() / 1000
	if step < 1 {
		step = 1
	}
	for index := 0; index < tree.Count(); index += step {
		node := tree.Get(index)
		if nil == node {
			return nil, fmt.Errorf("select failed at: %d", index)
		}
		if r := node.Rank(); r != index {
			return nil, fmt.Errorf("rank mismatch at %d: %d", index, r)
		}
		result.RankQueries += 1
	}
	result.RankElapsed = time.Since(start)

	if d := tree.Distance(tree.First(), tree.End()); d != tree.Count() {
		return nil, fmt.Errorf("distance first..end: %d  count: %d", d, tree.Count())
	}

	return result, nil
}
