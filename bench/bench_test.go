// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/bitmark-inc/ordertree"
	"github.com/bitmark-inc/ordertree/bench"
)

// the bulk scenario: a million random keys in, half erased through
// LowerBound, surviving sequence identical to the reference multiset
func TestCrossCheck(t *testing.T) {
	total := 1000000
	if testing.Short() {
		total = 50000
	}

	result, err := bench.CrossCheck(total, 43)
	if nil != err {
		t.Fatalf("cross check error: %s", err)
	}
	if result.Inserted != total {
		t.Fatalf("inserted: actual: %d  expected: %d", result.Inserted, total)
	}
	if result.Erased != total/2 {
		t.Fatalf("erased: actual: %d  expected: %d", result.Erased, total/2)
	}
	if result.Remaining != total-total/2 {
		t.Fatalf("remaining: actual: %d  expected: %d", result.Remaining, total-total/2)
	}
	t.Logf("%s", result)
}

// sweeping the reference from a minimum key pivot must visit every
// element; counting the ascent reproduces the engine's rank query
func TestRankByIteration(t *testing.T) {
	keys := []int{41, 7, 93, 7, 28, 60, 2, 85}

	tree := ordertree.NewOrdered[int]()
	reference := llrb.New()
	for _, key := range keys {
		if err := tree.Insert(&ordertree.Node[int]{Item: key}); nil != err {
			t.Fatalf("insert error: %s", err)
		}
		reference.InsertNoReplace(llrb.Int(key))
	}

	for _, key := range keys {
		target := llrb.Int(key)
		rank := 0
		visited := 0
		reference.AscendGreaterOrEqual(llrb.Int(math.MinInt32), func(item llrb.Item) bool {
			visited += 1
			if !item.Less(target) {
				return false
			}
			rank += 1
			return true
		})
		if 0 == visited {
			t.Fatalf("sweep for %d visited nothing", key)
		}
		if r := tree.Find(key).Rank(); r != rank {
			t.Fatalf("rank of %d: actual: %d  expected: %d", key, r, rank)
		}
	}
}

const benchSize = 100000

func randomKeys(n int) []int {
	rng := rand.New(rand.NewSource(43))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = int(rng.Int31())
	}
	return keys
}

func BenchmarkInsert(b *testing.B) {
	keys := randomKeys(benchSize)
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		b.StopTimer()
		tree := ordertree.NewOrdered[int]()
		nodes := make([]ordertree.Node[int], benchSize)
		b.StartTimer()
		for j, key := range keys {
			nodes[j].Item = key
			_ = tree.Insert(&nodes[j])
		}
	}
}

func BenchmarkInsertLLRB(b *testing.B) {
	keys := randomKeys(benchSize)
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tree := llrb.New()
		for _, key := range keys {
			tree.InsertNoReplace(llrb.Int(key))
		}
	}
}

func BenchmarkInsertBTree(b *testing.B) {
	keys := randomKeys(benchSize)
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tree := btree.New(32)
		for _, key := range keys {
			tree.ReplaceOrInsert(btree.Int(key))
		}
	}
}

func BenchmarkInsertGodsRB(b *testing.B) {
	keys := randomKeys(benchSize)
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tree := redblacktree.NewWithIntComparator()
		for _, key := range keys {
			tree.Put(key, nil)
		}
	}
}

func buildTree(keys []int) (*ordertree.Tree[int], []ordertree.Node[int]) {
	tree := ordertree.NewOrdered[int]()
	nodes := make([]ordertree.Node[int], len(keys))
	for j, key := range keys {
		nodes[j].Item = key
		_ = tree.Insert(&nodes[j])
	}
	return tree, nodes
}

func BenchmarkDelete(b *testing.B) {
	keys := randomKeys(benchSize)
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		b.StopTimer()
		tree, nodes := buildTree(keys)
		b.StartTimer()
		for j := range nodes {
			_ = tree.Delete(&nodes[j])
		}
	}
}

func BenchmarkLowerBound(b *testing.B) {
	keys := randomKeys(benchSize)
	tree, _ := buildTree(keys)
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		_ = tree.LowerBound(keys[i%benchSize])
	}
}

func BenchmarkLowerBoundLLRB(b *testing.B) {
	keys := randomKeys(benchSize)
	tree := llrb.New()
	for _, key := range keys {
		tree.InsertNoReplace(llrb.Int(key))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tree.AscendGreaterOrEqual(llrb.Int(keys[i%benchSize]), func(llrb.Item) bool {
			return false
		})
	}
}

// the augmentation payoff: rank in O(log n); the references can only
// answer this by counting an ascent
func BenchmarkRank(b *testing.B) {
	keys := randomKeys(benchSize)
	_, nodes := buildTree(keys)
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		_ = nodes[i%benchSize].Rank()
	}
}

func BenchmarkSelect(b *testing.B) {
	keys := randomKeys(benchSize)
	tree, _ := buildTree(keys)
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		_ = tree.Get(i % benchSize)
	}
}

func BenchmarkRankByIterationLLRB(b *testing.B) {
	keys := randomKeys(benchSize)
	tree := llrb.New()
	for _, key := range keys {
		tree.InsertNoReplace(llrb.Int(key))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		target := llrb.Int(keys[i%benchSize])
		rank := 0
		tree.AscendGreaterOrEqual(llrb.Int(math.MinInt32), func(item llrb.Item) bool {
			if !item.Less(target) {
				return false
			}
			rank += 1
			return true
		})
	}
}
