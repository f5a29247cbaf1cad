// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ordertree"
)

// the key sequence from the original demonstration driver; inserting
// 110 forces a double rotation that lifts it over 100 and 150
var demoKeys = []int{200, 150, 250, 100, 110, 120, 50}

func runDemo(c *cli.Context, globals globalFlags) {

	tree := ordertree.NewOrdered[int]()

	for _, key := range demoKeys {
		fmt.Printf("inserting %d\n", key)
		if err := tree.Insert(&ordertree.Node[int]{Item: key}); nil != err {
			exitwithstatus.Message("insert: %d failed with error: %s", key, err)
		}
		fmt.Println("===")
		tree.Print(true)
		fmt.Println("===")
	}

	if globals.verbose {
		fmt.Printf("count: %d\n", tree.Count())
		for p := tree.First(); !p.IsEnd(); p = p.Next() {
			fmt.Printf("rank: %d  key: %d\n", p.Rank(), p.Item)
		}
	}

	if !tree.CheckUp() || !tree.CheckCounts() || !tree.CheckBalance() {
		exitwithstatus.Message("demo tree failed its consistency checks")
	}
}
