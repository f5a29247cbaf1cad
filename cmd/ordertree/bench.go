// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ordertree/bench"
)

func runBench(c *cli.Context, globals globalFlags) {

	count := c.Int("count")
	seed := c.Int64("seed")
	if count <= 0 {
		exitwithstatus.Message("invalid count: %d", count)
	}

	logging := logger.Configuration{
		Directory: globals.logDir,
		File:      "ordertree.log",
		Size:      1048576,
		Count:     10,
		Console:   globals.verbose,
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		exitwithstatus.Message("logger setup failed with error: %s", err)
	}
	defer logger.Finalise()

	log := logger.New("bench")
	log.Infof("cross check starting: count: %d  seed: %d", count, seed)

	result, err := bench.CrossCheck(count, seed)
	if nil != err {
		log.Criticalf("cross check failed with error: %s", err)
		exitwithstatus.Message("cross check failed with error: %s", err)
	}

	log.Infof("cross check result: %s", result)
	fmt.Printf("%s\n", result)
}
