// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

type globalFlags struct {
	verbose bool
	logDir  string
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	globals := globalFlags{}

	app := cli.NewApp()
	app.Name = "ordertree"
	app.Usage = "demonstrate and benchmark the order statistics tree"
	app.Version = Version
	app.HideVersion = true
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:        "verbose, v",
			Usage:       " verbose result",
			Destination: &globals.verbose,
		},
		cli.StringFlag{
			Name:        "log-directory, d",
			Value:       ".",
			Usage:       " directory for log files",
			Destination: &globals.logDir,
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "demo",
			Usage: "insert the documented key sequence, dumping the tree after every step",
			Action: func(c *cli.Context) error {
				runDemo(c, globals)
				return nil
			},
		},
		{
			Name:      "bench",
			Usage:     "cross check against reference trees and report timings",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 100000,
					Usage: " number of keys to insert",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 43,
					Usage: " random seed",
				},
			},
			Action: func(c *cli.Context) error {
				runBench(c, globals)
				return nil
			},
		},
		{
			Name:  "version",
			Usage: "display ordertree version",
			Action: func(c *cli.Context) error {
				fmt.Println(Version)
				return nil
			},
		},
	}

	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}
