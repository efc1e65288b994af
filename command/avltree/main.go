// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avltree"
	app.Usage = "insert and delete keys in an AVL tree, showing each step"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " render the tree after every step",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "shuffle",
			Usage:     "insert a random permutation of 0…COUNT-1 then delete it in another order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 0,
					Usage: " number of keys `COUNT` [configuration count]",
				},
				cli.Uint64Flag{
					Name:  "seed, s",
					Value: 0,
					Usage: " random `SEED` [configuration seed]",
				},
				cli.BoolFlag{
					Name:  "display, d",
					Usage: " render the tree after every step",
				},
				cli.BoolFlag{
					Name:  "check, k",
					Usage: " verify the tree after every step",
				},
			},
			Action: runShuffle,
		},
		{
			Name:      "script",
			Usage:     "apply the insert and delete lists from the configuration file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "check, k",
					Usage: " verify the tree after every step",
				},
			},
			Action: runScript,
		},
		{
			Name:      "dot",
			Usage:     "insert a random permutation and print a Graphviz graph of the tree",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 0,
					Usage: " number of keys `COUNT` [configuration count]",
				},
				cli.Uint64Flag{
					Name:  "seed, s",
					Value: 0,
					Usage: " random `SEED` [configuration seed]",
				},
			},
			Action: runDot,
		},
		{
			Name:  "version",
			Usage: "display avltree version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = setup
	app.After = teardown

	return app
}
