// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/driver"
)

// shuffled inserts then shuffled deletes
func runShuffle(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count, seed := countAndSeed(c, m)
	operations, err := driver.Shuffle(count, seed)
	if nil != err {
		return err
	}

	display := m.verbose || m.config.Display || c.Bool("display")
	check := m.config.Check || c.Bool("check")

	return run(m, operations, display, check)
}

// flags override the configuration file
func countAndSeed(c *cli.Context, m *metadata) (int, uint64) {
	count := m.config.Count
	if c.IsSet("count") {
		count = c.Int("count")
	}
	seed := m.config.Seed
	if c.IsSet("seed") {
		seed = c.Uint64("seed")
	}
	m.log.Infof("count: %d  seed: %d", count, seed)
	return count, seed
}
