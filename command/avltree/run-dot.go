// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/driver"
)

// build a tree and print it as a Graphviz digraph
func runDot(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count, seed := countAndSeed(c, m)
	operations, err := driver.Shuffle(count, seed)
	if nil != err {
		return err
	}

	tree := avl.New[int]()
	tree.SetLog(logger.New("avl"))

	// only the insert half of the sequence
	for _, op := range operations[:count] {
		tree.Insert(op.Key)
	}

	fmt.Fprint(m.w, tree.Dot())
	return nil
}
