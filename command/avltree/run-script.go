// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/driver"
	"github.com/bitmark-inc/avltree/fault"
)

// apply the configured lists
func runScript(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if "" == m.file {
		return fault.ErrMissingConfiguration
	}

	operations := driver.Script(m.config.Insert, m.config.Delete)
	display := m.verbose || m.config.Display
	check := m.config.Check || c.Bool("check")

	return run(m, operations, display, check)
}

// run operations on a fresh tree and print the summary
func run(m *metadata, operations []driver.Operation, display bool, check bool) error {

	tree := avl.New[int]()
	tree.SetLog(logger.New("avl"))

	d := driver.New(tree, logger.New("driver"), m.w, display, check)
	summary, err := d.Run(operations)
	if nil != err {
		return err
	}

	result := struct {
		driver.Summary
		Keys []int `json:"keys"`
	}{
		Summary: summary,
		Keys:    tree.Keys(),
	}
	return printJson(m.w, result)
}
