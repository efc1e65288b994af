// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package driver

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// Tree - the tree operations used by the driver
type Tree interface {
	Insert(key int)
	Delete(key int) error
	Height() int
	String() string
	Check() error
}

// Summary - operation totals from a run, a delete of a missing key
// still counts as a delete
type Summary struct {
	Inserts      int `json:"inserts"`
	Deletes      int `json:"deletes"`
	EmptyDeletes int `json:"empty_deletes"`
	Height       int `json:"height"`
}

// Driver - runs operations against one tree
type Driver struct {
	tree    Tree
	log     *logger.L
	w       io.Writer
	display bool
	check   bool
}

// New - create a driver, renderings are written to w when display is
// set and the tree invariants are verified after every step when
// check is set
func New(tree Tree, log *logger.L, w io.Writer, display bool, check bool) *Driver {
	return &Driver{
		tree:    tree,
		log:     log,
		w:       w,
		display: display,
		check:   check,
	}
}

// Run - apply the operations in order
//
// deleting from an empty tree is counted and logged, an invariant
// failure stops the run
func (d *Driver) Run(operations []Operation) (Summary, error) {
	summary := Summary{}

	for i, op := range operations {
		d.log.Infof("%d: %s: %d", i, op.Kind, op.Key)

		switch op.Kind {
		case Insert:
			d.tree.Insert(op.Key)
			summary.Inserts += 1
		case Delete:
			err := d.tree.Delete(op.Key)
			if fault.ErrTreeIsEmpty == err {
				d.log.Warnf("%d: delete: %d: %s", i, op.Key, err)
				summary.EmptyDeletes += 1
			} else if nil != err {
				return summary, err
			} else {
				summary.Deletes += 1
			}
		default:
			d.log.Errorf("%d: operation: %d", i, op.Kind)
			return summary, fault.ErrUnknownOperation
		}

		if d.display {
			s := d.tree.String()
			d.log.Debugf("tree:\n%s", s)
			fmt.Fprintln(d.w, s)
		}

		if d.check {
			if err := d.tree.Check(); nil != err {
				d.log.Criticalf("%d: %s: %d: check failed: %s", i, op.Kind, op.Key, err)
				return summary, err
			}
		}
	}

	summary.Height = d.tree.Height()
	d.log.Infof("inserts: %d  deletes: %d  empty deletes: %d  height: %d",
		summary.Inserts, summary.Deletes, summary.EmptyDeletes, summary.Height)
	return summary, nil
}
