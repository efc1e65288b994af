// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify cached heights, balance and key order of every node
func (tree *Tree[K]) Check() error {
	if _, err := tree.checkNode(tree.root); nil != err {
		return err
	}

	first := true
	var previous K
	ordered := true
	tree.Walk(func(key K) bool {
		if !first && key < previous {
			tree.errorf("key: %v follows: %v", key, previous)
			ordered = false
			return false
		}
		first = false
		previous = key
		return true
	})
	if !ordered {
		return fault.ErrOutOfOrder
	}
	return nil
}

// internal: consistency checker, returns the actual height of p
func (tree *Tree[K]) checkNode(p *Node[K]) (int, error) {
	if nil == p {
		return 0, nil
	}
	lh, err := tree.checkNode(p.left)
	if nil != err {
		return 0, err
	}
	rh, err := tree.checkNode(p.right)
	if nil != err {
		return 0, err
	}

	h := lh + 1
	if rh > lh {
		h = rh + 1
	}
	if p.height != h {
		tree.errorf("node: %v  height: %d  expected: %d", p.key, p.height, h)
		return 0, fault.ErrHeightMismatch
	}
	if lh-rh > 1 || rh-lh > 1 {
		tree.errorf("node: %v  left: %d  right: %d", p.key, lh, rh)
		return 0, fault.ErrUnbalanced
	}
	return h, nil
}
