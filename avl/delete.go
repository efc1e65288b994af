// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Delete - remove one occurrence of key from the tree
//
// a key that is not present is silently ignored, deleting from an
// empty tree is reported as fault.ErrTreeIsEmpty and changes nothing
func (tree *Tree[K]) Delete(key K) error {
	tree.debugf("delete: %v", key)
	if nil == tree.root {
		tree.warn("tree is empty")
		return fault.ErrTreeIsEmpty
	}
	removed := false
	tree.root = tree.delete(key, tree.root, &removed)
	if removed {
		tree.count -= 1
	}
	return nil
}

// internal delete routine, p is never nil
func (tree *Tree[K]) delete(key K, p *Node[K], removed *bool) *Node[K] {
	if key < p.key {
		if nil != p.left {
			p.left = tree.delete(key, p.left, removed)
		}
	} else if key > p.key {
		if nil != p.right {
			p.right = tree.delete(key, p.right, removed)
		}
	} else {
		// found: splice out or replace by in-order successor
		switch {
		case nil != p.left && nil != p.right:
			successor := p.right.first().key
			p.key = successor
			p.right = tree.delete(successor, p.right, removed)
		case nil != p.left:
			*removed = true
			return p.left
		case nil != p.right:
			*removed = true
			return p.right
		default:
			*removed = true
			return nil
		}
	}

	l, r := p.left, p.right
	if 2 == height(r)-height(l) {
		// ties favour the single rotation
		if height(r.right) >= height(r.left) {
			tree.tracef("left rotation node: %v", p.key)
			p = leftRotation(p)
		} else {
			tree.tracef("right-left rotation node: %v", p.key)
			p = rlRotation(p)
		}
	} else if 2 == height(l)-height(r) {
		if height(l.left) >= height(l.right) {
			tree.tracef("right rotation node: %v", p.key)
			p = rightRotation(p)
		} else {
			tree.tracef("left-right rotation node: %v", p.key)
			p = lrRotation(p)
		}
	}

	p.updateHeight()
	return p
}
