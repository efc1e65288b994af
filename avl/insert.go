// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a key to the tree, a key equal to an existing one is
// added again to its right
func (tree *Tree[K]) Insert(key K) {
	tree.debugf("insert: %v", key)
	tree.root = tree.insert(key, tree.root)
	tree.count += 1
}

// internal routine for insert, returns the possibly new sub-tree root
func (tree *Tree[K]) insert(key K, p *Node[K]) *Node[K] {
	if nil == p {
		return newNode(key)
	}

	if key < p.key {
		p.left = tree.insert(key, p.left)
		if 2 == height(p.left)-height(p.right) {
			if key < p.left.key {
				tree.tracef("right rotation node: %v", p.key)
				p = rightRotation(p)
			} else {
				tree.tracef("left-right rotation node: %v", p.key)
				p = lrRotation(p)
			}
		}
	} else {
		p.right = tree.insert(key, p.right)
		if 2 == height(p.right)-height(p.left) {
			if key < p.right.key {
				tree.tracef("right-left rotation node: %v", p.key)
				p = rlRotation(p)
			} else {
				tree.tracef("left rotation node: %v", p.key)
				p = leftRotation(p)
			}
		}
	}

	p.updateHeight()
	return p
}
