// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// Node - a node in the tree
type Node[K constraints.Ordered] struct {
	left   *Node[K] // left sub-tree, all keys < key
	right  *Node[K] // right sub-tree, all keys >= key
	key    K        // key part for ordering
	height int      // longest path to a leaf, a single node is 1
}

// allocate a new leaf
func newNode[K constraints.Ordered](key K) *Node[K] {
	return &Node[K]{
		left:   nil,
		right:  nil,
		key:    key,
		height: 1,
	}
}

// height of a possibly empty sub-tree
func height[K constraints.Ordered](p *Node[K]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute the cached height from both children
func (p *Node[K]) updateHeight() {
	l, r := height(p.left), height(p.right)
	if l > r {
		p.height = l + 1
	} else {
		p.height = r + 1
	}
}

// Key - read the key from a node
func (p *Node[K]) Key() K {
	return p.key
}

// Left - the left child or nil
func (p *Node[K]) Left() *Node[K] {
	return p.left
}

// Right - the right child or nil
func (p *Node[K]) Right() *Node[K] {
	return p.right
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node[K]) Height() int {
	return height(p)
}
