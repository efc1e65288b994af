// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
	"golang.org/x/exp/constraints"
)

// rightRotation - promote the left child of p
//
//	      p               l
//	     / \             / \
//	    l   C    →      A   p
//	   / \                 / \
//	  A   B               B   C
//
// returns the new sub-tree root, which the caller must store
func rightRotation[K constraints.Ordered](p *Node[K]) *Node[K] {
	l := p.left
	if nil == l {
		fault.Panicf("right rotation: node %v has no left child", p.key)
	}
	p.left = l.right
	l.right = p
	p.updateHeight() // p is now below l
	l.updateHeight()
	return l
}

// leftRotation - mirror of rightRotation, promote the right child of p
func leftRotation[K constraints.Ordered](p *Node[K]) *Node[K] {
	r := p.right
	if nil == r {
		fault.Panicf("left rotation: node %v has no right child", p.key)
	}
	p.right = r.left
	r.left = p
	p.updateHeight()
	r.updateHeight()
	return r
}

// lrRotation - double rotation for a left sub-tree that is right heavy
//
//	      p              p              lr
//	     / \            / \            /  \
//	    l   C    →     lr  C    →     l    p
//	   / \            /  \           / \  / \
//	  A   lr         l    Y         A  X Y   C
//	     /  \       / \
//	    X    Y     A   X
func lrRotation[K constraints.Ordered](p *Node[K]) *Node[K] {
	if nil == p.left || nil == p.left.right {
		fault.Panicf("left-right rotation: node %v has no left-right grandchild", p.key)
	}
	p.left = leftRotation(p.left)
	return rightRotation(p)
}

// rlRotation - mirror of lrRotation
func rlRotation[K constraints.Ordered](p *Node[K]) *Node[K] {
	if nil == p.right || nil == p.right.left {
		fault.Panicf("right-left rotation: node %v has no right-left grandchild", p.key)
	}
	p.right = rightRotation(p.right)
	return leftRotation(p)
}
