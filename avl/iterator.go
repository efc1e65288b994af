// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree[K]) First() *Node[K] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[K]) first() *Node[K] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree[K]) Last() *Node[K] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[K]) last() *Node[K] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Walk - visit the keys in order until fn returns false
//
// there are no parent pointers so the path back up is kept on an
// explicit stack, bounded by the tree height
func (tree *Tree[K]) Walk(fn func(key K) bool) {
	stack := make([]*Node[K], 0, tree.Height())
	p := tree.root
	for nil != p || 0 != len(stack) {
		for nil != p {
			stack = append(stack, p)
			p = p.left
		}
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(p.key) {
			return
		}
		p = p.right
	}
}

// Keys - all keys in order, duplicates included
func (tree *Tree[K]) Keys() []K {
	keys := make([]K, 0, tree.count)
	tree.Walk(func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
