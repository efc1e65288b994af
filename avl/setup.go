// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/exp/constraints"
)

// Tree - type to hold the root node of a tree
type Tree[K constraints.Ordered] struct {
	root  *Node[K]
	count int
	log   *logger.L
}

// New - create an initially empty tree
func New[K constraints.Ordered]() *Tree[K] {
	return &Tree[K]{
		root:  nil,
		count: 0,
		log:   nil,
	}
}

// SetLog - attach a logger channel, nil silences the tree
func (tree *Tree[K]) SetLog(log *logger.L) {
	tree.log = log
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K]) Count() int {
	return tree.count
}

// Height - height of the whole tree, zero when empty
func (tree *Tree[K]) Height() int {
	return height(tree.root)
}

// Root - return the root node of the tree
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

func (tree *Tree[K]) debugf(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Debugf(format, arguments...)
	}
}

func (tree *Tree[K]) tracef(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Tracef(format, arguments...)
	}
}

func (tree *Tree[K]) warn(message string) {
	if nil != tree.log {
		tree.log.Warn(message)
	}
}

func (tree *Tree[K]) errorf(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Errorf(format, arguments...)
	}
}
