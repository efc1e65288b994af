// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of ordered keys with a cached
// height in every node
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node exclusively owns its two sub-trees and there are no
// parent pointers, so insert and delete are recursive and every
// rebalancing step returns the new sub-tree root for the caller to
// store.
//
// Keys equal to an existing key are placed in its right sub-tree,
// so the tree behaves as a multiset: Insert never overwrites and
// Delete removes a single occurrence.
package avl
