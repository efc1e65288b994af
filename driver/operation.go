// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package driver

import (
	"golang.org/x/exp/rand"

	"github.com/bitmark-inc/avltree/fault"
)

// Kind - what an operation does to the tree
type Kind int

// the operations
const (
	Insert Kind = iota
	Delete Kind = iota
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// Operation - a single step
type Operation struct {
	Kind Kind
	Key  int
}

// Shuffle - insert a random permutation of 0…n-1 then delete all of
// them in a different random order
func Shuffle(n int, seed uint64) ([]Operation, error) {
	if n <= 0 {
		return nil, fault.ErrInvalidCount
	}

	r := rand.New(rand.NewSource(seed))
	keys := r.Perm(n)

	operations := make([]Operation, 0, 2*n)
	for _, key := range keys {
		operations = append(operations, Operation{Kind: Insert, Key: key})
	}
	r.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	for _, key := range keys {
		operations = append(operations, Operation{Kind: Delete, Key: key})
	}
	return operations, nil
}

// Script - all inserts followed by all deletes
func Script(inserts []int, deletes []int) []Operation {
	operations := make([]Operation, 0, len(inserts)+len(deletes))
	for _, key := range inserts {
		operations = append(operations, Operation{Kind: Insert, Key: key})
	}
	for _, key := range deletes {
		operations = append(operations, Operation{Kind: Delete, Key: key})
	}
	return operations
}
