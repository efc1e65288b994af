// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package queue - a basic FIFO used for level-order traversal
//
// items are never released until the queue itself is dropped, head
// and tail simply index into the backing slice
package queue

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Queue - type to hold the queued items
type Queue[T any] struct {
	data []T
	head int
	tail int
}

// New - create an initially empty queue
func New[T any]() *Queue[T] {
	return &Queue[T]{
		data: nil,
		head: 0,
		tail: 0,
	}
}

// IsEmpty - true if no items are waiting
func (q *Queue[T]) IsEmpty() bool {
	return q.head == q.tail
}

// Push - append an item at the tail
func (q *Queue[T]) Push(item T) {
	q.data = append(q.data, item)
	q.tail += 1
}

// Pop - remove the item at the head
func (q *Queue[T]) Pop() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, fault.ErrQueueEmpty
	}
	item := q.data[q.head]
	q.head += 1
	return item, nil
}

// Count - number of items waiting
func (q *Queue[T]) Count() int {
	return q.tail - q.head
}
