// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package queue

// Queue represents a reusable FIFO queue which is implemented using an array.
// Items are pushed onto the back and popped from the front.  Popped items are
// reclaimed lazily, once they make up the majority of the backing array.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns a queue initialised with zero or more items, such that the
// first item given is at the front.
func NewQueue[T any](items ...T) *Queue[T] {
	var q = &Queue[T]{}
	//
	q.PushAll(items)
	//
	return q
}

// IsEmpty checks whether or not there are still items in the queue
func (p *Queue[T]) IsEmpty() bool {
	return p.Len() == 0
}

// Len returns the number of items in the queue.
func (p *Queue[T]) Len() uint {
	return uint(len(p.items) - p.head)
}

// Last returns the item at the back of the queue (i.e. the one most recently
// pushed).
func (p *Queue[T]) Last() T {
	if p.IsEmpty() {
		panic("cannot peek into empty queue")
	}
	//
	return p.items[len(p.items)-1]
}

// Push a new item onto the back of the queue
func (p *Queue[T]) Push(item T) {
	p.items = append(p.items, item)
}

// PushAll pushes zero or more items onto the back of the queue, in order.
func (p *Queue[T]) PushAll(items []T) {
	p.items = append(p.items, items...)
}

// Pop the first item off the front of the queue
func (p *Queue[T]) Pop() T {
	var empty T
	//
	if p.IsEmpty() {
		panic("cannot pop from empty queue")
	}
	// Get first item
	item := p.items[p.head]
	// Release reference
	p.items[p.head] = empty
	p.head++
	// Compact when mostly dead
	if p.head >= 32 && p.head*2 >= len(p.items) {
		n := copy(p.items, p.items[p.head:])
		p.items = p.items[:n]
		p.head = 0
	}
	// Done
	return item
}

// PopAll removes every item from the queue, returning them in order.
func (p *Queue[T]) PopAll() []T {
	var items = p.Items()
	//
	p.items = nil
	p.head = 0
	//
	return items
}

// Items returns a copy of the items currently held in the queue, with the
// front item first.
func (p *Queue[T]) Items() []T {
	var items = make([]T, p.Len())
	//
	copy(items, p.items[p.head:])
	//
	return items
}
