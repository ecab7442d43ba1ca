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
package iter

// filterIterator looks ahead (at most) one item, which it holds in next until
// it is requested.
type filterIterator[T any] struct {
	iter      Iterator[T]
	predicate Predicate[T]
	next      T
	ready     bool
}

// NewFilterIterator constructs an iterator over those items of another which
// satisfy a given predicate.
func NewFilterIterator[T any](iter Iterator[T], predicate Predicate[T]) Iterator[T] {
	return &filterIterator[T]{iter: iter, predicate: predicate}
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *filterIterator[T]) HasNext() bool {
	for !p.ready && p.iter.HasNext() {
		candidate := p.iter.Next()
		//
		if p.predicate(candidate) {
			p.next, p.ready = candidate, true
		}
	}
	//
	return p.ready
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *filterIterator[T]) Next() T {
	var empty T
	//
	if !p.HasNext() {
		exhausted()
	}
	//
	next := p.next
	p.next, p.ready = empty, false
	//
	return next
}

// Append another iterator onto the end of this iterator.
//
//nolint:revive
func (p *filterIterator[T]) Append(iter Iterator[T]) Iterator[T] {
	return NewAppendIterator[T](p, iter)
}

// Collect allocates a new array containing all remaining items.
//
//nolint:revive
func (p *filterIterator[T]) Collect() []T {
	return Collect[T](p)
}
