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

type unitIterator[T any] struct {
	item T
	done bool
}

// NewUnitIterator construct an iterator over exactly one item.
func NewUnitIterator[T any](item T) Iterator[T] {
	return &unitIterator[T]{item, false}
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *unitIterator[T]) HasNext() bool {
	return !p.done
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *unitIterator[T]) Next() T {
	if p.done {
		exhausted()
	}
	//
	p.done = true
	//
	return p.item
}

// Append another iterator onto the end of this iterator.
//
//nolint:revive
func (p *unitIterator[T]) Append(iter Iterator[T]) Iterator[T] {
	return NewAppendIterator[T](p, iter)
}

// Collect allocates a new array containing all remaining items.
//
//nolint:revive
func (p *unitIterator[T]) Collect() []T {
	return Collect[T](p)
}

// NewEmptyIterator constructs an iterator which has nothing to visit.
func NewEmptyIterator[T any]() Iterator[T] {
	return NewArrayIterator[T](nil)
}
