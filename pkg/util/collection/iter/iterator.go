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

// Predicate abstracts the notion of a function which identifies something.
type Predicate[T any] func(T) bool

// Iterator provides a lazy, forward-only view over a sequence of items.  An
// iterator is consumed by visiting it and cannot be restarted; to visit the
// underlying sequence again a fresh iterator must be requested from whatever
// produced it.
type Iterator[T any] interface {
	// HasNext checks whether or not there are any items remaining to visit.
	HasNext() bool

	// Next returns the next item, and advances the iterator.  Calling Next on
	// an exhausted iterator panics.
	Next() T

	// Append another iterator onto the end of this iterator.  Thus, when all
	// items are visited in this iterator, iteration continues into the other.
	Append(Iterator[T]) Iterator[T]

	// Collect allocates a new array containing all remaining items of this
	// iterator.  This drains the iterator.
	Collect() []T
}

// Collect provides a default implementation of Iterator.Collect which can be
// used by other iterator implementations.
//
//nolint:revive
func Collect[T any](iter Iterator[T]) []T {
	var items []T = make([]T, 0)
	//
	for iter.HasNext() {
		items = append(items, iter.Next())
	}
	//
	return items
}

// Find returns the first remaining item matching a given predicate, or false
// if no match is found.  This consumes the iterator up to (and including) the
// match.
func Find[T any](iter Iterator[T], predicate Predicate[T]) (T, bool) {
	var empty T
	//
	for iter.HasNext() {
		if ith := iter.Next(); predicate(ith) {
			return ith, true
		}
	}
	// Failed to find it
	return empty, false
}

// Count drains an iterator, returning the number of items which were left.
func Count[T any](iter Iterator[T]) uint {
	count := uint(0)
	//
	for iter.HasNext() {
		iter.Next()
		//
		count++
	}
	//
	return count
}

// exhausted is raised by iterators when Next is called without any items
// remaining.
func exhausted() {
	panic("iterator exhausted")
}
