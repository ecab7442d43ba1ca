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
package pseq

import (
	"fmt"

	"github.com/nmsafiri/RESOLVE/pkg/util/collection/iter"
)

// Sequence is an immmutable, structurally shared sequence of items.  No
// operation modifies a sequence in place: operations which "change" it return
// a new sequence which reuses as much of the original as possible.  Sequences
// are built from array-backed leaves joined by concatenation nodes, such that
// concatenation is O(1) and indexed access is O(depth).
type Sequence[T any] interface {
	// Len returns the number of items in this sequence.
	Len() uint
	// Get returns the item at the given index, or panics if out of bounds.
	Get(index uint) T
	// Head returns the first n items of this sequence.
	Head(n uint) Sequence[T]
	// Tail returns the items of this sequence from the given start index.
	Tail(start uint) Sequence[T]
	// SubList returns n items beginning at the given start index.
	SubList(start uint, n uint) Sequence[T]
	// Set returns a sequence identical to this one, except that the item at
	// the given index is replaced.
	Set(index uint, item T) Sequence[T]
	// Append returns the concatenation of this sequence and another.
	Append(other Sequence[T]) Sequence[T]
	// Iterator returns a fresh iterator over the items of this sequence.
	Iterator() iter.Iterator[T]
}

// Empty returns a sequence with no items.
func Empty[T any]() Sequence[T] {
	return &leaf[T]{nil}
}

// Singleton returns a sequence of exactly one item.
func Singleton[T any](item T) Sequence[T] {
	return &leaf[T]{[]T{item}}
}

// FromSlice constructs a sequence from the given items.  The items are copied,
// hence the slice can be safely modified afterwards.
func FromSlice[T any](items []T) Sequence[T] {
	contents := make([]T, len(items))
	copy(contents, items)
	//
	return &leaf[T]{contents}
}

// Of constructs a sequence from zero or more items.
func Of[T any](items ...T) Sequence[T] {
	return FromSlice(items)
}

// Concat returns the concatenation of two sequences.  When either side is
// empty the other is returned as is.
func Concat[T any](first Sequence[T], second Sequence[T]) Sequence[T] {
	switch {
	case first.Len() == 0:
		return second
	case second.Len() == 0:
		return first
	}
	//
	return &concat[T]{first, second, first.Len() + second.Len()}
}

// ToSlice copies the contents of a sequence into a freshly allocated array.
func ToSlice[T any](seq Sequence[T]) []T {
	items := make([]T, 0, seq.Len())
	//
	for it := seq.Iterator(); it.HasNext(); {
		items = append(items, it.Next())
	}
	//
	return items
}

func checkIndex(index uint, n uint) {
	if index >= n {
		panic(fmt.Sprintf("sequence index %d out-of-bounds (length %d)", index, n))
	}
}

func checkLength(start uint, n uint, length uint) {
	if start > length || n > length-start {
		panic(fmt.Sprintf("sequence range [%d+%d] out-of-bounds (length %d)", start, n, length))
	}
}

// ============================================================================
// Leaf
// ============================================================================

// leaf is an array-backed sequence.  The underlying array is never modified
// once the leaf is constructed, and may be shared between leaves.
type leaf[T any] struct {
	items []T
}

func (p *leaf[T]) Len() uint {
	return uint(len(p.items))
}

func (p *leaf[T]) Get(index uint) T {
	checkIndex(index, p.Len())
	return p.items[index]
}

func (p *leaf[T]) Head(n uint) Sequence[T] {
	checkLength(0, n, p.Len())
	// Capacity limit prevents any later append writing into shared storage
	return &leaf[T]{p.items[:n:n]}
}

func (p *leaf[T]) Tail(start uint) Sequence[T] {
	checkLength(start, 0, p.Len())
	return &leaf[T]{p.items[start:]}
}

func (p *leaf[T]) SubList(start uint, n uint) Sequence[T] {
	return p.Tail(start).Head(n)
}

func (p *leaf[T]) Set(index uint, item T) Sequence[T] {
	checkIndex(index, p.Len())
	//
	items := make([]T, len(p.items))
	copy(items, p.items)
	items[index] = item
	//
	return &leaf[T]{items}
}

func (p *leaf[T]) Append(other Sequence[T]) Sequence[T] {
	return Concat[T](p, other)
}

func (p *leaf[T]) Iterator() iter.Iterator[T] {
	return iter.NewArrayIterator(p.items)
}

// ============================================================================
// Concatenation
// ============================================================================

// concat joins two non-empty sequences.
type concat[T any] struct {
	first  Sequence[T]
	second Sequence[T]
	length uint
}

func (p *concat[T]) Len() uint {
	return p.length
}

func (p *concat[T]) Get(index uint) T {
	checkIndex(index, p.length)
	//
	if n := p.first.Len(); index >= n {
		return p.second.Get(index - n)
	}
	//
	return p.first.Get(index)
}

func (p *concat[T]) Head(length uint) Sequence[T] {
	checkLength(0, length, p.length)
	//
	if n := p.first.Len(); length > n {
		return Concat(p.first, p.second.Head(length-n))
	}
	//
	return p.first.Head(length)
}

func (p *concat[T]) Tail(start uint) Sequence[T] {
	checkLength(start, 0, p.length)
	//
	if n := p.first.Len(); start < n {
		return Concat(p.first.Tail(start), p.second)
	}
	//
	return p.second.Tail(start - p.first.Len())
}

func (p *concat[T]) SubList(start uint, n uint) Sequence[T] {
	return p.Tail(start).Head(n)
}

func (p *concat[T]) Set(index uint, item T) Sequence[T] {
	checkIndex(index, p.length)
	// Only the side containing the index is rebuilt
	if n := p.first.Len(); index >= n {
		return &concat[T]{p.first, p.second.Set(index-n, item), p.length}
	}
	//
	return &concat[T]{p.first.Set(index, item), p.second, p.length}
}

func (p *concat[T]) Append(other Sequence[T]) Sequence[T] {
	return Concat[T](p, other)
}

func (p *concat[T]) Iterator() iter.Iterator[T] {
	return iter.NewAppendIterator(p.first.Iterator(), p.second.Iterator())
}
