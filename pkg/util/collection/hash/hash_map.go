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
package hash

import (
	"fmt"
	"strings"
)

// Map defines a generic map implementation keyed on items providing their own
// notion of equality and hashing.  This is a true hashtable in that collisions
// are handled gracefully using buckets, rather than simply discarding them.
type Map[K Hasher[K], V any] struct {
	// buckets maps hashcodes to *buckets* of items.
	buckets map[uint64]hashMapBucket[K, V]
	// size is the number of keys stored across all buckets.
	size uint
}

// NewMap creates a new HashMap with a given underlying capacity.
func NewMap[K Hasher[K], V any](size uint) *Map[K, V] {
	items := make(map[uint64]hashMapBucket[K, V], size)
	return &Map[K, V]{items, 0}
}

// Size returns the number of unique keys stored in this HashMap.
//
//nolint:revive
func (p *Map[K, V]) Size() uint {
	return p.size
}

// Insert a new item into this map, returning true if it was already contained
// (in which case its value is replaced) and false otherwise.
//
//nolint:revive
func (p *Map[K, V]) Insert(key K, value V) bool {
	hash := key.Hash()
	bucket := p.buckets[hash]
	r := bucket.insert(key, value)
	p.buckets[hash] = bucket
	//
	if !r {
		p.size++
	}
	//
	return r
}

// Remove a key from this map, returning true if it was contained and false
// otherwise.
//
//nolint:revive
func (p *Map[K, V]) Remove(key K) bool {
	hash := key.Hash()
	//
	if bucket, ok := p.buckets[hash]; ok && bucket.remove(key) {
		if bucket.size() == 0 {
			delete(p.buckets, hash)
		} else {
			p.buckets[hash] = bucket
		}
		//
		p.size--
		//
		return true
	}
	//
	return false
}

// ContainsKey checks whether the given key is contained within this map, or not.
//
//nolint:revive
func (p *Map[K, V]) ContainsKey(key K) bool {
	_, ok := p.Get(key)
	return ok
}

// Get item from bucket, or return false otherwise.
//
//nolint:revive
func (p *Map[K, V]) Get(key K) (V, bool) {
	var empty V
	// Look for bucket
	if bucket, ok := p.buckets[key.Hash()]; ok {
		return bucket.get(key)
	}

	return empty, false
}

// Keys returns the set of all keys stored in this map.  Observe that the order
// in which keys are returned is unspecified.
func (p *Map[K, V]) Keys() []K {
	keys := make([]K, 0, p.size)
	//
	for _, b := range p.buckets {
		keys = append(keys, b.keys...)
	}
	//
	return keys
}

//nolint:revive
func (p *Map[K, V]) String() string {
	var r strings.Builder
	//
	first := true
	// Write opening brace
	r.WriteString("{")
	// Iterate all buckets
	for _, b := range p.buckets {
		// Iterate all items in bucket
		for i, k := range b.keys {
			if !first {
				r.WriteString(",")
			}

			first = false

			r.WriteString(fmt.Sprintf("%v:=%v", any(k), any(b.values[i])))
		}
	}
	// Write closing brace
	r.WriteString("}")
	// Done
	return r.String()
}

// ============================================================================
// Bucket
// ============================================================================

type hashMapBucket[K Hasher[K], V any] struct {
	keys   []K
	values []V
}

func (b *hashMapBucket[K, V]) size() uint {
	return uint(len(b.keys))
}

func (b *hashMapBucket[K, V]) insert(key K, value V) bool {
	// Determine whether key already present
	for i, k := range b.keys {
		if key.Equals(k) {
			b.values[i] = value
			return true
		}
	}
	// Append item
	b.keys = append(b.keys, key)
	b.values = append(b.values, value)
	// Item not present
	return false
}

func (b *hashMapBucket[K, V]) remove(key K) bool {
	for i, k := range b.keys {
		if key.Equals(k) {
			b.keys = append(b.keys[:i:i], b.keys[i+1:]...)
			b.values = append(b.values[:i:i], b.values[i+1:]...)
			//
			return true
		}
	}
	//
	return false
}

func (b *hashMapBucket[K, V]) get(key K) (V, bool) {
	var empty V
	//
	for i, k := range b.keys {
		if key.Equals(k) {
			return b.values[i], true
		}
	}

	return empty, false
}
