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
	"hash/fnv"
)

// A reasonably simple hashmap implementation which permits collisions.  The
// hash function is not assumed to uniquely identify the data in question, so
// equality is always consulted within a bucket.

// Hasher provides a generic definition of a hashing function suitable for use
// within the hash map and set.  It additionally includes equality.
type Hasher[T any] interface {
	// Check whether two items are equal (or not).
	Equals(T) bool
	// Return a suitable hashcode.
	Hash() uint64
}

const (
	// Offset64 is the FNV1a offset basis, and should be used as the initial
	// value when combining hashes with Mix.
	Offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// Mix folds a value into a running FNV1a-style hash.
func Mix(hash uint64, value uint64) uint64 {
	hash ^= value
	hash *= prime64
	//
	return hash
}

// String generates a 64-bit hashcode for a given string.
func String(s string) uint64 {
	hash := fnv.New64a()
	hash.Write([]byte(s))
	// Done
	return hash.Sum64()
}

// ============================================================================
// StringKey Implementation
// ============================================================================

var _ Hasher[StringKey] = StringKey("")

// StringKey wraps a string as something which can be placed into a hash map.
type StringKey string

// Equals compares two keys.
func (p StringKey) Equals(other StringKey) bool {
	return p == other
}

// Hash generates a 64-bit hashcode from the underlying string.
func (p StringKey) Hash() uint64 {
	return String(string(p))
}
