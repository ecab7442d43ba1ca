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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_HashMap_01(t *testing.T) {
	check_HashMap(t, []uint{1, 2, 3, 4, 3, 2, 1})
}

func Test_HashMap_02(t *testing.T) {
	check_HashMap(t, randomUints(100, 32))
}

func Test_HashMap_03(t *testing.T) {
	check_HashMap(t, randomUints(10000, 1024))
}

func Test_HashMap_04(t *testing.T) {
	m := NewMap[collidingKey, string](0)
	// All keys share one bucket
	assert.False(t, m.Insert(collidingKey{1}, "a"))
	assert.False(t, m.Insert(collidingKey{2}, "b"))
	assert.True(t, m.Insert(collidingKey{1}, "c"))
	assert.Equal(t, uint(2), m.Size())
	//
	v, ok := m.Get(collidingKey{1})
	assert.True(t, ok)
	assert.Equal(t, "c", v)
	//
	assert.True(t, m.Remove(collidingKey{1}))
	assert.False(t, m.Remove(collidingKey{1}))
	assert.True(t, m.ContainsKey(collidingKey{2}))
	assert.Equal(t, uint(1), m.Size())
}

func Test_HashSet_01(t *testing.T) {
	s := NewSet[StringKey](0)
	//
	assert.False(t, s.Insert("x"))
	assert.True(t, s.Insert("x"))
	assert.False(t, s.Insert("y"))
	assert.ElementsMatch(t, []StringKey{"x", "y"}, s.Items())
	assert.True(t, s.Remove("x"))
	assert.False(t, s.Contains("x"))
	assert.Equal(t, uint(1), s.Size())
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_HashMap(t *testing.T, items []uint) {
	gmap := make(map[uint]uint)
	hmap := NewMap[testKey, uint](0)
	// Count occurrences
	for _, item := range items {
		gmap[item]++
	}
	// Insert items
	for key, val := range gmap {
		hmap.Insert(testKey{key}, val)
	}
	// Sanity check number of unique items
	assert.Equal(t, uint(len(gmap)), hmap.Size())
	// Sanity check containership
	for key, val := range gmap {
		v, ok := hmap.Get(testKey{key})
		assert.True(t, ok, "missing key %d", key)
		assert.Equal(t, val, v)
	}
	// Remove everything again
	for key := range gmap {
		assert.True(t, hmap.Remove(testKey{key}))
	}
	//
	assert.Equal(t, uint(0), hmap.Size())
	assert.Empty(t, hmap.Keys())
}

func randomUints(n uint, m uint) []uint {
	items := make([]uint, n)
	//
	for i := range items {
		items[i] = uint(rand.Intn(int(m)))
	}
	//
	return items
}

type testKey struct {
	value uint
}

func (p testKey) Equals(other testKey) bool {
	return p.value == other.value
}

func (p testKey) Hash() uint64 {
	return Mix(Offset64, uint64(p.value))
}

type collidingKey struct {
	value uint
}

func (p collidingKey) Equals(other collidingKey) bool {
	return p.value == other.value
}

func (p collidingKey) Hash() uint64 {
	return 0
}
