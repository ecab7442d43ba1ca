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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Iter_01(t *testing.T) {
	it := NewArrayIterator([]int{1, 2, 3})
	assert.Equal(t, []int{1, 2, 3}, it.Collect())
	assert.False(t, it.HasNext())
}

func Test_Iter_02(t *testing.T) {
	it := NewArrayIterator([]int{1}).Append(NewEmptyIterator[int]()).Append(NewUnitIterator(2))
	assert.Equal(t, []int{1, 2}, Collect(it))
}

func Test_Iter_03(t *testing.T) {
	evens := NewFilterIterator(NewArrayIterator([]int{1, 2, 3, 4, 5, 6}), func(i int) bool {
		return i%2 == 0
	})
	// HasNext must be idempotent
	assert.True(t, evens.HasNext())
	assert.True(t, evens.HasNext())
	assert.Equal(t, []int{2, 4, 6}, evens.Collect())
}

func Test_Iter_04(t *testing.T) {
	calls := 0
	squares := NewProjectIterator(NewArrayIterator([]int{1, 2, 3}), func(i int) int {
		calls++
		return i * i
	})
	// Projection is lazy
	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, squares.Next())
	assert.Equal(t, 1, calls)
	assert.Equal(t, []int{4, 9}, squares.Collect())
}

func Test_Iter_05(t *testing.T) {
	nested := NewArrayIterator([][]int{{}, {1, 2}, {}, {3}, {}})
	flat := NewFlattenIterator(nested, func(items []int) Iterator[int] {
		return NewArrayIterator(items)
	})
	assert.Equal(t, []int{1, 2, 3}, flat.Collect())
}

func Test_Iter_06(t *testing.T) {
	it := NewUnitIterator("x")
	it.Next()
	assert.Panics(t, func() { it.Next() })
	assert.Panics(t, func() { NewEmptyIterator[int]().Next() })
}

func Test_Iter_07(t *testing.T) {
	it := NewArrayIterator([]int{5, 7, 9})
	item, ok := Find(it, func(i int) bool { return i > 6 })
	assert.True(t, ok)
	assert.Equal(t, 7, item)
	assert.Equal(t, uint(1), Count(it))
}
