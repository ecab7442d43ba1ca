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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Sequence_01(t *testing.T) {
	seq := Concat(Of(1, 2), Of(3, 4, 5))
	//
	require.Equal(t, uint(5), seq.Len())
	//
	for i := range uint(5) {
		assert.Equal(t, int(i)+1, seq.Get(i))
	}
	//
	assert.Panics(t, func() { seq.Get(5) })
}

func Test_Sequence_02(t *testing.T) {
	seq := Of(1, 2).Append(Of(3)).Append(Of(4, 5, 6))
	//
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ToSlice(seq))
	assert.Equal(t, []int{1, 2, 3, 4}, ToSlice(seq.Head(4)))
	assert.Equal(t, []int{3, 4, 5, 6}, ToSlice(seq.Tail(2)))
	assert.Equal(t, []int{2, 3, 4}, ToSlice(seq.SubList(1, 3)))
	assert.Equal(t, []int{}, ToSlice(seq.SubList(6, 0)))
}

func Test_Sequence_03(t *testing.T) {
	left := Of("a", "b")
	right := Of("c", "d")
	seq := Concat(left, right)
	updated := seq.Set(2, "x")
	// Original untouched
	assert.Equal(t, []string{"a", "b", "c", "d"}, ToSlice(seq))
	assert.Equal(t, []string{"a", "b", "x", "d"}, ToSlice(updated))
	// Unmodified half is shared
	assert.Same(t, left, updated.(*concat[string]).first)
}

func Test_Sequence_04(t *testing.T) {
	empty := Empty[int]()
	one := Singleton(7)
	// Empty sides are elided
	assert.Same(t, one, Concat(empty, one))
	assert.Same(t, one, Concat(one, empty))
	assert.Equal(t, uint(0), empty.Len())
	assert.False(t, empty.Iterator().HasNext())
}

func Test_Sequence_05(t *testing.T) {
	items := []int{1, 2, 3}
	seq := FromSlice(items)
	items[0] = 99
	// Copied on construction
	assert.Equal(t, 1, seq.Get(0))
	// Head cannot be appended into shared storage
	head := seq.Head(1)
	assert.Equal(t, []int{1}, ToSlice(head))
	assert.Equal(t, []int{1, 2, 3}, ToSlice(seq))
}

func Test_Sequence_06(t *testing.T) {
	var seq = Empty[int]()
	// Deep left-leaning chain
	for i := range 100 {
		seq = seq.Append(Singleton(i))
	}
	//
	require.Equal(t, uint(100), seq.Len())
	assert.Equal(t, 42, seq.Get(42))
	assert.Equal(t, -1, seq.Set(42, -1).Get(42))
	assert.Equal(t, 42, seq.Get(42))
	assert.Panics(t, func() { seq.Head(101) })
}
