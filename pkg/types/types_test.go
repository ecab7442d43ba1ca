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
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Types_01(t *testing.T) {
	g := NewGraph()
	z, err := g.Declare("Z")
	require.NoError(t, err)
	n, err := g.Declare("N", "Z")
	require.NoError(t, err)
	//
	assert.True(t, n.IsSubtypeOf(z))
	assert.True(t, n.IsSubtypeOf(n))
	assert.False(t, z.IsSubtypeOf(n))
	assert.True(t, z.IsSubtypeOf(g.Entity()))
	assert.False(t, g.Entity().IsSubtypeOf(z))
}

func Test_Types_02(t *testing.T) {
	g := NewGraph()
	_, err := g.Declare("Z")
	require.NoError(t, err)
	_, err = g.Declare("N", "Z")
	require.NoError(t, err)
	_, err = g.Declare("Z", "N")
	assert.Error(t, err)
	_, err = g.Declare("Q", "R")
	assert.Error(t, err)
}

func Test_Types_03(t *testing.T) {
	g := NewGraph()
	z, _ := g.Declare("Z")
	n, _ := g.Declare("N", "Z")
	// Z -> N <: N -> Z
	f := NewFunction(n, z)
	h := NewFunction(z, n)
	//
	assert.True(t, f.IsSubtypeOf(h))
	assert.False(t, h.IsSubtypeOf(f))
	assert.True(t, f.IsSubtypeOf(g.Entity()))
	assert.False(t, f.IsSubtypeOf(z))
	assert.Equal(t, "(Z -> N)", f.String())
	assert.Equal(t, "(Z * Z -> B)", NewFunction(g.Boolean(), z, z).String())
}

func Test_Types_04(t *testing.T) {
	g1 := NewGraph()
	g2 := NewGraph()
	a, _ := g1.Declare("A")
	b, _ := g2.Declare("A")
	// Types from different graphs are unrelated
	assert.False(t, a.IsSubtypeOf(b))
	assert.True(t, a.IsSubtypeOf(g2.Entity()))
}
