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
package registry

import (
	"testing"

	"github.com/nmsafiri/RESOLVE/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGraph(t *testing.T) *types.Graph {
	g := types.NewGraph()
	_, err := g.Declare("Z")
	require.NoError(t, err)
	_, err = g.Declare("N", "Z")
	require.NoError(t, err)
	//
	return g
}

func lookup(g *types.Graph, name string) types.Type {
	t, _ := g.Lookup(name)
	return t
}

func Test_Registry_01(t *testing.T) {
	r := NewRegistry(newGraph(t))
	//
	assert.Equal(t, uint(0), r.GetIndexForSymbol("="))
	assert.Equal(t, uint(1), r.GetIndexForSymbol("true"))
	assert.Equal(t, uint(2), r.GetIndexForSymbol("false"))
	assert.Equal(t, uint(3), r.GetIndexForSymbol("not"))
	assert.Equal(t, uint(4), r.Len())
	assert.True(t, r.IsCommutative("="))
	assert.True(t, r.IsCommutative("+"))
	assert.False(t, r.IsCommutative("-"))
	assert.True(t, r.IsCommutativeIndex(0))
	assert.Equal(t, []string{"not"}, r.GetFunctionNames())
}

func Test_Registry_02(t *testing.T) {
	g := newGraph(t)
	r := NewRegistry(g)
	// Idempotent
	a := r.AddSymbol("a", lookup(g, "Z"), SingularVariable)
	assert.Equal(t, a, r.AddSymbol("a", lookup(g, "N"), Literal))
	assert.Equal(t, "Z", r.GetTypeByIndex(a).String())
	u, _ := r.GetUsage("a")
	assert.Equal(t, SingularVariable, u)
	// Control characters are stripped
	assert.Equal(t, a, r.AddSymbol("a\n", lookup(g, "Z"), SingularVariable))
	//
	assert.Panics(t, func() { r.AddSymbol("", lookup(g, "Z"), Literal) })
	assert.Panics(t, func() { r.AddSymbol("b", nil, Literal) })
	assert.Panics(t, func() { r.GetIndexForSymbol("b") })
	assert.Panics(t, func() { r.GetSymbolForIndex(100) })
	assert.Equal(t, "", r.GetRootSymbolForSymbol("b"))
}

func Test_Registry_03(t *testing.T) {
	g := newGraph(t)
	r := NewRegistry(g)
	a := r.AddSymbol("a", lookup(g, "Z"), Created)
	b := r.AddSymbol("b", lookup(g, "Z"), Literal)
	//
	r.Substitute(a, b)
	//
	u, _ := r.GetUsage("a")
	assert.Equal(t, Literal, u)
	assert.Equal(t, a, r.GetIndexForSymbol("b"))
	assert.Equal(t, "a", r.GetRootSymbolForSymbol("b"))
	assert.Equal(t, []string{"b"}, r.GetChildren("a"))
}

func Test_Registry_04(t *testing.T) {
	g := newGraph(t)
	r := NewRegistry(g)
	x := r.AddSymbol("x", lookup(g, "Z"), ForAll)
	n := r.AddSymbol("n", lookup(g, "N"), SingularVariable)
	y := r.AddSymbol("y", lookup(g, "Z"), SingularVariable)
	m := r.AddSymbol("m", lookup(g, "N"), SingularVariable)
	// ForAll types are never narrowed
	r.Substitute(x, n)
	assert.Equal(t, "Z", r.GetTypeByIndex(x).String())
	// Other types are
	r.Substitute(y, m)
	assert.Equal(t, "N", r.GetTypeByIndex(y).String())
	//
	assert.Equal(t, []string{"x"}, r.GetForAlls())
}

func Test_Registry_05(t *testing.T) {
	g := newGraph(t)
	r := NewRegistry(g)
	created := r.AddSymbol("c", lookup(g, "Z"), Created)
	variable := r.AddSymbol("v", lookup(g, "Z"), SingularVariable)
	//
	r.Substitute(variable, created)
	u, _ := r.GetUsage("v")
	assert.Equal(t, Created, u)
}

func Test_Registry_06(t *testing.T) {
	g := newGraph(t)
	r := NewRegistry(g)
	//
	var indices []uint
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		indices = append(indices, r.AddSymbol(name, lookup(g, "Z"), SingularVariable))
	}
	// Build a chain f -> e -> d -> c -> b -> a
	for i := len(indices) - 1; i > 0; i-- {
		r.Substitute(indices[i-1], indices[i])
	}
	//
	for _, i := range indices {
		root := r.Find(i)
		assert.Equal(t, indices[0], root)
		assert.Equal(t, root, r.Find(root))
	}
	// Everything points directly at the root
	for _, i := range indices {
		assert.Equal(t, indices[0], r.parents[i])
	}
	//
	assert.Equal(t, []string{"b", "c", "d", "e", "f"}, r.GetChildren("a"))
}

func Test_Registry_07(t *testing.T) {
	g := newGraph(t)
	r := NewRegistry(g)
	r.AddSymbol("a", lookup(g, "Z"), SingularVariable)
	r.AddSymbol("b", lookup(g, "N"), SingularVariable)
	r.AddSymbol("c", g.Entity(), SingularVariable)
	//
	assert.Equal(t, []string{"a", "b"}, r.GetSetMatchingType(lookup(g, "Z")))
	assert.Equal(t, []string{"b"}, r.GetSetMatchingType(lookup(g, "N")))
	assert.Contains(t, r.GetSetMatchingType(g.Entity()), "c")
	assert.Contains(t, r.GetSetMatchingType(g.Entity()), "=")
	//
	r.Substitute(r.GetIndexForSymbol("a"), r.GetIndexForSymbol("b"))
	assert.Equal(t, []string{"a"}, r.GetParentsByType(lookup(g, "Z")))
	// Subtype cache
	assert.True(t, r.IsSubtype(lookup(g, "N"), lookup(g, "Z")))
	assert.True(t, r.subtypes["N,Z"])
	assert.False(t, r.IsSubtype(lookup(g, "Z"), lookup(g, "N")))
}

func Test_Registry_08(t *testing.T) {
	g := newGraph(t)
	r := NewRegistry(g)
	//
	c := r.MakeSymbol(lookup(g, "Z"), false)
	v := r.MakeSymbol(lookup(g, "Z"), true)
	//
	assert.Equal(t, "¢c000", r.GetSymbolForIndex(c))
	assert.Equal(t, "¢v001", r.GetSymbolForIndex(v))
	u, _ := r.GetUsage("¢v001")
	assert.Equal(t, Created, u)
	// Part types and lambdas
	r.AddSymbol("s.field", lookup(g, "Z"), SingularVariable)
	r.AddSymbol("lambda0", lookup(g, "Z"), SingularVariable)
	assert.True(t, r.IsPartType("s.field"))
	assert.True(t, r.IsLambdaName("lambda0"))
	r.Substitute(c, r.GetIndexForSymbol("s.field"))
	assert.True(t, r.IsPartType("¢c000"))
}
