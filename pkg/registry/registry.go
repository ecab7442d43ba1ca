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
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/nmsafiri/RESOLVE/pkg/types"
	"github.com/nmsafiri/RESOLVE/pkg/util/collection/stack"
	log "github.com/sirupsen/logrus"
)

// Usage classifies how a symbol is used within the terms of a proof attempt.
// The order matters when two classes are merged: see Substitute.
type Usage uint8

const (
	// Literal symbols denote fixed values (e.g. true, 0).
	Literal Usage = iota
	// ForAll symbols are universally quantified variables.
	ForAll
	// SingularVariable symbols are ordinary (free) variables.
	SingularVariable
	// Created symbols were generated by the registry itself.
	Created
	// HasArgsSingular symbols are ordinary function names.
	HasArgsSingular
	// HasArgsForAll symbols are universally quantified function names.
	HasArgsForAll
)

func (u Usage) String() string {
	switch u {
	case Literal:
		return "literal"
	case ForAll:
		return "forall"
	case SingularVariable:
		return "variable"
	case Created:
		return "created"
	case HasArgsSingular:
		return "function"
	case HasArgsForAll:
		return "forall-function"
	}
	//
	return fmt.Sprintf("usage(%d)", u)
}

const (
	createdConstantFormat = "¢c%03d"
	createdVariableFormat = "¢v%03d"
)

// Registry is a symbol table for congruence closure.  Each symbol is allocated
// a unique index on first use, and indices are organised into equivalence
// classes using union-find.  Every query routes through the canonical
// representative of its class.
type Registry struct {
	graph *types.Graph
	// Maps symbol names to their (original) index
	symbolToIndex map[string]uint
	// Maps indices back to their symbol names
	indexToSymbol []string
	// Type of each index.  Only the entry for a root is meaningful.
	indexToType []types.Type
	// Union-find parent array
	parents []uint
	// Usage of each symbol
	usage map[string]Usage
	// Universally quantified symbols
	foralls map[string]bool
	// Symbols registered against each type, keyed by the type's string form.
	typeToSymbols map[string]map[string]bool
	// Representative type for each key of typeToSymbols.
	typeByKey map[string]types.Type
	lambdas   map[string]bool
	partTypes map[string]bool
	// Operators known to be commutative
	commutative map[string]bool
	// Cache of subtype queries keyed by "a,b"
	subtypes map[string]bool
	counter  uint
}

// NewRegistry constructs a registry over a given type graph, seeded with the
// built-in symbols "=", "true", "false" and "not".
func NewRegistry(graph *types.Graph) *Registry {
	p := &Registry{
		graph:         graph,
		symbolToIndex: make(map[string]uint),
		usage:         make(map[string]Usage),
		foralls:       make(map[string]bool),
		typeToSymbols: make(map[string]map[string]bool),
		typeByKey:     make(map[string]types.Type),
		lambdas:       make(map[string]bool),
		partTypes:     make(map[string]bool),
		commutative:   map[string]bool{"+": true, "=": true, "and": true, "or": true},
		subtypes:      make(map[string]bool),
	}
	//
	p.AddSymbol("=", types.NewFunction(graph.Boolean(), graph.Entity(), graph.Entity()), Literal)
	p.AddSymbol("true", graph.Boolean(), Literal)
	p.AddSymbol("false", graph.Boolean(), Literal)
	p.AddSymbol("not", types.NewFunction(graph.Boolean(), graph.Boolean()), HasArgsSingular)
	//
	if p.GetIndexForSymbol("=") != 0 {
		panic("equality must have index 0")
	}
	//
	return p
}

// Graph returns the type graph underlying this registry.
func (p *Registry) Graph() *types.Graph {
	return p.graph
}

// Len returns the number of symbols ever allocated in this registry.
func (p *Registry) Len() uint {
	return uint(len(p.indexToSymbol))
}

// AddSymbol allocates a new singleton class for a given symbol, returning its
// index.  If the symbol is already known, its canonical index is returned
// instead and nothing changes.
func (p *Registry) AddSymbol(name string, typ types.Type, usage Usage) uint {
	name = stripControl(name)
	//
	if name == "" {
		panic("blank symbol name")
	} else if strings.Contains(name, "lambda") {
		p.lambdas[name] = true
	}
	//
	if index, ok := p.symbolToIndex[name]; ok {
		return p.findAndCompress(index)
	} else if typ == nil {
		panic(fmt.Sprintf("symbol %s has nil type", name))
	}
	//
	if strings.Contains(name, ".") {
		p.partTypes[name] = true
	}
	//
	key := typ.String()
	//
	if _, ok := p.typeToSymbols[key]; !ok {
		p.typeToSymbols[key] = make(map[string]bool)
		p.typeByKey[key] = typ
	}
	//
	p.typeToSymbols[key][name] = true
	p.usage[name] = usage
	//
	if usage == ForAll || usage == HasArgsForAll {
		p.foralls[name] = true
	}
	//
	index := uint(len(p.indexToSymbol))
	p.symbolToIndex[name] = index
	p.indexToSymbol = append(p.indexToSymbol, name)
	p.indexToType = append(p.indexToType, typ)
	p.parents = append(p.parents, index)
	//
	return index
}

// MakeSymbol allocates a fresh symbol of a given type, with usage Created.
// Fresh variables are named "¢vNNN" and fresh constants "¢cNNN".
func (p *Registry) MakeSymbol(typ types.Type, isVariable bool) uint {
	format := createdConstantFormat
	if isVariable {
		format = createdVariableFormat
	}
	//
	name := fmt.Sprintf(format, p.counter)
	p.counter++
	//
	return p.AddSymbol(name, typ, Created)
}

// Substitute merges the class rooted at b into that rooted at a, such that a
// becomes the parent.  The type of a is narrowed to that of b when b's type
// is a subtype, unless a is universally quantified.  The surviving usage is
// the most restrictive: Literal dominates Created which dominates the rest.
// There is no way to undo a substitution.
func (p *Registry) Substitute(a uint, b uint) {
	a, b = p.findAndCompress(a), p.findAndCompress(b)
	//
	if a == b {
		return
	}
	//
	var (
		aSym, bSym   = p.indexToSymbol[a], p.indexToSymbol[b]
		aType, bType = p.indexToType[a], p.indexToType[b]
		aUse, bUse   = p.usage[aSym], p.usage[bSym]
	)
	//
	if aUse != ForAll && p.IsSubtype(bType, aType) {
		p.indexToType[a] = bType
	}
	//
	if aUse == Literal || bUse == Literal {
		p.usage[aSym] = Literal
	} else if aUse == Created || bUse == Created {
		p.usage[aSym] = Created
	}
	//
	if p.partTypes[bSym] {
		p.partTypes[aSym] = true
	}
	//
	p.parents[b] = a
	//
	log.Debugf("merged %s into %s (%s, %s)", bSym, aSym, p.indexToType[a], p.usage[aSym])
}

// findAndCompress returns the canonical representative of a given index,
// updating every index visited along the way to point directly at it.
func (p *Registry) findAndCompress(index uint) uint {
	if index >= uint(len(p.parents)) {
		panic(fmt.Sprintf("invalid symbol index %d", index))
	} else if p.parents[index] == index {
		return index
	}
	//
	visited := stack.NewStack[uint]()
	//
	for parent := p.parents[index]; parent != index; parent = p.parents[index] {
		visited.Push(index)
		index = parent
	}
	//
	for !visited.IsEmpty() {
		p.parents[visited.Pop()] = index
	}
	//
	return index
}

// Find returns the canonical representative for a given index.
func (p *Registry) Find(index uint) uint {
	return p.findAndCompress(index)
}

// IsSymbolInTable determines whether a given symbol has been registered.
func (p *Registry) IsSymbolInTable(name string) bool {
	_, ok := p.symbolToIndex[name]
	return ok
}

// GetIndexForSymbol returns the canonical index for a registered symbol.
func (p *Registry) GetIndexForSymbol(name string) uint {
	index, ok := p.symbolToIndex[name]
	//
	if !ok {
		panic(fmt.Sprintf("unknown symbol %s", name))
	}
	//
	return p.findAndCompress(index)
}

// GetSymbolForIndex returns the name of the canonical representative for a
// given index.
func (p *Registry) GetSymbolForIndex(index uint) string {
	return p.indexToSymbol[p.findAndCompress(index)]
}

// GetTypeByIndex returns the type of the class containing a given index.
func (p *Registry) GetTypeByIndex(index uint) types.Type {
	return p.indexToType[p.findAndCompress(index)]
}

// GetRootSymbolForSymbol returns the name of the canonical representative for
// a given symbol, or "" if the symbol is unknown.
func (p *Registry) GetRootSymbolForSymbol(name string) string {
	if !p.IsSymbolInTable(name) {
		return ""
	}
	//
	return p.GetSymbolForIndex(p.GetIndexForSymbol(name))
}

// GetUsage returns the recorded usage of a given symbol.
func (p *Registry) GetUsage(name string) (Usage, bool) {
	u, ok := p.usage[name]
	return u, ok
}

// GetForAlls returns the (sorted) universally quantified symbols.
func (p *Registry) GetForAlls() []string {
	return sortedKeys(p.foralls)
}

// IsPartType determines whether a symbol (or one merged into it) names a
// record field.
func (p *Registry) IsPartType(name string) bool {
	return p.partTypes[name]
}

// IsLambdaName determines whether a symbol looks like a lambda.
func (p *Registry) IsLambdaName(name string) bool {
	return p.lambdas[name]
}

// IsSubtype determines whether a is a subtype of b.  Results are cached.
func (p *Registry) IsSubtype(a types.Type, b types.Type) bool {
	key := a.String() + "," + b.String()
	//
	if is, ok := p.subtypes[key]; ok {
		return is
	}
	//
	is := a.IsSubtypeOf(b)
	p.subtypes[key] = is
	//
	return is
}

// GetSetMatchingType returns the (sorted) names of every symbol registered
// with a given type or one of its subtypes.
func (p *Registry) GetSetMatchingType(t types.Type) []string {
	if t == nil {
		panic("request for nil type")
	}
	//
	matches := make(map[string]bool)
	//
	for key, typ := range p.typeByKey {
		if key == t.String() || p.IsSubtype(typ, t) {
			for name := range p.typeToSymbols[key] {
				matches[name] = true
			}
		}
	}
	//
	return sortedKeys(matches)
}

// GetParentsByType returns those symbols matching a given type which are
// currently canonical representatives.
func (p *Registry) GetParentsByType(t types.Type) []string {
	var parents []string
	//
	for _, name := range p.GetSetMatchingType(t) {
		index := p.symbolToIndex[name]
		if p.parents[index] == index {
			parents = append(parents, name)
		}
	}
	//
	return parents
}

// GetFunctionNames returns the (sorted) ordinary function symbols.
func (p *Registry) GetFunctionNames() []string {
	names := make(map[string]bool)
	//
	for name, u := range p.usage {
		if u == HasArgsSingular {
			names[name] = true
		}
	}
	//
	return sortedKeys(names)
}

// GetChildren returns the (sorted) symbols, other than the parent itself,
// whose canonical representative is a given symbol.
func (p *Registry) GetChildren(parent string) []string {
	var (
		root     = p.GetIndexForSymbol(parent)
		children []string
	)
	//
	for i := range p.parents {
		index := uint(i)
		if index != root && p.findAndCompress(index) == root {
			children = append(children, p.indexToSymbol[index])
		}
	}
	//
	slices.Sort(children)
	//
	return children
}

// IsCommutative determines whether a given operator is commutative.
func (p *Registry) IsCommutative(op string) bool {
	return p.commutative[op]
}

// IsCommutativeIndex determines whether the canonical symbol for a given
// index is commutative.
func (p *Registry) IsCommutativeIndex(index uint) bool {
	return p.IsCommutative(p.GetSymbolForIndex(index))
}

func stripControl(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		//
		return r
	}, name)
}

func sortedKeys(items map[string]bool) []string {
	keys := make([]string, 0, len(items))
	//
	for k := range items {
		keys = append(keys, k)
	}
	//
	slices.Sort(keys)
	//
	return keys
}
