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
	"fmt"
	"slices"
	"strings"
)

// Type represents a semantic (mathematical) type.  Types are immutable and have
// a stable string representation, which is used to key caches of subtype
// queries.
type Type interface {
	// IsSubtypeOf determines whether every value of this type is also a value
	// of the other.  This is reflexive.
	IsSubtypeOf(other Type) bool
	// String returns the canonical representation of this type.
	String() string
}

const (
	// EntityName is the name of the universal type, of which every type is a
	// subtype.
	EntityName = "Entity"
	// BooleanName is the name of the built-in boolean type.
	BooleanName = "B"
)

// ============================================================================
// Named
// ============================================================================

// Named is a type identified by name within a given Graph.
type Named struct {
	name  string
	graph *Graph
}

// Name returns the name of this type.
func (p *Named) Name() string {
	return p.name
}

// IsSubtypeOf implementation for Type interface.
func (p *Named) IsSubtypeOf(other Type) bool {
	switch t := other.(type) {
	case *Named:
		if t.name == EntityName {
			return true
		}
		//
		return p.graph == t.graph && p.graph.reaches(p.name, t.name)
	default:
		return false
	}
}

func (p *Named) String() string {
	return p.name
}

// ============================================================================
// Function
// ============================================================================

// Function represents the type of a function symbol, mapping a fixed number of
// arguments onto a range.
type Function struct {
	domain []Type
	rng    Type
}

// NewFunction constructs a function type from the given range and domain.
func NewFunction(rng Type, domain ...Type) *Function {
	return &Function{slices.Clone(domain), rng}
}

// Domain returns the argument types of this function type.
func (p *Function) Domain() []Type {
	return p.domain
}

// Range returns the result type of this function type.
func (p *Function) Range() Type {
	return p.rng
}

// IsSubtypeOf implementation for Type interface.  Function types are
// contravariant in their domain and covariant in their range.
func (p *Function) IsSubtypeOf(other Type) bool {
	switch t := other.(type) {
	case *Named:
		return t.name == EntityName
	case *Function:
		if len(p.domain) != len(t.domain) || !p.rng.IsSubtypeOf(t.rng) {
			return false
		}
		//
		for i, d := range t.domain {
			if !d.IsSubtypeOf(p.domain[i]) {
				return false
			}
		}
		//
		return true
	default:
		return false
	}
}

func (p *Function) String() string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	//
	for i, d := range p.domain {
		if i != 0 {
			builder.WriteString(" * ")
		}
		//
		builder.WriteString(d.String())
	}
	//
	builder.WriteString(fmt.Sprintf(" -> %s)", p.rng.String()))
	//
	return builder.String()
}

// ============================================================================
// Graph
// ============================================================================

// Graph records the named types known for a given proof attempt, along with
// their declared super-types.  The subtype relation on named types is the
// reflexive transitive closure of these declarations, with Entity as top.
type Graph struct {
	types  map[string]*Named
	supers map[string][]string
}

// NewGraph constructs a type graph containing only the built-in types.
func NewGraph() *Graph {
	g := &Graph{make(map[string]*Named), make(map[string][]string)}
	//
	g.types[EntityName] = &Named{EntityName, g}
	g.types[BooleanName] = &Named{BooleanName, g}
	//
	return g
}

// Entity returns the universal type of this graph.
func (p *Graph) Entity() *Named {
	return p.types[EntityName]
}

// Boolean returns the boolean type of this graph.
func (p *Graph) Boolean() *Named {
	return p.types[BooleanName]
}

// Lookup a named type, returning false if no such type is declared.
func (p *Graph) Lookup(name string) (*Named, bool) {
	t, ok := p.types[name]
	return t, ok
}

// Declare a named type with zero or more (already declared) super-types.
// Redeclaring a type extends its set of super-types.
func (p *Graph) Declare(name string, supers ...string) (*Named, error) {
	if name == "" {
		return nil, fmt.Errorf("empty type name")
	}
	//
	for _, s := range supers {
		if _, ok := p.types[s]; !ok {
			return nil, fmt.Errorf("unknown super-type %s of %s", s, name)
		} else if s == name || p.reaches(s, name) {
			return nil, fmt.Errorf("cyclic type declaration %s <: %s", name, s)
		}
	}
	//
	t, ok := p.types[name]
	if !ok {
		t = &Named{name, p}
		p.types[name] = t
	}
	//
	p.supers[name] = append(p.supers[name], supers...)
	//
	return t, nil
}

// reaches determines whether the named type "to" is reachable from "from" via
// zero or more declared super-type edges.
func (p *Graph) reaches(from string, to string) bool {
	var (
		worklist = []string{from}
		visited  = make(map[string]bool)
	)
	//
	for len(worklist) > 0 {
		next := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		//
		if next == to {
			return true
		} else if !visited[next] {
			visited[next] = true
			worklist = append(worklist, p.supers[next]...)
		}
	}
	//
	return false
}
