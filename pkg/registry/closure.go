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

	"github.com/nmsafiri/RESOLVE/pkg/term"
	"github.com/nmsafiri/RESOLVE/pkg/types"
)

// Closure computes the congruence closure of a set of ground equalities, using
// a Registry to maintain the equivalence classes.  Every sub-term registered
// with a closure is assigned a class index, such that two terms are equivalent
// iff their classes have the same canonical representative.
type Closure struct {
	registry *Registry
	// Every application registered so far
	nodes []application
	// Maps signatures to class indices
	table map[string]uint
}

// application records a function application in terms of the classes of its
// arguments.
type application struct {
	name  string
	args  []uint
	class uint
}

// NewClosure constructs an empty closure over a given registry.
func NewClosure(registry *Registry) *Closure {
	return &Closure{registry, nil, make(map[string]uint)}
}

// Registry returns the registry underlying this closure.
func (p *Closure) Registry() *Registry {
	return p.registry
}

// Register a term with this closure, returning the canonical index of its
// class.
func (p *Closure) Register(t *term.Term) uint {
	if t.IsLeaf() {
		return p.registry.AddSymbol(t.Name(), p.typeOf(t), leafUsage(t))
	}
	//
	args := make([]uint, t.Arity())
	//
	for i := range t.Arity() {
		args[i] = p.Register(t.Arg(i))
	}
	//
	function := HasArgsSingular
	if t.Quantification() == term.ForAll {
		function = HasArgsForAll
	}
	//
	p.registry.AddSymbol(t.Name(), p.registry.graph.Entity(), function)
	//
	sig := p.signature(t.Name(), args)
	//
	if class, ok := p.table[sig]; ok {
		return p.registry.Find(class)
	}
	//
	class := p.registry.MakeSymbol(p.typeOf(t), false)
	p.nodes = append(p.nodes, application{t.Name(), args, class})
	p.table[sig] = class
	//
	return class
}

// Merge the classes of two terms and recompute the closure.
func (p *Closure) Merge(lhs *term.Term, rhs *term.Term) {
	p.union(p.Register(lhs), p.Register(rhs))
	p.Close()
}

// Assert a given fact.  Equalities merge their operands, negations merge their
// argument with false, and anything else is merged with true.  Conjunctions
// are asserted conjunct by conjunct.
func (p *Closure) Assert(fact *term.Term) {
	for _, c := range fact.Conjuncts() {
		switch {
		case c.IsEquality():
			p.Merge(c.Arg(0), c.Arg(1))
		case c.Is(term.NOT, 1):
			p.Merge(c.Arg(0), term.False())
		default:
			p.Merge(c, term.True())
		}
	}
}

// Holds determines whether a given fact follows from the facts asserted so
// far by congruence alone.
func (p *Closure) Holds(fact *term.Term) bool {
	if p.Inconsistent() {
		return true
	}
	//
	for _, c := range fact.Conjuncts() {
		var holds bool
		//
		switch {
		case c.IsTrue():
			holds = true
		case c.IsEquality():
			holds = p.Equivalent(c.Arg(0), c.Arg(1))
		case c.Is(term.NOT, 1):
			holds = p.Equivalent(c.Arg(0), term.False())
		default:
			holds = p.Equivalent(c, term.True())
		}
		//
		if !holds {
			return false
		}
	}
	//
	return true
}

// Equivalent determines whether two terms are in the same class.
func (p *Closure) Equivalent(lhs *term.Term, rhs *term.Term) bool {
	l, r := p.Register(lhs), p.Register(rhs)
	//
	return p.registry.Find(l) == p.registry.Find(r)
}

// Inconsistent determines whether true and false have been merged.
func (p *Closure) Inconsistent() bool {
	return p.registry.GetIndexForSymbol(term.TRUE) == p.registry.GetIndexForSymbol(term.FALSE)
}

// Close repeatedly merges applications whose signatures coincide until no
// further merges are possible.
func (p *Closure) Close() {
	for changed := true; changed; {
		changed = false
		table := make(map[string]uint, len(p.nodes))
		//
		for _, node := range p.nodes {
			sig := p.signature(node.name, node.args)
			//
			if class, ok := table[sig]; !ok {
				table[sig] = node.class
			} else if p.registry.Find(class) != p.registry.Find(node.class) {
				p.union(class, node.class)
				changed = true
			}
		}
		//
		p.table = table
	}
}

// union merges two classes, with the earliest becoming the parent.
func (p *Closure) union(a uint, b uint) {
	a, b = p.registry.Find(a), p.registry.Find(b)
	//
	if a > b {
		a, b = b, a
	}
	//
	p.registry.Substitute(a, b)
}

// signature of an application in terms of the current classes of its
// arguments.  Arguments of commutative operators are sorted.
func (p *Closure) signature(name string, args []uint) string {
	roots := make([]uint, len(args))
	//
	for i, arg := range args {
		roots[i] = p.registry.Find(arg)
	}
	//
	if p.registry.IsCommutative(name) {
		slices.Sort(roots)
	}
	//
	var builder strings.Builder
	//
	builder.WriteString(name)
	//
	for _, r := range roots {
		builder.WriteString(fmt.Sprintf(" %d", r))
	}
	//
	return builder.String()
}

func (p *Closure) typeOf(t *term.Term) types.Type {
	if t.Type() != nil {
		return t.Type()
	}
	//
	return p.registry.graph.Entity()
}

func leafUsage(t *term.Term) Usage {
	switch {
	case t.IsLiteral():
		return Literal
	case t.Quantification() == term.ForAll:
		return ForAll
	}
	//
	return SingularVariable
}
