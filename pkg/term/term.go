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
package term

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/nmsafiri/RESOLVE/pkg/types"
	"github.com/nmsafiri/RESOLVE/pkg/util/collection/hash"
	"github.com/nmsafiri/RESOLVE/pkg/util/collection/pseq"
)

// Quantification identifies whether a symbol is free, or bound by a universal
// or existential quantifier.
type Quantification uint8

const (
	// None indicates an ordinary (unquantified) symbol.
	None Quantification = iota
	// ForAll indicates a universally quantified variable.  In a pattern, such
	// symbols bind to arbitrary sub-terms.
	ForAll
	// Exists indicates an existentially quantified variable.
	Exists
)

func (q Quantification) String() string {
	switch q {
	case None:
		return "none"
	case ForAll:
		return "forall"
	case Exists:
		return "exists"
	}
	//
	panic(fmt.Sprintf("unknown quantification %d", q))
}

// Symbol names with built-in meaning.
const (
	EQUALS  = "="
	AND     = "and"
	OR      = "or"
	NOT     = "not"
	IMPLIES = "implies"
	TRUE    = "true"
	FALSE   = "false"
)

// Term is an immutable symbolic expression: a function symbol applied to an
// ordered list of zero or more argument terms.  A term with no arguments is a
// leaf (i.e. a variable or literal).  Equality and hashing are structural,
// and consider only the name, quantification and arguments; types are carried
// along for the registry but do not contribute to identity.  Since terms are
// never modified, sub-terms are freely shared between terms.
type Term struct {
	name  string
	quant Quantification
	typ   types.Type
	args  pseq.Sequence[*Term]
	// Cached structural hash
	hash uint64
	// Cached number of nodes in this term
	size uint
}

// NewApplication constructs a term from a function symbol and an argument
// sequence.
func NewApplication(name string, quant Quantification, typ types.Type, args pseq.Sequence[*Term]) *Term {
	if name == "" {
		panic("empty symbol name")
	}
	//
	h := hash.Mix(hash.Mix(hash.String(name), uint64(quant)), uint64(args.Len()))
	size := uint(1)
	//
	for it := args.Iterator(); it.HasNext(); {
		arg := it.Next()
		h = hash.Mix(h, arg.hash)
		size += arg.size
	}
	//
	return &Term{name, quant, typ, args, h, size}
}

// NewSymbol constructs an unquantified application of a function symbol to
// zero or more arguments.
func NewSymbol(name string, typ types.Type, args ...*Term) *Term {
	return NewApplication(name, None, typ, pseq.FromSlice(args))
}

// NewLeaf constructs an unquantified term without arguments.
func NewLeaf(name string, typ types.Type) *Term {
	return NewApplication(name, None, typ, pseq.Empty[*Term]())
}

// NewVariable constructs a universally quantified variable.
func NewVariable(name string, typ types.Type) *Term {
	return NewApplication(name, ForAll, typ, pseq.Empty[*Term]())
}

// True constructs the literal true.
func True() *Term {
	return NewLeaf(TRUE, nil)
}

// False constructs the literal false.
func False() *Term {
	return NewLeaf(FALSE, nil)
}

// Equals constructs the equality of two terms.
func Equals(lhs *Term, rhs *Term) *Term {
	return NewSymbol(EQUALS, nil, lhs, rhs)
}

// And constructs the conjunction of one or more terms.  A single term is
// returned unchanged.
func And(conjuncts ...*Term) *Term {
	if len(conjuncts) == 1 {
		return conjuncts[0]
	}
	//
	return NewSymbol(AND, nil, conjuncts...)
}

// Implies constructs an implication from an antecedent to a consequent.
func Implies(antecedent *Term, consequent *Term) *Term {
	return NewSymbol(IMPLIES, nil, antecedent, consequent)
}

// ============================================================================
// Accessors
// ============================================================================

// Name returns the function symbol of this term.
func (p *Term) Name() string {
	return p.name
}

// Quantification returns the quantification of this term's function symbol.
func (p *Term) Quantification() Quantification {
	return p.quant
}

// Type returns the semantic type of this term, or nil if unknown.
func (p *Term) Type() types.Type {
	return p.typ
}

// Args returns the arguments of this term.
func (p *Term) Args() pseq.Sequence[*Term] {
	return p.args
}

// Arity returns the number of arguments of this term.
func (p *Term) Arity() uint {
	return p.args.Len()
}

// Arg returns the ith argument of this term.
func (p *Term) Arg(i uint) *Term {
	return p.args.Get(i)
}

// IsLeaf checks whether this term has no arguments.
func (p *Term) IsLeaf() bool {
	return p.args.Len() == 0
}

// IsVariable checks whether this term is a universally quantified leaf.
func (p *Term) IsVariable() bool {
	return p.quant == ForAll && p.IsLeaf()
}

// IsLiteral checks whether this term is a boolean or numeric literal.
func (p *Term) IsLiteral() bool {
	if !p.IsLeaf() || p.quant != None {
		return false
	} else if p.name == TRUE || p.name == FALSE {
		return true
	}
	//
	for _, c := range p.name {
		if !unicode.IsDigit(c) {
			return false
		}
	}
	//
	return true
}

// IsTrue checks whether this term is the literal true.
func (p *Term) IsTrue() bool {
	return p.quant == None && p.name == TRUE && p.IsLeaf()
}

// IsEquality checks whether this term is a (binary) equality.
func (p *Term) IsEquality() bool {
	return p.quant == None && p.name == EQUALS && p.Arity() == 2
}

// IsConjunction checks whether this term is a conjunction of one or more
// terms.
func (p *Term) IsConjunction() bool {
	return p.quant == None && p.name == AND && !p.IsLeaf()
}

// Is checks whether this term is an unquantified application of the given
// function symbol with the given number of arguments.
func (p *Term) Is(name string, arity uint) bool {
	return p.quant == None && p.name == name && p.Arity() == arity
}

// IsGround checks whether this term contains no quantified symbols.
func (p *Term) IsGround() bool {
	if p.quant != None {
		return false
	}
	//
	for it := p.args.Iterator(); it.HasNext(); {
		if !it.Next().IsGround() {
			return false
		}
	}
	//
	return true
}

// FunctionApplicationCount returns the number of symbol occurrences in this
// term.  This is the size metric used to estimate whether rewriting grows or
// shrinks a proof state.
func (p *Term) FunctionApplicationCount() uint {
	return p.size
}

// SymbolNames returns the set of all (unquantified) symbol names used within
// this term.
func (p *Term) SymbolNames() map[string]bool {
	names := make(map[string]bool)
	p.collectSymbols(names)
	//
	return names
}

func (p *Term) collectSymbols(names map[string]bool) {
	if p.quant == None {
		names[p.name] = true
	}
	//
	for it := p.args.Iterator(); it.HasNext(); {
		it.Next().collectSymbols(names)
	}
}

// Conjuncts splits this term into its top-level conjuncts.  Nested
// conjunctions are flattened, whilst a term which is not a conjunction is
// returned as its only conjunct.
func (p *Term) Conjuncts() []*Term {
	if !p.IsConjunction() {
		return []*Term{p}
	}
	//
	var conjuncts []*Term
	//
	for it := p.args.Iterator(); it.HasNext(); {
		conjuncts = append(conjuncts, it.Next().Conjuncts()...)
	}
	//
	return conjuncts
}

// ============================================================================
// Equality / Hashing
// ============================================================================

// Equals checks whether two terms are structurally identical.
func (p *Term) Equals(other *Term) bool {
	if p == other {
		return true
	} else if p == nil || other == nil || p.hash != other.hash || p.name != other.name ||
		p.quant != other.quant || p.Arity() != other.Arity() {
		return false
	}
	//
	for i := range p.Arity() {
		if !p.Arg(i).Equals(other.Arg(i)) {
			return false
		}
	}
	//
	return true
}

// Hash returns the structural hash of this term.
func (p *Term) Hash() uint64 {
	return p.hash
}

// String returns an S-Expression representation of this term, where universally
// quantified symbols are prefixed with "?" and existentially quantified ones
// with "!".
func (p *Term) String() string {
	var builder strings.Builder
	p.write(&builder)
	//
	return builder.String()
}

func (p *Term) write(builder *strings.Builder) {
	if !p.IsLeaf() {
		builder.WriteString("(")
	}
	//
	switch p.quant {
	case ForAll:
		builder.WriteString("?")
	case Exists:
		builder.WriteString("!")
	}
	//
	builder.WriteString(p.name)
	//
	for it := p.args.Iterator(); it.HasNext(); {
		builder.WriteString(" ")
		it.Next().write(builder)
	}
	//
	if !p.IsLeaf() {
		builder.WriteString(")")
	}
}
