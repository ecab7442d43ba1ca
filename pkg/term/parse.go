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

	"github.com/nmsafiri/RESOLVE/pkg/sexp"
	"github.com/nmsafiri/RESOLVE/pkg/types"
	"github.com/nmsafiri/RESOLVE/pkg/util/collection/pseq"
)

// ANNOTATION is the list head used to attach a type to a term, as in "(: x Z)".
const ANNOTATION = ":"

// Parser translates S-Expressions into terms.  A list "(f a b)" is the
// application of f to a and b, whilst a symbol is a leaf.  Symbols prefixed
// with "?" are universally quantified, and those prefixed with "!" are
// existentially quantified.  Types are resolved against a type graph, which
// may be nil in which case annotations are not permitted and terms are
// untyped.
type Parser struct {
	graph *types.Graph
}

// NewParser constructs a parser which resolves types against a given graph.
func NewParser(graph *types.Graph) *Parser {
	return &Parser{graph}
}

// ParseString parses a string into a single term.
func (p *Parser) ParseString(input string) (*Term, error) {
	e, err := sexp.Parse(input)
	//
	if err != nil {
		return nil, err
	} else if e == nil {
		return nil, fmt.Errorf("empty term")
	}
	//
	return p.Parse(e)
}

// Parse translates an S-Expression into a term.
func (p *Parser) Parse(e sexp.SExp) (*Term, error) {
	switch e := e.(type) {
	case *sexp.Symbol:
		return p.parseLeaf(e.Value)
	case *sexp.List:
		return p.parseList(e)
	}
	//
	return nil, fmt.Errorf("unknown s-expression %s", e)
}

func (p *Parser) parseLeaf(token string) (*Term, error) {
	name, quant, err := splitQuantifier(token)
	//
	if err != nil {
		return nil, err
	}
	//
	t := NewApplication(name, quant, nil, pseq.Empty[*Term]())
	//
	if t.IsLiteral() {
		return NewApplication(name, quant, p.literalType(t), t.args), nil
	}
	//
	return t, nil
}

func (p *Parser) parseList(list *sexp.List) (*Term, error) {
	if list.Len() == 0 {
		return nil, fmt.Errorf("empty application")
	} else if list.Head() == ANNOTATION {
		return p.parseAnnotation(list)
	}
	//
	head, ok := list.Get(0).(*sexp.Symbol)
	if !ok {
		return nil, fmt.Errorf("expected function symbol, found %s", list.Get(0))
	}
	//
	name, quant, err := splitQuantifier(head.Value)
	if err != nil {
		return nil, err
	}
	//
	args := make([]*Term, list.Len()-1)
	//
	for i, e := range list.Elements[1:] {
		if args[i], err = p.Parse(e); err != nil {
			return nil, err
		}
	}
	//
	var typ types.Type
	//
	if p.graph != nil && quant == None && isPredicate(name) {
		typ = p.graph.Boolean()
	}
	//
	return NewApplication(name, quant, typ, pseq.FromSlice(args)), nil
}

func (p *Parser) parseAnnotation(list *sexp.List) (*Term, error) {
	if list.Len() != 3 {
		return nil, fmt.Errorf("malformed type annotation %s", list)
	} else if p.graph == nil {
		return nil, fmt.Errorf("type annotation %s without type graph", list)
	}
	//
	name, ok := list.Get(2).(*sexp.Symbol)
	if !ok {
		return nil, fmt.Errorf("expected type name, found %s", list.Get(2))
	}
	//
	typ, ok := p.graph.Lookup(name.Value)
	if !ok {
		return nil, fmt.Errorf("unknown type %s", name.Value)
	}
	//
	t, err := p.Parse(list.Get(1))
	if err != nil {
		return nil, err
	}
	//
	return NewApplication(t.name, t.quant, typ, t.args), nil
}

func (p *Parser) literalType(t *Term) types.Type {
	if p.graph == nil {
		return nil
	} else if t.name == TRUE || t.name == FALSE {
		return p.graph.Boolean()
	} else if z, ok := p.graph.Lookup("Z"); ok {
		return z
	}
	//
	return nil
}

func splitQuantifier(token string) (string, Quantification, error) {
	quant := None
	//
	switch {
	case strings.HasPrefix(token, "?"):
		quant = ForAll
	case strings.HasPrefix(token, "!"):
		quant = Exists
	}
	//
	if quant != None {
		token = token[1:]
	}
	//
	if token == "" {
		return "", None, fmt.Errorf("missing symbol name")
	}
	//
	return token, quant, nil
}

func isPredicate(name string) bool {
	switch name {
	case EQUALS, AND, OR, NOT, IMPLIES:
		return true
	}
	//
	return false
}

// MustParse parses a string into an untyped term, panicking if the string is
// malformed.
func MustParse(input string) *Term {
	t, err := NewParser(nil).ParseString(input)
	//
	if err != nil {
		panic(err.Error())
	}
	//
	return t
}
