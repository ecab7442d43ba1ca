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
package prover

import (
	"fmt"
	"os"

	"github.com/nmsafiri/RESOLVE/pkg/prover/model"
	"github.com/nmsafiri/RESOLVE/pkg/sexp"
	"github.com/nmsafiri/RESOLVE/pkg/term"
	"github.com/nmsafiri/RESOLVE/pkg/types"
	"github.com/nmsafiri/RESOLVE/pkg/util/collection/pseq"
)

// VC is a single verification condition: a conjunction of antecedents which
// should entail each of the consequents.
type VC struct {
	Name        string
	Antecedents []*term.Term
	Consequents []*term.Term
}

// Problem is the content of a single VC file: the declared types, the theorems
// available to every VC and the VCs themselves.
type Problem struct {
	Graph   *types.Graph
	Library pseq.Sequence[*model.Theorem]
	VCs     []*VC
}

// LoadFile reads and parses a VC file.
func LoadFile(path string) (*Problem, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	//
	problem, err := ParseProblem(string(bytes))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	//
	return problem, nil
}

// ParseProblem parses the text of a VC file, which consists of zero or more
// declarations of the following forms:
//
//	(types (N Z) (Z))
//	(theorem name assertion)
//	(vc name (antecedents t1 ... tn) (consequents t1 ... tm))
//
// Types must be declared before use, and each type lists its super-types.
// Conjunctions amongst antecedents or consequents are split.
func ParseProblem(text string) (*Problem, error) {
	decls, err := sexp.ParseAll(text)
	if err != nil {
		return nil, err
	}
	//
	var (
		problem  = &Problem{Graph: types.NewGraph()}
		parser   = term.NewParser(problem.Graph)
		theorems []*model.Theorem
		names    = make(map[string]bool)
	)
	//
	for _, decl := range decls {
		list, ok := decl.(*sexp.List)
		if !ok {
			return nil, fmt.Errorf("unexpected symbol %s", decl)
		}
		//
		switch list.Head() {
		case "types":
			err = parseTypes(problem.Graph, list)
		case "theorem":
			var theorem *model.Theorem
			if theorem, err = parseTheorem(parser, list); err == nil {
				theorems = append(theorems, theorem)
			}
		case "vc":
			var vc *VC
			if vc, err = parseVC(parser, list); err == nil {
				if names[vc.Name] {
					err = fmt.Errorf("duplicate vc %s", vc.Name)
				}
				//
				names[vc.Name] = true
				problem.VCs = append(problem.VCs, vc)
			}
		default:
			err = fmt.Errorf("unknown declaration %s", list)
		}
		//
		if err != nil {
			return nil, err
		}
	}
	//
	problem.Library = pseq.FromSlice(theorems)
	//
	return problem, nil
}

func parseTypes(graph *types.Graph, list *sexp.List) error {
	for _, e := range list.Elements[1:] {
		decl, ok := e.(*sexp.List)
		if !ok || decl.Len() == 0 {
			return fmt.Errorf("invalid type declaration %s", e)
		}
		//
		var names []string
		//
		for _, n := range decl.Elements {
			sym, ok := n.(*sexp.Symbol)
			if !ok {
				return fmt.Errorf("invalid type name %s", n)
			}
			//
			names = append(names, sym.Value)
		}
		//
		if _, err := graph.Declare(names[0], names[1:]...); err != nil {
			return err
		}
	}
	//
	return nil
}

func parseTheorem(parser *term.Parser, list *sexp.List) (*model.Theorem, error) {
	if list.Len() != 3 || !list.Get(1).IsSymbol() {
		return nil, fmt.Errorf("invalid theorem %s", list)
	}
	//
	name := list.Get(1).String()
	//
	assertion, err := parser.Parse(list.Get(2))
	if err != nil {
		return nil, fmt.Errorf("theorem %s: %w", name, err)
	}
	//
	return model.NewTheorem(name, assertion), nil
}

func parseVC(parser *term.Parser, list *sexp.List) (*VC, error) {
	if list.Len() != 4 || !list.Get(1).IsSymbol() {
		return nil, fmt.Errorf("invalid vc %s", list)
	}
	//
	vc := &VC{Name: list.Get(1).String()}
	//
	antecedents, err := parseSection(parser, list.Get(2), "antecedents")
	if err != nil {
		return nil, fmt.Errorf("vc %s: %w", vc.Name, err)
	}
	//
	consequents, err := parseSection(parser, list.Get(3), "consequents")
	if err != nil {
		return nil, fmt.Errorf("vc %s: %w", vc.Name, err)
	} else if len(consequents) == 0 {
		return nil, fmt.Errorf("vc %s: no consequents", vc.Name)
	}
	//
	vc.Antecedents, vc.Consequents = antecedents, consequents
	//
	return vc, nil
}

func parseSection(parser *term.Parser, e sexp.SExp, section string) ([]*term.Term, error) {
	list, ok := e.(*sexp.List)
	if !ok || list.Head() != section {
		return nil, fmt.Errorf("expected (%s ...), found %s", section, e)
	}
	//
	var terms []*term.Term
	//
	for _, element := range list.Elements[1:] {
		t, err := parser.Parse(element)
		if err != nil {
			return nil, err
		}
		//
		terms = append(terms, t.Conjuncts()...)
	}
	//
	return terms, nil
}
