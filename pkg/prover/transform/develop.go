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
package transform

import (
	"fmt"
	"strings"

	"github.com/nmsafiri/RESOLVE/pkg/prover/model"
	"github.com/nmsafiri/RESOLVE/pkg/term"
	"github.com/nmsafiri/RESOLVE/pkg/util/collection/iter"
)

// DevelopByImplication uses a library theorem of the form
// implies(and(p1,...,pn), q) to introduce q as a local theorem, whenever every
// premise can be bound jointly to top-level local theorems.
type DevelopByImplication struct {
	base
	theorem    *model.Theorem
	premises   []*term.Term
	conclusion *term.Term
}

// NewDevelopByImplication constructs the transformation for a given library
// implication.
func NewDevelopByImplication(theorem *model.Theorem) *DevelopByImplication {
	assertion := theorem.Assertion()
	//
	if !assertion.Is(term.IMPLIES, 2) {
		panic(fmt.Sprintf("theorem %s is not an implication", theorem))
	}
	//
	var (
		premises   = assertion.Arg(0).Conjuncts()
		conclusion = assertion.Arg(1)
		patterns   = make(map[string]bool)
		premiseVar = make(variables)
	)
	//
	for _, p := range premises {
		for s := range p.SymbolNames() {
			patterns[s] = true
		}
		//
		for v := range variablesOf(p) {
			premiseVar[v] = true
		}
	}
	//
	return &DevelopByImplication{base{
		name:          fmt.Sprintf("develop by %s", theorem.Name()),
		antecedent:    true,
		delta:         int(conclusion.FunctionApplicationCount()),
		quantified:    !variablesOf(conclusion).IsSubsetOf(premiseVar),
		patternSyms:   patterns,
		replacingSyms: conclusion.SymbolNames(),
		equivalence:   IMPLICATION,
	}, theorem, premises, conclusion}
}

// Applications implementation for the Transformation interface.
func (p *DevelopByImplication) Applications(m *model.Model) iter.Iterator[Application] {
	binders := make([]model.Binder, len(p.premises))
	//
	for i, premise := range p.premises {
		binders[i] = model.NewTopLevelAntecedentBinder(premise)
	}
	// Skip conclusions which are not ground, or are already known.
	results := iter.NewFilterIterator(m.Bind(binders...), func(r *model.BindResult) bool {
		conclusion := p.conclusion.Substitute(r.FreeVariableBindings)
		if !conclusion.IsGround() {
			return false
		}
		//
		for _, c := range conclusion.Conjuncts() {
			if !c.IsTrue() && !m.ContainsLocalTheorem(c) {
				return true
			}
		}
		//
		return false
	})
	//
	return iter.NewProjectIterator(results, func(r *model.BindResult) Application {
		var (
			involved      = make([]model.Site, len(binders))
			prerequisites = []model.Conjunct{p.theorem}
			conclusion    = p.conclusion.Substitute(r.FreeVariableBindings)
		)
		//
		for i, b := range binders {
			involved[i] = r.BindSites[b]
			antecedent, _ := m.GetLocalTheoremAncestor(involved[i])
			prerequisites = append(prerequisites, antecedent)
		}
		//
		return newApplication(fmt.Sprintf("introduce %s", conclusion), involved, prerequisites,
			func(m *model.Model) model.ProofStep {
				var introduced []*model.LocalTheorem
				//
				for _, c := range conclusion.Conjuncts() {
					if !c.IsTrue() && !m.ContainsLocalTheorem(c) {
						lt := m.AddLocalTheorem(c, model.Derived{Description: p.describe(involved)}, false)
						introduced = append(introduced, lt)
					}
				}
				//
				return NewIntroduceLocalTheoremStep(p.name, introduced, prerequisites...)
			})
	})
}

func (p *DevelopByImplication) describe(sites []model.Site) string {
	var items []string
	//
	for _, s := range sites {
		items = append(items, s.Term().String())
	}
	//
	return fmt.Sprintf("%s from %s", p.theorem.Name(), strings.Join(items, ", "))
}
