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

	"github.com/nmsafiri/RESOLVE/pkg/prover/model"
	"github.com/nmsafiri/RESOLVE/pkg/term"
	"github.com/nmsafiri/RESOLVE/pkg/util/collection/iter"
)

// SubstituteInPlace uses a library equality l = r to rewrite any sub-term
// matching l into the corresponding instance of r.  Each direction of an
// equality, and each section it rewrites, is a separate transformation.
type SubstituteInPlace struct {
	base
	theorem *model.Theorem
	pattern *term.Term
	// Replacement for a matched pattern
	replacement *term.Term
	section     model.Section
}

// NewSubstituteInPlace constructs a transformation rewriting sub-terms of a
// given section, using a library equality.  When reversed, the right-hand side
// is rewritten into the left-hand side.
func NewSubstituteInPlace(theorem *model.Theorem, reversed bool, section model.Section) *SubstituteInPlace {
	if !theorem.IsEquality() {
		panic(fmt.Sprintf("theorem %s is not an equality", theorem))
	} else if section == model.THEOREM_LIBRARY {
		panic("cannot rewrite library theorems")
	}
	//
	var (
		lhs, rhs = theorem.Assertion().Arg(0), theorem.Assertion().Arg(1)
		arrow    = "→"
	)
	//
	if reversed {
		lhs, rhs, arrow = rhs, lhs, "←"
	}
	//
	return &SubstituteInPlace{base{
		name:          fmt.Sprintf("substitute %s %s in %s", theorem.Name(), arrow, section),
		antecedent:    section == model.ANTECEDENTS,
		consequent:    section == model.CONSEQUENTS,
		delta:         int(rhs.FunctionApplicationCount()) - int(lhs.FunctionApplicationCount()),
		quantified:    !variablesOf(rhs).IsSubsetOf(variablesOf(lhs)),
		patternSyms:   lhs.SymbolNames(),
		replacingSyms: rhs.SymbolNames(),
		equivalence:   EQUIVALENT,
	}, theorem, lhs, rhs, section}
}

// Applications implementation for the Transformation interface.
func (p *SubstituteInPlace) Applications(m *model.Model) iter.Iterator[Application] {
	var binder model.Binder
	//
	if p.section == model.ANTECEDENTS {
		binder = model.NewInductiveAntecedentBinder(p.pattern)
	} else {
		binder = model.NewInductiveConsequentBinder(p.pattern)
	}
	// Ignore rewrites which change nothing, or leave variables unbound.
	results := iter.NewFilterIterator(m.Bind(binder), func(r *model.BindResult) bool {
		var (
			site        = r.BindSites[binder]
			replacement = p.replacement.Substitute(r.FreeVariableBindings)
		)
		// A consequent cannot become a conjunction
		if site.Section() == model.CONSEQUENTS && site.IsTopLevel() && replacement.IsConjunction() {
			return false
		}
		//
		return replacement.IsGround() && !replacement.Equals(site.Term())
	})
	//
	return iter.NewProjectIterator(results, func(r *model.BindResult) Application {
		site := r.BindSites[binder]
		//
		return p.rewrite(m, site, p.replacement.Substitute(r.FreeVariableBindings))
	})
}

func (p *SubstituteInPlace) rewrite(m *model.Model, site model.Site, replacement *term.Term) Application {
	var (
		description = fmt.Sprintf("%s → %s", site.Term(), replacement)
		involved    = []model.Site{site}
	)
	//
	if p.section == model.CONSEQUENTS {
		cell := m.Consequent(site.Index())
		//
		return newApplication(description, involved, []model.Conjunct{cell, p.theorem},
			func(m *model.Model) model.ProofStep {
				original := cell.Expression()
				m.AlterSite(site, replacement)
				//
				return NewModifyConsequentStep(p.name, site.Index(), cell, original, cell, p.theorem)
			})
	}
	//
	original := m.LocalTheorem(site.Index())
	//
	return newApplication(description, involved, []model.Conjunct{original, p.theorem},
		func(m *model.Model) model.ProofStep {
			altered := m.AlterSite(site, replacement).(*model.LocalTheorem)
			//
			return NewModifyAntecedentStep(p.name, site.Index(), original, altered, p.theorem)
		})
}

// variables is a set of variable names.
type variables map[string]bool

// IsSubsetOf determines whether every variable in this set is in another.
func (p variables) IsSubsetOf(other variables) bool {
	for v := range p {
		if !other[v] {
			return false
		}
	}
	//
	return true
}

// variablesOf returns the names of universally quantified symbols in a term.
func variablesOf(t *term.Term) variables {
	vars := make(variables)
	collectVariables(t, vars)
	//
	return vars
}

func collectVariables(t *term.Term, vars variables) {
	if t.Quantification() == term.ForAll {
		vars[t.Name()] = true
	}
	//
	for it := t.Args().Iterator(); it.HasNext(); {
		collectVariables(it.Next(), vars)
	}
}
