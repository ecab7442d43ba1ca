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

// ============================================================================
// Symmetric equality
// ============================================================================

// SymmetricEqualityToTrue replaces any top-level consequent of the form x = x
// with true.
type SymmetricEqualityToTrue struct{ base }

// NewSymmetricEqualityToTrue constructs the transformation.
func NewSymmetricEqualityToTrue() *SymmetricEqualityToTrue {
	return &SymmetricEqualityToTrue{base{
		name:          "symmetric equality is true",
		consequent:    true,
		delta:         -2,
		patternSyms:   map[string]bool{term.EQUALS: true},
		replacingSyms: map[string]bool{term.TRUE: true},
		equivalence:   EQUIVALENT,
	}}
}

// Applications implementation for the Transformation interface.
func (p *SymmetricEqualityToTrue) Applications(m *model.Model) iter.Iterator[Application] {
	sites := iter.NewFilterIterator(m.TopLevelConsequentSiteIterator(), func(s model.Site) bool {
		t := s.Term()
		return t.IsEquality() && t.Arg(0).Equals(t.Arg(1))
	})
	//
	return iter.NewProjectIterator(sites, func(site model.Site) Application {
		cell := m.Consequent(site.Index())
		//
		return newApplication("to true", []model.Site{site}, []model.Conjunct{cell},
			func(m *model.Model) model.ProofStep {
				original := cell.Expression()
				m.AlterSite(site, term.True())
				//
				return NewModifyConsequentStep(p.name, site.Index(), cell, original, cell)
			})
	})
}

// ============================================================================
// True consequents
// ============================================================================

// EliminateTrueConsequent removes top-level consequents which are true.
type EliminateTrueConsequent struct{ base }

// NewEliminateTrueConsequent constructs the transformation.
func NewEliminateTrueConsequent() *EliminateTrueConsequent {
	return &EliminateTrueConsequent{base{
		name:          "eliminate true consequent",
		consequent:    true,
		delta:         -1,
		patternSyms:   map[string]bool{term.TRUE: true},
		replacingSyms: map[string]bool{},
		equivalence:   EQUIVALENT,
	}}
}

// Applications implementation for the Transformation interface.
func (p *EliminateTrueConsequent) Applications(m *model.Model) iter.Iterator[Application] {
	sites := iter.NewFilterIterator(m.TopLevelConsequentSiteIterator(), func(s model.Site) bool {
		return s.Term().IsTrue()
	})
	//
	return iter.NewProjectIterator(sites, func(site model.Site) Application {
		return removeConsequent(p.name, "eliminate", site)
	})
}

// removeConsequent constructs an application which removes the consequent at
// a given site, relying on some prerequisites.
func removeConsequent(name string, description string, site model.Site,
	prerequisites ...model.Conjunct) Application {
	cell := site.Model().Consequent(site.Index())
	//
	return newApplication(description, []model.Site{site}, append(prerequisites, cell),
		func(m *model.Model) model.ProofStep {
			m.RemoveConsequent(site.Index())
			//
			return NewRemoveConsequentStep(name, site.Index(), cell, prerequisites...)
		})
}

// ============================================================================
// Consequent from antecedent
// ============================================================================

// ConsequentFromAntecedent removes any ground top-level consequent which is
// also a local theorem.  Consequent variables are universally quantified, so a
// consequent such as (P ?x) is never discharged by an antecedent (P a).
type ConsequentFromAntecedent struct{ base }

// NewConsequentFromAntecedent constructs the transformation.
func NewConsequentFromAntecedent() *ConsequentFromAntecedent {
	return &ConsequentFromAntecedent{base{
		name:          "consequent from antecedent",
		consequent:    true,
		delta:         -1,
		patternSyms:   map[string]bool{},
		replacingSyms: map[string]bool{},
		equivalence:   EQUIVALENT,
	}}
}

// Applications implementation for the Transformation interface.
func (p *ConsequentFromAntecedent) Applications(m *model.Model) iter.Iterator[Application] {
	return iter.NewFlattenIterator(m.TopLevelConsequentSiteIterator(), func(site model.Site) iter.Iterator[Application] {
		if !site.Term().IsGround() || !m.ContainsLocalTheorem(site.Term()) {
			return iter.NewEmptyIterator[Application]()
		}
		//
		binder := model.NewTopLevelAntecedentBinder(site.Term())
		// One application per consequent suffices
		if result, ok := first(m.Bind(binder)); ok {
			antecedent, _ := m.GetLocalTheoremAncestor(result.BindSites[binder])
			//
			return iter.NewUnitIterator(removeConsequent(p.name,
				fmt.Sprintf("by antecedent %s", antecedent.Assertion()), site, antecedent))
		}
		//
		return iter.NewEmptyIterator[Application]()
	})
}

// ============================================================================
// Consequent from theorem
// ============================================================================

// ConsequentFromTheorem removes any top-level consequent which is an instance
// of a library theorem.
type ConsequentFromTheorem struct {
	base
	theorem *model.Theorem
}

// NewConsequentFromTheorem constructs the transformation for a given library
// theorem.
func NewConsequentFromTheorem(theorem *model.Theorem) *ConsequentFromTheorem {
	return &ConsequentFromTheorem{base{
		name:          fmt.Sprintf("consequent from theorem %s", theorem.Name()),
		consequent:    true,
		delta:         -int(theorem.Assertion().FunctionApplicationCount()),
		patternSyms:   theorem.Assertion().SymbolNames(),
		replacingSyms: map[string]bool{},
		equivalence:   EQUIVALENT,
	}, theorem}
}

// Applications implementation for the Transformation interface.
func (p *ConsequentFromTheorem) Applications(m *model.Model) iter.Iterator[Application] {
	binder := model.NewTopLevelConsequentBinder(p.theorem.Assertion())
	//
	return iter.NewProjectIterator(m.Bind(binder), func(result *model.BindResult) Application {
		return removeConsequent(p.name, fmt.Sprintf("by theorem %s", p.theorem.Name()),
			result.BindSites[binder], p.theorem)
	})
}

// ============================================================================
// Redundant antecedents
// ============================================================================

// RemoveRedundantAntecedent removes local theorems which are true, or which
// duplicate an earlier local theorem.
type RemoveRedundantAntecedent struct{ base }

// NewRemoveRedundantAntecedent constructs the transformation.
func NewRemoveRedundantAntecedent() *RemoveRedundantAntecedent {
	return &RemoveRedundantAntecedent{base{
		name:          "remove redundant antecedent",
		antecedent:    true,
		delta:         -1,
		patternSyms:   map[string]bool{},
		replacingSyms: map[string]bool{},
		equivalence:   EQUIVALENT,
	}}
}

// Applications implementation for the Transformation interface.
func (p *RemoveRedundantAntecedent) Applications(m *model.Model) iter.Iterator[Application] {
	sites := iter.NewFilterIterator(m.TopLevelAntecedentSiteIterator(), func(s model.Site) bool {
		return s.Term().IsTrue() || (m.LocalTheoremMultiplicity(s.Term()) > 1 && !isFirstOccurrence(m, s))
	})
	//
	return iter.NewProjectIterator(sites, func(site model.Site) Application {
		theorem := m.LocalTheorem(site.Index())
		//
		return newApplication("remove", []model.Site{site}, nil, func(m *model.Model) model.ProofStep {
			index := m.RemoveLocalTheorem(theorem)
			//
			return NewRemoveLocalTheoremStep(p.name, index, theorem)
		})
	})
}

// isFirstOccurrence determines whether no earlier local theorem has the same
// assertion as that at a given site.
func isFirstOccurrence(m *model.Model, site model.Site) bool {
	for i := range site.Index() {
		if m.LocalTheorem(i).Assertion().Equals(site.Term()) {
			return false
		}
	}
	//
	return true
}

// first returns the first item of an iterator, if there is one.
func first[T any](items iter.Iterator[T]) (T, bool) {
	var empty T
	//
	if items.HasNext() {
		return items.Next(), true
	}
	//
	return empty, false
}
