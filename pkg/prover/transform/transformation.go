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
	"github.com/nmsafiri/RESOLVE/pkg/util/collection/iter"
)

// Equivalence classifies the logical strength of a transformation.
type Equivalence uint8

const (
	// EQUIVALENT transformations produce a state equivalent to the original.
	EQUIVALENT Equivalence = iota
	// IMPLICATION transformations produce a state implied by the original, but
	// not necessarily vice versa.
	IMPLICATION
)

func (e Equivalence) String() string {
	if e == EQUIVALENT {
		return "equivalent"
	}
	//
	return "implication"
}

// Transformation is a reusable rule which, given a model, identifies the places
// where it can be applied.  Transformations are stateless.
type Transformation interface {
	fmt.Stringer
	// Applications returns the (lazy) applications of this rule to a model.
	// The model must not be changed whilst the iterator is live, except by
	// applying an application and then undoing it.
	Applications(m *model.Model) iter.Iterator[Application]
	// CouldAffectAntecedent indicates whether this rule may change local
	// theorems.
	CouldAffectAntecedent() bool
	// CouldAffectConsequent indicates whether this rule may change
	// consequents.
	CouldAffectConsequent() bool
	// FunctionApplicationCountDelta estimates the change in term size
	// resulting from an application of this rule.
	FunctionApplicationCountDelta() int
	// IntroducesQuantifiedVariables indicates whether applications may
	// introduce universally quantified variables into the model.
	IntroducesQuantifiedVariables() bool
	// PatternSymbolNames returns the symbols which must appear in a model for
	// this rule to possibly apply.
	PatternSymbolNames() map[string]bool
	// ReplacementSymbolNames returns the symbols which applications may
	// introduce.
	ReplacementSymbolNames() map[string]bool
	// Equivalence returns the logical strength of this rule.
	Equivalence() Equivalence
}

// Application is a single, concrete use of a transformation at specific sites.
type Application interface {
	fmt.Stringer
	// Apply this application to the model it was produced from.  This
	// records exactly one proof step.
	Apply(m *model.Model)
	// InvolvedSubExpressions returns the sites read or written.
	InvolvedSubExpressions() []model.Site
	// PrerequisiteConjuncts returns the conjuncts this application relies
	// upon.
	PrerequisiteConjuncts() []model.Conjunct
	// AffectedConjuncts returns the conjuncts changed by this application.
	// This is only known once applied.
	AffectedConjuncts() []model.Conjunct
	// AffectedSites returns the (top-level) sites of affected conjuncts which
	// remain in the model after applying.
	AffectedSites() []model.Site
}

// application is a general purpose implementation of Application, where the
// actual work is delegated to a function producing the recorded step.
type application struct {
	description   string
	involved      []model.Site
	prerequisites []model.Conjunct
	apply         func(m *model.Model) model.ProofStep
	// Set once applied
	model *model.Model
	step  model.ProofStep
}

func newApplication(description string, involved []model.Site, prerequisites []model.Conjunct,
	apply func(m *model.Model) model.ProofStep) *application {
	return &application{description, involved, prerequisites, apply, nil, nil}
}

func (p *application) String() string {
	return p.description
}

// Apply implementation for the Application interface.
func (p *application) Apply(m *model.Model) {
	if p.step != nil {
		panic(fmt.Sprintf("application %s already applied", p.description))
	}
	//
	p.model = m
	p.step = p.apply(m)
	m.AddProofStep(p.step)
}

// InvolvedSubExpressions implementation for the Application interface.
func (p *application) InvolvedSubExpressions() []model.Site {
	return p.involved
}

// PrerequisiteConjuncts implementation for the Application interface.
func (p *application) PrerequisiteConjuncts() []model.Conjunct {
	return p.prerequisites
}

// AffectedConjuncts implementation for the Application interface.
func (p *application) AffectedConjuncts() []model.Conjunct {
	if p.step == nil {
		return nil
	}
	//
	return p.step.AffectedConjuncts()
}

// AffectedSites implementation for the Application interface.
func (p *application) AffectedSites() []model.Site {
	var sites []model.Site
	//
	for _, c := range p.AffectedConjuncts() {
		if site, ok := siteOf(p.model, c); ok {
			sites = append(sites, site)
		}
	}
	//
	return sites
}

// siteOf returns the top-level site of a conjunct, if it is in the model.
func siteOf(m *model.Model, c model.Conjunct) (model.Site, bool) {
	var (
		index   uint
		ok      bool
		section model.Section
	)
	//
	switch c := c.(type) {
	case *model.LocalTheorem:
		index, ok = m.IndexOfLocalTheorem(c)
		section = model.ANTECEDENTS
	case *model.Consequent:
		index, ok = m.IndexOfConsequent(c)
		section = model.CONSEQUENTS
	}
	//
	if !ok {
		return model.Site{}, false
	}
	//
	return m.SiteAt(section, index, topLevel), true
}

// base provides the metadata common to most transformations.
type base struct {
	name          string
	antecedent    bool
	consequent    bool
	delta         int
	quantified    bool
	patternSyms   map[string]bool
	replacingSyms map[string]bool
	equivalence   Equivalence
}

func (p *base) String() string {
	return p.name
}

// CouldAffectAntecedent implementation for the Transformation interface.
func (p *base) CouldAffectAntecedent() bool {
	return p.antecedent
}

// CouldAffectConsequent implementation for the Transformation interface.
func (p *base) CouldAffectConsequent() bool {
	return p.consequent
}

// FunctionApplicationCountDelta implementation for the Transformation
// interface.
func (p *base) FunctionApplicationCountDelta() int {
	return p.delta
}

// IntroducesQuantifiedVariables implementation for the Transformation
// interface.
func (p *base) IntroducesQuantifiedVariables() bool {
	return p.quantified
}

// PatternSymbolNames implementation for the Transformation interface.
func (p *base) PatternSymbolNames() map[string]bool {
	return p.patternSyms
}

// ReplacementSymbolNames implementation for the Transformation interface.
func (p *base) ReplacementSymbolNames() map[string]bool {
	return p.replacingSyms
}

// Equivalence implementation for the Transformation interface.
func (p *base) Equivalence() Equivalence {
	return p.equivalence
}
