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
	"github.com/nmsafiri/RESOLVE/pkg/util/collection/pseq"
)

var topLevel = pseq.Empty[uint]()

// stepInfo holds what every step records about its origin.
type stepInfo struct {
	transformation string
	prerequisites  []model.Conjunct
}

// Transformation implementation for the model.ProofStep interface.
func (p *stepInfo) Transformation() string {
	return p.transformation
}

// PrerequisiteConjuncts implementation for the model.ProofStep interface.
func (p *stepInfo) PrerequisiteConjuncts() []model.Conjunct {
	return p.prerequisites
}

// ModifyConsequentStep records the in-place alteration of a consequent.
type ModifyConsequentStep struct {
	stepInfo
	index    uint
	cell     *model.Consequent
	original *term.Term
	// Contents of the cell once altered
	replacement *term.Term
}

// NewModifyConsequentStep constructs a step for a (just altered) consequent
// cell at a given index, whose previous contents are given.
func NewModifyConsequentStep(transformation string, index uint, cell *model.Consequent, original *term.Term,
	prerequisites ...model.Conjunct) *ModifyConsequentStep {
	return &ModifyConsequentStep{stepInfo{transformation, prerequisites}, index, cell, original,
		cell.Expression()}
}

// Undo implementation for the model.ProofStep interface.
func (p *ModifyConsequentStep) Undo(m *model.Model) {
	m.AlterSite(m.SiteAt(model.CONSEQUENTS, p.index, topLevel), p.original)
}

// AffectedConjuncts implementation for the model.ProofStep interface.
func (p *ModifyConsequentStep) AffectedConjuncts() []model.Conjunct {
	return []model.Conjunct{p.cell}
}

func (p *ModifyConsequentStep) String() string {
	return fmt.Sprintf("%s: consequent %s becomes %s", p.transformation, p.original, p.replacement)
}

// ModifyAntecedentStep records the replacement of a local theorem by an
// altered one.
type ModifyAntecedentStep struct {
	stepInfo
	index       uint
	original    *model.LocalTheorem
	replacement *model.LocalTheorem
}

// NewModifyAntecedentStep constructs a step for a local theorem at a given
// index.
func NewModifyAntecedentStep(transformation string, index uint, original *model.LocalTheorem,
	replacement *model.LocalTheorem, prerequisites ...model.Conjunct) *ModifyAntecedentStep {
	return &ModifyAntecedentStep{stepInfo{transformation, append(prerequisites, original)}, index, original,
		replacement}
}

// Undo implementation for the model.ProofStep interface.
func (p *ModifyAntecedentStep) Undo(m *model.Model) {
	m.RemoveLocalTheorem(p.replacement)
	m.InsertLocalTheorem(p.original, p.index)
}

// AffectedConjuncts implementation for the model.ProofStep interface.
func (p *ModifyAntecedentStep) AffectedConjuncts() []model.Conjunct {
	return []model.Conjunct{p.replacement}
}

func (p *ModifyAntecedentStep) String() string {
	return fmt.Sprintf("%s: antecedent %s becomes %s", p.transformation, p.original.Assertion(),
		p.replacement.Assertion())
}

// RemoveConsequentStep records the removal of a consequent.
type RemoveConsequentStep struct {
	stepInfo
	index uint
	cell  *model.Consequent
}

// NewRemoveConsequentStep constructs a step for a consequent removed from a
// given index.
func NewRemoveConsequentStep(transformation string, index uint, cell *model.Consequent,
	prerequisites ...model.Conjunct) *RemoveConsequentStep {
	return &RemoveConsequentStep{stepInfo{transformation, prerequisites}, index, cell}
}

// Undo implementation for the model.ProofStep interface.
func (p *RemoveConsequentStep) Undo(m *model.Model) {
	m.InsertConsequent(p.cell, p.index)
}

// AffectedConjuncts implementation for the model.ProofStep interface.
func (p *RemoveConsequentStep) AffectedConjuncts() []model.Conjunct {
	return []model.Conjunct{p.cell}
}

func (p *RemoveConsequentStep) String() string {
	return fmt.Sprintf("%s: consequent %s established", p.transformation, p.cell)
}

// IntroduceLocalTheoremStep records the addition of one or more local
// theorems.
type IntroduceLocalTheoremStep struct {
	stepInfo
	theorems []*model.LocalTheorem
}

// NewIntroduceLocalTheoremStep constructs a step for newly added theorems.
func NewIntroduceLocalTheoremStep(transformation string, theorems []*model.LocalTheorem,
	prerequisites ...model.Conjunct) *IntroduceLocalTheoremStep {
	return &IntroduceLocalTheoremStep{stepInfo{transformation, prerequisites}, theorems}
}

// Undo implementation for the model.ProofStep interface.
func (p *IntroduceLocalTheoremStep) Undo(m *model.Model) {
	for i := len(p.theorems); i > 0; i-- {
		m.RemoveLocalTheorem(p.theorems[i-1])
	}
}

// AffectedConjuncts implementation for the model.ProofStep interface.
func (p *IntroduceLocalTheoremStep) AffectedConjuncts() []model.Conjunct {
	conjuncts := make([]model.Conjunct, len(p.theorems))
	//
	for i, t := range p.theorems {
		conjuncts[i] = t
	}
	//
	return conjuncts
}

func (p *IntroduceLocalTheoremStep) String() string {
	var items []string
	//
	for _, t := range p.theorems {
		items = append(items, t.Assertion().String())
	}
	//
	return fmt.Sprintf("%s: introduce %s", p.transformation, strings.Join(items, " and "))
}

// RemoveLocalTheoremStep records the removal of a local theorem.
type RemoveLocalTheoremStep struct {
	stepInfo
	index   uint
	theorem *model.LocalTheorem
}

// NewRemoveLocalTheoremStep constructs a step for a local theorem removed
// from a given index.
func NewRemoveLocalTheoremStep(transformation string, index uint, theorem *model.LocalTheorem,
	prerequisites ...model.Conjunct) *RemoveLocalTheoremStep {
	return &RemoveLocalTheoremStep{stepInfo{transformation, prerequisites}, index, theorem}
}

// Undo implementation for the model.ProofStep interface.
func (p *RemoveLocalTheoremStep) Undo(m *model.Model) {
	m.InsertLocalTheorem(p.theorem, p.index)
}

// AffectedConjuncts implementation for the model.ProofStep interface.
func (p *RemoveLocalTheoremStep) AffectedConjuncts() []model.Conjunct {
	return []model.Conjunct{p.theorem}
}

func (p *RemoveLocalTheoremStep) String() string {
	return fmt.Sprintf("%s: remove antecedent %s", p.transformation, p.theorem.Assertion())
}
