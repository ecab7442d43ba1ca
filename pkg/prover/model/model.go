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
package model

import (
	"slices"
	"strings"

	"github.com/nmsafiri/RESOLVE/pkg/term"
	"github.com/nmsafiri/RESOLVE/pkg/util/collection/hash"
	"github.com/nmsafiri/RESOLVE/pkg/util/collection/pseq"
	"github.com/nmsafiri/RESOLVE/pkg/util/collection/stack"
)

// Model is the state of a single proof attempt: the local theorems known to
// hold, the consequents remaining to be proved, and a read-only library of
// global theorems.  Every change is made through a proof step, which can be
// undone.  A model is not safe for concurrent use.
type Model struct {
	// Multiset of local theorem assertions.  Its keys are exactly the
	// assertions of localTheorems, and no count is zero.
	theoremSet *hash.Map[*term.Term, uint]
	// Local theorems in presentation order.  Each is a distinct object.
	localTheorems []*LocalTheorem
	// Goals remaining.  None has a top-level conjunction.
	consequents []*Consequent
	library     pseq.Sequence[*Theorem]
	history     *stack.Stack[ProofStep]
	listeners   []ChangeListener
	mode        *ChangeEventMode
}

// NewModel constructs a model from the antecedents and consequents of a
// verification condition, along with a theorem library.  Antecedents become
// local theorems justified as given.
func NewModel(antecedents []*term.Term, consequents []*term.Term, library pseq.Sequence[*Theorem]) *Model {
	p := &Model{
		theoremSet: hash.NewMap[*term.Term, uint](uint(len(antecedents))),
		library:    library,
		history:    stack.NewStack[ProofStep](),
		mode:       Intermittent(DEFAULT_CHANGE_PERIOD),
	}
	//
	for _, a := range antecedents {
		p.AddLocalTheorem(a, Given, false)
	}
	//
	for _, c := range consequents {
		p.AddConsequent(c, uint(len(p.consequents)))
	}
	//
	return p
}

// ============================================================================
// Change notification
// ============================================================================

// SetChangeEventMode determines how often listeners are notified.
func (p *Model) SetChangeEventMode(mode *ChangeEventMode) {
	p.mode = mode
}

// AddChangeListener registers a listener for changes to this model.
func (p *Model) AddChangeListener(l ChangeListener) {
	p.listeners = append(p.listeners, l)
}

// RemoveChangeListener unregisters a listener.
func (p *Model) RemoveChangeListener(l ChangeListener) {
	if i := slices.Index(p.listeners, l); i >= 0 {
		p.listeners = slices.Delete(p.listeners, i, i+1)
	}
}

func (p *Model) modelChanged(important bool) {
	if p.mode.Report(important) {
		for _, l := range p.listeners {
			l.ModelChanged(p)
		}
	}
}

// ============================================================================
// Local theorems
// ============================================================================

// AddLocalTheorem appends a new local theorem.
func (p *Model) AddLocalTheorem(assertion *term.Term, j Justification, goal bool) *LocalTheorem {
	return p.InsertLocalTheorem(NewLocalTheorem(assertion, j, goal), uint(len(p.localTheorems)))
}

// InsertLocalTheorem inserts a given local theorem at a given position.
func (p *Model) InsertLocalTheorem(theorem *LocalTheorem, index uint) *LocalTheorem {
	if theorem == nil {
		violation("nil local theorem")
	} else if index > uint(len(p.localTheorems)) {
		violation("local theorem index %d out of bounds", index)
	} else if slices.Contains(p.localTheorems, theorem) {
		violation("local theorem %s already present", theorem)
	}
	//
	p.localTheorems = slices.Insert(p.localTheorems, int(index), theorem)
	//
	count, _ := p.theoremSet.Get(theorem.assertion)
	p.theoremSet.Insert(theorem.assertion, count+1)
	//
	p.modelChanged(false)
	//
	return theorem
}

// RemoveLocalTheorem removes a given local theorem, returning the index it
// occupied.
func (p *Model) RemoveLocalTheorem(theorem *LocalTheorem) uint {
	i := slices.Index(p.localTheorems, theorem)
	//
	if i < 0 {
		violation("local theorem %s not present", theorem)
	}
	//
	p.localTheorems = slices.Delete(p.localTheorems, i, i+1)
	//
	if count, _ := p.theoremSet.Get(theorem.assertion); count > 1 {
		p.theoremSet.Insert(theorem.assertion, count-1)
	} else {
		p.theoremSet.Remove(theorem.assertion)
	}
	//
	p.modelChanged(false)
	//
	return uint(i)
}

// LocalTheorem returns the local theorem at a given index.
func (p *Model) LocalTheorem(index uint) *LocalTheorem {
	if index >= uint(len(p.localTheorems)) {
		violation("local theorem index %d out of bounds", index)
	}
	//
	return p.localTheorems[index]
}

// LocalTheorems returns a copy of the local theorems in order.
func (p *Model) LocalTheorems() []*LocalTheorem {
	return slices.Clone(p.localTheorems)
}

// LocalTheoremCount returns the number of local theorems.
func (p *Model) LocalTheoremCount() uint {
	return uint(len(p.localTheorems))
}

// IndexOfLocalTheorem returns the position of a given local theorem.
func (p *Model) IndexOfLocalTheorem(theorem *LocalTheorem) (uint, bool) {
	i := slices.Index(p.localTheorems, theorem)
	//
	return uint(max(i, 0)), i >= 0
}

// ContainsLocalTheorem determines whether some local theorem asserts a given
// fact.
func (p *Model) ContainsLocalTheorem(assertion *term.Term) bool {
	return p.theoremSet.ContainsKey(assertion)
}

// LocalTheoremMultiplicity returns the number of local theorems asserting a
// given fact.
func (p *Model) LocalTheoremMultiplicity(assertion *term.Term) uint {
	count, _ := p.theoremSet.Get(assertion)
	return count
}

// LocalTheoremSet returns the distinct assertions of the local theorems.
func (p *Model) LocalTheoremSet() []*term.Term {
	return p.theoremSet.Keys()
}

// GetLocalTheoremAncestor returns the local theorem containing a given site.
// This returns false for sites outside the antecedents.
func (p *Model) GetLocalTheoremAncestor(site Site) (*LocalTheorem, bool) {
	p.checkSite(site)
	//
	if site.section != ANTECEDENTS || site.index >= uint(len(p.localTheorems)) {
		return nil, false
	}
	//
	return p.localTheorems[site.index], true
}

// ============================================================================
// Consequents
// ============================================================================

// AddConsequent inserts a new consequent at a given position.
func (p *Model) AddConsequent(expression *term.Term, index uint) *Consequent {
	return p.InsertConsequent(NewConsequent(expression), index)
}

// InsertConsequent inserts a given consequent cell at a given position.
func (p *Model) InsertConsequent(consequent *Consequent, index uint) *Consequent {
	if consequent == nil || consequent.expression == nil {
		violation("nil consequent")
	} else if index > uint(len(p.consequents)) {
		violation("consequent index %d out of bounds", index)
	} else if consequent.expression.IsConjunction() {
		violation("consequent %s is a conjunction", consequent)
	}
	//
	p.consequents = slices.Insert(p.consequents, int(index), consequent)
	//
	p.modelChanged(false)
	//
	return consequent
}

// RemoveConsequent removes the consequent at a given position.
func (p *Model) RemoveConsequent(index uint) *Consequent {
	consequent := p.Consequent(index)
	p.consequents = slices.Delete(p.consequents, int(index), int(index)+1)
	// Emptying the consequents completes the proof.
	p.modelChanged(len(p.consequents) == 0)
	//
	return consequent
}

// Consequent returns the consequent at a given index.
func (p *Model) Consequent(index uint) *Consequent {
	if index >= uint(len(p.consequents)) {
		violation("consequent index %d out of bounds", index)
	}
	//
	return p.consequents[index]
}

// IndexOfConsequent returns the position of a given consequent cell.
func (p *Model) IndexOfConsequent(consequent *Consequent) (uint, bool) {
	i := slices.Index(p.consequents, consequent)
	//
	return uint(max(i, 0)), i >= 0
}

// Consequents returns a copy of the consequents in order.
func (p *Model) Consequents() []*Consequent {
	return slices.Clone(p.consequents)
}

// ConsequentCount returns the number of consequents remaining.
func (p *Model) ConsequentCount() uint {
	return uint(len(p.consequents))
}

// IsProved determines whether every consequent has been discharged.
func (p *Model) IsProved() bool {
	return len(p.consequents) == 0
}

// ============================================================================
// Theorem library
// ============================================================================

// Library returns the global theorem library.
func (p *Model) Library() pseq.Sequence[*Theorem] {
	return p.library
}

// ============================================================================
// Sites
// ============================================================================

// SiteAt constructs the site for a given address, which must be valid.
func (p *Model) SiteAt(section Section, index uint, path pseq.Sequence[uint]) Site {
	root, ok := p.topLevel(section, index)
	//
	if !ok {
		violation("no %s entry at index %d", section, index)
	} else if !root.HasPath(path) {
		violation("invalid path for %s[%d]", section, index)
	}
	//
	return Site{p, section, index, path, root.SubTerm(path)}
}

// AlterSite replaces the sub-term at a given site.  The entry containing the
// site is rebuilt along the path, and everything else is left untouched.
// Altering an antecedent replaces its local theorem with a new one at the same
// position, carrying the same justification.  Altering a consequent replaces
// the contents of its cell.  Library theorems cannot be altered.
func (p *Model) AlterSite(site Site, replacement *term.Term) Conjunct {
	p.checkSite(site)
	//
	if replacement == nil {
		violation("cannot alter %s to nil", site)
	}
	//
	switch site.section {
	case ANTECEDENTS:
		old := p.LocalTheorem(site.index)
		altered := p.alter(site, old.assertion, replacement)
		p.RemoveLocalTheorem(old)
		//
		return p.InsertLocalTheorem(NewLocalTheorem(altered, old.justification, old.goal), site.index)
	case CONSEQUENTS:
		cell := p.Consequent(site.index)
		altered := p.alter(site, cell.expression, replacement)
		//
		if altered.IsConjunction() {
			violation("cannot alter %s to conjunction %s", site, altered)
		}
		//
		cell.expression = altered
		p.modelChanged(false)
		//
		return cell
	}
	//
	violation("cannot alter library theorem %s", site)
	//
	return nil
}

// alter rebuilds a top-level term with the sub-term at a given site replaced,
// leaving the model untouched when the site is stale.
func (p *Model) alter(site Site, root *term.Term, replacement *term.Term) *term.Term {
	if !root.HasPath(site.path) {
		violation("stale site %s", site)
	}
	//
	return root.WithSiteAltered(site.path, replacement)
}

func (p *Model) checkSite(site Site) {
	if site.model != p {
		violation("site %s does not belong to this model", site)
	}
}

func (p *Model) topLevel(section Section, index uint) (*term.Term, bool) {
	switch section {
	case ANTECEDENTS:
		if index < uint(len(p.localTheorems)) {
			return p.localTheorems[index].assertion, true
		}
	case CONSEQUENTS:
		if index < uint(len(p.consequents)) {
			return p.consequents[index].expression, true
		}
	case THEOREM_LIBRARY:
		if index < p.library.Len() {
			return p.library.Get(index).assertion, true
		}
	}
	//
	return nil, false
}

func (p *Model) sectionLen(section Section) uint {
	switch section {
	case ANTECEDENTS:
		return uint(len(p.localTheorems))
	case CONSEQUENTS:
		return uint(len(p.consequents))
	default:
		return p.library.Len()
	}
}

// ============================================================================
// Proof steps
// ============================================================================

// AddProofStep records a step which has just been applied.
func (p *Model) AddProofStep(step ProofStep) {
	p.history.Push(step)
	p.modelChanged(false)
}

// UndoLastProofStep reverses the most recent step.
func (p *Model) UndoLastProofStep() {
	if p.history.IsEmpty() {
		violation("no proof step to undo")
	}
	//
	p.history.Top().Undo(p)
	p.history.Pop()
}

// ProofSteps returns the steps applied so far, earliest first.
func (p *Model) ProofSteps() []ProofStep {
	return p.history.Items()
}

// ProofDepth returns the number of steps applied so far.
func (p *Model) ProofDepth() uint {
	return p.history.Len()
}

// ============================================================================
// Misc
// ============================================================================

// Fingerprint returns a hash of the antecedent multiset and the consequent
// list, for detecting previously visited states.   The order of antecedents
// does not matter.
func (p *Model) Fingerprint() uint64 {
	var antecedents, consequents uint64 = 0, hash.Offset64
	//
	for _, t := range p.localTheorems {
		antecedents += hash.Mix(hash.Offset64, t.assertion.Hash())
	}
	//
	for _, c := range p.consequents {
		consequents = hash.Mix(consequents, c.expression.Hash())
	}
	//
	return hash.Mix(hash.Mix(hash.Offset64, antecedents), consequents)
}

// StateKey renders the antecedent multiset and the consequent list in a
// canonical form, such that two models have the same key exactly when they
// have the same state (the order of antecedents aside).
func (p *Model) StateKey() string {
	var (
		builder     strings.Builder
		antecedents = make([]string, len(p.localTheorems))
	)
	//
	for i, t := range p.localTheorems {
		antecedents[i] = t.assertion.String()
	}
	//
	slices.Sort(antecedents)
	//
	for _, a := range antecedents {
		builder.WriteString(a)
		builder.WriteString(";")
	}
	//
	builder.WriteString("-->")
	//
	for _, c := range p.consequents {
		builder.WriteString(";")
		builder.WriteString(c.expression.String())
	}
	//
	return builder.String()
}

func (p *Model) String() string {
	var builder strings.Builder
	//
	for i, t := range p.localTheorems {
		if i != 0 {
			builder.WriteString(" and\n")
		}
		//
		builder.WriteString(t.assertion.String())
	}
	//
	builder.WriteString("\n  -->\n")
	//
	for i, c := range p.consequents {
		if i != 0 {
			builder.WriteString(" and\n")
		}
		//
		builder.WriteString(c.expression.String())
	}
	//
	return builder.String()
}
