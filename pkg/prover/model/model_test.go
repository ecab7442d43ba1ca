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
	"testing"

	"github.com/nmsafiri/RESOLVE/pkg/term"
	"github.com/nmsafiri/RESOLVE/pkg/util/collection/pseq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Helpers
// ============================================================================

func terms(items ...string) []*term.Term {
	ts := make([]*term.Term, len(items))
	//
	for i, s := range items {
		ts[i] = term.MustParse(s)
	}
	//
	return ts
}

func newModel(antecedents []string, consequents []string, library ...*Theorem) *Model {
	return NewModel(terms(antecedents...), terms(consequents...), pseq.FromSlice(library))
}

func antecedentStrings(m *Model) []string {
	var items []string
	for _, t := range m.LocalTheorems() {
		items = append(items, t.Assertion().String())
	}
	//
	return items
}

func consequentStrings(m *Model) []string {
	var items []string
	for _, c := range m.Consequents() {
		items = append(items, c.Expression().String())
	}
	//
	return items
}

// checkMultiset checks the multiset of local theorems agrees with the list.
func checkMultiset(t *testing.T, m *Model) {
	counts := make(map[string]uint)
	for _, lt := range m.LocalTheorems() {
		counts[lt.Assertion().String()]++
	}
	//
	keys := m.LocalTheoremSet()
	assert.Len(t, keys, len(counts))
	//
	for _, k := range keys {
		assert.Equal(t, counts[k.String()], m.LocalTheoremMultiplicity(k))
		assert.NotZero(t, m.LocalTheoremMultiplicity(k))
	}
}

type countingListener struct {
	count uint
}

func (p *countingListener) ModelChanged(_ *Model) {
	p.count++
}

// checkViolation checks a given function panics with an invariant error.
func checkViolation(t *testing.T, fn func()) {
	t.Helper()
	//
	defer func() {
		var ierr *InvariantError
		//
		err, _ := recover().(error)
		assert.ErrorAs(t, err, &ierr)
	}()
	//
	fn()
}

// alterStep is a minimal proof step which alters a site and can undo it.
type alterStep struct {
	site Site
	old  *term.Term
}

func applyAlter(m *Model, site Site, replacement *term.Term) {
	old := site.Term()
	m.AlterSite(site, replacement)
	m.AddProofStep(&alterStep{m.SiteAt(site.Section(), site.Index(), site.Path()), old})
}

func (p *alterStep) Undo(m *Model)                     { m.AlterSite(p.site, p.old) }
func (p *alterStep) Transformation() string            { return "alter" }
func (p *alterStep) PrerequisiteConjuncts() []Conjunct { return nil }
func (p *alterStep) AffectedConjuncts() []Conjunct     { return nil }
func (p *alterStep) String() string                    { return "alter " + p.site.String() }

// ============================================================================
// Local theorems & consequents
// ============================================================================

func Test_Model_01(t *testing.T) {
	m := newModel([]string{"(P a)", "(Q b)"}, []string{"(= a a)", "(P a)"})
	//
	assert.Equal(t, []string{"(P a)", "(Q b)"}, antecedentStrings(m))
	assert.Equal(t, []string{"(= a a)", "(P a)"}, consequentStrings(m))
	assert.Equal(t, Given, m.LocalTheorem(0).Justification())
	assert.False(t, m.LocalTheorem(0).IsGoal())
	assert.False(t, m.IsProved())
	assert.Equal(t, "(P a) and\n(Q b)\n  -->\n(= a a) and\n(P a)", m.String())
	checkMultiset(t, m)
}

func Test_Model_02(t *testing.T) {
	m := newModel([]string{"(P a)"}, nil)
	p := term.MustParse("(P a)")
	//
	second := m.AddLocalTheorem(p, Derived{"copy"}, true)
	third := m.InsertLocalTheorem(NewLocalTheorem(term.MustParse("(Q a)"), Given, false), 0)
	//
	assert.Equal(t, []string{"(Q a)", "(P a)", "(P a)"}, antecedentStrings(m))
	assert.Equal(t, uint(2), m.LocalTheoremMultiplicity(p))
	checkMultiset(t, m)
	//
	assert.Equal(t, uint(2), m.RemoveLocalTheorem(second))
	assert.Equal(t, uint(1), m.LocalTheoremMultiplicity(p))
	assert.True(t, m.ContainsLocalTheorem(p))
	checkMultiset(t, m)
	//
	m.RemoveLocalTheorem(m.LocalTheorem(1))
	assert.False(t, m.ContainsLocalTheorem(p))
	assert.Zero(t, m.LocalTheoremMultiplicity(p))
	checkMultiset(t, m)
	//
	index, ok := m.IndexOfLocalTheorem(third)
	assert.True(t, ok)
	assert.Equal(t, uint(0), index)
	_, ok = m.IndexOfLocalTheorem(second)
	assert.False(t, ok)
	// Removing again is an error
	assert.Panics(t, func() { m.RemoveLocalTheorem(second) })
	assert.Panics(t, func() { m.InsertLocalTheorem(third, 0) })
}

func Test_Model_03(t *testing.T) {
	m := newModel(nil, []string{"(P a)"})
	//
	c := m.AddConsequent(term.MustParse("(Q b)"), 0)
	assert.Equal(t, []string{"(Q b)", "(P a)"}, consequentStrings(m))
	//
	index, ok := m.IndexOfConsequent(c)
	assert.True(t, ok)
	assert.Equal(t, uint(0), index)
	assert.Same(t, c, m.RemoveConsequent(0))
	assert.Equal(t, uint(1), m.ConsequentCount())
	m.RemoveConsequent(0)
	assert.True(t, m.IsProved())
	// Conjunctions must be split before they are added
	assert.Panics(t, func() { m.AddConsequent(term.MustParse("(and a b)"), 0) })
	assert.Panics(t, func() { m.RemoveConsequent(0) })
}

func Test_Model_04(t *testing.T) {
	// Multiset invariant under a long sequence of operations
	m := newModel(nil, nil)
	facts := terms("a", "b", "a", "c", "a", "b")
	added := make([]*LocalTheorem, 0)
	//
	for i, f := range facts {
		added = append(added, m.InsertLocalTheorem(NewLocalTheorem(f, Given, false), uint(i/2)))
		checkMultiset(t, m)
	}
	//
	for i := len(added) - 1; i >= 0; i -= 2 {
		m.RemoveLocalTheorem(added[i])
		checkMultiset(t, m)
	}
	//
	assert.Equal(t, uint(3), m.LocalTheoremCount())
}

// ============================================================================
// Sites
// ============================================================================

func Test_Model_05(t *testing.T) {
	m := newModel([]string{"(P (f a) b)", "(Q c)"}, []string{"(= (g a) (g b))", "(R d)"})
	site := m.SiteAt(CONSEQUENTS, 0, pseq.Of[uint](1, 0))
	other := m.SiteAt(CONSEQUENTS, 0, pseq.Of[uint](0))
	first := m.Consequent(0)
	//
	assert.Equal(t, "b", site.Term().String())
	m.AlterSite(site, term.MustParse("a"))
	// In place
	assert.Same(t, first, m.Consequent(0))
	assert.Equal(t, "(= (g a) (g a))", first.Expression().String())
	// Other sites unchanged
	assert.Equal(t, other.Term(), other.Resolve())
	assert.Equal(t, "(R d)", m.SiteAt(CONSEQUENTS, 1, pseq.Empty[uint]()).Resolve().String())
	assert.Equal(t, "(P (f a) b)", m.SiteAt(ANTECEDENTS, 0, pseq.Empty[uint]()).Resolve().String())
}

func Test_Model_06(t *testing.T) {
	m := newModel([]string{"(P (f a) b)", "(Q c)"}, nil)
	old := m.LocalTheorem(0)
	sibling := m.SiteAt(ANTECEDENTS, 0, pseq.Of[uint](1))
	//
	altered := m.AlterSite(m.SiteAt(ANTECEDENTS, 0, pseq.Of[uint](0, 0)), term.MustParse("z"))
	// Replaced by a new local theorem at the same index
	assert.NotSame(t, old, m.LocalTheorem(0))
	assert.Same(t, altered, m.LocalTheorem(0))
	assert.Equal(t, []string{"(P (f z) b)", "(Q c)"}, antecedentStrings(m))
	assert.Equal(t, old.Justification(), m.LocalTheorem(0).Justification())
	assert.Same(t, sibling.Term(), sibling.Resolve())
	checkMultiset(t, m)
}

func Test_Model_07(t *testing.T) {
	m := newModel([]string{"(P a)"}, []string{"(P a)"}, NewTheorem("T", term.MustParse("(= ?x ?x)")))
	n := newModel([]string{"(P a)"}, nil)
	//
	assert.Panics(t, func() { m.AlterSite(m.SiteAt(THEOREM_LIBRARY, 0, pseq.Empty[uint]()), term.True()) })
	assert.Panics(t, func() { m.AlterSite(n.SiteAt(ANTECEDENTS, 0, pseq.Empty[uint]()), term.True()) })
	assert.Panics(t, func() { m.AlterSite(m.SiteAt(ANTECEDENTS, 0, pseq.Empty[uint]()), nil) })
	assert.Panics(t, func() { m.SiteAt(CONSEQUENTS, 1, pseq.Empty[uint]()) })
	assert.Panics(t, func() { m.SiteAt(CONSEQUENTS, 0, pseq.Of[uint](3)) })
	//
	defer func() {
		var ierr *InvariantError
		//
		err, _ := recover().(error)
		assert.ErrorAs(t, err, &ierr)
	}()
	m.UndoLastProofStep()
}

func Test_Model_08(t *testing.T) {
	m := newModel([]string{"(P a)", "(Q b)"}, []string{"(R c)"}, NewTheorem("T", term.MustParse("(S d)")))
	//
	site := m.SiteAt(ANTECEDENTS, 1, pseq.Empty[uint]())
	theorem, ok := m.GetLocalTheoremAncestor(m.SiteAt(ANTECEDENTS, 1, pseq.Of[uint](0)))
	assert.True(t, ok)
	assert.Same(t, m.LocalTheorem(1), theorem)
	_, ok = m.GetLocalTheoremAncestor(m.SiteAt(CONSEQUENTS, 0, pseq.Empty[uint]()))
	assert.False(t, ok)
	//
	assert.True(t, site.IsValid())
	m.RemoveLocalTheorem(m.LocalTheorem(1))
	assert.False(t, site.IsValid())
	assert.Panics(t, func() { site.Resolve() })
}

// ============================================================================
// Iterators
// ============================================================================

func Test_Model_09(t *testing.T) {
	m := newModel([]string{"(P a)", "(Q b)"}, []string{"(R c)"}, NewTheorem("T", term.MustParse("(S d)")))
	//
	sites := m.TopLevelAntecedentAndConsequentSiteIterator().Collect()
	require.Len(t, sites, 3)
	assert.Equal(t, "antecedents[0] (P a)", sites[0].String())
	assert.Equal(t, "antecedents[1] (Q b)", sites[1].String())
	assert.Equal(t, "consequents[0] (R c)", sites[2].String())
	//
	sites = m.TopLevelAntecedentAndGlobalTheoremSiteIterator().Collect()
	require.Len(t, sites, 3)
	assert.Equal(t, "library[0] (S d)", sites[2].String())
	//
	it := m.TopLevelConsequentSiteIterator()
	assert.True(t, it.HasNext())
	it.Next()
	assert.False(t, it.HasNext())
	assert.Panics(t, func() { it.Next() })
}

func Test_Model_10(t *testing.T) {
	m := newModel(nil, []string{"(f (g a) b)", "c"})
	//
	var items []string
	for it := InductiveSiteIterator(m.TopLevelConsequentSiteIterator()); it.HasNext(); {
		items = append(items, it.Next().String())
	}
	//
	assert.Equal(t, []string{
		"consequents[0] (f (g a) b)",
		"consequents[0].0 (g a)",
		"consequents[0].0.0 a",
		"consequents[0].1 b",
		"consequents[1] c",
	}, items)
}

// ============================================================================
// Binding
// ============================================================================

func Test_Model_11(t *testing.T) {
	m := newModel([]string{"(P a)", "(P b)", "(Q a)"}, []string{"(S b)", "(T a)"})
	b1 := NewTopLevelAntecedentBinder(term.MustParse("(P ?x)"))
	b2 := NewTopLevelConsequentBinder(term.MustParse("(S ?x)"))
	//
	results := m.Bind(b1, b2).Collect()
	//
	require.Len(t, results, 1)
	assert.True(t, results[0].BindSites[b1].Equals(m.SiteAt(ANTECEDENTS, 1, pseq.Empty[uint]())))
	assert.True(t, results[0].BindSites[b2].Equals(m.SiteAt(CONSEQUENTS, 0, pseq.Empty[uint]())))
	assert.Equal(t, "{?x ↦ b}", results[0].FreeVariableBindings.String())
}

func Test_Model_12(t *testing.T) {
	m := newModel([]string{"(P a)", "(P b)"}, []string{"(Q a)", "(Q b)"})
	b1 := NewTopLevelAntecedentBinder(term.MustParse("(P ?x)"))
	b2 := NewTopLevelAntecedentAndConsequentBinder(term.MustParse("(?f ?y)"))
	// Every antecedent crossed with every site
	results := m.Bind(b1, b2).Collect()
	require.Len(t, results, 8)
	assert.Equal(t, "{?f ↦ P, ?x ↦ a, ?y ↦ a}", results[0].FreeVariableBindings.String())
	assert.Equal(t, "{?f ↦ Q, ?x ↦ a, ?y ↦ b}", results[3].FreeVariableBindings.String())
	assert.Equal(t, "{?f ↦ P, ?x ↦ b, ?y ↦ a}", results[4].FreeVariableBindings.String())
	assert.Equal(t, uint(1), results[7].BindSites[b1].Index())
	assert.Equal(t, CONSEQUENTS, results[7].BindSites[b2].Section())
}

func Test_Model_13(t *testing.T) {
	m := newModel([]string{"(P a)"}, nil)
	// Empty binder set has exactly one result
	results := m.Bind().Collect()
	require.Len(t, results, 1)
	assert.Empty(t, results[0].BindSites)
	assert.Equal(t, uint(0), results[0].FreeVariableBindings.Len())
	// No matches
	assert.False(t, m.Bind(NewTopLevelConsequentBinder(term.MustParse("?x"))).HasNext())
	// Variables are shared between binders
	b1 := NewTopLevelAntecedentBinder(term.MustParse("(P ?x)"))
	b2 := NewTopLevelAntecedentBinder(term.MustParse("(Q ?x)"))
	assert.False(t, m.Bind(b1, b2).HasNext())
	m.AddLocalTheorem(term.MustParse("(Q b)"), Given, false)
	assert.False(t, m.Bind(b1, b2).HasNext())
	m.AddLocalTheorem(term.MustParse("(Q a)"), Given, false)
	assert.Equal(t, uint(1), uint(len(m.Bind(b1, b2).Collect())))
}

func Test_Model_14(t *testing.T) {
	m := newModel(nil, []string{"(+ (+ a 0) 0)"})
	b := NewInductiveConsequentBinder(term.MustParse("(+ ?x 0)"))
	//
	results := m.Bind(b).Collect()
	require.Len(t, results, 2)
	assert.Equal(t, "{?x ↦ (+ a 0)}", results[0].FreeVariableBindings.String())
	assert.Equal(t, "{?x ↦ a}", results[1].FreeVariableBindings.String())
	assert.Equal(t, uint(1), results[1].BindSites[b].Path().Len())
	//
	a := newModel([]string{"(f (g a))"}, nil)
	assert.Len(t, a.Bind(NewInductiveAntecedentBinder(term.MustParse("(g ?x)"))).Collect(), 1)
}

// ============================================================================
// History & events
// ============================================================================

func Test_Model_15(t *testing.T) {
	m := newModel([]string{"(P a b)"}, []string{"(Q (f a))"})
	before := m.String()
	fingerprint := m.Fingerprint()
	//
	applyAlter(m, m.SiteAt(CONSEQUENTS, 0, pseq.Of[uint](0, 0)), term.MustParse("b"))
	applyAlter(m, m.SiteAt(ANTECEDENTS, 0, pseq.Of[uint](1)), term.MustParse("c"))
	assert.Equal(t, uint(2), m.ProofDepth())
	assert.Len(t, m.ProofSteps(), 2)
	assert.NotEqual(t, fingerprint, m.Fingerprint())
	//
	m.UndoLastProofStep()
	m.UndoLastProofStep()
	assert.Equal(t, before, m.String())
	assert.Equal(t, fingerprint, m.Fingerprint())
	assert.Zero(t, m.ProofDepth())
}

func Test_Model_16(t *testing.T) {
	// Antecedent order does not affect the fingerprint
	m := newModel([]string{"a", "b"}, []string{"c", "d"})
	n := newModel([]string{"b", "a"}, []string{"c", "d"})
	o := newModel([]string{"a", "b"}, []string{"d", "c"})
	//
	assert.Equal(t, m.Fingerprint(), n.Fingerprint())
	assert.NotEqual(t, m.Fingerprint(), o.Fingerprint())
}

func Test_Model_17(t *testing.T) {
	m := newModel(nil, []string{"a"})
	listener := &countingListener{}
	m.AddChangeListener(listener)
	m.SetChangeEventMode(Always())
	//
	m.AddLocalTheorem(term.MustParse("b"), Given, false)
	m.AddLocalTheorem(term.MustParse("c"), Given, false)
	assert.Equal(t, uint(2), listener.count)
	// Intermittent
	m.SetChangeEventMode(Intermittent(3))
	m.AddLocalTheorem(term.MustParse("d"), Given, false)
	m.AddLocalTheorem(term.MustParse("e"), Given, false)
	assert.Equal(t, uint(2), listener.count)
	m.AddLocalTheorem(term.MustParse("f"), Given, false)
	assert.Equal(t, uint(3), listener.count)
	// Important changes are always reported
	m.RemoveConsequent(0)
	assert.Equal(t, uint(4), listener.count)
	//
	m.RemoveChangeListener(listener)
	m.SetChangeEventMode(Always())
	m.AddLocalTheorem(term.MustParse("g"), Given, false)
	assert.Equal(t, uint(4), listener.count)
}

func Test_Model_18(t *testing.T) {
	m := newModel([]string{"(P (f a))", "(Q b)"}, []string{"(R (g c))"})
	original := m.LocalTheorem(1)
	stale := m.SiteAt(ANTECEDENTS, 0, pseq.Of[uint](0, 0))
	staleConsequent := m.SiteAt(CONSEQUENTS, 0, pseq.Of[uint](0, 0))
	//
	m.AlterSite(m.SiteAt(ANTECEDENTS, 0, pseq.Of[uint](0)), term.MustParse("b"))
	m.AlterSite(m.SiteAt(CONSEQUENTS, 0, pseq.Of[uint](0)), term.MustParse("d"))
	assert.False(t, stale.IsValid())
	// Stale sites leave the model untouched
	checkViolation(t, func() { m.AlterSite(stale, term.MustParse("c")) })
	checkViolation(t, func() { m.AlterSite(staleConsequent, term.MustParse("c")) })
	//
	assert.Equal(t, []string{"(P b)", "(Q b)"}, antecedentStrings(m))
	assert.Equal(t, []string{"(R d)"}, consequentStrings(m))
	assert.Same(t, original, m.LocalTheorem(1))
	assert.Equal(t, uint(1), m.LocalTheoremMultiplicity(term.MustParse("(P b)")))
	checkMultiset(t, m)
}

func Test_Model_19(t *testing.T) {
	m := newModel(nil, []string{"(Q a)"})
	cell := m.Consequent(0)
	// Consequents are never conjunctions
	checkViolation(t, func() { m.AlterSite(m.SiteAt(CONSEQUENTS, 0, pseq.Empty[uint]()), term.MustParse("(and (P a) (R a))")) })
	checkViolation(t, func() { m.AddConsequent(term.MustParse("(and (P a))"), 0) })
	assert.Equal(t, []string{"(Q a)"}, consequentStrings(m))
	// Nested conjunctions are fine
	m.AlterSite(m.SiteAt(CONSEQUENTS, 0, pseq.Of[uint](0)), term.MustParse("(and b c)"))
	assert.Equal(t, []string{"(Q (and b c))"}, consequentStrings(m))
	assert.Same(t, cell, m.Consequent(0))
}
