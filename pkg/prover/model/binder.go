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
	"github.com/nmsafiri/RESOLVE/pkg/term"
	"github.com/nmsafiri/RESOLVE/pkg/util/collection/iter"
)

// Binder describes where to look for a match within a model, and how to accept
// a candidate site.
type Binder interface {
	// InterestingSites returns the sites to consider, in the order they should
	// be considered, given the sites bound by earlier binders.
	InterestingSites(model *Model, boundSoFar []Site) iter.Iterator[Site]
	// ConsiderSite attempts to bind a candidate site, taking into account the
	// bindings fixed by earlier binders.  This returns only the newly bound
	// free variables, or a *term.BindingError when the site is rejected.
	ConsiderSite(site Site, assumed *term.Bindings) (*term.Bindings, error)
}

// BindResult is a successful joint binding of a set of binders.
type BindResult struct {
	// The site bound by each binder.
	BindSites map[Binder]Site
	// The free variable bindings accumulated across all binders.
	FreeVariableBindings *term.Bindings
}

// Bind lazily enumerates every consistent joint binding for the given
// binders.  Binders bind in the order given, and each binder considers its
// sites in order.  An empty set of binders has exactly one (empty) result.
func (p *Model) Bind(binders ...Binder) iter.Iterator[*BindResult] {
	return newBinderIterator(p, binders, term.NewBindings(), nil)
}

// binderIterator performs a depth-first search for joint bindings.  The first
// binder is bound to each of its sites in turn, and for every success the
// remaining binders are searched recursively.
type binderIterator struct {
	model      *Model
	first      Binder
	rest       []Binder
	assumed    *term.Bindings
	boundSoFar []Site
	// Remaining candidate sites for the first binder
	sites iter.Iterator[Site]
	// Current site of the first binder, and what it bound
	site         Site
	siteBindings *term.Bindings
	// Results for the remaining binders under the current site
	nested iter.Iterator[*BindResult]
	next   *BindResult
}

func newBinderIterator(model *Model, binders []Binder, assumed *term.Bindings,
	boundSoFar []Site) *binderIterator {
	p := &binderIterator{model: model, assumed: assumed, boundSoFar: boundSoFar}
	//
	if len(binders) == 0 {
		p.next = &BindResult{make(map[Binder]Site), term.NewBindings()}
		return p
	}
	//
	p.first, p.rest = binders[0], binders[1:]
	p.sites = p.first.InterestingSites(model, boundSoFar)
	p.nested = iter.NewEmptyIterator[*BindResult]()
	p.setUpNext()
	//
	return p
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *binderIterator) HasNext() bool {
	return p.next != nil
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *binderIterator) Next() *BindResult {
	if p.next == nil {
		panic("iterator exhausted")
	}
	//
	result := p.next
	p.setUpNext()
	//
	return result
}

// Append another iterator onto the end of this iterator.
//
//nolint:revive
func (p *binderIterator) Append(other iter.Iterator[*BindResult]) iter.Iterator[*BindResult] {
	return iter.NewAppendIterator[*BindResult](p, other)
}

// Collect allocates a new array containing all remaining items.
//
//nolint:revive
func (p *binderIterator) Collect() []*BindResult {
	return iter.Collect[*BindResult](p)
}

func (p *binderIterator) setUpNext() {
	if p.first == nil {
		p.next = nil
		return
	}
	//
	for !p.nested.HasNext() && p.sites.HasNext() {
		site := p.sites.Next()
		bindings, err := p.first.ConsiderSite(site, p.assumed)
		// Rejected sites are simply skipped
		if err != nil {
			continue
		}
		//
		assumed := p.assumed.Clone()
		assumed.PutAll(bindings)
		bound := append(append(make([]Site, 0, len(p.boundSoFar)+1), p.boundSoFar...), site)
		//
		p.site, p.siteBindings = site, bindings
		p.nested = newBinderIterator(p.model, p.rest, assumed, bound)
	}
	//
	if !p.nested.HasNext() {
		p.next = nil
		return
	}
	//
	p.next = p.nested.Next()
	p.next.BindSites[p.first] = p.site
	p.next.FreeVariableBindings.PutAll(p.siteBindings)
}

// ============================================================================
// Binder strategies
// ============================================================================

// patternBinder accepts any site whose term matches a pattern, once the
// bindings of earlier binders have been substituted into it.
type patternBinder struct {
	pattern *term.Term
}

// Pattern returns the pattern matched by this binder.
func (p *patternBinder) Pattern() *term.Term {
	return p.pattern
}

// ConsiderSite implementation for the Binder interface.
func (p *patternBinder) ConsiderSite(site Site, assumed *term.Bindings) (*term.Bindings, error) {
	return p.pattern.Substitute(assumed).BindTo(site.Term())
}

// TopLevelAntecedentBinder matches a pattern against top-level local theorems.
type TopLevelAntecedentBinder struct{ patternBinder }

// NewTopLevelAntecedentBinder constructs a binder for a given pattern.
func NewTopLevelAntecedentBinder(pattern *term.Term) *TopLevelAntecedentBinder {
	return &TopLevelAntecedentBinder{patternBinder{pattern}}
}

// InterestingSites implementation for the Binder interface.
func (p *TopLevelAntecedentBinder) InterestingSites(model *Model, _ []Site) iter.Iterator[Site] {
	return model.TopLevelAntecedentSiteIterator()
}

// TopLevelConsequentBinder matches a pattern against top-level consequents.
type TopLevelConsequentBinder struct{ patternBinder }

// NewTopLevelConsequentBinder constructs a binder for a given pattern.
func NewTopLevelConsequentBinder(pattern *term.Term) *TopLevelConsequentBinder {
	return &TopLevelConsequentBinder{patternBinder{pattern}}
}

// InterestingSites implementation for the Binder interface.
func (p *TopLevelConsequentBinder) InterestingSites(model *Model, _ []Site) iter.Iterator[Site] {
	return model.TopLevelConsequentSiteIterator()
}

// TopLevelAntecedentAndConsequentBinder matches a pattern against top-level
// local theorems and then top-level consequents.
type TopLevelAntecedentAndConsequentBinder struct{ patternBinder }

// NewTopLevelAntecedentAndConsequentBinder constructs a binder for a given
// pattern.
func NewTopLevelAntecedentAndConsequentBinder(pattern *term.Term) *TopLevelAntecedentAndConsequentBinder {
	return &TopLevelAntecedentAndConsequentBinder{patternBinder{pattern}}
}

// InterestingSites implementation for the Binder interface.
func (p *TopLevelAntecedentAndConsequentBinder) InterestingSites(model *Model, _ []Site) iter.Iterator[Site] {
	return model.TopLevelAntecedentAndConsequentSiteIterator()
}

// InductiveConsequentBinder matches a pattern against every sub-site of every
// consequent.
type InductiveConsequentBinder struct{ patternBinder }

// NewInductiveConsequentBinder constructs a binder for a given pattern.
func NewInductiveConsequentBinder(pattern *term.Term) *InductiveConsequentBinder {
	return &InductiveConsequentBinder{patternBinder{pattern}}
}

// InterestingSites implementation for the Binder interface.
func (p *InductiveConsequentBinder) InterestingSites(model *Model, _ []Site) iter.Iterator[Site] {
	return InductiveSiteIterator(model.TopLevelConsequentSiteIterator())
}

// InductiveAntecedentBinder matches a pattern against every sub-site of every
// local theorem.
type InductiveAntecedentBinder struct{ patternBinder }

// NewInductiveAntecedentBinder constructs a binder for a given pattern.
func NewInductiveAntecedentBinder(pattern *term.Term) *InductiveAntecedentBinder {
	return &InductiveAntecedentBinder{patternBinder{pattern}}
}

// InterestingSites implementation for the Binder interface.
func (p *InductiveAntecedentBinder) InterestingSites(model *Model, _ []Site) iter.Iterator[Site] {
	return InductiveSiteIterator(model.TopLevelAntecedentSiteIterator())
}
