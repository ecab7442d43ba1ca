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
	"github.com/nmsafiri/RESOLVE/pkg/util/collection/iter"
	"github.com/nmsafiri/RESOLVE/pkg/util/collection/pseq"
	"github.com/nmsafiri/RESOLVE/pkg/util/collection/stack"
)

// TopLevelAntecedentSiteIterator visits the site of each local theorem.
func (p *Model) TopLevelAntecedentSiteIterator() iter.Iterator[Site] {
	return &sectionIterator{p, ANTECEDENTS, 0}
}

// TopLevelConsequentSiteIterator visits the site of each consequent.
func (p *Model) TopLevelConsequentSiteIterator() iter.Iterator[Site] {
	return &sectionIterator{p, CONSEQUENTS, 0}
}

// TopLevelGlobalTheoremsIterator visits the site of each library theorem.
func (p *Model) TopLevelGlobalTheoremsIterator() iter.Iterator[Site] {
	return &sectionIterator{p, THEOREM_LIBRARY, 0}
}

// TopLevelAntecedentAndConsequentSiteIterator visits every local theorem site,
// followed by every consequent site.
func (p *Model) TopLevelAntecedentAndConsequentSiteIterator() iter.Iterator[Site] {
	return p.TopLevelAntecedentSiteIterator().Append(p.TopLevelConsequentSiteIterator())
}

// TopLevelAntecedentAndGlobalTheoremSiteIterator visits every local theorem
// site, followed by every library theorem site.
func (p *Model) TopLevelAntecedentAndGlobalTheoremSiteIterator() iter.Iterator[Site] {
	return p.TopLevelAntecedentSiteIterator().Append(p.TopLevelGlobalTheoremsIterator())
}

// InductiveSiteIterator visits, for each site of a given iterator, that site
// followed by all of its sub-sites in pre-order.
func InductiveSiteIterator(sites iter.Iterator[Site]) iter.Iterator[Site] {
	return iter.NewFlattenIterator(sites, SubSiteIterator)
}

// SubSiteIterator visits a given site and all of its sub-sites in pre-order.
func SubSiteIterator(site Site) iter.Iterator[Site] {
	worklist := stack.NewStack[Site]()
	worklist.Push(site)
	//
	return &preorderIterator{worklist}
}

// sectionIterator visits the top-level entries of a section, resolving each
// against the live model as it goes.
type sectionIterator struct {
	model   *Model
	section Section
	index   uint
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *sectionIterator) HasNext() bool {
	return p.index < p.model.sectionLen(p.section)
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *sectionIterator) Next() Site {
	site := p.model.SiteAt(p.section, p.index, pseq.Empty[uint]())
	p.index++
	//
	return site
}

// Append another iterator onto the end of this iterator.
//
//nolint:revive
func (p *sectionIterator) Append(other iter.Iterator[Site]) iter.Iterator[Site] {
	return iter.NewAppendIterator[Site](p, other)
}

// Collect allocates a new array containing all remaining items.
//
//nolint:revive
func (p *sectionIterator) Collect() []Site {
	return iter.Collect[Site](p)
}

type preorderIterator struct {
	worklist *stack.Stack[Site]
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *preorderIterator) HasNext() bool {
	return !p.worklist.IsEmpty()
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *preorderIterator) Next() Site {
	site := p.worklist.Pop()
	// Push children in reverse so the first is visited next
	for i := site.term.Arity(); i > 0; i-- {
		p.worklist.Push(site.Child(i - 1))
	}
	//
	return site
}

// Append another iterator onto the end of this iterator.
//
//nolint:revive
func (p *preorderIterator) Append(other iter.Iterator[Site]) iter.Iterator[Site] {
	return iter.NewAppendIterator[Site](p, other)
}

// Collect allocates a new array containing all remaining items.
//
//nolint:revive
func (p *preorderIterator) Collect() []Site {
	return iter.Collect[Site](p)
}
