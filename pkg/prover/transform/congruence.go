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
	"github.com/nmsafiri/RESOLVE/pkg/prover/model"
	"github.com/nmsafiri/RESOLVE/pkg/registry"
	"github.com/nmsafiri/RESOLVE/pkg/term"
	"github.com/nmsafiri/RESOLVE/pkg/types"
	"github.com/nmsafiri/RESOLVE/pkg/util/collection/iter"
	log "github.com/sirupsen/logrus"
)

// CongruenceEquality replaces a top-level consequent with true when it follows
// from the ground local theorems by congruence closure alone.
type CongruenceEquality struct {
	base
	graph *types.Graph
}

// NewCongruenceEquality constructs the transformation.  Each use constructs a
// fresh registry over the given type graph.
func NewCongruenceEquality(graph *types.Graph) *CongruenceEquality {
	return &CongruenceEquality{base{
		name:          "congruence closure",
		consequent:    true,
		delta:         -1,
		patternSyms:   map[string]bool{},
		replacingSyms: map[string]bool{term.TRUE: true},
		equivalence:   EQUIVALENT,
	}, graph}
}

// Applications implementation for the Transformation interface.
func (p *CongruenceEquality) Applications(m *model.Model) iter.Iterator[Application] {
	var (
		closure       *registry.Closure
		prerequisites []model.Conjunct
	)
	// Closure is constructed on first use.
	holds := func(t *term.Term) bool {
		if closure == nil {
			closure, prerequisites = p.close(m)
		}
		//
		return closure.Holds(t)
	}
	//
	sites := iter.NewFilterIterator(m.TopLevelConsequentSiteIterator(), func(s model.Site) bool {
		return !s.Term().IsTrue() && s.Term().IsGround() && holds(s.Term())
	})
	//
	return iter.NewProjectIterator(sites, func(site model.Site) Application {
		cell := m.Consequent(site.Index())
		reads := append([]model.Conjunct{cell}, prerequisites...)
		//
		return newApplication("by congruence", []model.Site{site}, reads,
			func(m *model.Model) model.ProofStep {
				original := cell.Expression()
				m.AlterSite(site, term.True())
				//
				return NewModifyConsequentStep(p.name, site.Index(), cell, original, reads...)
			})
	})
}

// close computes the congruence closure of the ground local theorems.
func (p *CongruenceEquality) close(m *model.Model) (*registry.Closure, []model.Conjunct) {
	var (
		closure = registry.NewClosure(registry.NewRegistry(p.graph))
		used    []model.Conjunct
	)
	//
	for _, lt := range m.LocalTheorems() {
		if lt.Assertion().IsGround() {
			closure.Assert(lt.Assertion())
			used = append(used, lt)
		}
	}
	//
	log.Debugf("congruence closure over %d local theorems (%d symbols)", len(used), closure.Registry().Len())
	//
	return closure, used
}
