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
	"fmt"
	"strings"

	"github.com/nmsafiri/RESOLVE/pkg/term"
	"github.com/nmsafiri/RESOLVE/pkg/util/collection/pseq"
)

// Site is the address of a sub-term within a proof state: the section, the
// index of the top-level entry within that section, and the path to the
// sub-term within the entry.  A site also carries the term found there when it
// was created.  Sites do not own any state, and become stale when the entry
// they address is altered or removed.
type Site struct {
	model   *Model
	section Section
	index   uint
	path    pseq.Sequence[uint]
	term    *term.Term
}

// Model returns the model to which this site belongs.
func (p Site) Model() *Model {
	return p.model
}

// Section returns the section addressed by this site.
func (p Site) Section() Section {
	return p.section
}

// Index returns the index of the top-level entry addressed by this site.
func (p Site) Index() uint {
	return p.index
}

// Path returns the path from the top-level entry to the addressed sub-term.
func (p Site) Path() pseq.Sequence[uint] {
	return p.path
}

// Term returns the term found at this site when it was created.
func (p Site) Term() *term.Term {
	return p.term
}

// IsTopLevel determines whether this site addresses a top-level entry.
func (p Site) IsTopLevel() bool {
	return p.path.Len() == 0
}

// IsValid determines whether this site still addresses a sub-term of the
// model.
func (p Site) IsValid() bool {
	root, ok := p.model.topLevel(p.section, p.index)
	//
	return ok && root.HasPath(p.path)
}

// Resolve the current term at this site against the live model.
func (p Site) Resolve() *term.Term {
	root, ok := p.model.topLevel(p.section, p.index)
	//
	if !ok {
		violation("stale site %s", p)
	}
	//
	return root.SubTerm(p.path)
}

// Child returns the site of the ith argument of the term at this site.
func (p Site) Child(i uint) Site {
	return Site{p.model, p.section, p.index, p.path.Append(pseq.Singleton(i)), p.term.Arg(i)}
}

// Equals determines whether two sites have the same address.
func (p Site) Equals(other Site) bool {
	if p.model != other.model || p.section != other.section || p.index != other.index ||
		p.path.Len() != other.path.Len() {
		return false
	}
	//
	for i := range p.path.Len() {
		if p.path.Get(i) != other.path.Get(i) {
			return false
		}
	}
	//
	return true
}

func (p Site) String() string {
	var builder strings.Builder
	//
	builder.WriteString(fmt.Sprintf("%s[%d]", p.section, p.index))
	//
	for it := p.path.Iterator(); it.HasNext(); {
		builder.WriteString(fmt.Sprintf(".%d", it.Next()))
	}
	//
	builder.WriteString(fmt.Sprintf(" %s", p.term))
	//
	return builder.String()
}
