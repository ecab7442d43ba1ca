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
package term

import (
	"slices"
	"strings"

	"github.com/nmsafiri/RESOLVE/pkg/util/collection/hash"
)

// Bindings maps terms (typically quantified variables) onto the terms they
// stand for.  Keys are compared structurally.  A nil Bindings behaves as an
// empty, read-only mapping.
type Bindings struct {
	items *hash.Map[*Term, *Term]
}

// NewBindings constructs an initially empty set of bindings.
func NewBindings() *Bindings {
	return &Bindings{hash.NewMap[*Term, *Term](0)}
}

// Get returns the term bound to a given key, or false if it is unbound.
func (p *Bindings) Get(key *Term) (*Term, bool) {
	if p == nil {
		return nil, false
	}
	//
	return p.items.Get(key)
}

// Put binds a key to a given value, replacing any existing binding.
func (p *Bindings) Put(key *Term, value *Term) {
	p.items.Insert(key, value)
}

// PutAll copies every binding of another set into this one.
func (p *Bindings) PutAll(other *Bindings) {
	for _, k := range other.Keys() {
		v, _ := other.Get(k)
		p.Put(k, v)
	}
}

// Len returns the number of bindings.
func (p *Bindings) Len() uint {
	if p == nil {
		return 0
	}
	//
	return p.items.Size()
}

// Keys returns the bound keys, sorted by their string representation.
func (p *Bindings) Keys() []*Term {
	if p == nil {
		return nil
	}
	//
	keys := p.items.Keys()
	slices.SortFunc(keys, func(a, b *Term) int {
		return strings.Compare(a.String(), b.String())
	})
	//
	return keys
}

// Clone returns a copy of these bindings which can be modified independently.
func (p *Bindings) Clone() *Bindings {
	clone := NewBindings()
	//
	if p != nil {
		clone.PutAll(p)
	}
	//
	return clone
}

// Equals checks whether two sets of bindings are identical.
func (p *Bindings) Equals(other *Bindings) bool {
	if p.Len() != other.Len() {
		return false
	}
	//
	for _, k := range p.Keys() {
		v, _ := p.Get(k)
		if w, ok := other.Get(k); !ok || !v.Equals(w) {
			return false
		}
	}
	//
	return true
}

func (p *Bindings) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, k := range p.Keys() {
		v, _ := p.Get(k)
		//
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(k.String())
		builder.WriteString(" ↦ ")
		builder.WriteString(v.String())
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}
