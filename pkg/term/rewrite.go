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
	"fmt"

	"github.com/nmsafiri/RESOLVE/pkg/util/collection/pseq"
)

// BindingError signals that a pattern does not match a given term under the
// bindings assumed so far.  This is an expected outcome of pattern matching,
// rather than a failure, and is consumed by whoever is searching for matches.
type BindingError struct {
	Pattern *Term
	Target  *Term
	Reason  string
}

func (p *BindingError) Error() string {
	return fmt.Sprintf("cannot bind %s to %s (%s)", p.Pattern, p.Target, p.Reason)
}

// Substitute simultaneously replaces every sub-term which is a key of the given
// bindings with its bound value.  Universally quantified function symbols
// whose name (as a variable) is bound to a leaf are renamed to that leaf.
// Sub-terms which are unaffected are shared with the original.
func (p *Term) Substitute(bindings *Bindings) *Term {
	if bindings.Len() == 0 {
		return p
	} else if v, ok := bindings.Get(p); ok {
		return v
	}
	//
	var (
		args    = p.args
		changed = false
		name    = p.name
		quant   = p.quant
	)
	//
	for i := range p.Arity() {
		ith := p.Arg(i)
		//
		if nth := ith.Substitute(bindings); nth != ith {
			args = args.Set(i, nth)
			changed = true
		}
	}
	// Rename function variables
	if p.quant == ForAll && !p.IsLeaf() {
		if v, ok := bindings.Get(NewVariable(p.name, nil)); ok && v.IsLeaf() {
			name, quant, changed = v.name, v.quant, true
		}
	}
	//
	if !changed {
		return p
	}
	//
	return NewApplication(name, quant, p.typ, args)
}

// BindTo matches this term (as a pattern) against a target term.  Universally
// quantified leaves of the pattern bind to arbitrary sub-terms of the target,
// provided the target's type (when known) is a subtype of the variable's type
// (when known), and every occurrence of the same variable binds to the same
// sub-term.  A universally quantified function symbol binds its name to any
// function symbol of the same arity.  All other symbols must match exactly.
// The bindings established by matching are returned, or a *BindingError if the
// pattern does not match.
func (p *Term) BindTo(target *Term) (*Bindings, error) {
	bindings := NewBindings()
	//
	if err := p.bindTo(target, bindings); err != nil {
		return nil, err
	}
	//
	return bindings, nil
}

func (p *Term) bindTo(target *Term, bindings *Bindings) error {
	if p.IsVariable() {
		return bindVariable(p, target, bindings)
	} else if p.quant == ForAll {
		// Function variable
		if p.Arity() != target.Arity() {
			return &BindingError{p, target, "arity mismatch"}
		}
		//
		if err := bindVariable(NewVariable(p.name, nil), NewLeaf(target.name, nil), bindings); err != nil {
			return &BindingError{p, target, "inconsistent function binding"}
		}
	} else if p.name != target.name || p.quant != target.quant {
		return &BindingError{p, target, "symbol mismatch"}
	} else if p.Arity() != target.Arity() {
		return &BindingError{p, target, "arity mismatch"}
	}
	//
	for i := range p.Arity() {
		if err := p.Arg(i).bindTo(target.Arg(i), bindings); err != nil {
			return err
		}
	}
	//
	return nil
}

func bindVariable(variable *Term, target *Term, bindings *Bindings) error {
	if existing, ok := bindings.Get(variable); ok {
		if !existing.Equals(target) {
			return &BindingError{variable, target, "inconsistent binding"}
		}
		//
		return nil
	} else if variable.typ != nil && target.typ != nil && !target.typ.IsSubtypeOf(variable.typ) {
		return &BindingError{variable, target, "type mismatch"}
	}
	//
	bindings.Put(variable, target)
	//
	return nil
}

// SubTerm returns the sub-term located at a given path, where each element of
// the path selects an argument index.  This panics if the path is invalid.
func (p *Term) SubTerm(path pseq.Sequence[uint]) *Term {
	var t = p
	//
	for it := path.Iterator(); it.HasNext(); {
		index := it.Next()
		//
		if index >= t.Arity() {
			panic(fmt.Sprintf("invalid path index %d for %s", index, t))
		}
		//
		t = t.Arg(index)
	}
	//
	return t
}

// HasPath checks whether a given path addresses a sub-term of this term.
func (p *Term) HasPath(path pseq.Sequence[uint]) bool {
	var t = p
	//
	for it := path.Iterator(); it.HasNext(); {
		index := it.Next()
		//
		if index >= t.Arity() {
			return false
		}
		//
		t = t.Arg(index)
	}
	//
	return true
}

// WithSiteAltered returns a copy of this term where the sub-term at the given
// path is replaced.  Only the terms along the path are rebuilt; everything
// else is shared with the original.
func (p *Term) WithSiteAltered(path pseq.Sequence[uint], replacement *Term) *Term {
	if replacement == nil {
		panic("cannot alter site to nil term")
	} else if path.Len() == 0 {
		return replacement
	}
	//
	index := path.Get(0)
	//
	if index >= p.Arity() {
		panic(fmt.Sprintf("invalid path index %d for %s", index, p))
	}
	//
	arg := p.Arg(index).WithSiteAltered(path.Tail(1), replacement)
	//
	return NewApplication(p.name, p.quant, p.typ, p.args.Set(index, arg))
}
