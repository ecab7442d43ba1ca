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

	"github.com/nmsafiri/RESOLVE/pkg/term"
)

// Conjunct is an entry of a proof state, i.e. a local theorem, a consequent or
// a library theorem.
type Conjunct interface {
	fmt.Stringer
	// Expression returns the term currently held by this conjunct.
	Expression() *term.Term
}

// Justification records why a local theorem is known to hold.
type Justification interface {
	fmt.Stringer
}

type given struct{}

func (given) String() string { return "given" }

// Given justifies local theorems which were supplied as antecedents of the
// verification condition.
var Given Justification = given{}

// Derived justifies local theorems introduced during the proof.
type Derived struct {
	Description string
}

func (p Derived) String() string {
	return p.Description
}

// LocalTheorem is a fact known to hold within a single proof state.  A goal
// local theorem is one which originated as part of the consequent.
type LocalTheorem struct {
	assertion     *term.Term
	justification Justification
	goal          bool
}

// NewLocalTheorem constructs a new local theorem.  Each such theorem is a
// distinct object, even when its assertion is not.
func NewLocalTheorem(assertion *term.Term, justification Justification, goal bool) *LocalTheorem {
	return &LocalTheorem{assertion, justification, goal}
}

// Assertion returns the fact held by this local theorem.
func (p *LocalTheorem) Assertion() *term.Term {
	return p.assertion
}

// Expression implementation for the Conjunct interface.
func (p *LocalTheorem) Expression() *term.Term {
	return p.assertion
}

// Justification returns the justification of this local theorem.
func (p *LocalTheorem) Justification() Justification {
	return p.justification
}

// IsGoal indicates whether this theorem originated from the consequent.
func (p *LocalTheorem) IsGoal() bool {
	return p.goal
}

func (p *LocalTheorem) String() string {
	return fmt.Sprintf("%s (%s)", p.assertion, p.justification)
}

// Consequent is a cell holding a goal remaining to be proved.  Altering a
// consequent replaces the contents of its cell, hence the cell's identity
// persists.
type Consequent struct {
	expression *term.Term
}

// NewConsequent constructs a fresh consequent cell.
func NewConsequent(expression *term.Term) *Consequent {
	return &Consequent{expression}
}

// Expression implementation for the Conjunct interface.
func (p *Consequent) Expression() *term.Term {
	return p.expression
}

func (p *Consequent) String() string {
	return p.expression.String()
}

// Theorem is an entry in the global theorem library.
type Theorem struct {
	name      string
	assertion *term.Term
}

// NewTheorem constructs a new library theorem.
func NewTheorem(name string, assertion *term.Term) *Theorem {
	return &Theorem{name, assertion}
}

// Name returns the name of this theorem.
func (p *Theorem) Name() string {
	return p.name
}

// Assertion returns the fact asserted by this theorem.
func (p *Theorem) Assertion() *term.Term {
	return p.assertion
}

// Expression implementation for the Conjunct interface.
func (p *Theorem) Expression() *term.Term {
	return p.assertion
}

// IsEquality determines whether this theorem is an equality.
func (p *Theorem) IsEquality() bool {
	return p.assertion.IsEquality()
}

func (p *Theorem) String() string {
	return fmt.Sprintf("%s: %s", p.name, p.assertion)
}
