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
	"slices"

	"github.com/nmsafiri/RESOLVE/pkg/prover/model"
	"github.com/nmsafiri/RESOLVE/pkg/term"
	"github.com/nmsafiri/RESOLVE/pkg/types"
	"github.com/nmsafiri/RESOLVE/pkg/util/collection/pseq"
)

// Library constructs the standard transformations: the built-in rules, followed
// by those derived from each theorem of a given library.  Equalities rewrite
// in both directions, implications develop the antecedent and any theorem
// discharges matching consequents.  A rewrite whose pattern is a lone
// variable is omitted, since it matches every site.
func Library(theorems pseq.Sequence[*model.Theorem], graph *types.Graph) []Transformation {
	transforms := []Transformation{
		NewEliminateTrueConsequent(),
		NewSymmetricEqualityToTrue(),
		NewConsequentFromAntecedent(),
		NewRemoveRedundantAntecedent(),
		NewCongruenceEquality(graph),
	}
	//
	for it := theorems.Iterator(); it.HasNext(); {
		theorem := it.Next()
		assertion := theorem.Assertion()
		//
		switch {
		case assertion.IsEquality():
			lhs, rhs := assertion.Arg(0), assertion.Arg(1)
			//
			if !lhs.IsVariable() {
				transforms = append(transforms, NewSubstituteInPlace(theorem, false, model.CONSEQUENTS))
			}
			//
			if !rhs.IsVariable() {
				transforms = append(transforms, NewSubstituteInPlace(theorem, true, model.CONSEQUENTS))
			}
			//
			if !lhs.IsVariable() {
				transforms = append(transforms, NewSubstituteInPlace(theorem, false, model.ANTECEDENTS))
			}
		case assertion.Is(term.IMPLIES, 2):
			transforms = append(transforms, NewDevelopByImplication(theorem))
		}
		// Every theorem can discharge a consequent directly.
		transforms = append(transforms, NewConsequentFromTheorem(theorem))
	}
	//
	return transforms
}

// Prune identifies the steps of a completed proof which actually contributed
// to discharging the consequents.  A step contributes if it affected a
// consequent, or a conjunct relied upon by some later contributing step.
func Prune(steps []model.ProofStep) []model.ProofStep {
	var (
		needed = make(map[model.Conjunct]bool)
		kept   []model.ProofStep
	)
	//
	for i := len(steps) - 1; i >= 0; i-- {
		if !contributes(steps[i], needed) {
			continue
		}
		//
		kept = append(kept, steps[i])
		//
		for _, c := range steps[i].PrerequisiteConjuncts() {
			needed[c] = true
		}
	}
	//
	slices.Reverse(kept)
	//
	return kept
}

func contributes(step model.ProofStep, needed map[model.Conjunct]bool) bool {
	for _, c := range step.AffectedConjuncts() {
		if _, ok := c.(*model.Consequent); ok || needed[c] {
			return true
		}
	}
	//
	return false
}
