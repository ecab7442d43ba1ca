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
package test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/nmsafiri/RESOLVE/pkg/prover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDir determines the (relative) location of the test directory.  That is
// where the VC files are found, split by their expected outcome.
const TestDir = "../../testdata"

// ===================================================================
// Proved
// ===================================================================

func Test_Proved_Basic_01(t *testing.T) {
	Check(t, "proved/basic_01")
}

func Test_Proved_Basic_02(t *testing.T) {
	Check(t, "proved/basic_02")
}

func Test_Proved_Antecedent_01(t *testing.T) {
	Check(t, "proved/antecedent_01")
}

func Test_Proved_Conjunction_01(t *testing.T) {
	Check(t, "proved/conjunction_01")
}

func Test_Proved_Congruence_01(t *testing.T) {
	Check(t, "proved/congruence_01")
}

func Test_Proved_Congruence_02(t *testing.T) {
	Check(t, "proved/congruence_02")
}

func Test_Proved_Inconsistent_01(t *testing.T) {
	Check(t, "proved/inconsistent_01")
}

func Test_Proved_Substitute_01(t *testing.T) {
	Check(t, "proved/substitute_01")
}

func Test_Proved_Develop_01(t *testing.T) {
	Check(t, "proved/develop_01")
}

func Test_Proved_Theorem_01(t *testing.T) {
	Check(t, "proved/theorem_01")
}

func Test_Proved_Typed_01(t *testing.T) {
	Check(t, "proved/typed_01")
}

// ===================================================================
// Undetermined
// ===================================================================

func Test_Undetermined_Unknown_01(t *testing.T) {
	Check(t, "undetermined/unknown_01")
}

func Test_Undetermined_False_01(t *testing.T) {
	Check(t, "undetermined/false_01")
}

func Test_Undetermined_Depth_01(t *testing.T) {
	Check(t, "undetermined/depth_01")
}

// ===================================================================
// Test Helpers
// ===================================================================

// Check that every VC in a given file has the outcome determined by the
// directory containing it.  Every VC is attempted both sequentially and in
// parallel, and both must agree.
func Check(t *testing.T, test string) {
	var (
		filename = fmt.Sprintf("%s/%s.vc", TestDir, test)
		expected = prover.UNDETERMINED
	)
	// Enable testing each file in parallel
	t.Parallel()
	//
	if strings.HasPrefix(test, "proved/") {
		expected = prover.PROVED
	}
	//
	problem, err := prover.LoadFile(filename)
	require.NoError(t, err)
	require.NotEmpty(t, problem.VCs)
	//
	for _, workers := range []uint{1, 4} {
		config := prover.DefaultConfig()
		config.Workers = workers
		//
		results, err := prover.NewProver(config).ProveAll(context.Background(), problem)
		require.NoError(t, err)
		//
		for _, r := range results {
			assert.Equal(t, expected, r.Status, "%s (workers=%d)", r.VC, workers)
			assert.NoError(t, r.Err)
			//
			if expected == prover.PROVED {
				assert.NotEmpty(t, r.Minimal, r.VC)
				assert.LessOrEqual(t, uint(len(r.Steps)), config.MaxDepth, r.VC)
			} else {
				assert.Nil(t, r.Steps, r.VC)
			}
		}
	}
}

func Test_Undetermined_Quantified_01(t *testing.T) {
	Check(t, "undetermined/quantified_01")
}
