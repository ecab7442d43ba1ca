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
package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nmsafiri/RESOLVE/pkg/prover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDir = "../../testdata"

func Test_Prove_01(t *testing.T) {
	var (
		out  bytes.Buffer
		p    = prover.NewProver(prover.DefaultConfig())
		file = testDir + "/proved/substitute_01.vc"
	)
	//
	n, err := proveFiles(context.Background(), &out, p, []string{file}, reportOptions{proofs: true})
	require.NoError(t, err)
	assert.Equal(t, uint(0), n)
	//
	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, file+":", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "vc     | status | steps | explored | time"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "nested | proved | 3     |"), lines[2])
	assert.Contains(t, out.String(), "  1. substitute zero_right → in consequents")
	assert.Contains(t, out.String(), "  3. consequent from antecedent: consequent (P a) established")
	assert.NotContains(t, out.String(), "\033[")
}

func Test_Prove_02(t *testing.T) {
	var (
		out   bytes.Buffer
		p     = prover.NewProver(prover.DefaultConfig())
		files = []string{testDir + "/proved/basic_01.vc", testDir + "/undetermined/unknown_01.vc",
			testDir + "/undetermined/false_01.vc"}
	)
	//
	n, err := proveFiles(context.Background(), &out, p, files, reportOptions{ansiEscapes: true})
	require.NoError(t, err)
	assert.Equal(t, uint(2), n)
	assert.Contains(t, out.String(), "\033[31mundetermined\033[0m")
	assert.Contains(t, out.String(), "\033[32mproved\033[0m")
	//
	_, err = proveFiles(context.Background(), &out, p, []string{testDir + "/missing.vc"}, reportOptions{})
	assert.Error(t, err)
}

func Test_Prove_03(t *testing.T) {
	var (
		file        = filepath.Join(t.TempDir(), "watched.vc")
		ctx, cancel = context.WithCancel(context.Background())
		changes     = make(chan string, 1)
		done        = make(chan error, 1)
	)
	//
	defer cancel()
	require.NoError(t, os.WriteFile(file, []byte("(vc v (antecedents) (consequents true))"), 0o600))
	//
	go func() {
		done <- watchFiles(ctx, []string{file}, func(name string) {
			select {
			case changes <- name:
			default:
			}
		})
	}()
	// Keep writing until the watcher has started and noticed
	require.Eventually(t, func() bool {
		if err := os.WriteFile(file, []byte("(vc w (antecedents) (consequents true))"), 0o600); err != nil {
			return false
		}
		//
		select {
		case name := <-changes:
			abs, _ := filepath.Abs(file)
			return name == abs
		default:
			return false
		}
	}, 5*time.Second, 50*time.Millisecond)
	//
	cancel()
	assert.NoError(t, <-done)
}
