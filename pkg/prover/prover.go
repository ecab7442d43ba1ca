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
package prover

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/nmsafiri/RESOLVE/pkg/prover/model"
	"github.com/nmsafiri/RESOLVE/pkg/prover/transform"
	"github.com/nmsafiri/RESOLVE/pkg/util/collection/hash"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Status indicates the outcome of a proof attempt.
type Status uint8

const (
	// PROVED indicates every consequent was discharged.
	PROVED Status = iota
	// UNDETERMINED indicates the search ended without a proof.
	UNDETERMINED
)

func (p Status) String() string {
	if p == PROVED {
		return "proved"
	}
	//
	return "undetermined"
}

// Result records the outcome of attempting to prove a single VC.
type Result struct {
	VC      string
	Attempt uuid.UUID
	Status  Status
	// Steps of the proof found, or nil if none was found.
	Steps []model.ProofStep
	// Minimal subset of steps which contributed to the proof.
	Minimal []model.ProofStep
	// Explored is the number of applications tried.
	Explored uint
	Duration time.Duration
	// Err records an invariant violation which aborted the attempt.
	Err error
}

// Prover performs a bounded depth-first search over proof states, applying
// transformations and undoing them on backtrack.
type Prover struct {
	config Config
}

// NewProver constructs a prover with a given configuration.
func NewProver(config Config) *Prover {
	return &Prover{config}
}

// Config returns the configuration of this prover.
func (p *Prover) Config() Config {
	return p.config
}

// ProveAll attempts each VC of a problem, using up to the configured number of
// workers.  Every attempt operates on its own model, so only the (immutable)
// library and type graph are shared.
func (p *Prover) ProveAll(ctx context.Context, problem *Problem) ([]Result, error) {
	var (
		results = make([]Result, len(problem.VCs))
		g, gctx = errgroup.WithContext(ctx)
	)
	//
	g.SetLimit(int(p.config.Workers))
	//
	for i, vc := range problem.VCs {
		g.Go(func() error {
			results[i] = p.Prove(gctx, problem, vc)
			return gctx.Err()
		})
	}
	//
	if err := g.Wait(); err != nil {
		return results, err
	}
	//
	return results, nil
}

// Prove attempts a single VC of a given problem.
func (p *Prover) Prove(ctx context.Context, problem *Problem, vc *VC) (result Result) {
	var (
		start = time.Now()
		m     = model.NewModel(vc.Antecedents, vc.Consequents, problem.Library)
		s     = newSearch(ctx, p.config, m, transform.Library(problem.Library, problem.Graph))
	)
	//
	result = Result{VC: vc.Name, Attempt: uuid.New(), Status: UNDETERMINED}
	s.logger = log.WithFields(log.Fields{"vc": vc.Name, "attempt": result.Attempt.String()})
	//
	if p.config.TimeLimit > 0 {
		var cancel context.CancelFunc
		s.ctx, cancel = context.WithTimeout(ctx, p.config.TimeLimit)
		//
		defer cancel()
	}
	//
	m.SetChangeEventMode(p.config.ChangeEventMode())
	m.AddChangeListener(s)
	//
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(*model.InvariantError)
			if !ok {
				panic(r)
			}
			//
			s.logger.Errorf("attempt aborted: %s", err)
			result.Err, result.Status, result.Steps, result.Minimal = err, UNDETERMINED, nil, nil
		}
		//
		result.Explored = s.explored
		result.Duration = time.Since(start)
	}()
	//
	s.logger.Debugf("proving with %d transformations", len(s.transforms))
	//
	if s.search(0) {
		result.Status = PROVED
		result.Steps = m.ProofSteps()
		result.Minimal = transform.Prune(result.Steps)
		s.logger.Debugf("proved in %d steps (%d minimal)", len(result.Steps), len(result.Minimal))
	} else {
		s.logger.Debugf("undetermined after %d applications", s.explored)
	}
	//
	return result
}

// ============================================================================
// Search
// ============================================================================

// stateKey identifies a proof state for the purposes of avoiding repeated
// exploration.  States are bucketed by fingerprint, but only equal when their
// canonical renderings match.
type stateKey struct {
	fingerprint uint64
	state       string
}

func keyOf(m *model.Model) stateKey {
	return stateKey{m.Fingerprint(), m.StateKey()}
}

func (p stateKey) Equals(other stateKey) bool {
	return p.fingerprint == other.fingerprint && p.state == other.state
}

func (p stateKey) Hash() uint64 {
	return p.fingerprint
}

type search struct {
	ctx        context.Context
	config     Config
	model      *model.Model
	transforms []transform.Transformation
	// Shallowest depth at which each state has been seen.
	visited  *hash.Map[stateKey, uint]
	explored uint
	logger   *log.Entry
}

func newSearch(ctx context.Context, config Config, m *model.Model,
	transforms []transform.Transformation) *search {
	// Prefer transformations which shrink the proof state.
	slices.SortStableFunc(transforms, func(l, r transform.Transformation) int {
		return l.FunctionApplicationCountDelta() - r.FunctionApplicationCountDelta()
	})
	//
	s := &search{ctx, config, m, transforms, hash.NewMap[stateKey, uint](256), 0, log.NewEntry(log.StandardLogger())}
	s.visited.Insert(keyOf(m), 0)
	//
	return s
}

// ModelChanged reports progress of this search.
func (p *search) ModelChanged(m *model.Model) {
	p.logger.Tracef("depth %d, %d consequent(s), %d explored", m.ProofDepth(), m.ConsequentCount(), p.explored)
}

func (p *search) exhausted() bool {
	return p.explored >= p.config.MaxSteps || p.ctx.Err() != nil
}

// search explores proof states reachable from the current one, and returns
// true if a proof was found.  In that case, the model is left in the proved
// state.  Otherwise, the model is returned to the state it was in on entry.
func (p *search) search(depth uint) bool {
	if p.model.IsProved() {
		return true
	} else if depth >= p.config.MaxDepth || p.exhausted() {
		return false
	}
	//
	symbols := p.symbols()
	//
	for _, t := range p.transforms {
		if p.config.SkipIrrelevant && !relevant(t, symbols) {
			continue
		}
		//
		for apps := t.Applications(p.model); apps.HasNext(); {
			if p.exhausted() {
				return false
			}
			//
			app := apps.Next()
			app.Apply(p.model)
			p.explored++
			//
			if p.logger.Logger.IsLevelEnabled(log.TraceLevel) {
				p.logger.Tracef("%*s%s", int(2*depth), "", app)
			}
			//
			if p.unseen(depth+1) && p.search(depth+1) {
				return true
			}
			//
			p.model.UndoLastProofStep()
		}
	}
	//
	return false
}

// unseen determines whether the current state was not previously reached at
// this depth or shallower, recording it if so.
func (p *search) unseen(depth uint) bool {
	key := keyOf(p.model)
	//
	if d, ok := p.visited.Get(key); ok && d <= depth {
		return false
	}
	//
	p.visited.Insert(key, depth)
	//
	return true
}

func (p *search) symbols() map[string]bool {
	symbols := make(map[string]bool)
	//
	for _, lt := range p.model.LocalTheorems() {
		for s := range lt.Assertion().SymbolNames() {
			symbols[s] = true
		}
	}
	//
	for _, c := range p.model.Consequents() {
		for s := range c.Expression().SymbolNames() {
			symbols[s] = true
		}
	}
	//
	return symbols
}

// relevant determines whether every symbol required by the pattern of a
// transformation is present in the proof state.
func relevant(t transform.Transformation, symbols map[string]bool) bool {
	for s := range t.PatternSymbolNames() {
		if !symbols[s] {
			return false
		}
	}
	//
	return true
}

// Summary returns a one-line description of a result.
func (p Result) Summary() string {
	if p.Err != nil {
		return fmt.Sprintf("%s: %s (%s)", p.VC, p.Status, p.Err)
	}
	//
	return fmt.Sprintf("%s: %s (%d steps, %d explored, %s)", p.VC, p.Status, len(p.Minimal), p.Explored,
		p.Duration.Round(time.Millisecond))
}
