// Copyright 2024 The Raxio Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package session implements the rewrite engine's session state machine
// (spec §4.4): the Global/Matching mode, the history and derivation
// stacks, the persistent named-rule table, undo, and derivation export.
package session

import (
	"fmt"

	"github.com/Janko-dev/raxio/ast"
	"github.com/Janko-dev/raxio/engine"
)

// Mode is one of the two session states.
type Mode int

const (
	Global Mode = iota
	Matching
)

func (m Mode) String() string {
	if m == Matching {
		return "Matching"
	}
	return "Global"
}

// Rule is a named pattern/template pair installed by a Define statement.
type Rule struct {
	L, R ast.Expr
}

// Step is one entry of the derivation log: the rule applied to produce
// history[i+1] from history[i].
type Step struct {
	L, R  ast.Expr
	Depth int
}

// Session holds all process-wide engine state: the mode, the in-progress
// matching session's history and derivation (empty in Global mode, per
// invariant I1), and the rule table, which persists across sessions
// (invariant I3).
type Session struct {
	Mode       Mode
	History    []ast.Expr
	Derivation []Step
	Rules      map[string]Rule

	// Warnings accumulates non-fatal diagnostics emitted while dispatching
	// statements. Callers drain and reset it at the end of a batch.
	Warnings []Warning
}

// New returns a fresh Session in Global mode with an empty rule table.
func New() *Session {
	return &Session{Mode: Global, Rules: map[string]Rule{}}
}

// Top returns the current term (the top of History), and whether one
// exists. History is only non-empty while Matching (I1).
func (s *Session) Top() (ast.Expr, bool) {
	if len(s.History) == 0 {
		return nil, false
	}
	return s.History[len(s.History)-1], true
}

// checkInvariants panics if I1/I2 are violated; called at the end of every
// Dispatch for defense in depth. It never fires on correct input — it
// exists to catch a regression in this package, not to validate caller
// input.
func (s *Session) checkInvariants() {
	historyEmpty := len(s.History) == 0
	modeGlobal := s.Mode == Global
	if historyEmpty != modeGlobal {
		panic("session: I1 violated: mode/history-empty disagree")
	}
	wantDerivation := len(s.History) - 1
	if wantDerivation < 0 {
		wantDerivation = 0
	}
	if len(s.Derivation) != wantDerivation {
		panic("session: I2 violated: |derivation| != max(0, |history|-1)")
	}
}

func (s *Session) warn(kind WarningKind) {
	s.Warnings = append(s.Warnings, Warning{Kind: kind})
}

func (s *Session) warnUndefined(name string) {
	s.Warnings = append(s.Warnings, Warning{Kind: RuleDoesNotExist, Name: name})
}

// pushTerm pushes a new current term and advances the derivation log in
// lock-step, maintaining I2.
func (s *Session) pushTerm(next ast.Expr, l, r ast.Expr, depth int) {
	s.History = append(s.History, next)
	s.Derivation = append(s.Derivation, Step{L: l, R: r, Depth: depth})
}

// Dispatch processes one statement against the session, returning any
// text that should be printed as a result of it (possibly empty, e.g. for
// a Define). It implements the table in spec §4.4 exhaustively over the
// five Stmt forms.
func (s *Session) Dispatch(stmt ast.Stmt) (output string, err error) {
	defer s.checkInvariants()

	switch st := stmt.(type) {
	case *ast.Define:
		s.Rules[st.Name] = Rule{L: st.L, R: st.R}
		return "", nil

	case *ast.ExprStmt:
		if s.Mode == Matching {
			s.warn(ExprHasNoEffect)
			return "", nil
		}
		s.Mode = Matching
		s.History = []ast.Expr{st.E}
		s.Derivation = nil
		return ast.Display(st.E, "Start matching on: "), nil

	case *ast.Apply:
		if s.Mode == Global {
			s.warn(ApplyRuleNoEffect)
			return "", nil
		}
		rule, ok := s.Rules[st.Name]
		if !ok {
			s.warnUndefined(st.Name)
			return "", nil
		}
		top, _ := s.Top()
		next := engine.Traverse(top, rule.L, rule.R, st.Depth)
		s.pushTerm(next, rule.L, rule.R, st.Depth)
		return ast.Display(next, "    "), nil

	case *ast.Rule:
		if s.Mode == Global {
			s.warn(InLineRuleNoEffect)
			return "", nil
		}
		top, _ := s.Top()
		next := engine.Traverse(top, st.L, st.R, st.Depth)
		s.pushTerm(next, st.L, st.R, st.Depth)
		return ast.Display(next, "    "), nil

	case *ast.End:
		if s.Mode == Global {
			s.warn(EndStmtHasNoEffect)
			return "", nil
		}
		top, _ := s.Top()
		result := ast.Display(top, "Result: ")
		if st.Path != "" {
			if werr := s.exportTranscript(st.Path); werr != nil {
				s.Mode = Global
				s.History = nil
				s.Derivation = nil
				return result, fmt.Errorf("writing transcript: %w", werr)
			}
		}
		s.Mode = Global
		s.History = nil
		s.Derivation = nil
		return result, nil

	default:
		panic(fmt.Sprintf("session: unknown statement type %T", stmt))
	}
}

// Undo pops one rewrite from history and derivation, reporting the new
// top term. It is a REPL-only command, not a statement: if history has one
// or zero entries (the anchor is not poppable via undo), it is a no-op and
// ok is false.
func (s *Session) Undo() (top ast.Expr, ok bool) {
	if len(s.History) <= 1 {
		t, _ := s.Top()
		return t, false
	}
	s.History = s.History[:len(s.History)-1]
	s.Derivation = s.Derivation[:len(s.Derivation)-1]
	s.checkInvariants()
	top, _ = s.Top()
	return top, true
}
