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

package ast

import "github.com/Janko-dev/raxio/token"

// Stmt is one of the five statement forms the session machine dispatches
// on: Define, ExprStmt, Apply, Rule, or End.
type Stmt interface {
	stmtNode()
	Pos() token.Pos
}

// Define installs or overwrites a named rule L => R in the rule table.
type Define struct {
	DefPos token.Pos
	Name   string
	L, R   Expr
}

func (*Define) stmtNode()        {}
func (d *Define) Pos() token.Pos { return d.DefPos }

// ExprStmt anchors a new matching session on E when in Global mode; it has
// no effect (and produces a warning) in Matching mode.
type ExprStmt struct {
	E Expr
}

func (*ExprStmt) stmtNode()        {}
func (s *ExprStmt) Pos() token.Pos { return s.E.Pos() }

// Apply applies the named rule at depth Depth; legal only in Matching mode.
type Apply struct {
	NamePos token.Pos
	Name    string
	Depth   int
}

func (*Apply) stmtNode()        {}
func (a *Apply) Pos() token.Pos { return a.NamePos }

// Rule applies an in-line pattern/template pair at depth Depth; legal only
// in Matching mode.
type Rule struct {
	L, R  Expr
	Depth int
}

func (*Rule) stmtNode()        {}
func (r *Rule) Pos() token.Pos { return r.L.Pos() }

// End closes the current matching session. If Path is non-empty, the
// derivation is exported to that file before the session state is cleared.
type End struct {
	EndPos token.Pos
	Path   string
}

func (*End) stmtNode()        {}
func (e *End) Pos() token.Pos { return e.EndPos }
